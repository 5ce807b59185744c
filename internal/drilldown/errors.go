package drilldown

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the navigator. Compare with errors.Is.
var (
	// ErrDestroyed is returned when resolving a drilldown after the
	// navigator or its chart was torn down.
	ErrDestroyed = constError("drilldown navigator destroyed")

	// ErrAlreadyResolved is returned when a drilldown slot is resolved twice.
	ErrAlreadyResolved = constError("drilldown already resolved")

	// ErrPointDetached indicates the origin point's series is no longer on the chart.
	ErrPointDetached = constError("drilldown origin point is detached")

	// ErrAbandoned is returned when resolving a slot that was abandoned or
	// whose gesture was settled without it.
	ErrAbandoned = constError("drilldown abandoned")

	// ErrNoSeries is returned when a drill target has no series options.
	ErrNoSeries = constError("drilldown target has no series options")
)

// ErrCanceled is returned when resolving a drilldown whose event was prevented.
const ErrCanceled = constError("drilldown canceled")
