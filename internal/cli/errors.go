package cli

import (
	"errors"
	"fmt"
)

// ExitCodeNotFound is returned when a drill path names a point that is not
// on the chart.
const ExitCodeNotFound = 2

// ExitError carries a process exit code through cobra.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Reason, e.ExitCode)
}

// ExitCode returns the exit code for err: 0 for nil, the carried code for an
// ExitError anywhere in the chain, else 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
