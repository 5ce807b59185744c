package scatter

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// ErrInvalidRadius is returned when rendering markers without a size.
const ErrInvalidRadius = constError("scatter: marker radius must be positive")

type constError string

func (e constError) Error() string { return string(e) }

// SVGOptions controls RenderSVG.
type SVGOptions struct {
	Width  int
	Height int
	Radius float64
	Title  string
	// Fill is the marker color; layers share it so overlaps between layers
	// read as density.
	Fill    string
	Opacity float64
}

// RenderSVG writes an SVG document with one merged path per layer.
func RenderSVG(w io.Writer, layers [][]Point, opts SVGOptions) error {
	if opts.Radius <= 0 {
		return ErrInvalidRadius
	}
	if opts.Fill == "" {
		opts.Fill = "#980043"
	}
	if opts.Opacity <= 0 {
		opts.Opacity = 0.2
	}

	canvas := svg.New(w)
	canvas.Start(opts.Width, opts.Height)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#fff")
	canvas.Gstyle(fmt.Sprintf("fill:%s;fill-opacity:%.3g", opts.Fill, opts.Opacity))
	for i, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		canvas.Path(Path(layer, opts.Radius), fmt.Sprintf(`data-layer="%d"`, i))
	}
	canvas.Gend()
	canvas.End()
	return nil
}
