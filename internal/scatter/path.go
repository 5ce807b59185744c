package scatter

import (
	"math"
	"strconv"
)

// Path returns one SVG path drawing a square marker for every point of
// layer. Centers are rounded to whole pixels.
func Path(layer []Point, radius float64) string {
	path := make([]byte, 0, len(layer)*48)
	for _, p := range layer {
		x, y := math.Round(p.X), math.Round(p.Y)
		path = appendCmd(path, 'M', x-radius, y-radius)
		path = appendCmd(path, 'L', x+radius, y-radius)
		path = appendCmd(path, 'L', x+radius, y+radius)
		path = appendCmd(path, 'L', x-radius, y+radius)
		path = append(path, 'Z')
	}
	return string(path)
}

func appendCmd(path []byte, cmd byte, x, y float64) []byte {
	path = append(path, cmd)
	path = strconv.AppendFloat(path, x, 'f', -1, 64)
	path = append(path, ' ')
	path = strconv.AppendFloat(path, y, 'f', -1, 64)
	return path
}
