package scatter

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNoOverlap(t *testing.T, layers [][]Point, radius float64) {
	t.Helper()
	for li, layer := range layers {
		for i := range layer {
			for j := i + 1; j < len(layer); j++ {
				dx := math.Abs(layer[i].X - layer[j].X)
				dy := math.Abs(layer[i].Y - layer[j].Y)
				assert.False(t, dx < 2*radius && dy < 2*radius,
					"layer %d: %v overlaps %v", li, layer[i], layer[j])
			}
		}
	}
}

func count(layers [][]Point) map[Point]int {
	seen := make(map[Point]int)
	for _, layer := range layers {
		for _, p := range layer {
			seen[p]++
		}
	}
	return seen
}

func TestBatch_Properties(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		radius float64
		seed   uint64
	}{
		{name: "sparse", n: 50, radius: 1, seed: 1},
		{name: "dense", n: 2000, radius: 2, seed: 2},
		{name: "large markers", n: 500, radius: 7.5, seed: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Generate(tt.n, 100, 100, tt.seed)
			layers := Batch(points, tt.radius)

			assertNoOverlap(t, layers, tt.radius)

			seen := count(layers)
			want := count([][]Point{points})
			assert.Equal(t, want, seen, "every point appears exactly once")
		})
	}
}

func TestBatch_EvenStripesFirst(t *testing.T) {
	// Stripes 0 and 1 (diameter 2) with one point each.
	points := []Point{{X: 5, Y: 2}, {X: 5, Y: 0}}
	layers := Batch(points, 1)

	require.Len(t, layers, 2)
	assert.Equal(t, []Point{{X: 5, Y: 0}}, layers[0])
	assert.Equal(t, []Point{{X: 5, Y: 2}}, layers[1])
}

func TestBatch_SparseEndGreedy(t *testing.T) {
	points := []Point{{X: 0}, {X: 1}, {X: 3}, {X: 4}}
	layers := Batch(points, 1)

	require.Len(t, layers, 2)
	assert.Equal(t, []Point{{X: 4}, {X: 1}}, layers[0])
	assert.Equal(t, []Point{{X: 3}, {X: 0}}, layers[1])
}

func TestBatch_NegativeCoordinates(t *testing.T) {
	points := []Point{{X: 0, Y: -3}, {X: 0, Y: -1}, {X: 0, Y: 1}, {X: 0, Y: 3}}
	layers := Batch(points, 1)

	assertNoOverlap(t, layers, 1)
	assert.Len(t, count(layers), 4)
}

func TestBatch_Degenerate(t *testing.T) {
	assert.Nil(t, Batch(nil, 1))

	points := []Point{{X: 1, Y: 1}, {X: 1, Y: 1}}
	layers := Batch(points, 0)
	require.Len(t, layers, 1)
	assert.Len(t, layers[0], 2)

	layers = Batch(points, 1)
	assert.Len(t, layers, 2, "coincident points never share a layer")
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(10, 100, 50, 42)
	b := Generate(10, 100, 50, 42)
	assert.Equal(t, a, b)
	for _, p := range a {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 100.0)
		assert.Less(t, p.Y, 50.0)
	}
}

func TestPath(t *testing.T) {
	assert.Empty(t, Path(nil, 1))
	assert.Equal(t, "M9 19L11 19L11 21L9 21Z", Path([]Point{{X: 9.6, Y: 20.2}}, 1))
	assert.Equal(t, 2, strings.Count(Path([]Point{{X: 1}, {X: 5}}, 1), "M"))
	assert.Equal(t, "M1234565 8L1234569 8L1234569 12L1234565 12Z", Path([]Point{{X: 1234567, Y: 10}}, 2),
		"large coordinates keep every digit")
	assert.Equal(t, "M-0.5 -0.5L0.5 -0.5L0.5 0.5L-0.5 0.5Z", Path([]Point{{}}, 0.5))
}

func TestRenderSVG(t *testing.T) {
	layers := [][]Point{{{X: 10, Y: 10}}, {{X: 11, Y: 10}}, nil}

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, layers, SVGOptions{Width: 100, Height: 50, Radius: 1, Title: "demo"}))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<title>demo</title>")
	assert.Equal(t, 2, strings.Count(out, "<path"))
	assert.Contains(t, out, `data-layer="1"`)

	err := RenderSVG(&buf, layers, SVGOptions{})
	assert.ErrorIs(t, err, ErrInvalidRadius)
}
