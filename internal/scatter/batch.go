// Package scatter groups scatter markers into non-overlapping paint layers so
// large point sets render as a handful of merged paths.
package scatter

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Point is a marker center in plot coordinates.
type Point struct {
	X float64
	Y float64
}

// Batch partitions points into layers in which no two square markers of the
// given radius overlap. Every input point lands in exactly one layer.
//
// Points are bucketed into horizontal stripes one marker high and sorted by
// x. Even stripes are drained first, one layer per pass, then odd stripes, so
// a pass never mixes neighbouring stripes. Within a stripe points are taken
// from the largest x down while they stay a full marker width apart.
func Batch(points []Point, radius float64) [][]Point {
	if len(points) == 0 {
		return nil
	}
	if radius <= 0 {
		return [][]Point{slices.Clone(points)}
	}

	diameter := 2 * radius
	stripes := make(map[int][]Point)
	for _, p := range points {
		k := int(math.Round(p.Y / diameter))
		stripes[k] = append(stripes[k], p)
	}

	keys := make([]int, 0, len(stripes))
	for k, s := range stripes {
		slices.SortStableFunc(s, func(a, b Point) int {
			switch {
			case a.X < b.X:
				return -1
			case a.X > b.X:
				return 1
			default:
				return 0
			}
		})
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var layers [][]Point
	for _, parity := range []int{0, 1} {
		for {
			layer := drainPass(stripes, keys, parity, diameter)
			if len(layer) == 0 {
				break
			}
			layers = append(layers, layer)
		}
	}
	return layers
}

// drainPass takes one layer's worth of points from every stripe of the given
// parity, removing them from their stripes.
func drainPass(stripes map[int][]Point, keys []int, parity int, diameter float64) []Point {
	var layer []Point
	for _, k := range keys {
		if k&1 != parity {
			continue
		}
		s := stripes[k]
		kept := s[:0:0]
		var lastX *float64
		for i := len(s) - 1; i >= 0; i-- {
			x := s[i].X
			if lastX == nil || *lastX-x >= diameter {
				layer = append(layer, s[i])
				lastX = &x
				continue
			}
			kept = append(kept, s[i])
		}
		slices.Reverse(kept)
		stripes[k] = kept
	}
	return layer
}

// Generate returns n points spread over a width by height plot, denser toward
// the origin.
func Generate(n int, width, height float64, seed uint64) []Point {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]Point, n)
	for i := range out {
		out[i] = Point{
			X: math.Pow(rng.Float64(), 2) * width,
			Y: math.Pow(rng.Float64(), 2) * height,
		}
	}
	return out
}
