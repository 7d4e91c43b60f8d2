package cost

import (
	"math"

	"github.com/katalvlaran/terrainpath/terrain"
)

// Heuristic estimates the remaining cost from a cell to the goal.
// Implementations must never overestimate.
type Heuristic func(from, to terrain.Cell) float64

// Euclidean returns the straight-line distance heuristic. When diagonal is
// shorter than √2 the distance is scaled by diagonal/√2 so that it stays
// below the cheapest possible 8-connected route.
func Euclidean(diagonal float64) Heuristic {
	scale := math.Min(1, diagonal/math.Sqrt2)
	flat := Octile(diagonal)
	return func(from, to terrain.Cell) float64 {
		dr := float64(from.Row - to.Row)
		dc := float64(from.Col - to.Col)
		d := math.Sqrt(dr*dr + dc*dc)
		if scale < 1 {
			// clamp: rounding in the scaled value may exceed the pure-diagonal route by an ulp
			d = math.Min(d*scale, flat(from, to))
		}
		return d
	}
}

// Octile returns the exact flat-grid 8-connected distance:
// straight steps for the longer axis remainder plus diagonal steps for the shorter one.
func Octile(diagonal float64) Heuristic {
	return func(from, to terrain.Cell) float64 {
		dr := absInt(from.Row - to.Row)
		dc := absInt(from.Col - to.Col)
		lo, hi := dr, dc
		if lo > hi {
			lo, hi = hi, lo
		}
		return float64(hi-lo) + float64(lo)*diagonal
	}
}

// Zero always returns 0, turning A* into Dijkstra.
func Zero(_, _ terrain.Cell) float64 { return 0 }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
