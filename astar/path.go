package astar

import (
	"fmt"

	"github.com/katalvlaran/terrainpath/terrain"
)

// reconstruct follows prev from goalIdx back to a cell without predecessor,
// which must be startIdx, and returns the chain in start→goal order.
// A chain that stops elsewhere, leaves the table or loops is ErrReconstruction.
func reconstruct(grid *terrain.Grid, prev []int, startIdx, goalIdx int) (Path, error) {
	chain := []int{goalIdx}
	for at := goalIdx; prev[at] >= 0; at = prev[at] {
		p := prev[at]
		if p >= len(prev) {
			return nil, fmt.Errorf("%w: predecessor index %d of %v out of range",
				ErrReconstruction, p, grid.CellAt(at))
		}
		if len(chain) > len(prev) {
			return nil, fmt.Errorf("%w: cycle while walking back from %v",
				ErrReconstruction, grid.CellAt(goalIdx))
		}
		chain = append(chain, p)
	}
	if last := chain[len(chain)-1]; last != startIdx {
		return nil, fmt.Errorf("%w: chain from %v ends at %v, not at start %v",
			ErrReconstruction, grid.CellAt(goalIdx), grid.CellAt(last), grid.CellAt(startIdx))
	}

	path := make(Path, len(chain))
	for i, idx := range chain {
		path[len(chain)-1-i] = grid.CellAt(idx)
	}

	return path, nil
}

// Cost sums the edge costs along p with the engine's cost model.
func (p Path) Cost(e *Engine) float64 {
	return e.model.PathCost(p)
}

// Valid reports whether every cell of p is inside grid and each consecutive
// pair is 8-adjacent.
func (p Path) Valid(grid *terrain.Grid) bool {
	for i, c := range p {
		if !grid.InBounds(c) {
			return false
		}
		if i > 0 && !p[i-1].Adjacent(c) {
			return false
		}
	}
	return true
}
