// Package cost defines the traversal cost of a single terrain step and the
// lower-bound heuristics used to steer A* over a terrain.Grid.
//
// Edge cost:
//
//	EdgeCost(a, b, base) = base + Alpha·|height(a) − height(b)|
//
// base is 1 for an orthogonal step and the configured diagonal constant for a
// diagonal one. Alpha ≥ 0 weighs elevation change against lateral distance;
// Alpha = 0 is a plain 8-connected shortest path.
//
// Admissibility:
//
// every edge costs at least its base distance, so any heuristic bounded by
// the flat-grid distance never overestimates the remaining cost. Euclidean
// and Octile both satisfy this for every non-negative Alpha; a change to the
// cost formula must keep EdgeCost(a, b, base) ≥ base.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/terrainpath/terrain"
)

// DefaultAlpha is the elevation weight used when none is configured.
const DefaultAlpha = 100.0

var (
	// ErrNegativeAlpha indicates a negative elevation weight.
	ErrNegativeAlpha = errors.New("cost: alpha must be non-negative")

	// ErrBadAlpha indicates a NaN or infinite elevation weight.
	ErrBadAlpha = errors.New("cost: alpha must be finite")
	// ErrBadDiagonal indicates a diagonal step distance outside [1, 2].
	ErrBadDiagonal = errors.New("cost: diagonal distance must lie in [1,2]")
)

// Model combines lateral distance and elevation change into a step cost.
type Model struct {
	Grid     *terrain.Grid
	Alpha    float64 // elevation weight, finite and ≥ 0
	Diagonal float64 // base distance of a diagonal step
}

// NewModel returns a validated Model over grid.
func NewModel(grid *terrain.Grid, alpha, diagonal float64) (Model, error) {
	m := Model{Grid: grid, Alpha: alpha, Diagonal: diagonal}
	if err := m.Validate(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Validate checks Alpha and Diagonal.
func (m Model) Validate() error {
	if math.IsNaN(m.Alpha) || math.IsInf(m.Alpha, 0) {
		return fmt.Errorf("%w: %v", ErrBadAlpha, m.Alpha)
	}
	if m.Alpha < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeAlpha, m.Alpha)
	}
	if math.IsNaN(m.Diagonal) || m.Diagonal < 1 || m.Diagonal > 2 {
		return fmt.Errorf("%w: %v", ErrBadDiagonal, m.Diagonal)
	}
	return nil
}

// EdgeCost returns base + Alpha·|h(a) − h(b)|. Both cells must be in bounds.
func (m Model) EdgeCost(a, b terrain.Cell, base float64) float64 {
	return base + m.Alpha*math.Abs(m.Grid.HeightAt(a)-m.Grid.HeightAt(b))
}

// PathCost sums EdgeCost along consecutive cells, using Orthogonal or
// Diagonal as the base distance of each step.
func (m Model) PathCost(path []terrain.Cell) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		base := terrain.Orthogonal
		if path[i].Row != path[i-1].Row && path[i].Col != path[i-1].Col {
			base = m.Diagonal
		}
		total += m.EdgeCost(path[i-1], path[i], base)
	}
	return total
}
