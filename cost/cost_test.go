package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

func mustGrid(t *testing.T, heights [][]float64) *terrain.Grid {
	t.Helper()
	g, err := terrain.New(heights)
	require.NoError(t, err)
	return g
}

// TestNewModel_Validation rejects negative or non-finite alpha and absurd diagonals.
func TestNewModel_Validation(t *testing.T) {
	g := mustGrid(t, [][]float64{{0}})

	_, err := cost.NewModel(g, -1, terrain.Diagonal)
	assert.ErrorIs(t, err, cost.ErrNegativeAlpha)
	for _, alpha := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = cost.NewModel(g, alpha, terrain.Diagonal)
		assert.ErrorIs(t, err, cost.ErrBadAlpha, "alpha %v", alpha)
	}
	_, err = cost.NewModel(g, 1, 0.5)
	assert.ErrorIs(t, err, cost.ErrBadDiagonal)

	m, err := cost.NewModel(g, 0, terrain.ReferenceDiagonal)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Alpha)
}

// TestEdgeCost checks base distance plus weighted elevation delta.
func TestEdgeCost(t *testing.T) {
	g := mustGrid(t, [][]float64{{0.2, 0.7}, {0.2, 0.2}})
	a, b := terrain.Cell{Row: 0, Col: 0}, terrain.Cell{Row: 0, Col: 1}

	m := cost.Model{Grid: g, Alpha: 10, Diagonal: terrain.Diagonal}
	assert.InDelta(t, 6.0, m.EdgeCost(a, b, 1), 1e-12)
	assert.InDelta(t, 6.0, m.EdgeCost(b, a, 1), 1e-12, "cost must be symmetric")

	flat := cost.Model{Grid: g, Alpha: 0, Diagonal: terrain.Diagonal}
	assert.Equal(t, terrain.Diagonal, flat.EdgeCost(a, terrain.Cell{Row: 1, Col: 1}, terrain.Diagonal))
}

// TestPathCost sums orthogonal and diagonal steps.
func TestPathCost(t *testing.T) {
	g := mustGrid(t, [][]float64{{0, 0}, {0, 1}})
	m := cost.Model{Grid: g, Alpha: 2, Diagonal: terrain.ReferenceDiagonal}

	path := []terrain.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 1}}
	assert.InDelta(t, 1+1+2, m.PathCost(path), 1e-12)
	assert.InDelta(t, 1.414+2, m.PathCost([]terrain.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}), 1e-12)
	assert.Equal(t, 0.0, m.PathCost([]terrain.Cell{{Row: 0, Col: 0}}))
}

// TestHeuristics_Values checks the three heuristics on a 3-4-5 offset.
func TestHeuristics_Values(t *testing.T) {
	from, to := terrain.Cell{Row: 0, Col: 0}, terrain.Cell{Row: 3, Col: 4}

	assert.InDelta(t, 5.0, cost.Euclidean(terrain.Diagonal)(from, to), 1e-12)
	assert.InDelta(t, 1+3*math.Sqrt2, cost.Octile(terrain.Diagonal)(from, to), 1e-12)
	assert.Equal(t, 0.0, cost.Zero(from, to))
	assert.Equal(t, 0.0, cost.Euclidean(terrain.Diagonal)(to, to))
}

// TestEuclidean_TruncatedDiagonalStaysAdmissible makes sure the straight-line
// estimate never exceeds the flat-grid route when the diagonal is 1.414.
func TestEuclidean_TruncatedDiagonalStaysAdmissible(t *testing.T) {
	h := cost.Euclidean(terrain.ReferenceDiagonal)
	flat := cost.Octile(terrain.ReferenceDiagonal)
	origin := terrain.Cell{}
	for r := 0; r < 30; r++ {
		for c := 0; c < 30; c++ {
			cell := terrain.Cell{Row: r, Col: c}
			if h(origin, cell) > flat(origin, cell) {
				t.Fatalf("Euclidean(%v)=%v exceeds flat route %v", cell, h(origin, cell), flat(origin, cell))
			}
		}
	}
	// Pure straight-line distance would overestimate a single diagonal step.
	assert.Greater(t, math.Sqrt2, terrain.ReferenceDiagonal)
}
