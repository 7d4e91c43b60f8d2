// Package dijkstra defines configuration options and sentinel errors
// for exact single-source cost fields over a terrain.Grid.
//
// Complexity:
//
//	– Time:  O(N log N) where N = rows×cols (at most 8 edges per cell).
//	– Space: O(N) for distances, predecessors and visited flags, plus
//	  up to 8N heap entries under lazy decrease-key.
//
// Options:
//
//	– Source:           cell the distances are measured from (required).
//	– Alpha, Diagonal:  the same cost model the A* engine uses.
//	– MaxDistance:      cells farther than this stay at +Inf.
//	– InfEdgeThreshold: edges with cost ≥ threshold are impassable.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *terrain.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           terrain.Cell // cell distances are measured from
	hasSource        bool
	Alpha            float64 // elevation weight
	Diagonal         float64 // diagonal step distance
	MaxDistance      float64 // maximum distance to explore
	InfEdgeThreshold float64 // cost threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the cell distances are measured from.
// Because terrain edge costs are symmetric, the field computed from a goal
// is also the exact remaining cost from every cell to that goal.
func Source(c terrain.Cell) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithAlpha sets the elevation weight.
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		o.Alpha = alpha
	}
}

// WithDiagonal sets the diagonal step distance.
func WithDiagonal(d float64) Option {
	return func(o *Options) {
		o.Diagonal = d
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges whose cost is ≥ threshold as walls.
// Must pass a positive value; zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// matching the A* engine: Alpha = cost.DefaultAlpha, Diagonal = √2,
// no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		Alpha:            cost.DefaultAlpha,
		Diagonal:         terrain.Diagonal,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
