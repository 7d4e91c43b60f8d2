package astar

import (
	"errors"
	"io"
	"log"
	"math"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Sentinel errors returned by the engine.
var (
	// ErrConfiguration wraps every error raised before search work begins:
	// nil or empty grid, invalid options, out-of-bounds endpoints.
	ErrConfiguration = errors.New("astar: invalid configuration")

	// ErrNilGrid indicates a nil *terrain.Grid was passed to NewEngine.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrEmptyGrid indicates a grid without cells.
	ErrEmptyGrid = errors.New("astar: grid has no cells")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: start cell out of bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("astar: goal cell out of bounds")

	// ErrBadInterval indicates a non-positive progress interval.
	ErrBadInterval = errors.New("astar: progress interval must be positive")

	// ErrBadTieBreak indicates an unknown tie-break policy.
	ErrBadTieBreak = errors.New("astar: unknown tie-break policy")

	// ErrBadThreshold indicates a non-positive impassable threshold.
	ErrBadThreshold = errors.New("astar: impassable threshold must be positive")

	// ErrNotStarted indicates Result was requested before Begin.
	ErrNotStarted = errors.New("astar: search not started")

	// ErrNotFinished indicates Result was requested while the search is still running.
	ErrNotFinished = errors.New("astar: search has not reached a terminal state")

	// ErrReconstruction indicates the predecessor chain broke before reaching
	// the start. It is an internal-consistency fault, never a "no path" answer.
	ErrReconstruction = errors.New("astar: broken predecessor chain")
)

// State is the engine lifecycle: Init → Running → {Found, Exhausted}.
type State int

const (
	// StateInit means Begin has not been called yet.
	StateInit State = iota
	// StateRunning means the frontier may still hold the goal.
	StateRunning
	// StateFound means the goal was popped; its cost is final.
	StateFound
	// StateExhausted means the frontier emptied (or the expansion cap hit)
	// without reaching the goal.
	StateExhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Terminal reports whether s is Found or Exhausted.
func (s State) Terminal() bool { return s == StateFound || s == StateExhausted }

// TieBreak selects which of several frontier entries with equal f is popped first.
type TieBreak int

const (
	// TieBreakFIFO pops the entry pushed earliest (insertion order). Default.
	TieBreakFIFO TieBreak = iota
	// TieBreakLIFO pops the entry pushed most recently.
	TieBreakLIFO
	// TieBreakLowestH pops the entry closest to the goal, then insertion order.
	TieBreakLowestH
)

// String implements fmt.Stringer.
func (t TieBreak) String() string {
	switch t {
	case TieBreakFIFO:
		return "fifo"
	case TieBreakLIFO:
		return "lifo"
	case TieBreakLowestH:
		return "lowest-h"
	}
	return "unknown"
}

// ParseTieBreak maps "fifo", "lifo" or "lowest-h" to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch s {
	case "fifo", "":
		return TieBreakFIFO, nil
	case "lifo":
		return TieBreakLIFO, nil
	case "lowest-h":
		return TieBreakLowestH, nil
	}
	return 0, ErrBadTieBreak
}

// Path is an ordered sequence of cells from start to goal inclusive.
type Path []terrain.Cell

// Result is the outcome of a finished search. When Found is false Path is
// nil and Cost is +Inf: the goal is unreachable, or, if Capped is set, the
// search hit MaxExpansions before deciding.
type Result struct {
	Path     Path
	Cost     float64 // bestCost[goal]
	Found    bool
	Capped   bool // stopped by MaxExpansions
	Expanded int  // cells finalized
	Pushed   int  // frontier insertions, including the start
}

// Snapshot is the read-only view handed to a ProgressFunc.
// Costs is a copy of the record table in row-major order (+Inf = unreached).
type Snapshot struct {
	Expanded int
	Current  terrain.Cell
	Partial  Path
	Costs    []float64
	Rows     int
	Cols     int
}

// ProgressFunc observes the search every Options.ProgressEvery expansions.
// Stale frontier pops are skipped without counting; only cells finalized
// by Step advance the interval.
// Errors and panics are recovered and logged; they never alter the search.
type ProgressFunc func(Snapshot) error

// Options configures an Engine.
//
// Alpha         – elevation weight (≥ 0).
// Diagonal      – base distance of a diagonal step (terrain.Diagonal or terrain.ReferenceDiagonal).
// Heuristic     – remaining-cost estimate; nil selects cost.Euclidean(Diagonal).
// TieBreak      – ordering among equal-f frontier entries.
// Progress      – optional instrumentation callback.
// ProgressEvery – callback interval in expansions (> 0); stale pops do not count.
// Impassable    – edges with cost ≥ this value are never traversed.
// MaxExpansions – expansion cap; 0 means unlimited. Reaching it ends in StateExhausted.
// Logger        – destination for diagnostics.
type Options struct {
	Alpha         float64
	Diagonal      float64
	Heuristic     cost.Heuristic
	TieBreak      TieBreak
	Progress      ProgressFunc
	ProgressEvery int
	Impassable    float64
	MaxExpansions int
	Logger        *log.Logger
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the engine defaults:
//   - Alpha:         cost.DefaultAlpha (100).
//   - Diagonal:      terrain.Diagonal (full-precision √2).
//   - Heuristic:     nil (Euclidean over Diagonal).
//   - TieBreak:      TieBreakFIFO.
//   - ProgressEvery: 100.
//   - Impassable:    +Inf (every edge traversable).
//   - Logger:        discards output.
func DefaultOptions() Options {
	return Options{
		Alpha:         cost.DefaultAlpha,
		Diagonal:      terrain.Diagonal,
		TieBreak:      TieBreakFIFO,
		ProgressEvery: 100,
		Impassable:    math.Inf(1),
		Logger:        log.New(io.Discard, "", 0),
	}
}

// WithAlpha sets the elevation weight.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithDiagonal sets the diagonal step distance used by neighbors and heuristic.
func WithDiagonal(d float64) Option {
	return func(o *Options) { o.Diagonal = d }
}

// WithHeuristic replaces the default Euclidean heuristic. The replacement
// must be admissible for optimal paths.
func WithHeuristic(h cost.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithTieBreak selects the equal-f ordering policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) { o.TieBreak = t }
}

// WithProgress installs fn, called every `every` expansions. An expansion is
// a finalized cell; stale frontier entries discarded on pop are not counted,
// so the goal expansion is the last one that can trigger fn.
func WithProgress(fn ProgressFunc, every int) Option {
	return func(o *Options) {
		o.Progress = fn
		o.ProgressEvery = every
	}
}

// WithImpassableAbove treats edges whose cost is ≥ threshold as walls.
func WithImpassableAbove(threshold float64) Option {
	return func(o *Options) { o.Impassable = threshold }
}

// WithMaxExpansions caps the number of finalized cells.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithLogger sets the diagnostics logger. nil keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
