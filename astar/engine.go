package astar

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Engine runs one A* search at a time over a read-only terrain.Grid.
// The record table (best cost, predecessor, finalized flag) and the frontier
// are created by Begin and owned exclusively by the Engine; independent
// concurrent searches need one Engine each. An Engine is not safe for
// concurrent use.
type Engine struct {
	grid  *terrain.Grid
	opts  Options
	model cost.Model
	h     cost.Heuristic

	state             State
	start, goal       terrain.Cell
	startIdx, goalIdx int

	best   []float64 // row-major g values; +Inf until reached
	prev   []int     // row-major predecessor index; -1 = none
	closed []bool    // finalized cells
	pq     frontier

	seq      uint64
	expanded int
	pushed   int
	capped   bool

	exclude func(terrain.Cell) bool
	scratch []terrain.Neighbor
}

// NewEngine validates grid and options and returns an Engine in StateInit.
//
// Validation (in order), every failure wrapping ErrConfiguration:
//  1. grid must be non-nil (ErrNilGrid) and non-empty (ErrEmptyGrid).
//  2. Alpha finite and ≥ 0, Diagonal in [1,2] (cost.ErrBadAlpha,
//     cost.ErrNegativeAlpha, cost.ErrBadDiagonal).
//  3. ProgressEvery > 0 (ErrBadInterval).
//  4. TieBreak is a known policy (ErrBadTieBreak).
//  5. Impassable > 0 (ErrBadThreshold).
func NewEngine(grid *terrain.Grid, opts ...Option) (*Engine, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNilGrid)
	}
	if grid.Size() == 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrEmptyGrid)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	model, err := cost.NewModel(grid, cfg.Alpha, cfg.Diagonal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if cfg.ProgressEvery <= 0 {
		return nil, fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrBadInterval, cfg.ProgressEvery)
	}
	if cfg.TieBreak < TieBreakFIFO || cfg.TieBreak > TieBreakLowestH {
		return nil, fmt.Errorf("%w: %w: %d", ErrConfiguration, ErrBadTieBreak, cfg.TieBreak)
	}
	if math.IsNaN(cfg.Impassable) || cfg.Impassable <= 0 {
		return nil, fmt.Errorf("%w: %w: %v", ErrConfiguration, ErrBadThreshold, cfg.Impassable)
	}
	if cfg.MaxExpansions < 0 {
		cfg.MaxExpansions = 0
	}

	h := cfg.Heuristic
	if h == nil {
		h = cost.Euclidean(cfg.Diagonal)
	}

	e := &Engine{
		grid:  grid,
		opts:  cfg,
		model: model,
		h:     h,
		state: StateInit,
	}
	e.exclude = e.isClosed

	return e, nil
}

// Begin validates the endpoints and resets the record table and frontier:
// best[start] = 0, no predecessor, frontier = {(h(start), start)}.
// Calling Begin again discards any previous search.
func (e *Engine) Begin(start, goal terrain.Cell) error {
	if !e.grid.InBounds(start) {
		return fmt.Errorf("%w: %w: %v outside %dx%d grid",
			ErrConfiguration, ErrStartOutOfBounds, start, e.grid.Rows(), e.grid.Cols())
	}
	if !e.grid.InBounds(goal) {
		return fmt.Errorf("%w: %w: %v outside %dx%d grid",
			ErrConfiguration, ErrGoalOutOfBounds, goal, e.grid.Rows(), e.grid.Cols())
	}

	n := e.grid.Size()
	e.best = make([]float64, n)
	e.prev = make([]int, n)
	e.closed = make([]bool, n)
	for i := range e.best {
		e.best[i] = math.Inf(1)
		e.prev[i] = -1
	}
	e.pq = frontier{items: make([]entry, 0, 64), policy: e.opts.TieBreak}
	e.seq, e.expanded, e.pushed = 0, 0, 0
	e.capped = false

	e.start, e.goal = start, goal
	e.startIdx, e.goalIdx = e.grid.Index(start), e.grid.Index(goal)
	e.best[e.startIdx] = 0
	e.push(e.startIdx, 0, e.h(start, goal))
	e.state = StateRunning

	e.opts.Logger.Printf("[SEARCH] [INFO] begin start=%v goal=%v grid=%dx%d alpha=%g tie=%v",
		start, goal, e.grid.Rows(), e.grid.Cols(), e.opts.Alpha, e.opts.TieBreak)

	return nil
}

// Step performs one expansion and returns the resulting state.
//
//  1. Pop the minimum-f entry; entries for finalized cells or with a g above
//     the recorded best cost are stale and skipped.
//  2. If the popped cell is the goal, the state becomes StateFound.
//  3. Otherwise relax every non-finalized neighbor n:
//     candidate = best[cur] + EdgeCost(cur, n); a strictly smaller candidate
//     updates best[n], prev[n] and pushes (candidate + h(n), n).
//
// An empty frontier yields StateExhausted. Terminal states are sticky and
// Step before Begin returns StateInit.
func (e *Engine) Step() State {
	if e.state != StateRunning {
		return e.state
	}
	if e.opts.MaxExpansions > 0 && e.expanded >= e.opts.MaxExpansions {
		e.capped = true
		e.finish(StateExhausted)
		return e.state
	}

	for e.pq.Len() > 0 {
		it := heap.Pop(&e.pq).(entry)
		if e.closed[it.idx] || it.g > e.best[it.idx] {
			continue
		}

		e.closed[it.idx] = true
		e.expanded++
		cur := e.grid.CellAt(it.idx)
		e.observe(cur)

		if it.idx == e.goalIdx {
			e.finish(StateFound)
			return e.state
		}
		e.relax(cur, it.idx)

		return e.state
	}

	e.finish(StateExhausted)
	return e.state
}

// Run steps until the search reaches a terminal state.
func (e *Engine) Run() State {
	for e.state == StateRunning {
		e.Step()
	}
	return e.state
}

// Result returns the outcome of a finished search. An exhausted search is a
// valid answer (Found=false, nil Path, +Inf Cost), not an error; Capped
// tells a search stopped by MaxExpansions apart from an unreachable goal.
func (e *Engine) Result() (Result, error) {
	switch e.state {
	case StateInit:
		return Result{}, ErrNotStarted
	case StateRunning:
		return Result{}, ErrNotFinished
	}

	res := Result{Expanded: e.expanded, Pushed: e.pushed, Cost: math.Inf(1), Capped: e.capped}
	if e.state == StateExhausted {
		return res, nil
	}

	path, err := e.PathTo(e.goal)
	if err != nil {
		return res, err
	}
	res.Path = path
	res.Cost = e.best[e.goalIdx]
	res.Found = true

	return res, nil
}

// PathTo reconstructs the current best path from the start to c.
func (e *Engine) PathTo(c terrain.Cell) (Path, error) {
	if e.state == StateInit {
		return nil, ErrNotStarted
	}
	if !e.grid.InBounds(c) {
		return nil, fmt.Errorf("%w: %v outside grid", ErrReconstruction, c)
	}
	return reconstruct(e.grid, e.prev, e.startIdx, e.grid.Index(c))
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Start returns the start cell of the current search.
func (e *Engine) Start() terrain.Cell { return e.start }

// Goal returns the goal cell of the current search.
func (e *Engine) Goal() terrain.Cell { return e.goal }

// Grid returns the terrain the engine searches.
func (e *Engine) Grid() *terrain.Grid { return e.grid }

// Model returns the edge cost model in use.
func (e *Engine) Model() cost.Model { return e.model }

// Heuristic returns the remaining-cost estimate in use.
func (e *Engine) Heuristic() cost.Heuristic { return e.h }

// Expanded returns the number of finalized cells so far.
func (e *Engine) Expanded() int { return e.expanded }

// FrontierLen returns the number of queued entries, stale ones included.
func (e *Engine) FrontierLen() int { return e.pq.Len() }

// BestCost returns the recorded g of c; +Inf when unreached, out of bounds or before Begin.
func (e *Engine) BestCost(c terrain.Cell) float64 {
	if e.best == nil || !e.grid.InBounds(c) {
		return math.Inf(1)
	}
	return e.best[e.grid.Index(c)]
}

// Predecessor returns the cell c was reached from, if any.
func (e *Engine) Predecessor(c terrain.Cell) (terrain.Cell, bool) {
	if e.prev == nil || !e.grid.InBounds(c) {
		return terrain.Cell{}, false
	}
	p := e.prev[e.grid.Index(c)]
	if p < 0 {
		return terrain.Cell{}, false
	}
	return e.grid.CellAt(p), true
}

// Finalized reports whether c has been expanded.
func (e *Engine) Finalized(c terrain.Cell) bool {
	return e.closed != nil && e.grid.InBounds(c) && e.closed[e.grid.Index(c)]
}

// relax updates the neighbors of cur, whose cost is final.
func (e *Engine) relax(cur terrain.Cell, curIdx int) {
	g := e.best[curIdx]
	e.scratch = e.grid.Neighbors(cur, e.opts.Diagonal, e.exclude, e.scratch[:0])
	for _, n := range e.scratch {
		w := e.model.EdgeCost(cur, n.Cell, n.Distance)
		if w >= e.opts.Impassable {
			continue
		}
		ni := e.grid.Index(n.Cell)
		candidate := g + w
		// strictly better only: equal costs keep the first predecessor
		if candidate >= e.best[ni] {
			continue
		}
		e.best[ni] = candidate
		e.prev[ni] = curIdx
		e.push(ni, candidate, e.h(n.Cell, e.goal))
	}
}

func (e *Engine) push(idx int, g, h float64) {
	heap.Push(&e.pq, entry{f: g + h, g: g, h: h, idx: idx, seq: e.seq})
	e.seq++
	e.pushed++
}

func (e *Engine) isClosed(c terrain.Cell) bool {
	return e.closed[e.grid.Index(c)]
}

func (e *Engine) finish(s State) {
	e.state = s
	e.opts.Logger.Printf("[SEARCH] [INFO] %v after %d expansions, %d pushes, cost=%g",
		s, e.expanded, e.pushed, e.best[e.goalIdx])
}

// observe hands a snapshot to the progress callback every ProgressEvery
// expansions. Callback failures are logged and swallowed.
func (e *Engine) observe(cur terrain.Cell) {
	if e.opts.Progress == nil || e.expanded%e.opts.ProgressEvery != 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			e.opts.Logger.Printf("[SEARCH] [ERROR] progress callback panicked: %v", r)
		}
	}()

	partial, err := e.PathTo(cur)
	if err != nil {
		e.opts.Logger.Printf("[SEARCH] [ERROR] partial path to %v: %v", cur, err)
	}
	snap := Snapshot{
		Expanded: e.expanded,
		Current:  cur,
		Partial:  partial,
		Costs:    slices.Clone(e.best),
		Rows:     e.grid.Rows(),
		Cols:     e.grid.Cols(),
	}
	if err := e.opts.Progress(snap); err != nil {
		e.opts.Logger.Printf("[SEARCH] [ERROR] progress callback: %v", err)
	}
}

// Search runs a complete search from start to goal.
// Configuration problems return an error wrapping ErrConfiguration;
// an unreachable goal returns Result{Found: false} and a nil error.
func Search(grid *terrain.Grid, start, goal terrain.Cell, opts ...Option) (Result, error) {
	e, err := NewEngine(grid, opts...)
	if err != nil {
		return Result{}, err
	}
	if err := e.Begin(start, goal); err != nil {
		return Result{}, err
	}
	e.Run()

	return e.Result()
}
