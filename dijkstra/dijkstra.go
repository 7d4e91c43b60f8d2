// Package dijkstra computes exact minimum-cost fields over a terrain.Grid.
//
// Dijkstra expands cells in order of increasing distance from a source cell
// using a min-heap priority queue, relaxing the 8-connected edges weighted
// by cost.Model. The resulting field is the ground truth the A* engine is
// checked against (admissibility and optimality), and the record behind
// cost heat maps.
//
// Notes on implementation choices:
//
//   - We treat any edge with cost ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/terrainpath/cost"
	"github.com/katalvlaran/terrainpath/terrain"
)

// Dijkstra computes the minimum cost from Options.Source to every cell of grid.
//
// Returns:
//
//   - dist: row-major distances (math.Inf(1) if unreachable or beyond MaxDistance).
//   - prev: row-major predecessor index on one shortest path, -1 for the source
//     and unreachable cells.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. grid must be non-nil (ErrNilGrid).
//  3. Source must lie inside grid (ErrSourceOutOfBounds).
//  4. Alpha and Diagonal must form a valid cost.Model.
func Dijkstra(grid *terrain.Grid, opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if grid == nil {
		return nil, nil, ErrNilGrid
	}
	if !grid.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, cfg.Source)
	}
	model, err := cost.NewModel(grid, cfg.Alpha, cfg.Diagonal)
	if err != nil {
		return nil, nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 2) Prepare data structures.
	n := grid.Size()
	r := &runner{
		grid:    grid,
		model:   model,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// CostToGoal returns the exact remaining cost from every cell to goal.
func CostToGoal(grid *terrain.Grid, goal terrain.Cell, opts ...Option) ([]float64, error) {
	dist, _, err := Dijkstra(grid, append(opts, Source(goal))...)
	return dist, err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	grid    *terrain.Grid // read-only
	model   cost.Model
	options Options
	dist    []float64 // cell index → best distance from Source
	prev    []int     // cell index → predecessor index
	visited []bool    // distance finalized
	pq      nodePQ
	scratch []terrain.Neighbor
}

// init sets dist = +∞, prev = -1 and pushes Source with distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	src := r.grid.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its edges.
// Terminates when the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
	// Cells tentatively reached beyond the cap are not final.
	for i, d := range r.dist {
		if !r.visited[i] && !math.IsInf(d, 1) {
			r.dist[i] = math.Inf(1)
			r.prev[i] = -1
		}
	}
}

// relax examines every unvisited neighbor of u and records strictly shorter distances.
func (r *runner) relax(u int) {
	cu := r.grid.CellAt(u)
	r.scratch = r.grid.Neighbors(cu, r.options.Diagonal, nil, r.scratch[:0])
	for _, nb := range r.scratch {
		v := r.grid.Index(nb.Cell)
		if r.visited[v] {
			continue
		}
		w := r.model.EdgeCost(cu, nb.Cell, nb.Distance)
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	idx  int     // row-major cell index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
