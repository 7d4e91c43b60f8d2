// Package astar finds minimum-cost routes across a terrain.Grid where each
// step costs its lateral distance plus Alpha times the absolute height change.
//
// Overview:
//
//   - Engine is a resumable A* search: Begin(start, goal), then Step until
//     the state is StateFound or StateExhausted, then Result.
//     Run and Search drive the same loop to completion.
//   - The frontier is a binary min-heap on f = g + h with lazy decrease-key;
//     a per-cell finalized flag stops stale entries from being re-expanded.
//   - Equal f values are ordered by an explicit TieBreak policy
//     (insertion order by default), so identical inputs give identical paths.
//
// Heuristic:
//
//	The default is cost.Euclidean over the configured diagonal constant.
//	Every edge costs at least its base distance, so the estimate never
//	exceeds the true remaining cost and the first time the goal is popped
//	its cost is optimal.
//
// Stepping:
//
//	Step returns after a single expansion. Batch callers loop immediately;
//	interactive callers wait for an external trigger between calls. Abandoning
//	an Engine mid-search needs no cleanup.
//
// Instrumentation:
//
//	WithProgress(fn, k) calls fn every k expansions with a Snapshot holding a
//	copy of the record table and the partial path to the cell just popped.
//	Callback errors and panics are logged and never change the outcome.
//
// Errors (sentinel):
//
//   - ErrConfiguration: wraps ErrNilGrid, ErrEmptyGrid, ErrStartOutOfBounds,
//     ErrGoalOutOfBounds, ErrBadInterval, ErrBadTieBreak, ErrBadThreshold and
//     cost model errors. Raised before any search work.
//   - ErrNotStarted, ErrNotFinished: Result requested too early.
//   - ErrReconstruction: the predecessor chain broke; an internal fault,
//     distinct from an unreachable goal (Result.Found == false).
//
// Complexity:
//
//   - Time:  O(N log N) for N = rows×cols in the worst case.
//   - Space: O(N) for the record table plus up to 8N heap entries.
//
// Thread safety:
//
//   - The grid is only read. Each Engine owns its record table and frontier;
//     run independent searches on independent engines.
package astar
