// Package terrainpath finds the cheapest walking route between two cells of
// a height field, trading distance against climbing.
//
// What is inside?
//
//	A small, deterministic route finder for 8-connected elevation grids:
//		• terrain: heights normalized to [0,1], bounds, Moore neighbors
//		• cost: edge cost = distance + Alpha·|Δheight|, admissible heuristics
//		• astar: resumable A* engine with step-through and progress snapshots
//		• dijkstra: exact cost fields, the ground truth for A*
//		• session: start/goal selection and stepping, as an external state machine
//		• config: HIKEPATH_* environment and .env settings
//
// Layout:
//
//	terrain/       Grid, Cell, Neighbor; construction from rows, pixels or images
//	cost/          Model (EdgeCost, PathCost), Euclidean / Octile / Zero heuristics
//	astar/         Engine (Begin, Step, Run, Result), Search, tie-break policies
//	dijkstra/      Dijkstra, CostToGoal
//	session/       Session (Select, Advance, Finish)
//	config/        Load, EngineOptions
//	cmd/hikepath/  command-line driver for PNG/JPEG heightmaps
//
// Quick ASCII example (Alpha = 100, center cell raised):
//
//	S · ·        S → · ·
//	· ▲ ·   ⇒    ·  ▲  ↘
//	· · G        · ·   G
//
// The route skirts the peak: cost 2 + √2 instead of 2√2 + 200.
//
//	go install github.com/katalvlaran/terrainpath/cmd/hikepath@latest
package terrainpath
