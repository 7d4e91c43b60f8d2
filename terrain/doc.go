// Package terrain models a 2D elevation field as an 8-connected grid of cells.
//
// What:
//
//   - Grid holds an immutable rows×cols field of normalized heights in [0,1].
//   - Grids are built from 0–255 intensities, any image.Image (through the
//     gray color model) or raw elevation samples rescaled by min/max.
//   - Neighbors enumerates the Moore neighborhood of a cell with the base
//     step distance of each move (1 for orthogonal, a diagonal constant otherwise).
//
// Why:
//
//   - Hiking and vehicle routing over heightmaps.
//   - Any search that needs cheap, bounds-checked access to a height field.
//
// Complexity:
//
//   - Construction: O(R×C) time and memory (inputs are deep-copied).
//   - InBounds, HeightAt, Index, CellAt: O(1).
//   - Neighbors: O(1), at most 8 candidates.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrHeightRange: a normalized height lies outside [0,1] or is NaN.
//   - ErrNilImage: FromImage received a nil image.
package terrain
