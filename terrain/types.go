package terrain

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for terrain construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("terrain: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("terrain: all rows must have the same length")
	// ErrHeightRange indicates a normalized height outside [0,1].
	ErrHeightRange = errors.New("terrain: normalized height must lie in [0,1]")
	// ErrNilImage indicates FromImage was given a nil image.
	ErrNilImage = errors.New("terrain: image is nil")
)

// Base step distances.
const (
	// Orthogonal is the base distance of a N/E/S/W step.
	Orthogonal = 1.0
	// Diagonal is the full-precision base distance of a diagonal step.
	Diagonal = math.Sqrt2
	// ReferenceDiagonal is the truncated diagonal used by older heightmap
	// tools; select it only when results must match their output bit for bit.
	ReferenceDiagonal = 1.414
)

// Cell is a grid position. Row grows downwards, Col grows to the right.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether o is one of the 8 Moore neighbors of c.
// A cell is not adjacent to itself.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if c == o {
		return false
	}
	return dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1
}

// Neighbor is a reachable cell together with the base distance of the step.
type Neighbor struct {
	Cell     Cell
	Distance float64
}

// Grid is an immutable rows×cols height field with values in [0,1],
// stored row-major.
type Grid struct {
	rows, cols int
	heights    []float64
}

// mooreOffsets lists (dRow, dCol) in the order N, NE, E, SE, S, SW, W, NW.
var mooreOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}
