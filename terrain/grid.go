package terrain

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// New constructs a Grid from normalized heights.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs and
// ErrHeightRange if a value is NaN or outside [0,1].
// Complexity: O(R×C) time and memory.
func New(heights [][]float64) (*Grid, error) {
	rows, cols, err := shape(len(heights), func(r int) int { return len(heights[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, heights: make([]float64, rows*cols)}
	for r, row := range heights {
		for c, h := range row {
			if math.IsNaN(h) || h < 0 || h > 1 {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrHeightRange, h, r, c)
			}
			g.heights[r*cols+c] = h
		}
	}

	return g, nil
}

// FromIntensity builds a Grid from a single-channel 0–255 intensity source,
// mapping each value v to v/255.
func FromIntensity(pixels [][]uint8) (*Grid, error) {
	rows, cols, err := shape(len(pixels), func(r int) int { return len(pixels[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, heights: make([]float64, rows*cols)}
	for r, row := range pixels {
		for c, v := range row {
			g.heights[r*cols+c] = float64(v) / 255.0
		}
	}

	return g, nil
}

// FromImage builds a Grid from any image, reading it through the gray color
// model. Rows equal the image height and columns the image width.
func FromImage(img image.Image) (*Grid, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{rows: b.Dy(), cols: b.Dx(), heights: make([]float64, b.Dx()*b.Dy())}
	gray, _ := img.(*image.Gray)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v uint8
			if gray != nil {
				v = gray.GrayAt(x, y).Y
			} else {
				v = color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
			}
			g.heights[(y-b.Min.Y)*g.cols+(x-b.Min.X)] = float64(v) / 255.0
		}
	}

	return g, nil
}

// FromSamples rescales raw elevation samples (metres, feet, DEM units)
// linearly so the lowest sample maps to 0 and the highest to 1.
// A perfectly flat field maps to all zeros.
func FromSamples(samples [][]float64) (*Grid, error) {
	rows, cols, err := shape(len(samples), func(r int) int { return len(samples[r]) })
	if err != nil {
		return nil, err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for r, row := range samples {
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: sample %v at (%d,%d)", ErrHeightRange, v, r, c)
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	g := &Grid{rows: rows, cols: cols, heights: make([]float64, rows*cols)}
	span := hi - lo
	if span == 0 {
		return g, nil
	}
	for r, row := range samples {
		for c, v := range row {
			g.heights[r*cols+c] = (v - lo) / span
		}
	}

	return g, nil
}

// shape validates a non-empty rectangular input and returns its dimensions.
func shape(rows int, rowLen func(r int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return rows, cols, nil
}

// Rows returns the number of rows (image height).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (image width).
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols.
func (g *Grid) Size() int { return len(g.heights) }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// HeightAt returns the normalized height of c.
// Callers must bounds-check first; out-of-bounds cells panic.
func (g *Grid) HeightAt(c Cell) float64 {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("terrain: cell %v outside %dx%d grid", c, g.rows, g.cols))
	}
	return g.heights[c.Row*g.cols+c.Col]
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors appends to dst the in-bounds Moore neighbors of c in the order
// N, NE, E, SE, S, SW, W, NW, skipping any cell for which exclude returns true.
// Orthogonal steps carry distance Orthogonal, diagonal steps carry diagonal.
// A nil exclude keeps every in-bounds neighbor.
func (g *Grid) Neighbors(c Cell, diagonal float64, exclude func(Cell) bool, dst []Neighbor) []Neighbor {
	for _, d := range mooreOffsets {
		n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
		if !g.InBounds(n) {
			continue
		}
		if exclude != nil && exclude(n) {
			continue
		}
		dist := Orthogonal
		if d[0] != 0 && d[1] != 0 {
			dist = diagonal
		}
		dst = append(dst, Neighbor{Cell: n, Distance: dist})
	}

	return dst
}
