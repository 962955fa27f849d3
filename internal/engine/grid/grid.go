// Package grid maps linear cell indices on a square board to rows and
// columns and measures distances between cells.
package grid

import (
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// DefaultSize is the edge length of the standard board
const DefaultSize = 8

// Coord is a 1-based row and column
type Coord struct {
	Row int
	Col int
}

// Range is the result of measuring between two cells
type Range struct {
	Distance int
	Aligned  bool
}

// Geometry describes a Size×Size board
type Geometry struct {
	Size int
}

// New returns the geometry for a board with the given edge length
func New(size int) Geometry {
	if size <= 0 {
		panic(errors.OutOfRangef("board size must be positive, got %d", size))
	}
	return Geometry{Size: size}
}

// Cells returns the number of cells on the board
func (g Geometry) Cells() int {
	return g.Size * g.Size
}

// Contains reports whether index is a cell of the board
func (g Geometry) Contains(index int) bool {
	return index >= 0 && index < g.Cells()
}

func (g Geometry) mustContain(index int) {
	if !g.Contains(index) {
		panic(errors.OutOfRangef("cell %d is outside a %dx%d board", index, g.Size, g.Size))
	}
}

// CoordinatesOf returns the 1-based row and column of a cell
func (g Geometry) CoordinatesOf(index int) Coord {
	g.mustContain(index)
	return Coord{
		Row: index/g.Size + 1,
		Col: index%g.Size + 1,
	}
}

// IndexOf is the inverse of CoordinatesOf
func (g Geometry) IndexOf(c Coord) int {
	if c.Row < 1 || c.Row > g.Size || c.Col < 1 || c.Col > g.Size {
		panic(errors.OutOfRangef("row %d col %d is outside a %dx%d board", c.Row, c.Col, g.Size, g.Size))
	}
	return g.Size*(c.Row-1) + (c.Col - 1)
}

// Distance is the Chebyshev distance between two cells
func (g Geometry) Distance(a, b int) int {
	return g.Measure(a, b).Distance
}

// IsAligned reports whether two cells share a row, a column or a diagonal
func (g Geometry) IsAligned(a, b int) bool {
	return g.Measure(a, b).Aligned
}

// Measure computes distance and alignment in one pass
func (g Geometry) Measure(a, b int) Range {
	ca := g.CoordinatesOf(a)
	cb := g.CoordinatesOf(b)
	dr := abs(ca.Row - cb.Row)
	dc := abs(ca.Col - cb.Col)

	return Range{
		Distance: max(dr, dc),
		Aligned:  dr == 0 || dc == 0 || dr == dc,
	}
}

// Column returns the cells of a 0-based column, top to bottom
func (g Geometry) Column(col int) []int {
	if col < 0 || col >= g.Size {
		panic(errors.OutOfRangef("column %d is outside a %dx%d board", col, g.Size, g.Size))
	}
	cells := make([]int, g.Size)
	for row := range cells {
		cells[row] = row*g.Size + col
	}
	return cells
}

// Within returns every cell at distance 1..radius from the center, in index order
func (g Geometry) Within(center, radius int) []int {
	c := g.CoordinatesOf(center)
	var cells []int
	for row := max(1, c.Row-radius); row <= min(g.Size, c.Row+radius); row++ {
		for col := max(1, c.Col-radius); col <= min(g.Size, c.Col+radius); col++ {
			idx := g.IndexOf(Coord{Row: row, Col: col})
			if idx != center {
				cells = append(cells, idx)
			}
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
