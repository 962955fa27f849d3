package ui

import (
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
)

const (
	// CellWidth and CellHeight are the terminal footprint of one board cell
	CellWidth  = 6
	CellHeight = 3

	boardLeft = 1
	boardTop  = 1
)

// Layout maps board cells to terminal coordinates. The board sits inside a
// one-character frame with the status lines below it.
type Layout struct {
	geo grid.Geometry
}

// NewLayout returns the layout for a board
func NewLayout(geo grid.Geometry) Layout {
	return Layout{geo: geo}
}

// Origin returns the top-left terminal position of a cell
func (l Layout) Origin(index int) (x, y int) {
	c := l.geo.CoordinatesOf(index)
	return boardLeft + (c.Col-1)*CellWidth, boardTop + (c.Row-1)*CellHeight
}

// CellAt returns the cell under a terminal position
func (l Layout) CellAt(x, y int) (int, bool) {
	if x < boardLeft || y < boardTop {
		return 0, false
	}
	col := (x-boardLeft)/CellWidth + 1
	row := (y-boardTop)/CellHeight + 1
	if col > l.geo.Size || row > l.geo.Size {
		return 0, false
	}
	return l.geo.IndexOf(grid.Coord{Row: row, Col: col}), true
}

// Width is the framed board width
func (l Layout) Width() int {
	return l.geo.Size*CellWidth + 2*boardLeft
}

// StatusLine returns the row of the n-th line below the board
func (l Layout) StatusLine(n int) int {
	return boardTop + l.geo.Size*CellHeight + 1 + n
}
