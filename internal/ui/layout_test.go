package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
)

func TestLayoutOrigin(t *testing.T) {
	l := NewLayout(grid.New(8))

	x, y := l.Origin(0)
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	x, y = l.Origin(9)
	assert.Equal(t, 7, x)
	assert.Equal(t, 4, y)

	x, y = l.Origin(63)
	assert.Equal(t, 43, x)
	assert.Equal(t, 22, y)
}

func TestLayoutCellAt(t *testing.T) {
	l := NewLayout(grid.New(8))

	testCases := []struct {
		name  string
		x, y  int
		index int
		ok    bool
	}{
		{name: "first cell corner", x: 1, y: 1, index: 0, ok: true},
		{name: "inside first cell", x: 6, y: 3, index: 0, ok: true},
		{name: "second row second column", x: 8, y: 5, index: 9, ok: true},
		{name: "last cell", x: 48, y: 24, index: 63, ok: true},
		{name: "frame", x: 0, y: 0, ok: false},
		{name: "right of the board", x: 49, y: 1, ok: false},
		{name: "status line", x: 1, y: 25, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			index, ok := l.CellAt(tc.x, tc.y)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.index, index)
			}
		})
	}
}

func TestLayoutCellAtInvertsOrigin(t *testing.T) {
	geo := grid.New(8)
	l := NewLayout(geo)

	for i := 0; i < geo.Cells(); i++ {
		x, y := l.Origin(i)
		index, ok := l.CellAt(x+CellWidth-1, y+CellHeight-1)
		assert.True(t, ok)
		assert.Equal(t, i, index)
	}
}

func TestLayoutSize(t *testing.T) {
	l := NewLayout(grid.New(8))

	assert.Equal(t, 50, l.Width())
	assert.Equal(t, 26, l.StatusLine(0))
	assert.Equal(t, 28, l.StatusLine(2))
}
