package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// PlacedUnit pairs a unit with the cell it stands on
type PlacedUnit struct {
	Unit     *Unit
	Position int
}

var _ core.Entity = (*PlacedUnit)(nil)

// GetID implements core.Entity
func (p *PlacedUnit) GetID() string {
	return p.Unit.ID
}

// GetType implements core.Entity
func (p *PlacedUnit) GetType() string {
	return string(p.Unit.Kind)
}

// Side returns the side of the placed unit
func (p *PlacedUnit) Side() Side {
	return p.Unit.Side()
}

// Board is the ordered set of units on the grid. At most one unit stands on
// a cell and no unit is placed twice.
type Board struct {
	cells int
	units []*PlacedUnit
}

// NewBoard creates an empty board of size×size cells
func NewBoard(size int) *Board {
	return &Board{cells: size * size}
}

// Place puts a unit on a free cell
func (b *Board) Place(u *Unit, position int) (*PlacedUnit, error) {
	if u == nil {
		return nil, errors.InvalidArgument("unit is required")
	}
	if position < 0 || position >= b.cells {
		return nil, errors.InvalidArgumentf("position %d is outside the board", position)
	}
	for _, p := range b.units {
		if p.Unit == u || p.Unit.ID == u.ID {
			return nil, errors.AlreadyExistsf("unit %s is already on the board", u.ID)
		}
		if p.Position == position {
			return nil, errors.AlreadyExistsf("cell %d is occupied by %s", position, p.Unit.ID)
		}
	}

	placed := &PlacedUnit{Unit: u, Position: position}
	b.units = append(b.units, placed)
	return placed, nil
}

// Move relocates a placed unit to a free cell
func (b *Board) Move(p *PlacedUnit, position int) error {
	if !b.Contains(p) {
		return errors.NotFound("unit is not on the board")
	}
	if position < 0 || position >= b.cells {
		return errors.InvalidArgumentf("position %d is outside the board", position)
	}
	if other := b.At(position); other != nil && other != p {
		return errors.AlreadyExistsf("cell %d is occupied by %s", position, other.Unit.ID)
	}
	p.Position = position
	return nil
}

// At returns the unit standing on a cell, or nil
func (b *Board) At(position int) *PlacedUnit {
	for _, p := range b.units {
		if p.Position == position {
			return p
		}
	}
	return nil
}

// Contains reports whether p is on the board
func (b *Board) Contains(p *PlacedUnit) bool {
	for _, u := range b.units {
		if u == p {
			return true
		}
	}
	return false
}

// Remove takes a unit off the board. It reports whether the unit was present.
func (b *Board) Remove(p *PlacedUnit) bool {
	for i, u := range b.units {
		if u == p {
			b.units = append(b.units[:i], b.units[i+1:]...)
			return true
		}
	}
	return false
}

// Units returns the placed units in placement order
func (b *Board) Units() []*PlacedUnit {
	out := make([]*PlacedUnit, len(b.units))
	copy(out, b.units)
	return out
}

// Side returns the placed units of one side
func (b *Board) Side(side Side) []*PlacedUnit {
	var out []*PlacedUnit
	for _, p := range b.units {
		if p.Side() == side {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many units of a side remain
func (b *Board) Count(side Side) int {
	return len(b.Side(side))
}

// Len returns the number of placed units
func (b *Board) Len() int {
	return len(b.units)
}

// Cells returns the number of cells on the board
func (b *Board) Cells() int {
	return b.cells
}

// Clear removes every unit
func (b *Board) Clear() {
	b.units = nil
}

// Clone deep-copies the board and its units
func (b *Board) Clone() *Board {
	c := &Board{cells: b.cells, units: make([]*PlacedUnit, len(b.units))}
	for i, p := range b.units {
		c.units[i] = &PlacedUnit{Unit: p.Unit.Clone(), Position: p.Position}
	}
	return c
}
