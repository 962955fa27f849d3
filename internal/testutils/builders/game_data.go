// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
)

// GameDataBuilder provides a fluent interface for building saved games with
// units on chosen cells
type GameDataBuilder struct {
	data *games.GameData
}

// NewGameDataBuilder creates an 8×8 player-to-act save with no units
func NewGameDataBuilder(id string) *GameDataBuilder {
	return &GameDataBuilder{
		data: &games.GameData{
			ID:         id,
			BoardSize:  8,
			ActiveSide: string(entities.SidePlayer),
			Phase:      "in-progress",
			Turn:       1,
			Theme:      string(entities.ThemePrairie),
		},
	}
}

// WithUnit places a level 0 unit of the given kind on a cell
func (b *GameDataBuilder) WithUnit(kind entities.Kind, position int) *GameDataBuilder {
	id := fmt.Sprintf("%s-%d", kind, position)
	u, err := entities.NewUnit(id, kind, 0)
	if err != nil {
		panic(err)
	}
	return b.with(u, position)
}

// WithStats places a unit with explicit combat stats
func (b *GameDataBuilder) WithStats(kind entities.Kind, position int, attack, defence, health float64) *GameDataBuilder {
	id := fmt.Sprintf("%s-%d", kind, position)
	u, err := entities.NewUnit(id, kind, 0)
	if err != nil {
		panic(err)
	}
	u.Attack = attack
	u.Defence = defence
	u.Health = health
	return b.with(u, position)
}

// WithActiveSide sets whose turn it is
func (b *GameDataBuilder) WithActiveSide(side entities.Side) *GameDataBuilder {
	b.data.ActiveSide = string(side)
	return b
}

// WithPhase records the phase and winner the save claims
func (b *GameDataBuilder) WithPhase(phase game.Phase, winner entities.Side) *GameDataBuilder {
	b.data.Phase = string(phase)
	b.data.Winner = string(winner)
	return b
}

// WithTheme sets the theme
func (b *GameDataBuilder) WithTheme(theme entities.Theme) *GameDataBuilder {
	b.data.Theme = string(theme)
	return b
}

// Build returns the save
func (b *GameDataBuilder) Build() *games.GameData {
	return b.data
}

func (b *GameDataBuilder) with(u *entities.Unit, position int) *GameDataBuilder {
	b.data.Units = append(b.data.Units, games.UnitData{
		ID:          u.ID,
		Kind:        string(u.Kind),
		Level:       u.Level,
		Attack:      u.Attack,
		Defence:     u.Defence,
		Health:      u.Health,
		AttackRange: u.AttackRange,
		MoveRange:   u.MoveRange,
		Position:    position,
	})
	return b
}
