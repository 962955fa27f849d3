// Package engine wraps the rpg toolkit dice with the tactics rules: team
// generation, starting placement, range measurement and damage.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-tactics/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// Engine provides game mechanics and rules calculations
type Engine interface {
	// Geometry returns the board the rules are measured on
	Geometry() grid.Geometry

	// GenerateTeam draws a roster of units with random levels
	GenerateTeam(ctx context.Context, input *GenerateTeamInput) (*GenerateTeamOutput, error)

	// PlaceTeam puts each unit on a random cell of its starting column
	PlaceTeam(ctx context.Context, input *PlaceTeamInput) (*PlaceTeamOutput, error)

	// Measure returns distance and alignment between two cells
	Measure(from, to int) grid.Range

	// Damage returns the damage an attacker deals to a defender
	Damage(attacker, defender *entities.Unit) float64
}
