package engine

import "github.com/KirkDiggler/rpg-tactics/internal/entities"

// GenerateTeamInput defines the request for drawing a roster
type GenerateTeamInput struct {
	// Allowed lists kinds in draw order; the i-th unit is Allowed[i]
	Allowed  []entities.Kind
	MaxLevel int
	Count    int
}

// GenerateTeamOutput defines the drawn roster
type GenerateTeamOutput struct {
	Units []*entities.Unit
}

// PlaceTeamInput defines the request for placing a roster
type PlaceTeamInput struct {
	Board *entities.Board
	Units []*entities.Unit
	// Columns holds the 0-based starting column for each unit
	Columns []int
}

// PlaceTeamOutput defines the placed units in roster order
type PlaceTeamOutput struct {
	Placed []*entities.PlacedUnit
}

// StartingColumns returns the 0-based columns a side deploys into: the two
// leftmost for the player and the two rightmost for the computer.
func StartingColumns(side entities.Side, size int) []int {
	if side == entities.SidePlayer {
		return []int{0, 1}
	}
	return []int{size - 2, size - 1}
}
