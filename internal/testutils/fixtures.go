package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
)

// FixtureTime is the instant fixed clocks report in tests
var FixtureTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// CreateTestGameData returns a mid-game save with one unit per side
func CreateTestGameData(id string) *games.GameData {
	return &games.GameData{
		ID:         id,
		BoardSize:  8,
		ActiveSide: "player",
		Phase:      "in-progress",
		Turn:       3,
		Theme:      "desert",
		Units: []games.UnitData{
			{
				ID:          id + "-bowman",
				Kind:        "bowman",
				Level:       1,
				Attack:      25,
				Defence:     25,
				Health:      42.5,
				AttackRange: 2,
				MoveRange:   2,
				Position:    9,
			},
			{
				ID:          id + "-undead",
				Kind:        "undead",
				Level:       0,
				Attack:      40,
				Defence:     10,
				Health:      35,
				AttackRange: 1,
				MoveRange:   4,
				Position:    14,
			},
		},
	}
}
