package turn

import (
	"time"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
)

// UnitsPerSide is the size of each team at the start of a match
const UnitsPerSide = 2

// Color names a highlight
type Color string

const (
	ColorSelected Color = "yellow"
	ColorMove     Color = "green"
	ColorAttack   Color = "red"
)

// Cursor names a pointer style
type Cursor string

const (
	CursorAuto       Cursor = "auto"
	CursorPointer    Cursor = "pointer"
	CursorCrosshair  Cursor = "crosshair"
	CursorNotAllowed Cursor = "not-allowed"
)

// ActionKind is what a unit does on its turn
type ActionKind string

const (
	ActionMove   ActionKind = "move"
	ActionAttack ActionKind = "attack"
)

// Action moves the unit on From to To, or attacks the unit on To
type Action struct {
	Kind ActionKind
	From int
	To   int
}

// Domain events published on the bus
const (
	EventGameStarted  = "tactics.game.started"
	EventUnitSelected = "tactics.unit.selected"
	EventUnitMoved    = "tactics.unit.moved"
	EventUnitAttacked = "tactics.unit.attacked"
	EventUnitDied     = "tactics.unit.died"
	EventTurnChanged  = "tactics.turn.changed"
	EventGameOver     = "tactics.game.over"
)

// NewGameInput defines the request for starting a match
type NewGameInput struct {
	// Theme overrides the configured theme when set
	Theme entities.Theme
	// MaxLevel bounds unit levels to [0, MaxLevel); zero means 1
	MaxLevel int
}

// NewGameOutput defines the started match
type NewGameOutput struct {
	State *game.State
}

// SaveOutput defines the result of saving
type SaveOutput struct {
	GameID  string
	SavedAt time.Time
}

// LoadInput defines the request for loading a saved match
type LoadInput struct {
	GameID string
}

// LoadOutput defines the loaded match
type LoadOutput struct {
	State *game.State
}
