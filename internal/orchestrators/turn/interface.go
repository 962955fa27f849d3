// Package turn implements the hover and click state machine that drives a
// match: selection, movement, attacks, the computer's reply and game over.
package turn

//go:generate mockgen -destination=mock/mock_turn.go -package=turnmock github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn Controller,Renderer,Strategy

import (
	"context"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
)

// Controller receives input events for one match. All methods are safe for
// concurrent use; state changes are serialised internally.
type Controller interface {
	// NewGame resets the board and deploys two fresh teams
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// CellEnter interprets the hovered cell and shows affordances
	CellEnter(ctx context.Context, index int) error

	// CellLeave removes the affordances of a cell
	CellLeave(ctx context.Context, index int) error

	// CellClick performs the pending action for a cell.
	// Returns errors.PermissionDenied for selecting an opposing unit
	// Returns errors.OutOfRange for a move or attack beyond range
	CellClick(ctx context.Context, index int) error

	// Save writes the match to the configured repository
	Save(ctx context.Context) (*SaveOutput, error)

	// Load replaces the match with a saved one
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Snapshot returns a copy of the current state
	Snapshot() *game.State

	// Wait blocks until no damage acknowledgment is outstanding
	Wait()
}

// Renderer is the display surface. Calls arrive while the controller holds
// its lock, so implementations must not call back into the controller.
type Renderer interface {
	DrawBoard(theme entities.Theme)
	RedrawUnits(units []*entities.PlacedUnit)
	HighlightCell(index int, color Color)
	ClearHighlight(index int)
	SetCursor(cursor Cursor)
	ShowTooltip(text string, index int)
	HideTooltip(index int)

	// ShowDamage displays a damage effect and returns a channel closed once
	// the effect is done. A nil channel counts as already done.
	ShowDamage(ctx context.Context, index int, amount float64) <-chan struct{}

	ShowUserError(message string)
	ShowMessage(message string)
}

// Strategy decides the computer's action. It receives a snapshot it may
// freely inspect; the returned action is checked against the same rules as
// the player's. A nil action passes the turn.
type Strategy interface {
	TakeTurn(ctx context.Context, state *game.State) (*Action, error)
}
