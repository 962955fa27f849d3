package turn

import (
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
)

// Measurer reports distance between cells
type Measurer interface {
	Measure(from, to int) grid.Range
}

// Classify interprets a cell for the side to act given its selected unit.
// Ranges use Chebyshev distance only; alignment is not required to move.
func Classify(m Measurer, board *entities.Board, side entities.Side, selected *entities.PlacedUnit, index int) game.PendingAction {
	occupant := board.At(index)

	switch {
	case occupant != nil && occupant.Side() == side:
		return game.PendingSelect
	case occupant != nil && selected == nil:
		return game.PendingRejectedSelection
	case occupant != nil:
		if m.Measure(selected.Position, index).Distance > selected.Unit.AttackRange {
			return game.PendingTooFarToAttack
		}
		return game.PendingAttack
	case selected == nil:
		return game.PendingNone
	case m.Measure(selected.Position, index).Distance > selected.Unit.MoveRange:
		return game.PendingTooFarToMove
	default:
		return game.PendingMove
	}
}

// rejectionMessage is the notice shown for a refused click
func rejectionMessage(p game.PendingAction) string {
	switch p {
	case game.PendingRejectedSelection:
		return "You can't select the computer's units"
	case game.PendingTooFarToAttack:
		return "The target is out of attack range"
	case game.PendingTooFarToMove:
		return "That cell is out of move range"
	default:
		return ""
	}
}

func cursorFor(p game.PendingAction) Cursor {
	switch p {
	case game.PendingSelect, game.PendingMove:
		return CursorPointer
	case game.PendingAttack:
		return CursorCrosshair
	case game.PendingRejectedSelection, game.PendingTooFarToAttack, game.PendingTooFarToMove:
		return CursorNotAllowed
	default:
		return CursorAuto
	}
}
