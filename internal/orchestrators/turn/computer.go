package turn

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
)

// playComputer asks the strategy for one action and performs it. Any
// failure or a nil action passes the turn back to the player.
func (c *controller) playComputer(ctx context.Context) {
	ctx, span := c.tracer.Start(ctx, "turn.computer")
	defer span.End()

	action, err := c.strategy.TakeTurn(ctx, c.state.Snapshot())
	if err != nil {
		slog.WarnContext(ctx, "Computer strategy failed, passing turn", "game_id", c.state.ID, "error", err)
		span.RecordError(err)
		c.returnControl(ctx)
		return
	}
	if action == nil {
		slog.InfoContext(ctx, "Computer passed", "game_id", c.state.ID)
		c.returnControl(ctx)
		return
	}

	span.SetAttributes(
		attribute.String("action", string(action.Kind)),
		attribute.Int("from", action.From),
		attribute.Int("to", action.To),
	)

	actor, target, err := c.checkAction(action)
	if err != nil {
		slog.WarnContext(ctx, "Computer action rejected, passing turn",
			"game_id", c.state.ID,
			"action", action.Kind,
			"from", action.From,
			"to", action.To,
			"error", err,
		)
		c.returnControl(ctx)
		return
	}

	switch action.Kind {
	case ActionMove:
		if err := c.moveUnit(ctx, actor, action.To); err != nil {
			slog.WarnContext(ctx, "Computer move failed", "game_id", c.state.ID, "error", err)
		}
		c.returnControl(ctx)
	case ActionAttack:
		c.startAttack(ctx, actor, target, c.returnControl)
	}
}

// checkAction applies the player's rules to a computer action
func (c *controller) checkAction(action *Action) (actor, target *entities.PlacedUnit, err error) {
	if !c.geo.Contains(action.From) || !c.geo.Contains(action.To) {
		return nil, nil, errors.InvalidArgumentf("action cells %d -> %d are outside the board", action.From, action.To)
	}

	actor = c.state.Board.At(action.From)
	if actor == nil {
		return nil, nil, errors.NotFoundf("no unit on cell %d", action.From)
	}
	if actor.Side() != c.state.ActiveSide {
		return nil, nil, errors.PermissionDenied("unit belongs to the other side")
	}

	pending := Classify(c.engine, c.state.Board, c.state.ActiveSide, actor, action.To)
	switch {
	case action.Kind == ActionMove && pending == game.PendingMove:
		return actor, nil, nil
	case action.Kind == ActionAttack && pending == game.PendingAttack:
		return actor, c.state.Board.At(action.To), nil
	case pending.Rejected():
		return nil, nil, errors.OutOfRange(rejectionMessage(pending))
	default:
		return nil, nil, errors.InvalidArgumentf("%s is not allowed on cell %d", action.Kind, action.To)
	}
}
