package ui

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

// DefaultMaxTurns bounds an autopilot match
const DefaultMaxTurns = 200

// AutopilotConfig holds the dependencies for the autopilot
type AutopilotConfig struct {
	Controller turn.Controller
	Strategy   turn.Strategy
	MaxTurns   int
}

// Validate ensures all required dependencies are provided
func (c *AutopilotConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Strategy == nil {
		vb.RequiredField("Strategy")
	}
	if c.MaxTurns < 0 {
		vb.InvalidField("MaxTurns", "must not be negative")
	}

	return vb.Build()
}

// Autopilot plays the player's side by clicking cells like a person would
type Autopilot struct {
	controller turn.Controller
	strategy   turn.Strategy
	maxTurns   int
}

// PlayOutput is the outcome of an autopilot match
type PlayOutput struct {
	Finished bool
	Winner   entities.Side
	Turns    int
}

// NewAutopilot creates an autopilot
func NewAutopilot(cfg *AutopilotConfig) (*Autopilot, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}

	return &Autopilot{
		controller: cfg.Controller,
		strategy:   cfg.Strategy,
		maxTurns:   maxTurns,
	}, nil
}

// Play runs the current match until it ends, the player cannot act or the
// turn limit is reached
func (a *Autopilot) Play(ctx context.Context) (*PlayOutput, error) {
	for {
		a.controller.Wait()
		state := a.controller.Snapshot()

		out := &PlayOutput{Finished: state.Over(), Winner: state.Winner, Turns: state.Turn}
		if state.Over() || state.Turn > a.maxTurns {
			return out, nil
		}
		if !state.PlayerToAct() {
			return nil, errors.Internalf("turn %d stuck on the %s side", state.Turn, state.ActiveSide)
		}

		action, err := a.strategy.TakeTurn(ctx, state)
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick action")
		}
		if action == nil {
			slog.InfoContext(ctx, "Autopilot has no move", "turn", state.Turn)
			return out, nil
		}

		if state.Selected == nil || state.Selected.Position != action.From {
			if err := a.controller.CellClick(ctx, action.From); err != nil {
				return nil, errors.Wrapf(err, "failed to select cell %d", action.From)
			}
		}
		if err := a.controller.CellClick(ctx, action.To); err != nil {
			return nil, errors.Wrapf(err, "failed to %s to cell %d", action.Kind, action.To)
		}
	}
}
