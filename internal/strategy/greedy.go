// Package strategy holds computer opponents for the turn controller.
package strategy

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

// Config holds the settings for the greedy strategy
type Config struct {
	BoardSize int
}

// Validate ensures the board size is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("BoardSize", c.BoardSize, 1, 26, vb)
	return vb.Build()
}

// Greedy attacks the weakest opponent in reach. With nothing in reach it
// walks the unit nearest to an opponent as close as it can get.
type Greedy struct {
	geo grid.Geometry
}

var _ turn.Strategy = (*Greedy)(nil)

// NewGreedy creates a greedy strategy
func NewGreedy(cfg *Config) (*Greedy, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Greedy{geo: grid.New(cfg.BoardSize)}, nil
}

// TakeTurn picks one action for the side to act, or nil if none can act
func (g *Greedy) TakeTurn(ctx context.Context, state *game.State) (*turn.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeAborted, "turn cancelled")
	}
	if state == nil || state.Board == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	mine := state.Board.Side(state.ActiveSide)
	theirs := state.Board.Side(state.ActiveSide.Opponent())
	if len(mine) == 0 || len(theirs) == 0 {
		return nil, nil
	}

	if action := g.attack(mine, theirs); action != nil {
		slog.DebugContext(ctx, "Greedy attack", "from", action.From, "to", action.To)
		return action, nil
	}

	if action := g.approach(state.Board, mine, theirs); action != nil {
		slog.DebugContext(ctx, "Greedy move", "from", action.From, "to", action.To)
		return action, nil
	}

	return nil, nil
}

// attack chooses the lowest-health target any unit can reach. Ties go to
// the lower target cell, then the lower attacker cell.
func (g *Greedy) attack(mine, theirs []*entities.PlacedUnit) *turn.Action {
	var best *turn.Action
	var bestHealth float64

	for _, attacker := range mine {
		for _, target := range theirs {
			if g.geo.Distance(attacker.Position, target.Position) > attacker.Unit.AttackRange {
				continue
			}

			h := target.Unit.Health
			switch {
			case best == nil,
				h < bestHealth,
				h == bestHealth && target.Position < best.To,
				h == bestHealth && target.Position == best.To && attacker.Position < best.From:
				best = &turn.Action{Kind: turn.ActionAttack, From: attacker.Position, To: target.Position}
				bestHealth = h
			}
		}
	}

	return best
}

// approach moves the unit closest to an opponent onto the free cell in its
// move range nearest to any opponent. Units with no free cell are skipped.
func (g *Greedy) approach(board *entities.Board, mine, theirs []*entities.PlacedUnit) *turn.Action {
	ordered := append([]*entities.PlacedUnit(nil), mine...)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := g.nearest(ordered[i].Position, theirs), g.nearest(ordered[j].Position, theirs)
		if di != dj {
			return di < dj
		}
		return ordered[i].Position < ordered[j].Position
	})

	for _, unit := range ordered {
		bestCell, bestDist := -1, 0
		for _, cell := range g.geo.Within(unit.Position, unit.Unit.MoveRange) {
			if board.At(cell) != nil {
				continue
			}
			if d := g.nearest(cell, theirs); bestCell < 0 || d < bestDist {
				bestCell, bestDist = cell, d
			}
		}
		if bestCell >= 0 {
			return &turn.Action{Kind: turn.ActionMove, From: unit.Position, To: bestCell}
		}
	}

	return nil
}

func (g *Greedy) nearest(cell int, theirs []*entities.PlacedUnit) int {
	best := -1
	for _, t := range theirs {
		if d := g.geo.Distance(cell, t.Position); best < 0 || d < best {
			best = d
		}
	}
	return best
}
