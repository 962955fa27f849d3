package strategy_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	"github.com/KirkDiggler/rpg-tactics/internal/strategy"
)

type GreedyTestSuite struct {
	suite.Suite
	ctx      context.Context
	strategy *strategy.Greedy
	state    *game.State
}

func TestGreedySuite(t *testing.T) {
	suite.Run(t, new(GreedyTestSuite))
}

func (s *GreedyTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.strategy, err = strategy.NewGreedy(&strategy.Config{BoardSize: 8})
	s.Require().NoError(err)

	s.state = game.New("g", 8, entities.ThemePrairie)
	s.state.ActiveSide = entities.SideComputer
}

func (s *GreedyTestSuite) place(kind entities.Kind, pos int, health float64) {
	u, err := entities.NewUnit(fmt.Sprintf("%s-%d", kind, pos), kind, 0)
	s.Require().NoError(err)
	u.Health = health
	_, err = s.state.Board.Place(u, pos)
	s.Require().NoError(err)
}

func (s *GreedyTestSuite) TestAttacksWeakestTargetInReach() {
	// undead at 10 reaches both 1 and 2
	s.place(entities.KindUndead, 10, 50)
	s.place(entities.KindBowman, 1, 40)
	s.place(entities.KindSwordsman, 2, 20)

	action, err := s.strategy.TakeTurn(s.ctx, s.state)
	s.Require().NoError(err)
	s.Equal(&turn.Action{Kind: turn.ActionAttack, From: 10, To: 2}, action)
}

func (s *GreedyTestSuite) TestAttackTieGoesToLowerCell() {
	s.place(entities.KindUndead, 10, 50)
	s.place(entities.KindBowman, 1, 30)
	s.place(entities.KindSwordsman, 2, 30)

	action, err := s.strategy.TakeTurn(s.ctx, s.state)
	s.Require().NoError(err)
	s.Equal(1, action.To)
}

func (s *GreedyTestSuite) TestMovesTowardNearestOpponent() {
	// undead at 15 (row 2, col 8) with move 4; bowman at 8 (row 2, col 1)
	s.place(entities.KindUndead, 15, 50)
	s.place(entities.KindBowman, 8, 50)

	action, err := s.strategy.TakeTurn(s.ctx, s.state)
	s.Require().NoError(err)
	s.Require().NotNil(action)
	s.Equal(turn.ActionMove, action.Kind)
	s.Equal(15, action.From)
	// three columns from the bowman is the closest reachable distance
	s.Equal(3, distance(action.To, 8))
}

func (s *GreedyTestSuite) TestNilWhenOneSideIsEmpty() {
	s.place(entities.KindUndead, 15, 50)

	action, err := s.strategy.TakeTurn(s.ctx, s.state)
	s.NoError(err)
	s.Nil(action)
}

func (s *GreedyTestSuite) TestActionsAreLegalForTheController() {
	s.place(entities.KindDaemon, 63, 50)
	s.place(entities.KindUndead, 55, 50)
	s.place(entities.KindBowman, 0, 50)
	s.place(entities.KindSwordsman, 9, 50)

	action, err := s.strategy.TakeTurn(s.ctx, s.state)
	s.Require().NoError(err)
	s.Require().NotNil(action)

	actor := s.state.Board.At(action.From)
	s.Require().NotNil(actor)
	pending := turn.Classify(grid.New(8), s.state.Board, s.state.ActiveSide, actor, action.To)
	s.Equal(game.PendingMove, pending)
}

func (s *GreedyTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.strategy.TakeTurn(ctx, s.state)
	s.True(errors.IsAborted(err))
}

func (s *GreedyTestSuite) TestConfigValidation() {
	_, err := strategy.NewGreedy(&strategy.Config{})
	s.Error(err)

	_, err = strategy.NewGreedy(nil)
	s.True(errors.IsInvalidArgument(err))
}

func distance(a, b int) int {
	dr := a/8 - b/8
	dc := a%8 - b%8
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return max(dr, dc)
}
