package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	turnmock "github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn/mock"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/strategy"
)

type AutopilotTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestAutopilotSuite(t *testing.T) {
	suite.Run(t, new(AutopilotTestSuite))
}

func (s *AutopilotTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *AutopilotTestSuite) newController(seed int64) turn.Controller {
	eng, err := engine.New(&engine.Config{
		DiceRoller:  engine.NewSeededRoller(seed),
		IDGenerator: idgen.NewSequential("unit"),
		BoardSize:   grid.DefaultSize,
	})
	s.Require().NoError(err)

	greedy, err := strategy.NewGreedy(&strategy.Config{BoardSize: grid.DefaultSize})
	s.Require().NoError(err)

	controller, err := turn.New(&turn.Config{
		Engine:      eng,
		Renderer:    NewHeadless(nil),
		Strategy:    greedy,
		IDGenerator: idgen.NewSequential("game"),
	})
	s.Require().NoError(err)

	_, err = controller.NewGame(s.ctx, &turn.NewGameInput{})
	s.Require().NoError(err)
	return controller
}

func (s *AutopilotTestSuite) newAutopilot(controller turn.Controller, maxTurns int) *Autopilot {
	greedy, err := strategy.NewGreedy(&strategy.Config{BoardSize: grid.DefaultSize})
	s.Require().NoError(err)

	pilot, err := NewAutopilot(&AutopilotConfig{
		Controller: controller,
		Strategy:   greedy,
		MaxTurns:   maxTurns,
	})
	s.Require().NoError(err)
	return pilot
}

func (s *AutopilotTestSuite) TestNewAutopilotValidatesConfig() {
	_, err := NewAutopilot(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewAutopilot(&AutopilotConfig{MaxTurns: -1})
	s.Error(err)
	s.Contains(err.Error(), "Controller")
	s.Contains(err.Error(), "MaxTurns")
}

func (s *AutopilotTestSuite) TestPlaysMatchToTheEnd() {
	controller := s.newController(7)

	out, err := s.newAutopilot(controller, 400).Play(s.ctx)
	s.Require().NoError(err)

	s.True(out.Finished)
	s.NotEmpty(out.Winner)

	state := controller.Snapshot()
	s.True(state.Over())
	s.Equal(out.Winner, state.Winner)
	s.Zero(state.Board.Count(out.Winner.Opponent()))
	s.Positive(state.Board.Count(out.Winner))
}

func (s *AutopilotTestSuite) TestSameSeedSameOutcome() {
	first, err := s.newAutopilot(s.newController(42), 400).Play(s.ctx)
	s.Require().NoError(err)

	second, err := s.newAutopilot(s.newController(42), 400).Play(s.ctx)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *AutopilotTestSuite) TestStopsAtTurnLimit() {
	controller := s.newController(7)

	out, err := s.newAutopilot(controller, 1).Play(s.ctx)
	s.Require().NoError(err)

	s.False(out.Finished)
	s.Equal(2, out.Turns)
}

func (s *AutopilotTestSuite) TestClicksSelectThenTarget() {
	mockCtrl := gomock.NewController(s.T())
	controller := turnmock.NewMockController(mockCtrl)
	pilot := turnmock.NewMockStrategy(mockCtrl)

	board := entities.NewBoard(8)
	u, err := entities.NewUnit("swordsman-0", entities.KindSwordsman, 1)
	s.Require().NoError(err)
	_, err = board.Place(u, 0)
	s.Require().NoError(err)

	playing := &game.State{Board: board, ActiveSide: entities.SidePlayer, Phase: game.PhaseInProgress, Turn: 1}
	over := &game.State{Board: board, Phase: game.PhaseGameOver, Winner: entities.SidePlayer, Turn: 2}

	controller.EXPECT().Wait().Times(2)
	gomock.InOrder(
		controller.EXPECT().Snapshot().Return(playing),
		pilot.EXPECT().TakeTurn(gomock.Any(), playing).
			Return(&turn.Action{Kind: turn.ActionMove, From: 0, To: 2}, nil),
		controller.EXPECT().CellClick(gomock.Any(), 0).Return(nil),
		controller.EXPECT().CellClick(gomock.Any(), 2).Return(nil),
		controller.EXPECT().Snapshot().Return(over),
	)

	autopilot, err := NewAutopilot(&AutopilotConfig{Controller: controller, Strategy: pilot})
	s.Require().NoError(err)

	out, err := autopilot.Play(s.ctx)
	s.Require().NoError(err)
	s.Equal(&PlayOutput{Finished: true, Winner: entities.SidePlayer, Turns: 2}, out)
}

func (s *AutopilotTestSuite) TestKeepsExistingSelection() {
	mockCtrl := gomock.NewController(s.T())
	controller := turnmock.NewMockController(mockCtrl)
	pilot := turnmock.NewMockStrategy(mockCtrl)

	board := entities.NewBoard(8)
	u, err := entities.NewUnit("swordsman-0", entities.KindSwordsman, 1)
	s.Require().NoError(err)
	selected, err := board.Place(u, 0)
	s.Require().NoError(err)

	playing := &game.State{Board: board, ActiveSide: entities.SidePlayer, Selected: selected, Phase: game.PhaseInProgress, Turn: 1}
	over := &game.State{Board: board, Phase: game.PhaseGameOver, Winner: entities.SidePlayer, Turn: 1}

	controller.EXPECT().Wait().Times(2)
	gomock.InOrder(
		controller.EXPECT().Snapshot().Return(playing),
		pilot.EXPECT().TakeTurn(gomock.Any(), playing).
			Return(&turn.Action{Kind: turn.ActionAttack, From: 0, To: 1}, nil),
		controller.EXPECT().CellClick(gomock.Any(), 1).Return(nil),
		controller.EXPECT().Snapshot().Return(over),
	)

	autopilot, err := NewAutopilot(&AutopilotConfig{Controller: controller, Strategy: pilot})
	s.Require().NoError(err)

	_, err = autopilot.Play(s.ctx)
	s.Require().NoError(err)
}

func (s *AutopilotTestSuite) TestRejectedClickFails() {
	mockCtrl := gomock.NewController(s.T())
	controller := turnmock.NewMockController(mockCtrl)
	pilot := turnmock.NewMockStrategy(mockCtrl)

	playing := &game.State{Board: entities.NewBoard(8), ActiveSide: entities.SidePlayer, Phase: game.PhaseInProgress, Turn: 1}

	controller.EXPECT().Wait()
	controller.EXPECT().Snapshot().Return(playing)
	pilot.EXPECT().TakeTurn(gomock.Any(), playing).
		Return(&turn.Action{Kind: turn.ActionMove, From: 0, To: 63}, nil)
	controller.EXPECT().CellClick(gomock.Any(), 0).Return(nil)
	controller.EXPECT().CellClick(gomock.Any(), 63).Return(errors.OutOfRange("That cell is out of move range"))

	autopilot, err := NewAutopilot(&AutopilotConfig{Controller: controller, Strategy: pilot})
	s.Require().NoError(err)

	_, err = autopilot.Play(s.ctx)
	s.True(errors.IsOutOfRange(err))
}

func (s *AutopilotTestSuite) TestComputerStillToActFails() {
	mockCtrl := gomock.NewController(s.T())
	controller := turnmock.NewMockController(mockCtrl)
	pilot := turnmock.NewMockStrategy(mockCtrl)

	controller.EXPECT().Wait()
	controller.EXPECT().Snapshot().
		Return(&game.State{Board: entities.NewBoard(8), ActiveSide: entities.SideComputer, Phase: game.PhaseInProgress, Turn: 3})

	autopilot, err := NewAutopilot(&AutopilotConfig{Controller: controller, Strategy: pilot})
	s.Require().NoError(err)

	_, err = autopilot.Play(s.ctx)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}
