package ui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	turnmock "github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn/mock"
)

type LoopTestSuite struct {
	suite.Suite
	ctx        context.Context
	mockCtrl   *gomock.Controller
	controller *turnmock.MockController
	renderer   *turnmock.MockRenderer
	sim        tcell.SimulationScreen
	screen     *Screen
	loop       *Loop
}

func TestLoopSuite(t *testing.T) {
	suite.Run(t, new(LoopTestSuite))
}

func (s *LoopTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.controller = turnmock.NewMockController(s.mockCtrl)
	s.renderer = turnmock.NewMockRenderer(s.mockCtrl)

	s.sim = tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(s.sim)
	s.Require().NoError(err)
	s.sim.SetSize(80, 40)
	s.screen = screen

	s.loop, err = NewLoop(&LoopConfig{
		Screen:     screen,
		Controller: s.controller,
		Renderer:   s.renderer,
		Geometry:   grid.New(8),
	})
	s.Require().NoError(err)
}

func (s *LoopTestSuite) TearDownTest() {
	s.screen.Close()
	s.mockCtrl.Finish()
}

func (s *LoopTestSuite) quit() {
	s.sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
}

func (s *LoopTestSuite) run() {
	done := make(chan error, 1)
	go func() { done <- s.loop.Run(s.ctx) }()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(2 * time.Second):
		s.FailNow("input loop did not stop")
	}
}

func (s *LoopTestSuite) TestNewLoopValidatesConfig() {
	_, err := NewLoop(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewLoop(&LoopConfig{Screen: s.screen, Geometry: grid.New(8)})
	s.Error(err)
	s.Contains(err.Error(), "Controller")
}

func (s *LoopTestSuite) TestMouseMovesBetweenCells() {
	gomock.InOrder(
		s.controller.EXPECT().CellEnter(gomock.Any(), 9).Return(nil),
		s.controller.EXPECT().CellLeave(gomock.Any(), 9).Return(nil),
		s.controller.EXPECT().CellEnter(gomock.Any(), 11).Return(nil),
		s.controller.EXPECT().CellLeave(gomock.Any(), 11).Return(nil),
	)

	s.sim.InjectMouse(8, 5, tcell.ButtonNone, tcell.ModNone)
	s.sim.InjectMouse(9, 5, tcell.ButtonNone, tcell.ModNone)
	s.sim.InjectMouse(20, 5, tcell.ButtonNone, tcell.ModNone)
	s.sim.InjectMouse(60, 5, tcell.ButtonNone, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestClickFiresOncePerPress() {
	gomock.InOrder(
		s.controller.EXPECT().CellEnter(gomock.Any(), 9).Return(nil),
		s.controller.EXPECT().CellClick(gomock.Any(), 9).Return(nil),
		s.controller.EXPECT().CellClick(gomock.Any(), 9).Return(nil),
	)

	s.sim.InjectMouse(8, 5, tcell.Button1, tcell.ModNone)
	s.sim.InjectMouse(9, 5, tcell.Button1, tcell.ModNone)
	s.sim.InjectMouse(9, 5, tcell.ButtonNone, tcell.ModNone)
	s.sim.InjectMouse(9, 5, tcell.Button1, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestClickOutsideBoardIsIgnored() {
	s.sim.InjectMouse(70, 30, tcell.Button1, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestRejectedClickIsNotReportedAgain() {
	s.controller.EXPECT().CellEnter(gomock.Any(), 0).Return(nil)
	s.controller.EXPECT().CellClick(gomock.Any(), 0).
		Return(errors.PermissionDenied("You can't select the computer's units"))

	s.sim.InjectMouse(1, 1, tcell.Button1, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestFailedClickIsShown() {
	s.controller.EXPECT().CellEnter(gomock.Any(), 0).Return(nil)
	s.controller.EXPECT().CellClick(gomock.Any(), 0).Return(errors.Internal("board is broken"))
	s.renderer.EXPECT().ShowUserError("board is broken")

	s.sim.InjectMouse(1, 1, tcell.Button1, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestNewGameKey() {
	s.controller.EXPECT().NewGame(gomock.Any(), &turn.NewGameInput{}).Return(&turn.NewGameOutput{}, nil)

	s.sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestNewGameDuringAttackIsShown() {
	s.controller.EXPECT().NewGame(gomock.Any(), gomock.Any()).
		Return(nil, errors.Aborted("an attack is still resolving"))
	s.renderer.EXPECT().ShowUserError("an attack is still resolving")

	s.sim.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestSaveKey() {
	s.controller.EXPECT().Save(gomock.Any()).Return(&turn.SaveOutput{GameID: "game-1"}, nil)
	s.renderer.EXPECT().ShowMessage("Saved game game-1")

	s.sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestSaveFailureIsShown() {
	s.controller.EXPECT().Save(gomock.Any()).Return(nil, errors.FailedPrecondition("no game to save"))
	s.renderer.EXPECT().ShowUserError("no game to save")

	s.sim.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestEscapeQuits() {
	s.sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	s.run()
}

func (s *LoopTestSuite) TestOtherKeysAreIgnored() {
	s.sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.quit()

	s.run()
}

func (s *LoopTestSuite) TestCancelledContextStops() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	s.ctx = ctx

	s.run()
}
