package ui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

type TerminalTestSuite struct {
	suite.Suite
	sim      tcell.SimulationScreen
	screen   *Screen
	terminal *Terminal
	board    *entities.Board
}

func TestTerminalSuite(t *testing.T) {
	suite.Run(t, new(TerminalTestSuite))
}

func (s *TerminalTestSuite) SetupTest() {
	s.sim = tcell.NewSimulationScreen("UTF-8")
	screen, err := Wrap(s.sim)
	s.Require().NoError(err)
	s.sim.SetSize(80, 40)
	s.screen = screen

	s.terminal, err = NewTerminal(&TerminalConfig{
		Screen:         screen,
		Geometry:       grid.New(8),
		DamageDuration: 100 * time.Millisecond,
	})
	s.Require().NoError(err)

	s.board = entities.NewBoard(8)
}

func (s *TerminalTestSuite) TearDownTest() {
	s.screen.Close()
}

func (s *TerminalTestSuite) place(id string, kind entities.Kind, position int) *entities.PlacedUnit {
	u, err := entities.NewUnit(id, kind, 1)
	s.Require().NoError(err)
	p, err := s.board.Place(u, position)
	s.Require().NoError(err)
	return p
}

func (s *TerminalTestSuite) runeAt(x, y int) rune {
	r, _ := s.screen.Cell(x, y)
	return r
}

func (s *TerminalTestSuite) styleAt(x, y int) tcell.Style {
	_, style := s.screen.Cell(x, y)
	return style
}

func (s *TerminalTestSuite) text(x, y, n int) string {
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		runes = append(runes, s.runeAt(x+i, y))
	}
	return string(runes)
}

func (s *TerminalTestSuite) background(x, y int) tcell.Color {
	_, bg, _ := s.styleAt(x, y).Decompose()
	return bg
}

func (s *TerminalTestSuite) TestNewTerminalValidatesConfig() {
	_, err := NewTerminal(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = NewTerminal(&TerminalConfig{Geometry: grid.New(8)})
	s.Error(err)
	s.Contains(err.Error(), "Screen")
}

func (s *TerminalTestSuite) TestDrawsFrameCorners() {
	s.terminal.DrawBoard(entities.ThemePrairie)

	s.Equal(tcell.RuneULCorner, s.runeAt(0, 0))
	s.Equal(tcell.RuneURCorner, s.runeAt(49, 0))
	s.Equal(tcell.RuneLLCorner, s.runeAt(0, 25))
	s.Equal(tcell.RuneLRCorner, s.runeAt(49, 25))
	s.Equal(tcell.RuneHLine, s.runeAt(10, 0))
	s.Equal(tcell.RuneVLine, s.runeAt(0, 10))
}

func (s *TerminalTestSuite) TestThemeCheckerboard() {
	s.terminal.DrawBoard(entities.ThemeDesert)

	s.Equal(themeColors[entities.ThemeDesert][0], s.background(1, 1))
	s.Equal(themeColors[entities.ThemeDesert][1], s.background(7, 1))
	s.Equal(themeColors[entities.ThemeDesert][0], s.background(7, 4))
}

func (s *TerminalTestSuite) TestUnitsShowLabelAndHealthBar() {
	bowman := s.place("bowman-9", entities.KindBowman, 9)
	s.place("undead-14", entities.KindUndead, 14)
	bowman.Unit.Health = 10

	s.terminal.DrawBoard(entities.ThemePrairie)
	s.terminal.RedrawUnits(s.board.Units())

	// cell 9 starts at (7,4)
	s.Equal("Bw", s.text(9, 4, 2))
	s.Equal("▮", s.text(8, 5, 1))
	s.Equal(" ", s.text(9, 5, 1))
	fg, _, _ := s.styleAt(8, 5).Decompose()
	s.Equal(tcell.ColorRed, fg)

	// cell 14 starts at (37,4), full base health is two bars
	s.Equal("Ud", s.text(39, 4, 2))
	s.Equal("▮▮", s.text(38, 5, 2))
}

func (s *TerminalTestSuite) TestRedrawDropsRemovedUnits() {
	p := s.place("bowman-9", entities.KindBowman, 9)
	s.terminal.RedrawUnits(s.board.Units())
	s.Equal("Bw", s.text(9, 4, 2))

	s.board.Remove(p)
	s.terminal.RedrawUnits(s.board.Units())
	s.Equal("  ", s.text(9, 4, 2))
}

func (s *TerminalTestSuite) TestHighlightAndClear() {
	s.terminal.DrawBoard(entities.ThemePrairie)

	s.terminal.HighlightCell(9, turn.ColorMove)
	s.Equal(tcell.ColorGreen, s.background(7, 4))

	s.terminal.HighlightCell(9, turn.ColorAttack)
	s.Equal(tcell.ColorRed, s.background(7, 4))

	s.terminal.ClearHighlight(9)
	s.Equal(themeColors[entities.ThemePrairie][0], s.background(7, 4))
}

func (s *TerminalTestSuite) TestDrawBoardResetsHighlights() {
	s.terminal.HighlightCell(0, turn.ColorSelected)
	s.Equal(tcell.ColorYellow, s.background(1, 1))

	s.terminal.DrawBoard(entities.ThemeArctic)
	s.Equal(themeColors[entities.ThemeArctic][0], s.background(1, 1))
}

func (s *TerminalTestSuite) TestStatusLines() {
	s.terminal.ShowTooltip("Level 1 bowman", 9)
	s.Equal("Level 1 bowman", s.text(0, 26, 14))

	s.terminal.ShowUserError("That cell is out of move range")
	s.Equal("That cell", s.text(0, 27, 9))
	fg, _, _ := s.styleAt(0, 27).Decompose()
	s.Equal(tcell.ColorRed, fg)

	s.terminal.HideTooltip(9)
	s.Equal("      ", s.text(0, 26, 6))

	s.terminal.SetCursor(turn.CursorCrosshair)
	s.Equal("prairie | crosshair", s.text(0, 28, 19))
}

func (s *TerminalTestSuite) TestShowDamageAcknowledgesAfterDuration() {
	s.terminal.DrawBoard(entities.ThemePrairie)

	done := s.terminal.ShowDamage(context.Background(), 9, 7)
	s.Require().NotNil(done)
	s.Equal("-7", s.text(8, 6, 2))

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("damage was never acknowledged")
	}
	s.Equal("  ", s.text(8, 6, 2))
}

func (s *TerminalTestSuite) TestReadsDuringDamageRedraws() {
	terminal, err := NewTerminal(&TerminalConfig{
		Screen:         s.screen,
		Geometry:       grid.New(8),
		DamageDuration: time.Millisecond,
	})
	s.Require().NoError(err)

	var pending []<-chan struct{}
	for i := 0; i < 16; i++ {
		pending = append(pending, terminal.ShowDamage(context.Background(), i, 3))
		s.text(0, 0, 4)
		s.screen.Sync()
	}

	for _, done := range pending {
		select {
		case <-done:
		case <-time.After(time.Second):
			s.Fail("damage was never acknowledged")
		}
	}
	s.Equal(tcell.RuneULCorner, s.runeAt(0, 0))
}

func (s *TerminalTestSuite) TestShowDamageStopsOnCancel() {
	terminal, err := NewTerminal(&TerminalConfig{
		Screen:         s.screen,
		Geometry:       grid.New(8),
		DamageDuration: time.Hour,
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	done := terminal.ShowDamage(ctx, 0, 1.5)
	s.Equal("-1.5", s.text(2, 3, 4))
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("cancelled damage was never acknowledged")
	}
}
