// Package ui renders a match in the terminal with tcell and turns mouse and
// key events into controller calls.
package ui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen wraps tcell.Screen with the few calls the game needs. The cell
// buffer is shared by the input loop and the renderer's timers, so every
// access goes through mu.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
}

// NewScreen creates and initializes the terminal screen with mouse input
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, such as a simulation screen
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for the next terminal event. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Interrupt wakes up PollEvent with an interrupt event
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Draw clears the buffer, runs paint and flushes the result as one frame.
// SetContent and Text are only valid inside paint.
func (s *Screen) Draw(paint func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.screen.Clear()
	paint()
	s.screen.Show()
}

// Sync forces a complete redraw
func (s *Screen) Sync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Sync()
}

// Cell returns the rune and style at x, y
func (s *Screen) Cell(x, y int) (rune, tcell.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, _, style, _ := s.screen.GetContent(x, y)
	return r, style
}

// SetContent sets a single cell
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Text draws a string from x and returns the column after it
func (s *Screen) Text(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// Size returns the terminal dimensions
func (s *Screen) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}
