package ui

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

// LoopConfig holds the dependencies for the input loop
type LoopConfig struct {
	Screen     *Screen
	Controller turn.Controller
	Renderer   turn.Renderer
	Geometry   grid.Geometry
}

// Validate ensures all required dependencies are provided
func (c *LoopConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Screen == nil {
		vb.RequiredField("Screen")
	}
	if c.Controller == nil {
		vb.RequiredField("Controller")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Geometry.Size <= 0 {
		vb.RequiredField("Geometry")
	}

	return vb.Build()
}

// Loop reads terminal events and forwards them to the controller
type Loop struct {
	screen     *Screen
	controller turn.Controller
	renderer   turn.Renderer
	layout     Layout

	hovered  int
	hovering bool
	pressed  bool
}

// NewLoop creates an input loop
func NewLoop(cfg *LoopConfig) (*Loop, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Loop{
		screen:     cfg.Screen,
		controller: cfg.Controller,
		renderer:   cfg.Renderer,
		layout:     NewLayout(cfg.Geometry),
	}, nil
}

// Run processes events until the player quits, the context is cancelled or
// the screen is closed
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		switch ev := l.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			continue
		case *tcell.EventResize:
			l.screen.Sync()
		case *tcell.EventKey:
			if l.handleKey(ctx, ev) {
				return nil
			}
		case *tcell.EventMouse:
			l.handleMouse(ctx, ev)
		}
	}
}

// handleKey returns true when the player asked to quit
func (l *Loop) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 'n', 'N':
		if _, err := l.controller.NewGame(ctx, &turn.NewGameInput{}); err != nil {
			l.report(ctx, "new game", err)
		}
	case 's', 'S':
		out, err := l.controller.Save(ctx)
		if err != nil {
			l.report(ctx, "save", err)
			return false
		}
		l.renderer.ShowMessage("Saved game " + out.GameID)
	}
	return false
}

func (l *Loop) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	x, y := ev.Position()
	index, onBoard := l.layout.CellAt(x, y)

	if l.hovering && (!onBoard || index != l.hovered) {
		if err := l.controller.CellLeave(ctx, l.hovered); err != nil {
			l.report(ctx, "cell leave", err)
		}
		l.hovering = false
	}
	if onBoard && !l.hovering {
		l.hovered, l.hovering = index, true
		if err := l.controller.CellEnter(ctx, index); err != nil {
			l.report(ctx, "cell enter", err)
		}
	}

	pressed := ev.Buttons()&tcell.Button1 != 0
	if pressed && !l.pressed && onBoard {
		// rejections have already been shown by the controller
		if err := l.controller.CellClick(ctx, index); err != nil && !errors.IsRejection(err) {
			l.report(ctx, "cell click", err)
		}
	}
	l.pressed = pressed
}

func (l *Loop) report(ctx context.Context, action string, err error) {
	slog.WarnContext(ctx, "Input action failed",
		"action", action,
		"code", errors.GetCode(err).String(),
		"error", err)
	l.renderer.ShowUserError(errors.GetMessage(err))
}
