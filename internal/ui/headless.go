package ui

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
)

// Headless is a renderer that only logs. Damage effects complete at once.
type Headless struct {
	logger *slog.Logger
}

var _ turn.Renderer = (*Headless)(nil)

// NewHeadless creates a logging renderer; a nil logger uses slog.Default
func NewHeadless(logger *slog.Logger) *Headless {
	if logger == nil {
		logger = slog.Default()
	}
	return &Headless{logger: logger}
}

func (h *Headless) DrawBoard(theme entities.Theme) {
	h.logger.Debug("Board drawn", "theme", theme)
}

func (h *Headless) RedrawUnits(units []*entities.PlacedUnit) {
	h.logger.Debug("Units redrawn", "count", len(units))
}

func (h *Headless) HighlightCell(int, turn.Color) {}

func (h *Headless) ClearHighlight(int) {}

func (h *Headless) SetCursor(turn.Cursor) {}

func (h *Headless) ShowTooltip(string, int) {}

func (h *Headless) HideTooltip(int) {}

func (h *Headless) ShowDamage(ctx context.Context, index int, amount float64) <-chan struct{} {
	h.logger.DebugContext(ctx, "Damage dealt", "cell", index, "amount", amount)
	return nil
}

func (h *Headless) ShowUserError(message string) {
	h.logger.Warn("User error", "message", message)
}

func (h *Headless) ShowMessage(message string) {
	h.logger.Info(message)
}
