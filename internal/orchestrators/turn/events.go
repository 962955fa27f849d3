package turn

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// gameEntity lets the match itself be the source of game-level events
type gameEntity struct {
	id string
}

func (e *gameEntity) GetID() string {
	return e.id
}

func (e *gameEntity) GetType() string {
	return "game"
}

func (c *controller) gameEntity() core.Entity {
	return &gameEntity{id: c.state.ID}
}

func (c *controller) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := c.bus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "Failed to publish event", "event", eventType, "error", err)
	}
}
