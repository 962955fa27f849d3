package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/orchestrators/turn"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-tactics/internal/redis"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
	"github.com/KirkDiggler/rpg-tactics/internal/strategy"
	"github.com/KirkDiggler/rpg-tactics/internal/telemetry"
)

var domainEvents = []string{
	turn.EventGameStarted,
	turn.EventUnitSelected,
	turn.EventUnitMoved,
	turn.EventUnitAttacked,
	turn.EventUnitDied,
	turn.EventTurnChanged,
	turn.EventGameOver,
}

// openRepository connects the configured saved game store. The returned
// closer releases its connections.
func openRepository(ctx context.Context) (games.Repository, func(), error) {
	switch cfg.Store {
	case storeRedis:
		client, err := redisclient.Connect(ctx, cfg.RedisAddr, &redisclient.Options{
			PoolSize:        4,
			ConnMaxIdleTime: 5 * time.Minute,
			MaxRetries:      2,
		})
		if err != nil {
			return nil, nil, err
		}
		repo, err := games.NewRedis(&games.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		slog.DebugContext(ctx, "Using redis store", "addr", cfg.RedisAddr)
		return repo, func() { _ = client.Close() }, nil

	case storePostgres:
		db, err := games.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := games.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		repo, err := games.NewPostgres(&games.PostgresConfig{DB: db})
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		slog.DebugContext(ctx, "Using postgres store")
		return repo, func() { _ = db.Close() }, nil

	default:
		return games.NewInMemory(nil), func() {}, nil
	}
}

// setupTelemetry installs the OTLP exporter when enabled and returns a
// shutdown func that is always safe to call
func setupTelemetry(ctx context.Context) func() {
	if !cfg.Telemetry {
		return func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Telemetry disabled", "error", err)
		return func() {}
	}

	return func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}
}

// newEventBus returns a bus that logs every domain event at debug level
func newEventBus() events.EventBus {
	bus := events.NewBus()
	for _, eventType := range domainEvents {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			slog.DebugContext(ctx, "Domain event", "type", e.Type())
			return nil
		})
	}
	return bus
}

func newRoller(seed int64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return engine.NewSeededRoller(seed)
}

type controllerDeps struct {
	Renderer   turn.Renderer
	Repository games.Repository
	Seed       int64
	// Sequential switches ids to counters so seeded runs repeat exactly
	Sequential bool
}

// newController wires the engine, the computer strategy and the turn
// controller around a renderer
func newController(deps controllerDeps) (turn.Controller, error) {
	var unitIDs, gameIDs idgen.Generator = idgen.NewUUID("unit"), idgen.NewUUID("game")
	if deps.Sequential {
		unitIDs, gameIDs = idgen.NewSequential("unit"), idgen.NewSequential(fmt.Sprintf("game-%d", deps.Seed))
	}

	eng, err := engine.New(&engine.Config{
		DiceRoller:  newRoller(deps.Seed),
		IDGenerator: unitIDs,
		BoardSize:   grid.DefaultSize,
	})
	if err != nil {
		return nil, err
	}

	greedy, err := strategy.NewGreedy(&strategy.Config{BoardSize: grid.DefaultSize})
	if err != nil {
		return nil, err
	}

	return turn.New(&turn.Config{
		Engine:      eng,
		Renderer:    deps.Renderer,
		Strategy:    greedy,
		IDGenerator: gameIDs,
		Repository:  deps.Repository,
		EventBus:    newEventBus(),
		Tracer:      telemetry.Tracer("turn"),
		Theme:       entities.Theme(cfg.Theme),
	})
}
