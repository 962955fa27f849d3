package turn

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/combat"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
	"github.com/KirkDiggler/rpg-tactics/internal/telemetry"
)

// Config holds the dependencies for the turn controller
type Config struct {
	Engine      engine.Engine
	Renderer    Renderer
	Strategy    Strategy
	IDGenerator idgen.Generator

	// Optional
	Repository games.Repository
	EventBus   events.EventBus
	Tracer     trace.Tracer
	Theme      entities.Theme
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Strategy == nil {
		vb.RequiredField("Strategy")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Theme != "" && !c.Theme.Valid() {
		vb.InvalidField("Theme", "unknown theme "+string(c.Theme))
	}

	return vb.Build()
}

type controller struct {
	engine   engine.Engine
	geo      grid.Geometry
	renderer Renderer
	strategy Strategy
	idGen    idgen.Generator
	repo     games.Repository
	bus      events.EventBus
	tracer   trace.Tracer
	theme    entities.Theme

	mu    sync.Mutex
	state *game.State
	// attacking is set while a damage acknowledgment is outstanding
	attacking  bool
	highlights map[int]Color
	// settled is signalled on mu whenever attacking goes back to false
	settled *sync.Cond
}

// New creates a turn controller with an empty board
func New(cfg *Config) (Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	theme := cfg.Theme
	if theme == "" {
		theme = entities.ThemePrairie
	}
	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	geo := cfg.Engine.Geometry()
	c := &controller{
		engine:     cfg.Engine,
		geo:        geo,
		renderer:   cfg.Renderer,
		strategy:   cfg.Strategy,
		idGen:      cfg.IDGenerator,
		repo:       cfg.Repository,
		bus:        bus,
		tracer:     tracer,
		theme:      theme,
		state:      game.New("", geo.Size, theme),
		highlights: make(map[int]Color),
	}
	c.settled = sync.NewCond(&c.mu)
	return c, nil
}

// NewGame generates both teams and starts a match with the player to act
func (c *controller) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil {
		input = &NewGameInput{}
	}

	theme := input.Theme
	if theme == "" {
		theme = c.theme
	}
	if !theme.Valid() {
		return nil, errors.InvalidArgumentf("unknown theme %q", theme)
	}
	maxLevel := input.MaxLevel
	if maxLevel == 0 {
		maxLevel = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attacking {
		return nil, errors.Aborted("an attack is still resolving")
	}

	c.clearHighlights()
	c.state.Reset(c.idGen.Generate())
	c.state.Theme = theme

	teams := []struct {
		side  entities.Side
		kinds []entities.Kind
	}{
		{entities.SidePlayer, entities.PlayerKinds()},
		{entities.SideComputer, entities.ComputerKinds()},
	}
	for _, team := range teams {
		generated, err := c.engine.GenerateTeam(ctx, &engine.GenerateTeamInput{
			Allowed:  team.kinds,
			MaxLevel: maxLevel,
			Count:    UnitsPerSide,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to generate %s team", team.side)
		}

		_, err = c.engine.PlaceTeam(ctx, &engine.PlaceTeamInput{
			Board:   c.state.Board,
			Units:   generated.Units,
			Columns: engine.StartingColumns(team.side, c.geo.Size),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to place %s team", team.side)
		}
	}

	c.renderer.DrawBoard(theme)
	c.renderer.RedrawUnits(c.state.Board.Units())
	c.renderer.SetCursor(CursorAuto)

	slog.InfoContext(ctx, "New game started",
		"game_id", c.state.ID,
		"theme", theme,
		"units", c.state.Board.Len(),
	)
	c.publish(ctx, EventGameStarted, c.gameEntity(), nil)

	return &NewGameOutput{State: c.state.Snapshot()}, nil
}

// CellEnter shows the tooltip and what a click on the cell would do
func (c *controller) CellEnter(ctx context.Context, index int) error {
	if !c.geo.Contains(index) {
		return errors.InvalidArgumentf("cell %d is outside the board", index)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if occupant := c.state.Board.At(index); occupant != nil {
		c.renderer.ShowTooltip(occupant.Unit.Tooltip(), index)
	}

	if c.attacking || !c.state.PlayerToAct() {
		c.state.Pending = game.PendingNone
		c.renderer.SetCursor(CursorNotAllowed)
		return nil
	}

	pending := c.classify(index)
	c.state.Pending = pending

	switch pending {
	case game.PendingMove:
		c.highlight(index, ColorMove)
	case game.PendingAttack:
		c.highlight(index, ColorAttack)
	}
	c.renderer.SetCursor(cursorFor(pending))

	return nil
}

// CellLeave clears the hover affordances of a cell
func (c *controller) CellLeave(_ context.Context, index int) error {
	if !c.geo.Contains(index) {
		return errors.InvalidArgumentf("cell %d is outside the board", index)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderer.HideTooltip(index)
	if selected := c.state.Selected; selected == nil || selected.Position != index {
		c.clearHighlight(index)
	}
	c.state.Pending = game.PendingNone

	return nil
}

// CellClick selects, moves or attacks depending on the pending action
func (c *controller) CellClick(ctx context.Context, index int) error {
	if !c.geo.Contains(index) {
		return errors.InvalidArgumentf("cell %d is outside the board", index)
	}

	ctx, span := c.tracer.Start(ctx, "turn.click", trace.WithAttributes(attribute.Int("cell", index)))
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attacking {
		slog.DebugContext(ctx, "Click ignored while an attack resolves", "cell", index)
		return nil
	}
	if !c.state.PlayerToAct() {
		return nil
	}

	pending := c.classify(index)
	c.state.Pending = pending
	span.SetAttributes(attribute.String("pending", string(pending)))

	switch pending {
	case game.PendingSelect:
		c.toggleSelection(ctx, c.state.Board.At(index))
	case game.PendingMove:
		if err := c.moveUnit(ctx, c.state.Selected, index); err != nil {
			return err
		}
		c.handOff(ctx)
	case game.PendingAttack:
		c.startAttack(ctx, c.state.Selected, c.state.Board.At(index), c.handOff)
	case game.PendingRejectedSelection:
		msg := rejectionMessage(pending)
		c.renderer.ShowUserError(msg)
		return errors.PermissionDenied(msg).WithMeta("cell", index)
	case game.PendingTooFarToAttack, game.PendingTooFarToMove:
		msg := rejectionMessage(pending)
		c.renderer.ShowUserError(msg)
		return errors.OutOfRange(msg).WithMeta("cell", index)
	}

	return nil
}

// Snapshot returns a copy of the current state
func (c *controller) Snapshot() *game.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Wait blocks until no attack is resolving. It is safe to call while input
// keeps arriving; an attack started meanwhile is waited for too.
func (c *controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.attacking {
		c.settled.Wait()
	}
}

func (c *controller) classify(index int) game.PendingAction {
	return Classify(c.engine, c.state.Board, c.state.ActiveSide, c.state.Selected, index)
}

func (c *controller) toggleSelection(ctx context.Context, unit *entities.PlacedUnit) {
	prev := c.state.Selected
	if prev != nil {
		c.clearHighlight(prev.Position)
	}
	if prev == unit {
		c.state.Deselect()
		return
	}

	c.state.Select(unit)
	c.highlight(unit.Position, ColorSelected)
	c.publish(ctx, EventUnitSelected, unit, nil)
}

// moveUnit relocates a unit without checking the cells in between
func (c *controller) moveUnit(ctx context.Context, unit *entities.PlacedUnit, to int) error {
	from := unit.Position
	c.clearHighlight(from)
	c.clearHighlight(to)

	if err := c.state.Board.Move(unit, to); err != nil {
		return errors.Wrapf(err, "failed to move %s", unit.Unit.ID)
	}
	c.state.ClearTransient()
	c.renderer.RedrawUnits(c.state.Board.Units())

	slog.InfoContext(ctx, "Unit moved",
		"game_id", c.state.ID,
		"unit_id", unit.Unit.ID,
		"from", from,
		"to", to,
	)
	c.publish(ctx, EventUnitMoved, unit, nil)
	return nil
}

// startAttack shows the damage and resolves it once the renderer
// acknowledges. The board is only touched inside the continuation, which
// runs with the lock held and then calls next.
func (c *controller) startAttack(ctx context.Context, attacker, target *entities.PlacedUnit, next func(context.Context)) {
	damage := c.engine.Damage(attacker.Unit, target.Unit)
	c.attacking = true

	ctx = context.WithoutCancel(ctx)
	done := c.renderer.ShowDamage(ctx, target.Position, damage)

	go func() {
		if done != nil {
			<-done
		}

		c.mu.Lock()
		defer c.mu.Unlock()

		c.resolveAttack(ctx, attacker, target, damage)
		c.attacking = false
		next(ctx)
		if !c.attacking {
			c.settled.Broadcast()
		}
	}()
}

func (c *controller) resolveAttack(ctx context.Context, attacker, target *entities.PlacedUnit, damage float64) {
	c.clearHighlight(attacker.Position)
	c.clearHighlight(target.Position)

	if !c.state.Board.Contains(target) {
		slog.WarnContext(ctx, "Attack target left the board before resolution", "unit_id", target.Unit.ID)
		c.state.ClearTransient()
		return
	}

	result := combat.Apply(target.Unit, damage)
	slog.InfoContext(ctx, "Unit attacked",
		"game_id", c.state.ID,
		"attacker_id", attacker.Unit.ID,
		"target_id", target.Unit.ID,
		"damage", result.Damage,
		"health", result.HealthAfter,
	)
	c.publish(ctx, EventUnitAttacked, attacker, target)

	if result.Killed {
		c.state.Remove(target)
		c.publish(ctx, EventUnitDied, target, attacker)
	}

	c.state.ClearTransient()
	c.renderer.RedrawUnits(c.state.Board.Units())
}

// handOff ends the player's action and lets the computer reply
func (c *controller) handOff(ctx context.Context) {
	if c.finishIfOver(ctx) {
		return
	}

	c.state.PassTurn()
	c.publish(ctx, EventTurnChanged, c.gameEntity(), nil)
	c.playComputer(ctx)
}

// returnControl ends the computer's turn
func (c *controller) returnControl(ctx context.Context) {
	if c.finishIfOver(ctx) {
		return
	}

	c.state.PassTurn()
	c.publish(ctx, EventTurnChanged, c.gameEntity(), nil)
}

func (c *controller) finishIfOver(ctx context.Context) bool {
	if !c.state.CheckGameOver() {
		return false
	}

	c.clearHighlights()
	msg := "Defeat! Your army has fallen"
	if c.state.Winner == entities.SidePlayer {
		msg = "Victory! The enemy army is destroyed"
	}
	c.renderer.ShowMessage(msg)

	slog.InfoContext(ctx, "Game over",
		"game_id", c.state.ID,
		"winner", c.state.Winner,
		"turn", c.state.Turn,
	)
	c.publish(ctx, EventGameOver, c.gameEntity(), nil)
	return true
}

func (c *controller) highlight(index int, color Color) {
	c.highlights[index] = color
	c.renderer.HighlightCell(index, color)
}

func (c *controller) clearHighlight(index int) {
	if _, ok := c.highlights[index]; !ok {
		return
	}
	delete(c.highlights, index)
	c.renderer.ClearHighlight(index)
}

func (c *controller) clearHighlights() {
	for index := range c.highlights {
		c.clearHighlight(index)
	}
}
