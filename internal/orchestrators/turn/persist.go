package turn

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/game"
	"github.com/KirkDiggler/rpg-tactics/internal/repositories/games"
)

// Save stores the current match in the repository
func (c *controller) Save(ctx context.Context) (*SaveOutput, error) {
	if c.repo == nil {
		return nil, errors.FailedPrecondition("no save store configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attacking {
		return nil, errors.Aborted("an attack is still resolving")
	}
	if c.state.ID == "" {
		return nil, errors.FailedPrecondition("no game to save")
	}

	out, err := c.repo.Save(ctx, games.SaveInput{Data: toGameData(c.state, c.geo.Size)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save game %s", c.state.ID)
	}

	slog.InfoContext(ctx, "Game saved", "game_id", out.Data.ID, "turn", out.Data.Turn)
	return &SaveOutput{GameID: out.Data.ID, SavedAt: out.Data.SavedAt}, nil
}

// Load replaces the current match with a saved one and lets the computer
// move if the save was taken on its turn
func (c *controller) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if c.repo == nil {
		return nil, errors.FailedPrecondition("no save store configured")
	}
	if input == nil || input.GameID == "" {
		return nil, errors.InvalidArgument("game ID is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.attacking {
		return nil, errors.Aborted("an attack is still resolving")
	}

	out, err := c.repo.Get(ctx, games.GetInput{ID: input.GameID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load game %s", input.GameID)
	}

	state, err := fromGameData(out.Data, c.geo.Size)
	if err != nil {
		return nil, err
	}

	c.clearHighlights()
	c.state = state
	c.renderer.DrawBoard(state.Theme)
	c.renderer.RedrawUnits(state.Board.Units())
	c.renderer.SetCursor(CursorAuto)

	slog.InfoContext(ctx, "Game loaded",
		"game_id", state.ID,
		"turn", state.Turn,
		"active_side", state.ActiveSide,
	)

	if !c.finishIfOver(ctx) && state.ActiveSide == entities.SideComputer {
		c.playComputer(ctx)
	}

	return &LoadOutput{State: c.state.Snapshot()}, nil
}

func toGameData(s *game.State, size int) *games.GameData {
	units := s.Board.Units()
	data := &games.GameData{
		ID:         s.ID,
		BoardSize:  size,
		Units:      make([]games.UnitData, 0, len(units)),
		ActiveSide: string(s.ActiveSide),
		Phase:      string(s.Phase),
		Winner:     string(s.Winner),
		Turn:       s.Turn,
		Theme:      string(s.Theme),
	}
	for _, p := range units {
		u := p.Unit
		data.Units = append(data.Units, games.UnitData{
			ID:          u.ID,
			Kind:        string(u.Kind),
			Level:       u.Level,
			Attack:      u.Attack,
			Defence:     u.Defence,
			Health:      u.Health,
			AttackRange: u.AttackRange,
			MoveRange:   u.MoveRange,
			Position:    p.Position,
		})
	}
	return data
}

// fromGameData rebuilds a state from a save. Stats are restored as saved
// rather than recomputed from level. The saved phase and winner are not
// trusted; Load derives them from the board.
func fromGameData(data *games.GameData, size int) (*game.State, error) {
	if data.BoardSize != size {
		return nil, errors.InvalidArgumentf("saved board is %d wide, expected %d", data.BoardSize, size)
	}

	theme := entities.Theme(data.Theme)
	if !theme.Valid() {
		return nil, errors.InvalidArgumentf("saved game has unknown theme %q", data.Theme)
	}

	side := entities.Side(data.ActiveSide)
	if side != entities.SidePlayer && side != entities.SideComputer {
		return nil, errors.InvalidArgumentf("saved game has unknown side %q", data.ActiveSide)
	}

	state := game.New(data.ID, size, theme)
	state.ActiveSide = side
	state.Turn = data.Turn

	for _, ud := range data.Units {
		kind := entities.Kind(ud.Kind)
		if !kind.Valid() {
			return nil, errors.InvalidArgumentf("saved unit %s has unknown kind %q", ud.ID, ud.Kind)
		}
		if ud.Health <= 0 {
			return nil, errors.InvalidArgumentf("saved unit %s has no health left", ud.ID)
		}

		unit := &entities.Unit{
			ID:          ud.ID,
			Kind:        kind,
			Level:       ud.Level,
			Attack:      ud.Attack,
			Defence:     ud.Defence,
			Health:      ud.Health,
			AttackRange: ud.AttackRange,
			MoveRange:   ud.MoveRange,
		}
		if _, err := state.Board.Place(unit, ud.Position); err != nil {
			return nil, errors.Wrapf(err, "failed to restore unit %s", ud.ID)
		}
	}

	return state, nil
}
