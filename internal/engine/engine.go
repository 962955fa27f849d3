package engine

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/combat"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
)

// Config holds the dependencies for the rules engine
type Config struct {
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
	BoardSize   int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRange("BoardSize", c.BoardSize, 4, 26, vb)

	return vb.Build()
}

type engine struct {
	roller dice.Roller
	idGen  idgen.Generator
	geo    grid.Geometry
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &engine{
		roller: cfg.DiceRoller,
		idGen:  cfg.IDGenerator,
		geo:    grid.New(cfg.BoardSize),
	}, nil
}

func (e *engine) Geometry() grid.Geometry {
	return e.geo
}

// GenerateTeam draws Count units, the i-th of kind Allowed[i], each with a
// level uniform in [0, MaxLevel).
func (e *engine) GenerateTeam(ctx context.Context, input *GenerateTeamInput) (*GenerateTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.MaxLevel < 1 {
		vb.Field("MaxLevel", "must be at least 1")
	}
	if input.Count < 0 || input.Count > len(input.Allowed) {
		vb.Fieldf("Count", "must be between 0 and %d allowed kinds", len(input.Allowed))
	}
	for _, k := range input.Allowed {
		if !k.Valid() {
			vb.Fieldf("Allowed", "unknown kind %q", k)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	units := make([]*entities.Unit, 0, input.Count)
	for i := 0; i < input.Count; i++ {
		roll, err := e.roller.Roll(input.MaxLevel)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll unit level")
		}

		u, err := entities.NewUnit(e.idGen.Generate(), input.Allowed[i], roll-1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build unit")
		}
		units = append(units, u)
	}

	slog.DebugContext(ctx, "Generated team",
		"count", len(units),
		"max_level", input.MaxLevel,
	)

	return &GenerateTeamOutput{Units: units}, nil
}

// PlaceTeam puts unit i on a cell drawn uniformly from column Columns[i].
func (e *engine) PlaceTeam(ctx context.Context, input *PlaceTeamInput) (*PlaceTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Board == nil {
		return nil, errors.InvalidArgument("board is required")
	}
	if len(input.Columns) < len(input.Units) {
		return nil, errors.InvalidArgumentf("need a column for each of %d units, got %d", len(input.Units), len(input.Columns))
	}

	placed := make([]*entities.PlacedUnit, 0, len(input.Units))
	for i, u := range input.Units {
		col := input.Columns[i]
		if col < 0 || col >= e.geo.Size {
			return nil, errors.InvalidArgumentf("column %d is outside the board", col)
		}
		candidates := e.geo.Column(col)

		roll, err := e.roller.Roll(len(candidates))
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll starting cell")
		}

		p, err := input.Board.Place(u, candidates[roll-1])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to place unit %s", u.ID)
		}
		placed = append(placed, p)
	}

	return &PlaceTeamOutput{Placed: placed}, nil
}

func (e *engine) Measure(from, to int) grid.Range {
	return e.geo.Measure(from, to)
}

func (e *engine) Damage(attacker, defender *entities.Unit) float64 {
	return combat.Damage(attacker, defender)
}
