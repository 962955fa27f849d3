package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-tactics/internal/engine"
	"github.com/KirkDiggler/rpg-tactics/internal/engine/grid"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
	"github.com/KirkDiggler/rpg-tactics/internal/errors"
	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
)

// fixedRoller always returns the same face, clamped to the die size
type fixedRoller struct {
	face  int
	calls []int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	r.calls = append(r.calls, size)
	return min(r.face, size), nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	roller *fixedRoller
	engine engine.Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &fixedRoller{face: 1}

	var err error
	s.engine, err = engine.New(&engine.Config{
		DiceRoller:  s.roller,
		IDGenerator: idgen.NewSequential("unit"),
		BoardSize:   grid.DefaultSize,
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestNewValidatesConfig() {
	_, err := engine.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.New(&engine.Config{BoardSize: 2})
	s.Require().Error(err)
	s.Contains(err.Error(), "DiceRoller")
	s.Contains(err.Error(), "IDGenerator")
	s.Contains(err.Error(), "BoardSize")
}

func (s *EngineTestSuite) TestGenerateTeamLevelCapOne() {
	out, err := s.engine.GenerateTeam(s.ctx, &engine.GenerateTeamInput{
		Allowed:  []entities.Kind{entities.KindBowman, entities.KindSwordsman},
		MaxLevel: 1,
		Count:    2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Units, 2)

	for _, u := range out.Units {
		s.Equal(0, u.Level)
		s.Contains([]entities.Kind{entities.KindBowman, entities.KindSwordsman}, u.Kind)
	}
	s.Equal("unit_1", out.Units[0].ID)
	s.Equal("unit_2", out.Units[1].ID)
	s.Equal([]int{1, 1}, s.roller.calls)
}

func (s *EngineTestSuite) TestGenerateTeamDrawsSequentially() {
	s.roller.face = 3

	out, err := s.engine.GenerateTeam(s.ctx, &engine.GenerateTeamInput{
		Allowed:  entities.ComputerKinds(),
		MaxLevel: 4,
		Count:    2,
	})
	s.Require().NoError(err)

	s.Equal(entities.KindDaemon, out.Units[0].Kind)
	s.Equal(entities.KindUndead, out.Units[1].Kind)
	s.Equal(2, out.Units[0].Level)
}

func (s *EngineTestSuite) TestGenerateTeamRejectsBadInput() {
	testCases := []struct {
		name  string
		input *engine.GenerateTeamInput
	}{
		{"nil input", nil},
		{"zero max level", &engine.GenerateTeamInput{Allowed: entities.PlayerKinds(), MaxLevel: 0, Count: 1}},
		{"count beyond allowed", &engine.GenerateTeamInput{Allowed: entities.PlayerKinds(), MaxLevel: 1, Count: 3}},
		{"unknown kind", &engine.GenerateTeamInput{Allowed: []entities.Kind{"dragon"}, MaxLevel: 1, Count: 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.engine.GenerateTeam(s.ctx, tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *EngineTestSuite) TestPlaceTeamUsesStartingColumns() {
	board := entities.NewBoard(grid.DefaultSize)
	geo := s.engine.Geometry()

	for face := 1; face <= 8; face++ {
		board.Clear()
		s.roller.face = face

		for _, side := range []entities.Side{entities.SidePlayer, entities.SideComputer} {
			kinds := entities.PlayerKinds()
			if side == entities.SideComputer {
				kinds = entities.ComputerKinds()
			}
			team, err := s.engine.GenerateTeam(s.ctx, &engine.GenerateTeamInput{Allowed: kinds, MaxLevel: 1, Count: 2})
			s.Require().NoError(err)

			cols := engine.StartingColumns(side, grid.DefaultSize)
			out, err := s.engine.PlaceTeam(s.ctx, &engine.PlaceTeamInput{Board: board, Units: team.Units, Columns: cols})
			s.Require().NoError(err)

			for i, p := range out.Placed {
				s.Contains(geo.Column(cols[i]), p.Position)
			}
		}
		s.Equal(4, board.Len())
	}
}

func (s *EngineTestSuite) TestPlaceTeamRejectsBadInput() {
	u, err := entities.NewUnit("a", entities.KindBowman, 0)
	s.Require().NoError(err)
	board := entities.NewBoard(grid.DefaultSize)

	_, err = s.engine.PlaceTeam(s.ctx, &engine.PlaceTeamInput{Units: []*entities.Unit{u}, Columns: []int{0}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.PlaceTeam(s.ctx, &engine.PlaceTeamInput{Board: board, Units: []*entities.Unit{u}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.engine.PlaceTeam(s.ctx, &engine.PlaceTeamInput{Board: board, Units: []*entities.Unit{u}, Columns: []int{8}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestMeasureAndDamage() {
	s.Equal(grid.Range{Distance: 7, Aligned: true}, s.engine.Measure(0, 63))

	a := &entities.Unit{Attack: 10}
	b := &entities.Unit{Defence: 3}
	s.Equal(7.0, s.engine.Damage(a, b))
}

func (s *EngineTestSuite) TestSeededRollerIsDeterministic() {
	r1 := engine.NewSeededRoller(42)
	r2 := engine.NewSeededRoller(42)

	a, err := r1.RollN(20, 8)
	s.Require().NoError(err)
	b, err := r2.RollN(20, 8)
	s.Require().NoError(err)
	s.Equal(a, b)
	for _, v := range a {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 8)
	}

	_, err = r1.Roll(0)
	s.True(errors.IsInvalidArgument(err))
}
