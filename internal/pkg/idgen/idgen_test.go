package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-tactics/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("unit")
	assert.Equal(t, "unit_1", g.Generate())
	assert.Equal(t, "unit_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	g := idgen.NewUUID("game")
	id := g.Generate()

	require.True(t, strings.HasPrefix(id, "game_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "game_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, g.Generate())
}
