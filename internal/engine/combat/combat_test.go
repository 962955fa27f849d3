package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-tactics/internal/engine/combat"
	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

func unit(attack, defence, health float64) *entities.Unit {
	return &entities.Unit{ID: "u", Kind: entities.KindBowman, Attack: attack, Defence: defence, Health: health}
}

func TestDamage(t *testing.T) {
	testCases := []struct {
		name     string
		attack   float64
		defence  float64
		expected float64
	}{
		{"attack beats defence", 10, 3, 7},
		{"defence beats attack", 10, 20, 1},
		{"equal stats", 25, 25, 2.5},
		{"no defence", 40, 0, 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := combat.Damage(unit(tc.attack, 0, 50), unit(0, tc.defence, 50))
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestDamageFloor(t *testing.T) {
	for attack := 1.0; attack <= 60; attack++ {
		for defence := 0.0; defence <= 60; defence += 5 {
			got := combat.Damage(unit(attack, 0, 50), unit(0, defence, 50))
			assert.GreaterOrEqual(t, got, attack*combat.MinDamageFactor)
			assert.Greater(t, got, 0.0)
		}
	}
}

func TestApplyKills(t *testing.T) {
	a := unit(10, 0, 50)
	b := unit(0, 3, 5)

	res := combat.Apply(b, combat.Damage(a, b))

	assert.Equal(t, 7.0, res.Damage)
	assert.Equal(t, 5.0, res.HealthBefore)
	assert.Equal(t, -2.0, res.HealthAfter)
	assert.True(t, res.Killed)
	assert.False(t, b.Alive())
}

func TestApplySurvives(t *testing.T) {
	a := unit(10, 0, 50)
	c := unit(0, 20, 50)

	res := combat.Apply(c, combat.Damage(a, c))

	assert.InDelta(t, 1.0, res.Damage, 1e-9)
	assert.InDelta(t, 49.0, c.Health, 1e-9)
	assert.False(t, res.Killed)
}

func TestApplyExactlyZeroKills(t *testing.T) {
	c := unit(0, 0, 7)
	res := combat.Apply(c, 7)
	assert.True(t, res.Killed)
}
