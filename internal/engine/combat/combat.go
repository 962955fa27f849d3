// Package combat holds the damage formula and its application to units.
package combat

import (
	"math"

	"github.com/KirkDiggler/rpg-tactics/internal/entities"
)

// MinDamageFactor is the share of attack that always gets through defence
const MinDamageFactor = 0.1

// Result describes one resolved hit
type Result struct {
	Damage       float64
	HealthBefore float64
	HealthAfter  float64
	Killed       bool
}

// Damage returns max(attack - defence, attack * 0.1)
func Damage(attacker, defender *entities.Unit) float64 {
	return math.Max(attacker.Attack-defender.Defence, attacker.Attack*MinDamageFactor)
}

// Apply subtracts damage from the defender's health. The caller removes the
// defender from the board when Killed is set.
func Apply(defender *entities.Unit, damage float64) Result {
	before := defender.Health
	defender.Health -= damage

	return Result{
		Damage:       damage,
		HealthBefore: before,
		HealthAfter:  defender.Health,
		Killed:       defender.Health <= 0,
	}
}
