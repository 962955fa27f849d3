package entities

import (
	"fmt"
	"math"
	"strconv"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

const (
	// BaseHealth is the health of a freshly built unit
	BaseHealth = 50.0
	// MaxHealth caps health gained from levelling
	MaxHealth = 100.0
)

// Unit is a single fighter. Its side follows from its kind.
type Unit struct {
	ID          string  `json:"id"`
	Kind        Kind    `json:"kind"`
	Level       int     `json:"level"`
	Attack      float64 `json:"attack"`
	Defence     float64 `json:"defence"`
	Health      float64 `json:"health"`
	AttackRange int     `json:"attack_range"`
	MoveRange   int     `json:"move_range"`
}

// NewUnit builds a unit of the given kind. Levels 0 and 1 use the base
// stats; each level above 1 applies one level-up step.
func NewUnit(id string, kind Kind, level int) (*Unit, error) {
	v, ok := LookupVariant(kind)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown unit kind %q", kind)
	}
	if level < 0 {
		return nil, errors.InvalidArgumentf("unit level must be non-negative, got %d", level)
	}

	u := &Unit{
		ID:          id,
		Kind:        kind,
		Level:       level,
		Attack:      v.Attack,
		Defence:     v.Defence,
		Health:      BaseHealth,
		AttackRange: v.AttackRange,
		MoveRange:   v.MoveRange,
	}
	for l := 2; l <= level; l++ {
		u.levelUp()
	}
	return u, nil
}

func (u *Unit) levelUp() {
	boost := (80 + u.Health) / 100
	u.Attack = math.Max(u.Attack, u.Attack*boost)
	u.Defence = math.Max(u.Defence, u.Defence*boost)
	u.Health = math.Min(MaxHealth, u.Health+80)
}

// Side returns the side the unit fights for
func (u *Unit) Side() Side {
	return u.Kind.Side()
}

// Alive reports whether the unit still has health
func (u *Unit) Alive() bool {
	return u.Health > 0
}

// Tooltip renders the hover summary for the unit
func (u *Unit) Tooltip() string {
	return fmt.Sprintf("\U0001F396%d ⚔%s \U0001F6E1%s ❤%s",
		u.Level, formatStat(u.Attack), formatStat(u.Defence), formatStat(u.Health))
}

// Clone returns a copy of the unit
func (u *Unit) Clone() *Unit {
	c := *u
	return &c
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// HealthStatus buckets health for health bars
type HealthStatus string

const (
	HealthCritical HealthStatus = "critical"
	HealthNormal   HealthStatus = "normal"
	HealthHigh     HealthStatus = "high"
)

// HealthLevel returns the bucket for a health value
func HealthLevel(health float64) HealthStatus {
	switch {
	case health < 15:
		return HealthCritical
	case health < 50:
		return HealthNormal
	default:
		return HealthHigh
	}
}
