package entities

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

//go:embed units.yaml
var variantsYAML []byte

// Side is the team a unit fights for
type Side string

const (
	SidePlayer   Side = "player"
	SideComputer Side = "computer"
)

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SidePlayer {
		return SideComputer
	}
	return SidePlayer
}

// Kind identifies a unit variant
type Kind string

const (
	KindSwordsman Kind = "swordsman"
	KindBowman    Kind = "bowman"
	KindMagician  Kind = "magician"
	KindUndead    Kind = "undead"
	KindVampire   Kind = "vampire"
	KindDaemon    Kind = "daemon"
)

// Variant holds the fixed stats of a unit kind
type Variant struct {
	Kind        Kind    `yaml:"kind"`
	Side        Side    `yaml:"side"`
	Attack      float64 `yaml:"attack"`
	Defence     float64 `yaml:"defence"`
	MoveRange   int     `yaml:"move_range"`
	AttackRange int     `yaml:"attack_range"`
}

var variants = mustLoadVariants(variantsYAML)

// LoadVariants parses a variant table and indexes it by kind.
func LoadVariants(data []byte) (map[Kind]Variant, error) {
	var list []Variant
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse unit variants")
	}

	table := make(map[Kind]Variant, len(list))
	for _, v := range list {
		if v.Side != SidePlayer && v.Side != SideComputer {
			return nil, errors.InvalidArgumentf("unit variant %q has unknown side %q", v.Kind, v.Side)
		}
		if _, dup := table[v.Kind]; dup {
			return nil, errors.InvalidArgumentf("unit variant %q defined twice", v.Kind)
		}
		table[v.Kind] = v
	}
	return table, nil
}

func mustLoadVariants(data []byte) map[Kind]Variant {
	table, err := LoadVariants(data)
	if err != nil {
		panic(err)
	}
	return table
}

// LookupVariant returns the stats for a kind
func LookupVariant(kind Kind) (Variant, bool) {
	v, ok := variants[kind]
	return v, ok
}

// Valid reports whether the kind is in the variant table
func (k Kind) Valid() bool {
	_, ok := variants[k]
	return ok
}

// Side returns the side the kind belongs to, or "" for an unknown kind
func (k Kind) Side() Side {
	return variants[k].Side
}

// PlayerKinds are the kinds a new player team is drawn from
func PlayerKinds() []Kind {
	return []Kind{KindBowman, KindSwordsman}
}

// ComputerKinds are the kinds a new computer team is drawn from
func ComputerKinds() []Kind {
	return []Kind{KindDaemon, KindUndead, KindVampire}
}
