// Package typechart builds type effectiveness tables for a generation.
package typechart

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/gnames/gndex/pkg/changelog"
	"github.com/gnames/gndex/pkg/schema"
)

// Multipliers a single attacking type can have against a single
// defending type.
const (
	Immune  = 0.0
	Half    = 0.5
	Neutral = 1.0
	Double  = 2.0
)

// types that exist in the data but never take part in type matchups.
var nonBattle = map[string]struct{}{
	"unknown": {},
	"shadow":  {},
	"stellar": {},
}

// Relations are the damage relations of one type.
type Relations struct {
	NoDamageTo       schema.TypeNames `json:"noDamageTo"`
	HalfDamageTo     schema.TypeNames `json:"halfDamageTo"`
	DoubleDamageTo   schema.TypeNames `json:"doubleDamageTo"`
	NoDamageFrom     schema.TypeNames `json:"noDamageFrom"`
	HalfDamageFrom   schema.TypeNames `json:"halfDamageFrom"`
	DoubleDamageFrom schema.TypeNames `json:"doubleDamageFrom"`
}

// Delta is a snapshot of the relations a type had in an older
// generation. Nil fields did not change.
type Delta struct {
	NoDamageTo       *schema.TypeNames
	HalfDamageTo     *schema.TypeNames
	DoubleDamageTo   *schema.TypeNames
	NoDamageFrom     *schema.TypeNames
	HalfDamageFrom   *schema.TypeNames
	DoubleDamageFrom *schema.TypeNames
}

// Overlay implements changelog.Partial.
func (d Delta) Overlay(r Relations) Relations {
	set := func(dst *schema.TypeNames, src *schema.TypeNames) {
		if src != nil {
			*dst = slices.Clone(*src)
		}
	}
	set(&r.NoDamageTo, d.NoDamageTo)
	set(&r.HalfDamageTo, d.HalfDamageTo)
	set(&r.DoubleDamageTo, d.DoubleDamageTo)
	set(&r.NoDamageFrom, d.NoDamageFrom)
	set(&r.HalfDamageFrom, d.HalfDamageFrom)
	set(&r.DoubleDamageFrom, d.DoubleDamageFrom)
	return r
}

// Chart is a read-only type chart for one generation.
type Chart struct {
	Generation int                  `json:"generation"`
	Types      []string             `json:"types"`
	Relations  map[string]Relations `json:"relations"`
}

// New resolves a type chart for generation gen. The latest is the
// generation canonical relations belong to. Types introduced after gen
// are left out.
func New(
	gen, latest int,
	types []schema.Type,
	changes []schema.TypeChange,
) (*Chart, error) {
	if gen < 1 {
		return nil, changelog.UnknownGenerationError(gen)
	}

	byType := make(map[int][]changelog.Change[Delta])
	for _, v := range changes {
		byType[v.TypeID] = append(byType[v.TypeID], changelog.Change[Delta]{
			Generation: v.Generation,
			Partial: Delta{
				NoDamageTo:       v.NoDamageTo,
				HalfDamageTo:     v.HalfDamageTo,
				DoubleDamageTo:   v.DoubleDamageTo,
				NoDamageFrom:     v.NoDamageFrom,
				HalfDamageFrom:   v.HalfDamageFrom,
				DoubleDamageFrom: v.DoubleDamageFrom,
			},
		})
	}

	sorted := slices.Clone(types)
	slices.SortFunc(sorted, func(a, b schema.Type) int {
		return cmp.Compare(a.ID, b.ID)
	})

	res := Chart{
		Generation: gen,
		Relations:  make(map[string]Relations),
	}
	for _, v := range sorted {
		if _, ok := nonBattle[v.Name]; ok || v.Generation > gen {
			continue
		}
		canonical := Relations{
			NoDamageTo:       v.NoDamageTo,
			HalfDamageTo:     v.HalfDamageTo,
			DoubleDamageTo:   v.DoubleDamageTo,
			NoDamageFrom:     v.NoDamageFrom,
			HalfDamageFrom:   v.HalfDamageFrom,
			DoubleDamageFrom: v.DoubleDamageFrom,
		}
		rel, err := changelog.Resolve(canonical, latest, byType[v.ID], gen)
		if err != nil {
			return nil, err
		}
		res.Types = append(res.Types, v.Name)
		res.Relations[v.Name] = rel
	}

	for _, v := range res.Inconsistencies() {
		slog.Debug("Damage relations disagree",
			"generation", gen,
			"attacker", v.Attacker,
			"defender", v.Defender,
			"damage_to", v.To,
			"damage_from", v.From,
		)
	}
	return &res, nil
}

// Has reports whether a type exists in the chart's generation.
func (c *Chart) Has(name string) bool {
	_, ok := c.Relations[name]
	return ok
}

// Effectiveness returns the multiplier of an attacking type against a
// single defending type. The 'damage to' relations of the attacker are
// authoritative. Unknown types are neutral.
func (c *Chart) Effectiveness(attacker, defender string) float64 {
	rel, ok := c.Relations[attacker]
	if !ok {
		return Neutral
	}
	switch {
	case rel.NoDamageTo.Has(defender):
		return Immune
	case rel.HalfDamageTo.Has(defender):
		return Half
	case rel.DoubleDamageTo.Has(defender):
		return Double
	default:
		return Neutral
	}
}

// Against returns the multiplier of an attacking type against a
// defender with one or two types.
func (c *Chart) Against(attacker string, defender ...string) float64 {
	res := Neutral
	for _, v := range defender {
		res *= c.Effectiveness(attacker, v)
	}
	return res
}

// fromEffectiveness derives the multiplier from the 'damage from'
// relations of the defender.
func (c *Chart) fromEffectiveness(attacker, defender string) float64 {
	rel, ok := c.Relations[defender]
	if !ok {
		return Neutral
	}
	switch {
	case rel.NoDamageFrom.Has(attacker):
		return Immune
	case rel.HalfDamageFrom.Has(attacker):
		return Half
	case rel.DoubleDamageFrom.Has(attacker):
		return Double
	default:
		return Neutral
	}
}

// Inconsistency is a type pair whose 'damage to' and 'damage from'
// relations disagree.
type Inconsistency struct {
	Attacker string
	Defender string
	To       float64
	From     float64
}

// Inconsistencies lists all disagreeing pairs of the chart.
func (c *Chart) Inconsistencies() []Inconsistency {
	var res []Inconsistency
	for _, att := range c.Types {
		for _, def := range c.Types {
			to := c.Effectiveness(att, def)
			from := c.fromEffectiveness(att, def)
			if to != from {
				res = append(res, Inconsistency{
					Attacker: att, Defender: def, To: to, From: from,
				})
			}
		}
	}
	return res
}
