package ioview

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gnames/gndex/pkg/dex"
)

// PokemonCard is a pokemon with optional details requested by the user.
type PokemonCard struct {
	Pokemon   dex.Pokemon        `json:"pokemon"`
	Evolution *dex.EvolutionStep `json:"evolution,omitempty"`
	Moves     []dex.Move         `json:"moves,omitempty"`
}

// Pokemon renders a pokemon card.
func (v *View) Pokemon(card PokemonCard) error {
	if v.IsJSON() {
		return v.json(card)
	}
	p := card.Pokemon

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", v.header.Sprint(v.name(p.Name)), typing(p.Typing))
	if p.Group != "" {
		fmt.Fprintf(&b, " %s", v.accent.Sprint(p.Group))
	}
	b.WriteString("\n")

	abilities := make([]string, len(p.Abilities))
	for i, a := range p.Abilities {
		abilities[i] = a.Name
		if a.Hidden {
			abilities[i] += "(h)"
		}
	}
	b.WriteString(strings.Join(abilities, " "))
	b.WriteString("\n")
	b.WriteString(stats(p.Stats))
	b.WriteString("\n")
	fmt.Fprintf(&b, "gen-%d", p.Generation)
	if p.Game != "" {
		fmt.Fprintf(&b, " (%s)", p.Game)
	}

	if card.Evolution != nil {
		b.WriteString("\n\n")
		b.WriteString(v.header.Sprint("Evolution"))
		b.WriteString("\n")
		v.evolution(&b, *card.Evolution, p.Name, 0)
	}

	if len(card.Moves) > 0 {
		b.WriteString("\n\n")
		b.WriteString(v.header.Sprint("Moves"))
		b.WriteString("\n")
		v.moveList(&b, card.Moves)
	}
	return v.print(strings.TrimRight(b.String(), "\n"))
}

func (v *View) evolution(b *strings.Builder, step dex.EvolutionStep, current string, depth int) {
	name := step.Name
	if name == current {
		name = v.accent.Sprint(name)
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(name)
	if step.Trigger != "" {
		fmt.Fprintf(b, " (%s)", step.Trigger)
	}
	b.WriteString("\n")
	for _, next := range step.Next {
		v.evolution(b, next, current, depth+1)
	}
}

func (v *View) moveList(b *strings.Builder, moves []dex.Move) {
	tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "name\ttype\tclass\tpower\taccuracy\tpp")
	for _, m := range moves {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.Type, m.DamageClass,
			optional(m.Power), optional(m.Accuracy), optional(m.PP),
		)
	}
	tw.Flush()
}

// Move renders a move.
func (v *View) Move(m dex.Move) error {
	if v.IsJSON() {
		return v.json(m)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		v.header.Sprint(v.name(m.Name)), m.Type, v.accent.Sprint(m.DamageClass))
	fmt.Fprintf(&b, "power: %s accuracy: %s pp: %s\n",
		optional(m.Power), optional(m.Accuracy), optional(m.PP))
	if m.Effect != "" {
		effect := m.Effect
		if m.EffectChance != nil {
			effect = strings.ReplaceAll(effect, "$effect_chance", optional(m.EffectChance))
		}
		b.WriteString(effect)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "gen-%d (introduced in gen-%d)", m.Generation, m.Introduced)
	return v.print(b.String())
}

// Ability renders an ability.
func (v *View) Ability(a dex.Ability) error {
	if v.IsJSON() {
		return v.json(a)
	}
	res := fmt.Sprintf("%s\n%s\ngen-%d",
		v.header.Sprint(v.name(a.Name)), a.Effect, a.Generation)
	return v.print(res)
}

func typing(t dex.Typing) string {
	return strings.Join(t.Types(), " ")
}

func stats(s dex.Stats) string {
	return fmt.Sprintf(
		"hp %d atk %d def %d spa %d spd %d spe %d total %d",
		s.HP, s.Attack, s.Defense, s.SpecialAttack, s.SpecialDefense, s.Speed,
		s.Total(),
	)
}
