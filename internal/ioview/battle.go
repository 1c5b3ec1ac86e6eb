package ioview

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/gnames/gndex/pkg/coverage"
	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/matchup"
	"github.com/gnames/gndex/pkg/typechart"
)

// Type renders offense and defense multipliers of a type.
func (v *View) Type(t dex.Type) error {
	if v.IsJSON() {
		return v.json(t)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s gen-%d\n\n", v.header.Sprint(v.name(t.Name)), t.Generation)
	b.WriteString(v.accent.Sprint("Offense"))
	b.WriteString("\n")
	v.groups(&b, t.Offense.Groups())
	b.WriteString("\n")
	b.WriteString(v.accent.Sprint("Defense"))
	b.WriteString("\n")
	v.groups(&b, t.Defense.Groups())
	return v.print(strings.TrimRight(b.String(), "\n"))
}

// groups writes non-neutral multiplier groups, strongest first.
func (v *View) groups(b *strings.Builder, g typechart.Groups) {
	rows := []struct {
		mult  float64
		types []string
	}{
		{4, g.Quad},
		{typechart.Double, g.Double},
		{typechart.Half, g.Half},
		{0.25, g.Quarter},
		{typechart.Immune, g.Zero},
	}
	for _, r := range rows {
		if len(r.types) == 0 {
			continue
		}
		fmt.Fprintf(b, "%s %s\n", v.multiplier(r.mult), strings.Join(r.types, " "))
	}
}

// Matchup renders matchup results of several defenders against one
// attacker.
func (v *View) Matchup(res []matchup.Result) error {
	if v.IsJSON() {
		return v.json(res)
	}
	parts := make([]string, len(res))
	for i, r := range res {
		parts[i] = v.match(r)
	}
	return v.print(strings.Join(parts, "\n\n"))
}

func (v *View) match(r matchup.Result) string {
	var b strings.Builder
	for _, s := range []matchup.Side{r.Defender, r.Attacker} {
		fmt.Fprintf(&b, "%s %s\n%s\n",
			v.header.Sprint(v.name(s.Name)), typing(s.Typing), stats(s.Stats))
	}
	fmt.Fprintf(&b, "\n%s\n", v.accent.Sprintf("%s weaknesses", r.Defender.Name))
	v.groups(&b, r.Weaknesses)

	fmt.Fprintf(&b, "\n%s\n",
		v.accent.Sprintf("%s's moves vs %s", r.Attacker.Name, r.Defender.Name))
	v.moveEffects(&b, r.AttackerMoves)

	fmt.Fprintf(&b, "\n%s\n",
		v.accent.Sprintf("%s's moves vs %s", r.Defender.Name, r.Attacker.Name))
	v.moveEffects(&b, r.DefenderMoves)
	return strings.TrimRight(b.String(), "\n")
}

func (v *View) moveEffects(b *strings.Builder, moves []matchup.MoveEffect) {
	if len(moves) == 0 {
		b.WriteString("no moves\n")
		return
	}
	tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, m := range moves {
		stab := ""
		if m.STAB {
			stab = "STAB"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.Name, m.Type, m.DamageClass,
			optional(m.Power), optional(m.Accuracy),
			formatMultiplier(m.Multiplier), stab,
		)
	}
	tw.Flush()
}

// Coverage renders a coverage table and its gaps.
func (v *View) Coverage(t *coverage.Table) error {
	if v.IsJSON() {
		return v.json(t)
	}
	var b strings.Builder
	roster := make([]string, len(t.Roster))
	for i, m := range t.Roster {
		roster[i] = fmt.Sprintf("%s (%s)", m.Name, typing(m.Typing))
	}
	fmt.Fprintf(&b, "%s gen-%d\n%s\n\n",
		v.header.Sprint("Coverage"), t.Generation, strings.Join(roster, ", "))

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "type\toffense\tdefense")
	for _, e := range t.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			e.Type, contributors(e.Offense), contributors(e.Defense))
	}
	tw.Flush()

	offense, defense := t.Gaps()
	fmt.Fprintf(&b, "\n%s %s\n", v.strong.Sprint("no offense:"), list(offense))
	fmt.Fprintf(&b, "%s %s", v.strong.Sprint("no defense:"), list(defense))
	return v.print(b.String())
}

func contributors(cs []coverage.Contributor) string {
	if len(cs) == 0 {
		return "-"
	}
	res := make([]string, len(cs))
	for i, c := range cs {
		res[i] = fmt.Sprintf("%s(%s)", c.Name, formatMultiplier(c.Multiplier))
	}
	return strings.Join(res, " ")
}

func list(ss []string) string {
	if len(ss) == 0 {
		return "-"
	}
	return strings.Join(ss, " ")
}
