// Package coverage finds which types a roster of pokemon covers
// offensively and defensively.
package coverage

import (
	"context"
	"log/slog"

	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/typechart"
	"golang.org/x/sync/errgroup"
)

// Resolver provides generation-correct pokemon and type charts.
type Resolver interface {
	Pokemon(ctx context.Context, ref string, gen int) (dex.Pokemon, error)
	TypeChart(ctx context.Context, gen int) (*typechart.Chart, error)
	Jobs() int
}

// Member is a roster pokemon with its resolved typing.
type Member struct {
	Name   string     `json:"name"`
	Typing dex.Typing `json:"typing"`
}

// Contributor is a roster member covering a type.
type Contributor struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Entry is coverage of one type.
type Entry struct {
	Type string `json:"type"`

	// Offense lists members whose typing deals at least double damage
	// to the type.
	Offense []Contributor `json:"offense"`

	// Defense lists members that take at most half damage from the type.
	Defense []Contributor `json:"defense"`
}

// Offensive reports whether any member covers the type offensively.
func (e Entry) Offensive() bool { return len(e.Offense) > 0 }

// Defensive reports whether any member resists the type.
func (e Entry) Defensive() bool { return len(e.Defense) > 0 }

// Table is coverage of every type of a generation.
type Table struct {
	Generation int      `json:"generation"`
	Roster     []Member `json:"roster"`
	Entries    []Entry  `json:"entries"`
}

// Gaps returns types nobody covers offensively and types nobody resists.
func (t *Table) Gaps() (offense, defense []string) {
	for _, v := range t.Entries {
		if !v.Offensive() {
			offense = append(offense, v.Type)
		}
		if !v.Defensive() {
			defense = append(defense, v.Type)
		}
	}
	return offense, defense
}

// Compute builds a coverage table for a roster. Pokemon repeated in the
// roster are counted once.
func Compute(
	ctx context.Context,
	r Resolver,
	roster []string,
	gen int,
) (*Table, error) {
	if len(roster) == 0 {
		return nil, EmptyRosterError()
	}

	chart, err := r.TypeChart(ctx, gen)
	if err != nil {
		return nil, err
	}

	pokemon := make([]dex.Pokemon, len(roster))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Jobs())
	for i, name := range roster {
		g.Go(func() error {
			p, err := r.Pokemon(gctx, name, gen)
			if err != nil {
				return err
			}
			pokemon[i] = p
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	res := Table{Generation: gen}
	seen := make(map[int]struct{})
	for _, p := range pokemon {
		if _, ok := seen[p.ID]; ok {
			slog.Debug("Duplicate roster member", "pokemon", p.Name)
			continue
		}
		seen[p.ID] = struct{}{}
		res.Roster = append(res.Roster, Member{Name: p.Name, Typing: p.Typing})
	}

	for _, tp := range chart.Types {
		entry := Entry{Type: tp}
		for _, m := range res.Roster {
			if best := offense(chart, m.Typing, tp); best >= typechart.Double {
				entry.Offense = append(entry.Offense,
					Contributor{Name: m.Name, Multiplier: best})
			}
			if taken := chart.Against(tp, m.Typing.Types()...); taken <= typechart.Half {
				entry.Defense = append(entry.Defense,
					Contributor{Name: m.Name, Multiplier: taken})
			}
		}
		res.Entries = append(res.Entries, entry)
	}
	return &res, nil
}

// offense is the best multiplier any type of a typing has against a
// single defending type.
func offense(chart *typechart.Chart, t dex.Typing, defender string) float64 {
	var res float64
	for _, att := range t.Types() {
		res = max(res, chart.Effectiveness(att, defender))
	}
	return res
}
