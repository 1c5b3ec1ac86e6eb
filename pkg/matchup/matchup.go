// Package matchup compares defenders with one attacker in a generation.
package matchup

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/typechart"
	"golang.org/x/sync/errgroup"
)

// MaxDefenders is the size of a full party.
const MaxDefenders = 6

// Resolver provides generation-correct pokemon, moves and type charts.
type Resolver interface {
	Pokemon(ctx context.Context, ref string, gen int) (dex.Pokemon, error)
	Moves(ctx context.Context, p dex.Pokemon) ([]dex.Move, error)
	TypeChart(ctx context.Context, gen int) (*typechart.Chart, error)
	Jobs() int
}

// Options filter move breakdowns. Zero value keeps all damaging moves.
type Options struct {
	// StabOnly keeps moves that get the same-type attack bonus.
	StabOnly bool

	// MinMultiplier hides moves weaker than this multiplier.
	MinMultiplier float64
}

// Side is a pokemon taking part in a matchup.
type Side struct {
	Name   string     `json:"name"`
	Typing dex.Typing `json:"typing"`
	Stats  dex.Stats  `json:"stats"`
}

// MoveEffect is how effective a move is against the opposing pokemon.
type MoveEffect struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	DamageClass string  `json:"damageClass"`
	Power       *int    `json:"power"`
	Accuracy    *int    `json:"accuracy"`
	Multiplier  float64 `json:"multiplier"`
	STAB        bool    `json:"stab"`
}

// Result is the matchup of one defender with the attacker.
type Result struct {
	Generation int  `json:"generation"`
	Defender   Side `json:"defender"`
	Attacker   Side `json:"attacker"`

	// Defense has multipliers of every attacking type against the
	// defender typing, Weaknesses groups them.
	Defense    typechart.Table  `json:"defense"`
	Weaknesses typechart.Groups `json:"weaknesses"`

	// AttackerMoves are attacker moves against the defender.
	AttackerMoves []MoveEffect `json:"attackerMoves"`
	// DefenderMoves are defender moves against the attacker.
	DefenderMoves []MoveEffect `json:"defenderMoves"`
}

type fighter struct {
	pokemon dex.Pokemon
	moves   []dex.Move
}

// Match compares each defender with the attacker. Results follow the
// order of defenders. Any failure aborts the whole call.
func Match(
	ctx context.Context,
	r Resolver,
	defenders []string,
	attacker string,
	gen int,
	opts Options,
) ([]Result, error) {
	if len(defenders) == 0 || len(defenders) > MaxDefenders {
		return nil, DefendersNumberError(len(defenders))
	}
	if attacker == "" {
		return nil, NoAttackerError()
	}

	chart, err := r.TypeChart(ctx, gen)
	if err != nil {
		return nil, err
	}
	att, err := load(ctx, r, attacker, gen)
	if err != nil {
		return nil, err
	}

	res := make([]Result, len(defenders))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Jobs())
	for i, name := range defenders {
		g.Go(func() error {
			def, err := load(gctx, r, name, gen)
			if err != nil {
				return err
			}
			res[i] = compare(chart, def, att, opts)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("Matchup computed",
		"attacker", att.pokemon.Name,
		"defenders", len(defenders),
		"generation", gen,
	)
	return res, nil
}

func load(ctx context.Context, r Resolver, ref string, gen int) (fighter, error) {
	p, err := r.Pokemon(ctx, ref, gen)
	if err != nil {
		return fighter{}, err
	}
	moves, err := r.Moves(ctx, p)
	if err != nil {
		return fighter{}, err
	}
	return fighter{pokemon: p, moves: moves}, nil
}

func compare(chart *typechart.Chart, def, att fighter, opts Options) Result {
	defense := chart.Defense(def.pokemon.Typing.Types()...)
	return Result{
		Generation:    chart.Generation,
		Defender:      side(def.pokemon),
		Attacker:      side(att.pokemon),
		Defense:       defense,
		Weaknesses:    defense.Groups(),
		AttackerMoves: effects(chart, att, def.pokemon.Typing, opts),
		DefenderMoves: effects(chart, def, att.pokemon.Typing, opts),
	}
}

func side(p dex.Pokemon) Side {
	return Side{Name: p.Name, Typing: p.Typing, Stats: p.Stats}
}

// effects rates moves of a user against a target typing. Status moves
// are left out.
func effects(
	chart *typechart.Chart,
	user fighter,
	target dex.Typing,
	opts Options,
) []MoveEffect {
	var res []MoveEffect
	for _, mv := range user.moves {
		if mv.IsStatus() {
			continue
		}
		stab := user.pokemon.Typing.Has(mv.Type)
		if opts.StabOnly && !stab {
			continue
		}
		mult := chart.Against(mv.Type, target.Types()...)
		if mult < opts.MinMultiplier {
			continue
		}
		res = append(res, MoveEffect{
			Name:        mv.Name,
			Type:        mv.Type,
			DamageClass: mv.DamageClass,
			Power:       mv.Power,
			Accuracy:    mv.Accuracy,
			Multiplier:  mult,
			STAB:        stab,
		})
	}

	slices.SortStableFunc(res, func(a, b MoveEffect) int {
		if c := cmp.Compare(b.Multiplier, a.Multiplier); c != 0 {
			return c
		}
		if a.STAB != b.STAB {
			if a.STAB {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return res
}
