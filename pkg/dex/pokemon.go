package dex

import (
	"context"
	"log/slog"
	"slices"

	"github.com/gnames/gndex/pkg/changelog"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
	"golang.org/x/sync/errgroup"
)

// typingDelta is a full typing a pokemon had in older generations.
// Typing changes as a whole, so a missing secondary type means the
// pokemon was mono-typed.
type typingDelta schema.PokemonTypeChange

// Overlay implements changelog.Partial.
func (d typingDelta) Overlay(t Typing) Typing {
	res := Typing{Primary: d.PrimaryType}
	if d.SecondaryType != nil {
		res.Secondary = *d.SecondaryType
	}
	return res
}

// Pokemon resolves a pokemon by id or name for a generation. Names
// missing from the dataset are looked up among custom pokemon.
func (r *Resolver) Pokemon(ctx context.Context, ref string, gen int) (Pokemon, error) {
	if err := r.checkGeneration(gen); err != nil {
		return Pokemon{}, err
	}
	key := normalize(ref)
	row, err := r.store.Pokemon(ctx, key)
	if err != nil {
		return Pokemon{}, err
	}
	if row == nil {
		if c, ok := r.custom.Find(key); ok {
			return r.customPokemon(ctx, c, gen)
		}
		return Pokemon{}, r.notFound(ctx, "Pokemon", gndex.ResourcePokemon, key,
			r.custom.Nicknames()...)
	}

	return fetch(r.cache, cacheKey("pokemon", row.ID, gen), func() (Pokemon, error) {
		return r.resolvePokemon(ctx, row, gen)
	})
}

func (r *Resolver) resolvePokemon(
	ctx context.Context,
	row *schema.Pokemon,
	gen int,
) (Pokemon, error) {
	var typeRows []schema.PokemonTypeChange
	var moveRows []schema.PokemonMove
	var abilityRows []schema.PokemonAbility
	var species *schema.Species

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		typeRows, err = r.store.PokemonTypeChanges(gctx, row.ID)
		return err
	})
	g.Go(func() (err error) {
		moveRows, err = r.store.PokemonMoves(gctx, row.ID)
		return err
	})
	g.Go(func() (err error) {
		abilityRows, err = r.store.PokemonAbilities(gctx, row.ID)
		return err
	})
	g.Go(func() (err error) {
		species, err = r.store.Species(gctx, row.SpeciesID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Pokemon{}, err
	}

	if first, ok := firstGeneration(moveRows); ok && first > gen {
		return Pokemon{}, AbsentError("Pokemon", row.Name, gen, first)
	}

	canonical := Typing{Primary: row.PrimaryType}
	if row.SecondaryType != nil {
		canonical.Secondary = *row.SecondaryType
	}
	changes := make([]changelog.Change[typingDelta], len(typeRows))
	for i, v := range typeRows {
		changes[i] = changelog.Change[typingDelta]{
			Generation: v.Generation,
			Partial:    typingDelta(v),
		}
	}
	typing, err := changelog.Resolve(canonical, r.Latest(), changes, gen)
	if err != nil {
		return Pokemon{}, err
	}

	res := Pokemon{
		ID:         row.ID,
		Name:       row.Name,
		Generation: gen,
		Game:       r.games.Game(gen),
		Typing:     typing,
		Stats: Stats{
			HP:             row.HP,
			Attack:         row.Attack,
			Defense:        row.Defense,
			SpecialAttack:  row.SpecialAttack,
			SpecialDefense: row.SpecialDefense,
			Speed:          row.Speed,
		},
		Abilities: abilities(abilityRows),
	}
	res.Learnset, res.Learnable = learnset(moveRows, gen)

	if species != nil {
		res.Species = species.Name
		res.Group = group(species)
		if species.EvolutionID != nil {
			res.EvolutionID = *species.EvolutionID
		}
	}

	slog.Debug("Resolved pokemon",
		"pokemon", row.Name,
		"generation", gen,
		"typing", typing.Types(),
		"learnset", len(res.Learnset),
	)
	return res, nil
}

// Moves resolves moves a pokemon can use in its generation. Moves
// that cannot be resolved in that generation are skipped.
func (r *Resolver) Moves(ctx context.Context, p Pokemon) ([]Move, error) {
	names := p.MoveNames()
	res := make([]Move, len(names))
	ok := make([]bool, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)
	for i, name := range names {
		g.Go(func() error {
			mv, err := r.Move(gctx, name, p.Generation)
			if err != nil {
				if isNotFound(err) {
					slog.Debug("Skipping move",
						"pokemon", p.Name, "move", name, "error", err)
					return nil
				}
				return err
			}
			res[i] = mv
			ok[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var moves []Move
	for i := range res {
		if ok[i] {
			moves = append(moves, res[i])
		}
	}
	return moves, nil
}

func firstGeneration(rows []schema.PokemonMove) (int, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	res := rows[0].Generation
	for _, v := range rows[1:] {
		res = min(res, v.Generation)
	}
	return res, true
}

func learnset(rows []schema.PokemonMove, gen int) ([]LearnMove, []string) {
	var moves []LearnMove
	var learnable []string
	seen := make(map[string]struct{})
	for _, v := range rows {
		if _, ok := seen[v.MoveName]; !ok {
			seen[v.MoveName] = struct{}{}
			learnable = append(learnable, v.MoveName)
		}
		if v.Generation == gen {
			moves = append(moves, LearnMove{
				Name:   v.MoveName,
				Method: v.LearnMethod,
				Level:  v.LearnLevel,
			})
		}
	}
	slices.Sort(learnable)
	return moves, learnable
}

func abilities(rows []schema.PokemonAbility) []PokemonAbility {
	res := make([]PokemonAbility, len(rows))
	for i, v := range rows {
		res[i] = PokemonAbility{Name: v.AbilityName, Hidden: v.IsHidden, Slot: v.Slot}
	}
	slices.SortStableFunc(res, func(a, b PokemonAbility) int {
		return a.Slot - b.Slot
	})
	return res
}

func group(s *schema.Species) string {
	switch {
	case s.IsMythical:
		return "mythical"
	case s.IsLegendary:
		return "legendary"
	case s.IsBaby:
		return "baby"
	default:
		return "regular"
	}
}
