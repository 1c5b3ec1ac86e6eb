package dex

import (
	"context"
	"log/slog"
	"slices"
)

// Custom is a user-defined pokemon. It borrows stats and abilities of
// a base pokemon as it was in Generation, and replaces its moves and,
// optionally, its typing.
type Custom struct {
	Nickname   string   `yaml:"nickname"`
	Base       string   `yaml:"base"`
	Generation int      `yaml:"generation"`
	Moves      []string `yaml:"moves"`

	// Types overrides the base typing with one or two types.
	Types []string `yaml:"types,omitempty"`
}

// CustomCollection is the content of a custom.yaml file.
type CustomCollection struct {
	Pokemon []Custom `yaml:"pokemon"`
}

// Find returns a custom pokemon by its nickname, ignoring case.
func (c CustomCollection) Find(nickname string) (Custom, bool) {
	key := normalize(nickname)
	for _, v := range c.Pokemon {
		if normalize(v.Nickname) == key {
			return v, true
		}
	}
	return Custom{}, false
}

// Nicknames returns nicknames of all custom pokemon.
func (c CustomCollection) Nicknames() []string {
	res := make([]string, len(c.Pokemon))
	for i, v := range c.Pokemon {
		res[i] = normalize(v.Nickname)
	}
	return res
}

// OptCustom adds user-defined pokemon. They are used when a name is
// not found in the dataset.
func OptCustom(c CustomCollection) Option {
	return func(r *Resolver) {
		r.custom = c
	}
}

// customPokemon builds a pokemon snapshot for generation gen from a
// custom entry.
func (r *Resolver) customPokemon(
	ctx context.Context,
	c Custom,
	gen int,
) (Pokemon, error) {
	baseGen := gen
	if c.Generation > 0 {
		baseGen = c.Generation
	}
	if err := r.checkGeneration(baseGen); err != nil {
		return Pokemon{}, err
	}

	key := normalize(c.Base)
	row, err := r.store.Pokemon(ctx, key)
	if err != nil {
		return Pokemon{}, err
	}
	if row == nil {
		return Pokemon{}, CustomBaseError(c.Nickname, c.Base)
	}
	base, err := fetch(r.cache, cacheKey("pokemon", row.ID, baseGen), func() (Pokemon, error) {
		return r.resolvePokemon(ctx, row, baseGen)
	})
	if err != nil {
		return Pokemon{}, err
	}

	res := base
	res.Name = normalize(c.Nickname)
	res.Generation = gen
	res.Game = r.games.Game(gen)

	if len(c.Types) > 0 {
		res.Typing, err = r.customTyping(ctx, c, gen)
		if err != nil {
			return Pokemon{}, err
		}
	}

	// without moves the base learnset stays
	if len(c.Moves) > 0 {
		res.Learnset = make([]LearnMove, len(c.Moves))
		for i, v := range c.Moves {
			res.Learnset[i] = LearnMove{Name: normalize(v), Method: "custom"}
		}
		res.Learnable = nil
	}

	slog.Debug("Resolved custom pokemon",
		"pokemon", res.Name,
		"base", base.Name,
		"generation", gen,
		"typing", res.Typing.Types(),
	)
	return res, nil
}

// customTyping checks that override types exist in generation gen.
func (r *Resolver) customTyping(
	ctx context.Context,
	c Custom,
	gen int,
) (Typing, error) {
	if len(c.Types) > 2 {
		return Typing{}, CustomTypingError(c.Nickname, c.Types)
	}
	chart, err := r.TypeChart(ctx, gen)
	if err != nil {
		return Typing{}, err
	}
	types := make([]string, len(c.Types))
	for i, v := range c.Types {
		types[i] = normalize(v)
		if !slices.Contains(chart.Types, types[i]) {
			return Typing{}, CustomTypingError(c.Nickname, c.Types)
		}
	}

	res := Typing{Primary: types[0]}
	if len(types) == 2 && types[1] != types[0] {
		res.Secondary = types[1]
	}
	return res, nil
}
