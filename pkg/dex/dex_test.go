package dex_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iotesting"
	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, opts ...dex.Option) (*dex.Resolver, *iotesting.MemStore) {
	t.Helper()
	store := iotesting.NewMemStore(t)
	r, err := dex.New(context.Background(), store, opts...)
	require.NoError(t, err)
	return r, store
}

func gnError(t *testing.T, err error) *gn.Error {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "Error should be of type *gn.Error")
	return gnErr
}

func TestGeneration(t *testing.T) {
	r, _ := newResolver(t)
	assert.Equal(t, 9, r.Latest())

	tests := []struct {
		msg, arg string
		gen      int
		hasErr   bool
	}{
		{"empty", "", 9, false},
		{"number", "3", 3, false},
		{"game", "x-y", 6, false},
		{"game case", " Sun-Moon ", 7, false},
		{"bad number", "10", 0, true},
		{"bad game", "x-z", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			gen, err := r.Generation(tt.arg)
			if tt.hasErr {
				assert.True(t, errcode.Is(err, errcode.UnknownGenerationError))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.gen, gen)
		})
	}
}

func TestPokemon(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	p, err := r.Pokemon(ctx, " Blaziken ", 9)
	require.NoError(t, err)
	assert.Equal(t, 257, p.ID)
	assert.Equal(t, "scarlet-violet", p.Game)
	assert.Equal(t, dex.Typing{Primary: "fire", Secondary: "fighting"}, p.Typing)
	assert.Equal(t, 530, p.Stats.Total())
	assert.Equal(t, 80, p.Stats.HP)
	assert.Equal(t, "regular", p.Group)
	assert.Equal(t, []dex.PokemonAbility{
		{Name: "blaze", Slot: 1},
		{Name: "speed-boost", Hidden: true, Slot: 3},
	}, p.Abilities)
	assert.Equal(t,
		[]string{
			"blaze-kick", "sky-uppercut", "flamethrower",
			"earthquake", "quick-attack", "swords-dance",
		},
		p.MoveNames(),
	)

	byID, err := r.Pokemon(ctx, "257", 9)
	require.NoError(t, err)
	assert.Equal(t, p, byID)

	p, err = r.Pokemon(ctx, "blaziken", 3)
	require.NoError(t, err)
	assert.Equal(t, "ruby-sapphire", p.Game)
	assert.Len(t, p.Learnset, 5)
}

func TestPokemonTyping(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	tests := []struct {
		msg, name string
		gen       int
		typing    dex.Typing
	}{
		{"clefairy gen1", "clefairy", 1, dex.Typing{Primary: "normal"}},
		{"clefairy gen5", "clefairy", 5, dex.Typing{Primary: "normal"}},
		{"clefairy gen6", "clefairy", 6, dex.Typing{Primary: "fairy"}},
		{"magnemite gen1", "magnemite", 1, dex.Typing{Primary: "electric"}},
		{"magnemite gen2", "magnemite", 2,
			dex.Typing{Primary: "electric", Secondary: "steel"}},
		{"gengar no changes", "gengar", 1,
			dex.Typing{Primary: "ghost", Secondary: "poison"}},
		{"gengar latest", "gengar", 9,
			dex.Typing{Primary: "ghost", Secondary: "poison"}},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			p, err := r.Pokemon(ctx, tt.name, tt.gen)
			require.NoError(t, err)
			assert.Equal(t, tt.typing, p.Typing)
		})
	}
}

func TestPokemonGroup(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	tests := []struct {
		name, group string
	}{
		{"mew", "mythical"},
		{"cleffa", "baby"},
		{"flygon", "regular"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Pokemon(ctx, tt.name, 9)
			require.NoError(t, err)
			assert.Equal(t, tt.group, p.Group)
		})
	}
}

func TestPokemonErrors(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	t.Run("unknown name", func(t *testing.T) {
		_, err := r.Pokemon(ctx, "unknown-mon", 9)
		require.Error(t, err)
		assert.True(t, errcode.Is(err, errcode.NotFoundError))
		gnErr := gnError(t, err)
		assert.Equal(t, "unknown-mon", gnErr.Vars[1])
		assert.Contains(t, gnErr.Err.Error(), "unknown-mon")
	})

	t.Run("suggestion", func(t *testing.T) {
		_, err := r.Pokemon(ctx, "blazikn", 9)
		gnErr := gnError(t, err)
		assert.Equal(t, "potential matches: blaziken", gnErr.Vars[2])
	})

	t.Run("absent in generation", func(t *testing.T) {
		_, err := r.Pokemon(ctx, "goodra", 5)
		require.Error(t, err)
		assert.True(t, errcode.Is(err, errcode.NotFoundError))
		gnErr := gnError(t, err)
		assert.Equal(t, []any{"Pokemon", "goodra", 5, 6}, gnErr.Vars)
	})

	t.Run("unknown generation", func(t *testing.T) {
		_, err := r.Pokemon(ctx, "blaziken", 10)
		assert.True(t, errcode.Is(err, errcode.UnknownGenerationError))
	})

	t.Run("store failure", func(t *testing.T) {
		r, store := newResolver(t)
		store.Break()
		_, err := r.Pokemon(ctx, "blaziken", 9)
		assert.ErrorIs(t, err, iotesting.ErrBroken)
	})
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	tests := []struct {
		msg, name string
		gen       int
		power     int
		accuracy  int
		tp        string
	}{
		{"canonical", "quick-attack", 9, 40, 100, "normal"},
		{"after change row", "quick-attack", 4, 40, 100, "normal"},
		{"change row generation", "quick-attack", 3, 30, 100, "normal"},
		// a change row covers every generation up to its own one
		{"before change row", "quick-attack", 1, 30, 100, "normal"},
		{"by id", "98", 9, 40, 100, "normal"},
		{"type change", "bite", 1, 60, 100, "normal"},
		{"type canonical", "bite", 2, 60, 100, "dark"},
		{"accuracy change", "shadow-ball", 2, 80, 95, "ghost"},
		{"accuracy canonical", "shadow-ball", 4, 80, 100, "ghost"},
		{"power change", "flamethrower", 5, 95, 100, "fire"},
		{"power canonical", "flamethrower", 6, 90, 100, "fire"},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			mv, err := r.Move(ctx, tt.name, tt.gen)
			require.NoError(t, err)
			require.NotNil(t, mv.Power)
			require.NotNil(t, mv.Accuracy)
			assert.Equal(t, tt.power, *mv.Power)
			assert.Equal(t, tt.accuracy, *mv.Accuracy)
			assert.Equal(t, tt.tp, mv.Type)
			assert.Equal(t, tt.gen, mv.Generation)
		})
	}
}

func TestMoveStatus(t *testing.T) {
	r, _ := newResolver(t)
	mv, err := r.Move(context.Background(), "swords-dance", 9)
	require.NoError(t, err)
	assert.True(t, mv.IsStatus())
	assert.Nil(t, mv.Power)
	assert.Equal(t, 20, *mv.PP)
}

func TestMoveErrors(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	_, err := r.Move(ctx, "moonblast", 5)
	assert.True(t, errcode.Is(err, errcode.NotFoundError))

	_, err = r.Move(ctx, "moonbeam", 9)
	gnErr := gnError(t, err)
	assert.Equal(t, errcode.NotFoundError, gnErr.Code)
	assert.Equal(t, "moonbeam", gnErr.Vars[1])

	_, err = r.Move(ctx, "quick-attack", 0)
	assert.True(t, errcode.Is(err, errcode.UnknownGenerationError))
}

func TestAbility(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	a, err := r.Ability(ctx, "Speed Boost")
	require.NoError(t, err)
	assert.Equal(t, 3, a.ID)
	assert.Equal(t, 3, a.Generation)
	assert.Equal(t, "Raises Speed every turn.", a.Effect)

	_, err = r.Ability(ctx, "blaz")
	gnErr := gnError(t, err)
	assert.Equal(t, errcode.NotFoundError, gnErr.Code)
	assert.Equal(t, "potential matches: blaze", gnErr.Vars[2])
}

func TestType(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	tests := []struct {
		msg      string
		gen      int
		types    int
		attacker string
		defender string
		mult     float64
	}{
		{"gen1 ghost", 1, 15, "ghost", "psychic", 0},
		{"gen9 ghost", 9, 18, "ghost", "psychic", 2},
		{"gen5 ghost on steel", 5, 17, "ghost", "steel", 0.5},
		{"gen6 ghost on steel", 6, 18, "ghost", "steel", 1},
		{"gen1 bug on poison", 1, 15, "bug", "poison", 2},
		{"gen2 bug on poison", 2, 17, "bug", "poison", 0.5},
		{"gen1 ice on fire", 1, 15, "ice", "fire", 1},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			chart, err := r.TypeChart(ctx, tt.gen)
			require.NoError(t, err)
			assert.Len(t, chart.Types, tt.types)
			assert.NotContains(t, chart.Types, "unknown")

			tp, err := r.Type(ctx, tt.attacker, tt.gen)
			require.NoError(t, err)
			assert.Equal(t, tt.mult, tp.Offense.Get(tt.defender))
		})
	}

	_, err := r.Type(ctx, "fairy", 5)
	assert.True(t, errcode.Is(err, errcode.NotFoundError))

	_, err = r.TypeChart(ctx, 0)
	assert.True(t, errcode.Is(err, errcode.UnknownGenerationError))
}

func TestMoves(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	p, err := r.Pokemon(ctx, "blaziken", 3)
	require.NoError(t, err)
	moves, err := r.Moves(ctx, p)
	require.NoError(t, err)
	names := make([]string, len(moves))
	for i, v := range moves {
		names[i] = v.Name
		assert.Equal(t, 3, v.Generation)
	}
	assert.Equal(t,
		[]string{
			"blaze-kick", "sky-uppercut", "quick-attack",
			"earthquake", "swords-dance",
		},
		names,
	)

	// no learnset in generation 4, all learnable moves are used
	p, err = r.Pokemon(ctx, "magnemite", 4)
	require.NoError(t, err)
	assert.Empty(t, p.Learnset)
	moves, err = r.Moves(ctx, p)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "thunderbolt", moves[0].Name)
}

func TestEvolution(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	tests := []struct {
		name  string
		chain []string
	}{
		{"blaziken", []string{"torchic", "combusken", "blaziken"}},
		{"clefairy", []string{"cleffa", "clefairy", "clefable"}},
		{"magnemite", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := r.Pokemon(ctx, tt.name, 9)
			require.NoError(t, err)
			evo, err := r.Evolution(ctx, p)
			require.NoError(t, err)
			if tt.chain == nil {
				assert.Nil(t, evo)
				return
			}
			require.NotNil(t, evo)
			assert.Equal(t, tt.chain, evo.Names())
		})
	}
}

func TestNames(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t)

	games, err := r.Names(ctx, gndex.ResourceGames)
	require.NoError(t, err)
	assert.Len(t, games, 10)
	assert.Equal(t, "red-blue", games[0])
	assert.Equal(t, "scarlet-violet", games[9])

	pokemon, err := r.Names(ctx, gndex.ResourcePokemon)
	require.NoError(t, err)
	assert.Equal(t, "clefairy", pokemon[0])
	assert.Contains(t, pokemon, "goodra")
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	cache := dex.NewCache()
	r, _ := newResolver(t, dex.OptCache(cache), dex.OptJobs(2))
	assert.Equal(t, 2, r.Jobs())

	var wg sync.WaitGroup
	res := make([]dex.Pokemon, 20)
	errs := make([]error, 20)
	for i := range res {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res[i], errs[i] = r.Pokemon(ctx, "flygon", 9)
		}()
	}
	wg.Wait()

	for i := range res {
		require.NoError(t, errs[i])
		assert.Equal(t, res[0], res[i])
	}
	assert.Equal(t, 1, cache.Len())

	_, err := r.Pokemon(ctx, "flygon", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())

	// failed resolutions are not cached
	_, err = r.Pokemon(ctx, "goodra", 5)
	require.Error(t, err)
	assert.Equal(t, 2, cache.Len())
}

func customTeam() dex.CustomCollection {
	return dex.CustomCollection{Pokemon: []dex.Custom{
		{
			Nickname:   "Blaze",
			Base:       "blaziken",
			Generation: 3,
			Moves:      []string{"Flamethrower", "sky-uppercut"},
			Types:      []string{"fire"},
		},
		{Nickname: "moon", Base: "clefairy", Generation: 3},
		{Nickname: "flygon", Base: "goodra", Generation: 9},
		{Nickname: "ghost", Base: "missingno", Generation: 1},
		{Nickname: "tri", Base: "mew", Types: []string{"fire", "water", "grass"}},
		{Nickname: "pixie", Base: "mew", Types: []string{"fairy"}},
		{Nickname: "future", Base: "mew", Generation: 12},
	}}
}

func TestCustomPokemon(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t, dex.OptCustom(customTeam()))

	p, err := r.Pokemon(ctx, " BLAZE ", 9)
	require.NoError(t, err)
	assert.Equal(t, "blaze", p.Name)
	assert.Equal(t, 9, p.Generation)
	assert.Equal(t, "scarlet-violet", p.Game)
	assert.Equal(t, dex.Typing{Primary: "fire"}, p.Typing)
	assert.Equal(t, 530, p.Stats.Total())
	assert.Equal(t, "blaze", p.Abilities[0].Name)
	assert.Equal(t, []string{"flamethrower", "sky-uppercut"}, p.MoveNames())

	moves, err := r.Moves(ctx, p)
	require.NoError(t, err)
	require.Len(t, moves, 2)
	assert.Equal(t, 90, *moves[0].Power)

	// the cached base pokemon is not changed
	base, err := r.Pokemon(ctx, "blaziken", 3)
	require.NoError(t, err)
	assert.Equal(t, "fighting", base.Typing.Secondary)
	assert.Contains(t, base.MoveNames(), "blaze-kick")

	// typing comes from the base generation
	p, err = r.Pokemon(ctx, "moon", 9)
	require.NoError(t, err)
	assert.Equal(t, dex.Typing{Primary: "normal"}, p.Typing)
	assert.Equal(t, []string{"ice-beam", "moonblast", "quick-attack"}, p.MoveNames())

	// dataset names take precedence
	p, err = r.Pokemon(ctx, "flygon", 9)
	require.NoError(t, err)
	assert.Equal(t, "dragon", p.Typing.Secondary)
	assert.Equal(t, 80, p.Stats.HP)
}

func TestCustomPokemonErrors(t *testing.T) {
	ctx := context.Background()
	r, _ := newResolver(t, dex.OptCustom(customTeam()))

	tests := []struct {
		msg, name string
		gen       int
		code      gn.ErrorCode
	}{
		{"unknown base", "ghost", 9, errcode.NotFoundError},
		{"too many types", "tri", 9, errcode.InvalidInputError},
		{"type not introduced", "pixie", 5, errcode.InvalidInputError},
		{"unknown base generation", "future", 9, errcode.UnknownGenerationError},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := r.Pokemon(ctx, tt.name, tt.gen)
			require.Error(t, err)
			assert.True(t, errcode.Is(err, tt.code))
		})
	}

	p, err := r.Pokemon(ctx, "pixie", 6)
	require.NoError(t, err)
	assert.Equal(t, "fairy", p.Typing.Primary)

	_, err = r.Pokemon(ctx, "blazikn", 9)
	gnErr := gnError(t, err)
	assert.Equal(t, "potential matches: blaziken, blaze", gnErr.Vars[2])
}
