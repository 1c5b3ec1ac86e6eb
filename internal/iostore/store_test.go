package iostore_test

import (
	"context"
	"testing"

	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/iopopulate"
	"github.com/gnames/gndex/internal/ioschema"
	"github.com/gnames/gndex/internal/iostore"
	"github.com/gnames/gndex/internal/iotesting"
	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/matchup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// populated creates a SQLite dataset from the test dump.
func populated(t *testing.T) *config.Config {
	t.Helper()
	ctx := context.Background()
	cfg := iotesting.SQLiteConfig(t)
	op := iodb.New(cfg)
	require.NoError(t, op.Connect(ctx))
	defer op.Close()

	require.NoError(t, ioschema.NewManager(op).Create(ctx, false))
	err := iopopulate.New(op, true).Populate(ctx, iotesting.WriteDump(t))
	require.NoError(t, err)
	return cfg
}

func open(t *testing.T) gndex.Store {
	t.Helper()
	store, err := iostore.Open(context.Background(), populated(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_Lookups(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	games, err := store.Games(ctx)
	require.NoError(t, err)
	assert.Len(t, games, 10)

	p, err := store.Pokemon(ctx, "flygon")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 330, p.ID)
	require.NotNil(t, p.SecondaryType)
	assert.Equal(t, "dragon", *p.SecondaryType)

	p, err = store.Pokemon(ctx, "706")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "goodra", p.Name)
	assert.Nil(t, p.SecondaryType)

	p, err = store.Pokemon(ctx, "unknown-mon")
	require.NoError(t, err)
	assert.Nil(t, p)

	mv, err := store.Move(ctx, "swords-dance")
	require.NoError(t, err)
	require.NotNil(t, mv)
	assert.Nil(t, mv.Power)
	assert.Equal(t, 20, *mv.PP)

	changes, err := store.MoveChanges(ctx, 98)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, 3, changes[0].Generation)
	assert.Equal(t, 30, *changes[0].Power)
	assert.Nil(t, changes[0].Accuracy)

	sp, err := store.Species(ctx, 173)
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.True(t, sp.IsBaby)
	assert.False(t, sp.IsMythical)

	abs, err := store.PokemonAbilities(ctx, 257)
	require.NoError(t, err)
	assert.Len(t, abs, 2)

	version, err := store.Meta(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0", version)
}

func TestStore_TypeRelations(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	types, err := store.Types(ctx)
	require.NoError(t, err)
	require.Len(t, types, 19)
	assert.Equal(t, "normal", types[0].Name)
	assert.True(t, types[0].NoDamageTo.Has("ghost"))
	assert.NotNil(t, types[0].DoubleDamageTo)
	assert.Empty(t, types[0].DoubleDamageTo)

	changes, err := store.TypeChanges(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, changes)
	ghost := changes[0]
	assert.Equal(t, 8, ghost.TypeID)
	require.NotNil(t, ghost.NoDamageTo)
	assert.ElementsMatch(t, []string{"normal", "psychic"}, *ghost.NoDamageTo)
	assert.Nil(t, ghost.HalfDamageTo)
}

func TestStore_Names(t *testing.T) {
	ctx := context.Background()
	store := open(t)

	tests := []struct {
		res   gndex.Resource
		num   int
		first string
	}{
		{gndex.ResourcePokemon, 8, "clefairy"},
		{gndex.ResourceMoves, 16, "swords-dance"},
		{gndex.ResourceAbilities, 12, "speed-boost"},
		{gndex.ResourceGames, 10, "red-blue"},
		{gndex.ResourceTypes, 19, "normal"},
	}

	for _, tt := range tests {
		t.Run(string(tt.res), func(t *testing.T) {
			names, err := store.Names(ctx, tt.res)
			require.NoError(t, err)
			assert.Len(t, names, tt.num)
			assert.Equal(t, tt.first, names[0])
		})
	}

	_, err := store.Names(ctx, gndex.Resource("berries"))
	assert.True(t, errcode.Is(err, errcode.InvalidInputError))
}

func TestStore_Resolution(t *testing.T) {
	ctx := context.Background()
	r, err := dex.New(ctx, open(t), dex.OptCache(dex.NewCache()))
	require.NoError(t, err)

	mv, err := r.Move(ctx, "quick-attack", 3)
	require.NoError(t, err)
	assert.Equal(t, 30, *mv.Power)

	res, err := matchup.Match(ctx, r,
		[]string{"flygon", "goodra"}, "blaziken", 9, matchup.Options{})
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "flygon", res[0].Defender.Name)
	assert.Equal(t, "goodra", res[1].Defender.Name)
	assert.Equal(t, []string{"ice"}, res[0].Weaknesses.Quad)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty dataset", func(t *testing.T) {
		_, err := iostore.Open(ctx, iotesting.SQLiteConfig(t))
		assert.True(t, errcode.Is(err, errcode.StoreNotReadyError))
	})

	t.Run("old version", func(t *testing.T) {
		cfg := populated(t)
		op := iodb.New(cfg)
		require.NoError(t, op.Connect(ctx))
		_, err := op.DB().ExecContext(ctx,
			"UPDATE meta SET value = 'v0.0.3' WHERE name = 'version'")
		require.NoError(t, err)
		op.Close()

		_, err = iostore.Open(ctx, cfg)
		assert.True(t, errcode.Is(err, errcode.StoreVersionError))
	})

	t.Run("bad backend", func(t *testing.T) {
		cfg := iotesting.SQLiteConfig(t)
		cfg.Store.Backend = "mysql"
		_, err := iostore.Open(ctx, cfg)
		assert.True(t, errcode.Is(err, errcode.StoreBackendError))
	})
}
