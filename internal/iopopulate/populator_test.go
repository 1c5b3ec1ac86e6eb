package iopopulate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/iopopulate"
	"github.com/gnames/gndex/internal/ioschema"
	"github.com/gnames/gndex/internal/iotesting"
	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, opts ...config.Option) *iodb.Operator {
	t.Helper()
	cfg := iotesting.SQLiteConfig(t)
	cfg.Update(opts)
	op := iodb.New(cfg)
	require.NoError(t, op.Connect(context.Background()))
	t.Cleanup(func() { op.Close() })
	return op
}

func count(t *testing.T, op *iodb.Operator, table string) int {
	t.Helper()
	var res int
	err := op.DB().QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestPopulate(t *testing.T) {
	ctx := context.Background()
	// small batches make several statements per table
	op := connect(t, config.OptStoreBatchSize(7))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, false))

	err := iopopulate.New(op, true).Populate(ctx, iotesting.WriteDump(t))
	require.NoError(t, err)

	ds := iotesting.Dataset(t)
	tests := []struct {
		table string
		num   int
	}{
		{"games", len(ds.Games)},
		{"types", len(ds.Types)},
		{"type_changes", len(ds.TypeChanges)},
		{"moves", len(ds.Moves)},
		{"move_changes", len(ds.MoveChanges)},
		{"pokemon", len(ds.Pokemon)},
		{"pokemon_moves", len(ds.PokemonMoves)},
		{"pokemon_abilities", len(ds.PokemonAbilities)},
		{"meta", 1},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			assert.Equal(t, tt.num, count(t, op, tt.table))
		})
	}

	var version string
	err = op.DB().QueryRow("SELECT value FROM meta WHERE name = 'version'").
		Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ds.Version, version)
}

func TestPopulateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("no schema", func(t *testing.T) {
		op := connect(t)
		err := iopopulate.New(op, true).Populate(ctx, iotesting.WriteDump(t))
		assert.True(t, errcode.Is(err, errcode.StoreNotReadyError))
	})

	t.Run("missing dump", func(t *testing.T) {
		op := connect(t)
		err := iopopulate.New(op, true).Populate(ctx, "/no/such/dump.yaml")
		assert.True(t, errcode.Is(err, errcode.PopulateDumpReadError))
	})

	t.Run("bad dump", func(t *testing.T) {
		op := connect(t)
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: {oops"), 0644))
		err := iopopulate.New(op, true).Populate(ctx, path)
		assert.True(t, errcode.Is(err, errcode.PopulateDumpReadError))
	})

	t.Run("duplicate rows", func(t *testing.T) {
		op := connect(t)
		require.NoError(t, ioschema.NewManager(op).Create(ctx, false))
		pop := iopopulate.New(op, true)
		path := iotesting.WriteDump(t)
		require.NoError(t, pop.Populate(ctx, path))
		err := pop.Populate(ctx, path)
		assert.True(t, errcode.Is(err, errcode.PopulateInsertError))
	})

	t.Run("not connected", func(t *testing.T) {
		op := iodb.New(iotesting.SQLiteConfig(t))
		err := iopopulate.New(op, true).Populate(ctx, iotesting.WriteDump(t))
		assert.True(t, errcode.Is(err, errcode.StoreConnectionError))
	})
}
