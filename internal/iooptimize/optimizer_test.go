package iooptimize_test

import (
	"context"
	"testing"

	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/iooptimize"
	"github.com/gnames/gndex/internal/iopopulate"
	"github.com/gnames/gndex/internal/ioschema"
	"github.com/gnames/gndex/internal/iotesting"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func count(t *testing.T, op *iodb.Operator, table string) int {
	t.Helper()
	var res int
	err := op.DB().QueryRow("SELECT count(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestOptimize(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping SQLite test in short mode")
	}
	ctx := context.Background()
	op := iodb.New(iotesting.SQLiteConfig(t))
	require.NoError(t, op.Connect(ctx))
	defer op.Close()

	require.NoError(t, ioschema.NewManager(op).Create(ctx, false))
	err := iopopulate.New(op, true).Populate(ctx, iotesting.WriteDump(t))
	require.NoError(t, err)

	tables := []string{
		"type_changes", "move_changes", "pokemon_type_changes",
		"pokemon_moves", "pokemon_abilities", "moves", "pokemon",
	}
	before := make(map[string]int)
	for _, v := range tables {
		before[v] = count(t, op, v)
	}

	orphans := []string{
		`INSERT INTO move_changes (id, move_id, generation, power)
			VALUES (1000, 9999, 3, 10)`,
		`INSERT INTO pokemon_moves (id, pokemon_id, move_name, learn_method, generation)
			VALUES (1000, 257, 'splash', 'level-up', 9)`,
		`INSERT INTO pokemon_moves (id, pokemon_id, move_name, learn_method, generation)
			VALUES (1001, 9999, 'surf', 'machine', 9)`,
		`INSERT INTO pokemon_abilities (id, pokemon_id, ability_name, slot)
			VALUES (1000, 257, 'pressure', 2)`,
		`INSERT INTO pokemon_abilities (id, pokemon_id, ability_name, slot)
			VALUES (1001, 9999, 'levitate', 1)`,
		`INSERT INTO pokemon_type_changes (id, pokemon_id, generation, primary_type)
			VALUES (1000, 9999, 1, 'normal')`,
	}
	for _, q := range orphans {
		_, err = op.DB().ExecContext(ctx, q)
		require.NoError(t, err)
	}
	assert.Equal(t, before["pokemon_moves"]+2, count(t, op, "pokemon_moves"))
	assert.Equal(t, before["pokemon_abilities"]+2, count(t, op, "pokemon_abilities"))

	opt := iooptimize.New(op)
	require.NoError(t, opt.Optimize(ctx))
	for _, v := range tables {
		assert.Equal(t, before[v], count(t, op, v), v)
	}

	// nothing is left to remove
	require.NoError(t, opt.Optimize(ctx))
	assert.Equal(t, before["pokemon_moves"], count(t, op, "pokemon_moves"))
}

func TestOptimize_NotConnected(t *testing.T) {
	op := iodb.New(iotesting.SQLiteConfig(t))
	err := iooptimize.New(op).Optimize(context.Background())
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.StoreConnectionError))
}
