package ioschema_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/internal/ioschema"
	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_NotConnected(t *testing.T) {
	op := iodb.New(config.New())
	err := ioschema.NewManager(op).Create(context.Background(), false)
	assert.True(t, errcode.Is(err, errcode.StoreConnectionError))
}

func TestManager_CreateSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptStoreBackend("sqlite"),
		config.OptStorePath(filepath.Join(t.TempDir(), "test.db")),
	})
	op := iodb.New(cfg)
	require.NoError(t, op.Connect(ctx))
	defer op.Close()

	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx, false))

	tables, err := op.Tables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, len(schema.AllModels()))
	for _, v := range schema.AllModels() {
		assert.Contains(t, tables, v.TableName())
	}

	err = mgr.Create(ctx, false)
	assert.True(t, errcode.Is(err, errcode.SchemaTablesExistError))

	_, err = op.DB().ExecContext(ctx,
		"INSERT INTO meta (name, value) VALUES ('version', 'v0.1.0')")
	require.NoError(t, err)

	require.NoError(t, mgr.Create(ctx, true))
	var num int
	err = op.DB().QueryRowContext(ctx, "SELECT count(*) FROM meta").Scan(&num)
	require.NoError(t, err)
	assert.Equal(t, 0, num)
}
