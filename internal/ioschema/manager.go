// Package ioschema implements SchemaManager interface for dataset
// schema management. This is an impure I/O package that runs DDL
// statements on SQLite and GORM AutoMigrate on PostgreSQL.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the gndex.SchemaManager interface.
type manager struct {
	operator *iodb.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op *iodb.Operator) gndex.SchemaManager {
	return &manager{operator: op}
}

// Create creates dataset tables and their indexes.
func (m *manager) Create(ctx context.Context, force bool) error {
	if m.operator.DB() == nil {
		return iodb.NotConnectedError()
	}

	tables, err := m.operator.Tables(ctx)
	if err != nil {
		return err
	}
	if len(tables) > 0 {
		if !force {
			return TablesExistError(m.operator.Target(), len(tables))
		}
		slog.Warn("Dropping existing tables",
			"target", m.operator.Target(),
			"tables", len(tables),
		)
		if err = m.operator.DropAllTables(ctx); err != nil {
			return err
		}
	}

	if m.operator.Backend() == iodb.Postgres {
		err = m.migrate()
	} else {
		err = m.createTables(ctx)
	}
	if err != nil {
		return err
	}

	if err = m.createIndexes(ctx); err != nil {
		return err
	}

	slog.Info("Schema created",
		"backend", m.operator.Backend(),
		"target", m.operator.Target(),
	)
	return nil
}

// migrate creates tables with GORM AutoMigrate.
func (m *manager) migrate() error {
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: m.operator.DB()}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB); err != nil {
		return CreateSchemaError("", err)
	}
	return nil
}

// createTables creates tables from the DDL of the models.
func (m *manager) createTables(ctx context.Context) error {
	db := m.operator.DB()
	for _, v := range schema.AllModels() {
		if _, err := db.ExecContext(ctx, v.TableDDL()); err != nil {
			return CreateSchemaError(v.TableName(), err)
		}
	}
	return nil
}

func (m *manager) createIndexes(ctx context.Context) error {
	db := m.operator.DB()
	for _, v := range schema.AllModels() {
		for _, idx := range v.IndexDDL() {
			if _, err := db.ExecContext(ctx, idx); err != nil {
				return CreateSchemaError(v.TableName(), err)
			}
		}
	}
	return nil
}
