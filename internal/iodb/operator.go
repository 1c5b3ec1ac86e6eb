// Package iodb opens the dataset storage, a SQLite file or a PostgreSQL
// database, behind database/sql.
// This is an impure I/O package used by the store, schema and populate
// implementations.
package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/gndex/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	// SQLite keeps the dataset in a local file.
	SQLite = "sqlite"
	// Postgres keeps the dataset in a PostgreSQL database.
	Postgres = "postgres"
)

// Operator holds a connection to the dataset storage.
type Operator struct {
	cfg  config.StoreConfig
	path string
	db   *sql.DB
	pool *pgxpool.Pool
}

// New creates an Operator (without connecting).
func New(cfg *config.Config) *Operator {
	return &Operator{cfg: cfg.Store, path: cfg.DBPath()}
}

// Backend returns the storage backend name.
func (o *Operator) Backend() string {
	return o.cfg.Backend
}

// Target describes where the data lives, for logs and messages.
func (o *Operator) Target() string {
	if o.cfg.Backend == Postgres {
		return fmt.Sprintf("%s:%d/%s", o.cfg.Host, o.cfg.Port, o.cfg.Database)
	}
	return o.path
}

// BatchSize is the number of rows inserted by one statement.
func (o *Operator) BatchSize() int {
	return o.cfg.BatchSize
}

// Connect opens the storage and checks that it responds.
func (o *Operator) Connect(ctx context.Context) error {
	var err error
	switch o.cfg.Backend {
	case SQLite:
		err = o.connectSQLite(ctx)
	case Postgres:
		err = o.connectPostgres(ctx)
	default:
		return BackendError(o.cfg.Backend)
	}
	if err != nil {
		return ConnectionError(o.cfg.Backend, o.Target(), err)
	}
	return nil
}

func (o *Operator) connectSQLite(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(o.path), 0755); err != nil {
		return err
	}

	dsn := "file:" + o.path +
		"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	o.db = db
	return nil
}

func (o *Operator) connectPostgres(ctx context.Context) error {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		o.cfg.User,
		o.cfg.Password,
		o.cfg.Host,
		o.cfg.Port,
		o.cfg.Database,
		o.cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return err
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}
	o.pool = pool
	o.db = stdlib.OpenDBFromPool(pool)
	return nil
}

// DB returns the database handle, or nil before Connect.
func (o *Operator) DB() *sql.DB {
	return o.db
}

// Close releases all connections.
func (o *Operator) Close() error {
	var err error
	if o.db != nil {
		err = o.db.Close()
		o.db = nil
	}
	if o.pool != nil {
		o.pool.Close()
		o.pool = nil
	}
	return err
}

// Rebind converts '?' placeholders to the '$n' form PostgreSQL
// expects. Queries for SQLite are returned as is.
func (o *Operator) Rebind(query string) string {
	if o.cfg.Backend != Postgres {
		return query
	}
	var sb strings.Builder
	var n int
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Tables returns names of all user tables.
func (o *Operator) Tables(ctx context.Context) ([]string, error) {
	if o.db == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`
	if o.cfg.Backend == Postgres {
		query = `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'`
	}

	rows, err := o.db.QueryContext(ctx, query)
	if err != nil {
		return nil, TableCheckError(err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, TableCheckError(err)
		}
		res = append(res, name)
	}
	if err = rows.Err(); err != nil {
		return nil, TableCheckError(err)
	}
	return res, nil
}

// TableExists checks if a table exists.
func (o *Operator) TableExists(ctx context.Context, table string) (bool, error) {
	tables, err := o.Tables(ctx)
	if err != nil {
		return false, err
	}
	for _, v := range tables {
		if v == table {
			return true, nil
		}
	}
	return false, nil
}

// DropAllTables drops all user tables.
func (o *Operator) DropAllTables(ctx context.Context) error {
	tables, err := o.Tables(ctx)
	if err != nil {
		return err
	}

	for _, table := range tables {
		q := "DROP TABLE IF EXISTS " + table
		if o.cfg.Backend == Postgres {
			q += " CASCADE"
		}
		if _, err = o.db.ExecContext(ctx, q); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}
