// Package iopopulate implements Populator interface for importing a
// dataset dump into the storage.
// This is an impure I/O package that reads YAML dumps and performs
// batch inserts.
package iopopulate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iodb"
	app "github.com/gnames/gndex/pkg"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
	"github.com/gnames/gnfmt"
	"gopkg.in/yaml.v3"
)

// populator implements the Populator interface.
type populator struct {
	operator *iodb.Operator
	quiet    bool
}

// New creates a new Populator. Quiet populator does not show
// progress bars.
func New(op *iodb.Operator, quiet bool) gndex.Populator {
	return &populator{operator: op, quiet: quiet}
}

// Populate imports all tables of a dump and records its version.
func (p *populator) Populate(ctx context.Context, path string) error {
	db := p.operator.DB()
	if db == nil {
		return iodb.NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting dataset population", "dump", path)

	ds, err := readDump(path)
	if err != nil {
		return err
	}

	ok, err := p.operator.TableExists(ctx, schema.Meta{}.TableName())
	if err != nil {
		return err
	}
	if !ok {
		return NoSchemaError(p.operator.Target())
	}

	var total int64
	for _, tbl := range ds.Tables() {
		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		if err = p.insert(ctx, tbl); err != nil {
			return err
		}
		total += int64(len(tbl.Rows))
		slog.Info("Imported table",
			"table", tbl.Table,
			"rows", humanize.Comma(int64(len(tbl.Rows))),
		)
	}

	version := ds.Version
	if version == "" {
		version = app.Version
	}
	if err = p.setMeta(ctx, "version", version); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Population complete",
		"rows", total,
		"version", version,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Population complete
Imported <em>%s</em> rows, dataset version <em>%s</em>.
Elapsed time: <em>%s</em>`,
		humanize.Comma(total),
		version,
		gnfmt.TimeString(duration.Seconds()),
	)
	return nil
}

func readDump(path string) (*schema.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DumpReadError(path, err)
	}
	var res schema.Dataset
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, DumpReadError(path, err)
	}
	return &res, nil
}

// insert writes rows of a table in batches, within one transaction.
func (p *populator) insert(ctx context.Context, tbl schema.TableRows) error {
	if len(tbl.Rows) == 0 {
		return nil
	}

	tx, err := p.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return InsertError(tbl.Table, err)
	}
	defer tx.Rollback()

	var bar progress = noProgress{}
	if !p.quiet {
		bar = newProgressBar(len(tbl.Rows), tbl.Table)
	}
	defer bar.Finish()

	batch := max(p.operator.BatchSize(), 1)
	// keep the number of placeholders well under SQLite limits
	batch = min(batch, max(30_000/len(tbl.Columns), 1))

	for start := 0; start < len(tbl.Rows); start += batch {
		end := min(start+batch, len(tbl.Rows))
		q, args := insertQuery(tbl.Table, tbl.Columns, tbl.Rows[start:end])
		if _, err = tx.ExecContext(ctx, p.operator.Rebind(q), args...); err != nil {
			return InsertError(tbl.Table, err)
		}
		bar.Add(end - start)
	}

	if err = tx.Commit(); err != nil {
		return InsertError(tbl.Table, err)
	}
	return nil
}

func (p *populator) setMeta(ctx context.Context, name, value string) error {
	db := p.operator.DB()
	q := p.operator.Rebind("DELETE FROM meta WHERE name = ?")
	if _, err := db.ExecContext(ctx, q, name); err != nil {
		return InsertError("meta", err)
	}
	meta := schema.Meta{Name: name, Value: value}
	q, args := insertQuery(meta.TableName(), schema.Columns(meta),
		[][]any{schema.Values(meta)})
	if _, err := db.ExecContext(ctx, p.operator.Rebind(q), args...); err != nil {
		return InsertError("meta", err)
	}
	return nil
}

func insertQuery(table string, cols []string, rows [][]any) (string, []any) {
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	values := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(cols))
	for i := range rows {
		values[i] = row
		args = append(args, rows[i]...)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table,
		strings.Join(cols, ", "),
		strings.Join(values, ", "),
	)
	return q, args
}
