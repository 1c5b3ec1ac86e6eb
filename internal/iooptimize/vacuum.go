package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gndex/internal/iodb"
)

// vacuumAnalyze reclaims space and updates query planner statistics.
// It must run outside of a transaction.
func vacuumAnalyze(ctx context.Context, o *optimizer) error {
	timeStart := time.Now()

	stmts := []string{"VACUUM", "ANALYZE"}
	if o.operator.Backend() == iodb.Postgres {
		stmts = []string{"VACUUM ANALYZE"}
	}

	for _, q := range stmts {
		if _, err := o.operator.DB().ExecContext(ctx, q); err != nil {
			return VacuumError(q, err)
		}
	}

	slog.Info("VACUUM ANALYZE completed",
		"duration", time.Since(timeStart).String())
	return nil
}
