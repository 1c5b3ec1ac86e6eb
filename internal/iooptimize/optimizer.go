// Package iooptimize implements Optimizer interface. It removes
// orphaned rows left by partial dumps and refreshes database
// statistics.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iodb"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gnfmt"
)

// optimizer implements the Optimizer interface.
type optimizer struct {
	operator *iodb.Operator
}

// New creates a new Optimizer.
func New(op *iodb.Operator) gndex.Optimizer {
	return &optimizer{operator: op}
}

// Optimize executes sequential steps:
//  1. Remove orphaned change, learnset and ability rows
//  2. Run VACUUM and ANALYZE
func (o *optimizer) Optimize(ctx context.Context) error {
	if o.operator.DB() == nil {
		return iodb.NotConnectedError()
	}
	timeStart := time.Now()

	slog.Info("Step 1/2: Removing orphans")
	msg, err := removeOrphans(ctx, o)
	if err != nil {
		return err
	}
	gn.Info("%s", msg)

	slog.Info("Step 2/2: Refreshing statistics")
	if err = vacuumAnalyze(ctx, o); err != nil {
		return err
	}

	elapsed := gnfmt.TimeString(time.Since(timeStart).Seconds())
	slog.Info("Dataset optimization completed", "duration", elapsed)
	gn.Info("Optimization complete in <em>%s</em>", elapsed)
	return nil
}
