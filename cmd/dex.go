package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gndex/internal/iofs"
	"github.com/gnames/gndex/internal/iostore"
	"github.com/gnames/gndex/internal/ioview"
	"github.com/gnames/gndex/pkg/dex"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/spf13/cobra"
)

// session holds what a query command needs: an open store, a resolver
// with a cache for the run, the generation asked for and a view.
type session struct {
	store gndex.Store
	dex   *dex.Resolver
	gen   int
	view  *ioview.View
}

func (s *session) Close() {
	_ = s.store.Close()
}

// openSession connects to the store and converts game to a generation.
// Custom pokemon are read from the user's custom file.
func openSession(ctx context.Context, cmd *cobra.Command, game string) (*session, error) {
	custom, err := iofs.ReadCustom(cfg.CustomFile())
	if err != nil {
		return nil, err
	}

	store, err := iostore.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	r, err := dex.New(ctx, store,
		dex.OptCache(dex.NewCache()),
		dex.OptJobs(cfg.JobsNumber),
		dex.OptCustom(custom),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	gen, err := r.Generation(gameArg(game))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	res := session{
		store: store,
		dex:   r,
		gen:   gen,
		view:  ioview.New(cmd.OutOrStdout(), cfg),
	}
	return &res, nil
}

// withErrorMessage prints errors of a command run to the user.
func withErrorMessage(
	run func(cmd *cobra.Command, args []string) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			gn.PrintErrorMessage(err)
		}
		return err
	}
}
