// Package dex resolves pokemon, moves, abilities and types for a
// generation. Canonical records hold the latest generation values, older
// generations are reconstructed from change rows.
package dex

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/gnames/gndex/pkg/errcode"
	"github.com/gnames/gndex/pkg/game"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/typechart"
)

// Resolver builds generation-correct snapshots from a Store.
type Resolver struct {
	store gndex.Store
	games *game.Mapper
	cache *Cache
	jobs  int

	custom CustomCollection
}

// Option configures a Resolver.
type Option func(*Resolver)

// OptCache sets a cache shared by resolution calls. Without it nothing
// is memoized.
func OptCache(c *Cache) Option {
	return func(r *Resolver) {
		r.cache = c
	}
}

// OptJobs limits concurrent store reads of a single call.
func OptJobs(i int) Option {
	return func(r *Resolver) {
		if i > 0 {
			r.jobs = i
		}
	}
}

// New creates a Resolver. It reads games from the store to learn known
// generations.
func New(ctx context.Context, store gndex.Store, opts ...Option) (*Resolver, error) {
	games, err := store.Games(ctx)
	if err != nil {
		return nil, err
	}
	res := Resolver{
		store: store,
		games: game.New(games),
		jobs:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res, nil
}

// Games returns the game mapper of the dataset.
func (r *Resolver) Games() *game.Mapper {
	return r.games
}

// Jobs returns the concurrency limit.
func (r *Resolver) Jobs() int {
	return r.jobs
}

// Generation converts a game name or a generation number to a
// generation. Empty string means the latest generation.
func (r *Resolver) Generation(arg string) (int, error) {
	return r.games.Generation(arg)
}

// Latest is the generation canonical records belong to.
func (r *Resolver) Latest() int {
	return r.games.Latest()
}

func (r *Resolver) checkGeneration(gen int) error {
	if !r.games.Valid(gen) {
		return game.UnknownGenerationError(strconv.Itoa(gen), nil)
	}
	return nil
}

// TypeChart returns the type chart of a generation.
func (r *Resolver) TypeChart(ctx context.Context, gen int) (*typechart.Chart, error) {
	if err := r.checkGeneration(gen); err != nil {
		return nil, err
	}
	return fetch(r.cache, cacheKey("chart", 0, gen), func() (*typechart.Chart, error) {
		types, err := r.store.Types(ctx)
		if err != nil {
			return nil, err
		}
		changes, err := r.store.TypeChanges(ctx)
		if err != nil {
			return nil, err
		}
		slog.Debug("Resolving type chart",
			"generation", gen,
			"types", len(types),
			"changes", len(changes),
		)
		return typechart.New(gen, r.Latest(), types, changes)
	})
}

// Type returns multipliers of one type in a generation.
func (r *Resolver) Type(ctx context.Context, name string, gen int) (Type, error) {
	chart, err := r.TypeChart(ctx, gen)
	if err != nil {
		return Type{}, err
	}
	name = normalize(name)
	if !chart.Has(name) {
		return Type{}, NotFoundError("Type", name, chart.Types)
	}
	res := Type{
		Name:       name,
		Generation: gen,
		Offense:    chart.Offense(name),
		Defense:    chart.Defense(name),
	}
	return res, nil
}

// Names lists names of a resource.
func (r *Resolver) Names(ctx context.Context, res gndex.Resource) ([]string, error) {
	if res == gndex.ResourceGames {
		return r.games.Names(), nil
	}
	return r.store.Names(ctx, res)
}

func (r *Resolver) notFound(
	ctx context.Context,
	kind string,
	res gndex.Resource,
	ref string,
	extra ...string,
) error {
	names, err := r.store.Names(ctx, res)
	if err != nil {
		slog.Warn("Cannot load names for suggestions", "resource", res, "error", err)
	}
	return NotFoundError(kind, ref, append(names, extra...))
}

func normalize(ref string) string {
	ref = strings.ToLower(strings.TrimSpace(ref))
	return strings.Join(strings.Fields(ref), "-")
}

func cacheKey(kind string, id, gen int) string {
	return fmt.Sprintf("%s:%d:%d", kind, id, gen)
}

func isNotFound(err error) bool {
	return errcode.Is(err, errcode.NotFoundError)
}
