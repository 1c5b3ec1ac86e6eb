package dex

import (
	"context"
	"log/slog"

	"github.com/gnames/gndex/pkg/changelog"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
)

type moveDelta schema.MoveChange

// Overlay implements changelog.Partial.
func (d moveDelta) Overlay(m Move) Move {
	if d.Power != nil {
		m.Power = d.Power
	}
	if d.Accuracy != nil {
		m.Accuracy = d.Accuracy
	}
	if d.PP != nil {
		m.PP = d.PP
	}
	if d.EffectChance != nil {
		m.EffectChance = d.EffectChance
	}
	if d.Effect != nil {
		m.Effect = *d.Effect
	}
	if d.Type != nil {
		m.Type = *d.Type
	}
	return m
}

// Move resolves a move by id or name for a generation.
func (r *Resolver) Move(ctx context.Context, ref string, gen int) (Move, error) {
	if err := r.checkGeneration(gen); err != nil {
		return Move{}, err
	}
	key := normalize(ref)
	row, err := r.store.Move(ctx, key)
	if err != nil {
		return Move{}, err
	}
	if row == nil {
		return Move{}, r.notFound(ctx, "Move", gndex.ResourceMoves, key)
	}
	if row.Generation > gen {
		return Move{}, AbsentError("Move", row.Name, gen, row.Generation)
	}

	return fetch(r.cache, cacheKey("move", row.ID, gen), func() (Move, error) {
		return r.resolveMove(ctx, row, gen)
	})
}

func (r *Resolver) resolveMove(ctx context.Context, row *schema.Move, gen int) (Move, error) {
	rows, err := r.store.MoveChanges(ctx, row.ID)
	if err != nil {
		return Move{}, err
	}
	changes := make([]changelog.Change[moveDelta], len(rows))
	for i, v := range rows {
		changes[i] = changelog.Change[moveDelta]{
			Generation: v.Generation,
			Partial:    moveDelta(v),
		}
	}

	canonical := Move{
		ID:           row.ID,
		Name:         row.Name,
		Introduced:   row.Generation,
		Power:        row.Power,
		Accuracy:     row.Accuracy,
		PP:           row.PP,
		EffectChance: row.EffectChance,
		Effect:       row.Effect,
		Type:         row.Type,
		DamageClass:  row.DamageClass,
	}
	latest := r.Latest()
	res, err := changelog.Resolve(canonical, latest, changes, gen)
	if err != nil {
		return Move{}, err
	}
	res.Generation = gen

	slog.Debug("Resolved move",
		"move", row.Name,
		"generation", gen,
		"applied", changelog.Applicable(changes, latest, gen),
	)
	return res, nil
}
