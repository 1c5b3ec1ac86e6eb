package dex

import (
	"context"

	"github.com/gnames/gndex/pkg/changelog"
	"github.com/gnames/gndex/pkg/gndex"
)

// Ability finds an ability by id or name. Abilities have no change
// rows, so any generation resolves to the canonical record.
func (r *Resolver) Ability(ctx context.Context, ref string) (Ability, error) {
	key := normalize(ref)
	row, err := r.store.Ability(ctx, key)
	if err != nil {
		return Ability{}, err
	}
	if row == nil {
		return Ability{}, r.notFound(ctx, "Ability", gndex.ResourceAbilities, key)
	}

	canonical := Ability{
		ID:         row.ID,
		Name:       row.Name,
		Effect:     row.Effect,
		Generation: row.Generation,
	}
	return changelog.Resolve[Ability, changelog.Static[Ability]](
		canonical, r.Latest(), nil, r.Latest(),
	)
}
