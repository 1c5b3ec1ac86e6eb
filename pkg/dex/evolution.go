package dex

import (
	"context"

	"github.com/gnames/gnfmt"
)

// EvolutionStep is a node of an evolution chain.
type EvolutionStep struct {
	Name string `json:"name"`

	// Trigger describes how the previous step evolves into this one.
	Trigger string          `json:"trigger,omitempty"`
	Next    []EvolutionStep `json:"next,omitempty"`
}

// Names returns all pokemon names of the chain, depth first.
func (s EvolutionStep) Names() []string {
	res := []string{s.Name}
	for _, v := range s.Next {
		res = append(res, v.Names()...)
	}
	return res
}

// Evolution returns the evolution chain of a pokemon, or nil if the
// pokemon has none.
func (r *Resolver) Evolution(ctx context.Context, p Pokemon) (*EvolutionStep, error) {
	if p.EvolutionID == 0 {
		return nil, nil
	}
	return fetch(r.cache, cacheKey("evolution", p.EvolutionID, 0), func() (*EvolutionStep, error) {
		row, err := r.store.Evolution(ctx, p.EvolutionID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, nil
		}

		var res EvolutionStep
		enc := gnfmt.GNjson{}
		if err = enc.Decode([]byte(row.Chain), &res); err != nil {
			return nil, EvolutionDecodeError(row.ID, err)
		}
		return &res, nil
	})
}
