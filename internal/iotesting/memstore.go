package iotesting

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
)

// ErrBroken is returned by a MemStore after Break was called.
var ErrBroken = errors.New("store is broken")

// MemStore is a gndex.Store that keeps a Dataset in memory.
type MemStore struct {
	data   *schema.Dataset
	broken atomic.Bool
}

// NewMemStore creates a MemStore from the embedded dataset.
func NewMemStore(t *testing.T) *MemStore {
	t.Helper()
	return &MemStore{data: Dataset(t)}
}

// Break makes every following read fail with ErrBroken.
func (s *MemStore) Break() {
	s.broken.Store(true)
}

func (s *MemStore) check() error {
	if s.broken.Load() {
		return ErrBroken
	}
	return nil
}

func (s *MemStore) Games(_ context.Context) ([]schema.Game, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Games), nil
}

func (s *MemStore) Types(_ context.Context) ([]schema.Type, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.Types), nil
}

func (s *MemStore) TypeChanges(_ context.Context) ([]schema.TypeChange, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return slices.Clone(s.data.TypeChanges), nil
}

func (s *MemStore) Move(_ context.Context, key string) (*schema.Move, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return find(s.data.Moves, key, func(v schema.Move) (int, string) {
		return v.ID, v.Name
	}), nil
}

func (s *MemStore) MoveChanges(
	_ context.Context,
	moveID int,
) ([]schema.MoveChange, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return filter(s.data.MoveChanges, func(v schema.MoveChange) bool {
		return v.MoveID == moveID
	}), nil
}

func (s *MemStore) Ability(_ context.Context, key string) (*schema.Ability, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return find(s.data.Abilities, key, func(v schema.Ability) (int, string) {
		return v.ID, v.Name
	}), nil
}

func (s *MemStore) Pokemon(_ context.Context, key string) (*schema.Pokemon, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return find(s.data.Pokemon, key, func(v schema.Pokemon) (int, string) {
		return v.ID, v.Name
	}), nil
}

func (s *MemStore) PokemonTypeChanges(
	_ context.Context,
	pokemonID int,
) ([]schema.PokemonTypeChange, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return filter(s.data.PokemonTypeChanges, func(v schema.PokemonTypeChange) bool {
		return v.PokemonID == pokemonID
	}), nil
}

func (s *MemStore) PokemonMoves(
	_ context.Context,
	pokemonID int,
) ([]schema.PokemonMove, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return filter(s.data.PokemonMoves, func(v schema.PokemonMove) bool {
		return v.PokemonID == pokemonID
	}), nil
}

func (s *MemStore) PokemonAbilities(
	_ context.Context,
	pokemonID int,
) ([]schema.PokemonAbility, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return filter(s.data.PokemonAbilities, func(v schema.PokemonAbility) bool {
		return v.PokemonID == pokemonID
	}), nil
}

func (s *MemStore) Species(_ context.Context, id int) (*schema.Species, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return find(s.data.Species, strconv.Itoa(id), func(v schema.Species) (int, string) {
		return v.ID, v.Name
	}), nil
}

func (s *MemStore) Evolution(_ context.Context, id int) (*schema.Evolution, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return find(s.data.Evolutions, strconv.Itoa(id), func(v schema.Evolution) (int, string) {
		return v.ID, ""
	}), nil
}

func (s *MemStore) Names(_ context.Context, res gndex.Resource) ([]string, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	var names []string
	switch res {
	case gndex.ResourcePokemon:
		names = sortedNames(s.data.Pokemon, func(v schema.Pokemon) (int, string) {
			return v.ID, v.Name
		})
	case gndex.ResourceMoves:
		names = sortedNames(s.data.Moves, func(v schema.Move) (int, string) {
			return v.ID, v.Name
		})
	case gndex.ResourceAbilities:
		names = sortedNames(s.data.Abilities, func(v schema.Ability) (int, string) {
			return v.ID, v.Name
		})
	case gndex.ResourceGames:
		names = sortedNames(s.data.Games, func(v schema.Game) (int, string) {
			return v.ID, v.Name
		})
	case gndex.ResourceTypes:
		names = sortedNames(s.data.Types, func(v schema.Type) (int, string) {
			return v.ID, v.Name
		})
	}
	return names, nil
}

func (s *MemStore) Meta(_ context.Context, name string) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	if name == "version" {
		return s.data.Version, nil
	}
	return "", nil
}

func (s *MemStore) Close() error {
	return nil
}

func find[T any](rows []T, key string, idName func(T) (int, string)) *T {
	id, err := strconv.Atoi(key)
	for i := range rows {
		rowID, name := idName(rows[i])
		if (err == nil && rowID == id) || (err != nil && name == key) {
			res := rows[i]
			return &res
		}
	}
	return nil
}

func filter[T any](rows []T, keep func(T) bool) []T {
	var res []T
	for _, v := range rows {
		if keep(v) {
			res = append(res, v)
		}
	}
	return res
}

func sortedNames[T any](rows []T, idName func(T) (int, string)) []string {
	sorted := slices.Clone(rows)
	slices.SortFunc(sorted, func(a, b T) int {
		ida, _ := idName(a)
		idb, _ := idName(b)
		return ida - idb
	})
	res := make([]string, len(sorted))
	for i, v := range sorted {
		_, res[i] = idName(v)
	}
	return res
}

var _ gndex.Store = (*MemStore)(nil)
