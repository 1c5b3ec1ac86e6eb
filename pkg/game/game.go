// Package game maps games and generation numbers to generations.
package game

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gndex/pkg/schema"
)

// Mapper knows every game of the dataset.
type Mapper struct {
	games []schema.Game
	gens  map[int]struct{}
}

// New creates a Mapper from the games table.
func New(games []schema.Game) *Mapper {
	res := Mapper{
		games: slices.Clone(games),
		gens:  make(map[int]struct{}),
	}
	slices.SortFunc(res.games, func(a, b schema.Game) int {
		return cmp.Compare(a.ReleaseOrder, b.ReleaseOrder)
	})
	for _, v := range res.games {
		res.gens[v.Generation] = struct{}{}
	}
	return &res
}

// Latest returns the most recent generation, or 0 if there are no games.
func (m *Mapper) Latest() int {
	var res int
	for gen := range m.gens {
		res = max(res, gen)
	}
	return res
}

// Valid reports whether at least one game belongs to generation gen.
func (m *Mapper) Valid(gen int) bool {
	_, ok := m.gens[gen]
	return ok
}

// Game returns the last released game of a generation.
func (m *Mapper) Game(gen int) string {
	var res string
	for _, v := range m.games {
		if v.Generation == gen {
			res = v.Name
		}
	}
	return res
}

// Names returns game names in release order.
func (m *Mapper) Names() []string {
	res := make([]string, len(m.games))
	for i, v := range m.games {
		res[i] = v.Name
	}
	return res
}

// Generation converts a game name or a generation number to a
// generation. Empty argument means the latest generation.
func (m *Mapper) Generation(arg string) (int, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "" {
		if len(m.games) == 0 {
			return 0, NoGamesError()
		}
		return m.Latest(), nil
	}

	if gen, err := strconv.Atoi(arg); err == nil {
		if !m.Valid(gen) {
			return 0, UnknownGenerationError(arg, nil)
		}
		return gen, nil
	}

	for _, v := range m.games {
		if v.Name == arg {
			return v.Generation, nil
		}
	}
	return 0, UnknownGenerationError(arg, m.Names())
}
