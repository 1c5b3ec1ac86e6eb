// Package iostore implements gndex.Store over a SQLite or PostgreSQL
// dataset.
// This is an impure I/O package.
package iostore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gnames/gndex/internal/iodb"
	app "github.com/gnames/gndex/pkg"
	"github.com/gnames/gndex/pkg/config"
	"github.com/gnames/gndex/pkg/gndex"
	"github.com/gnames/gndex/pkg/schema"
	"golang.org/x/mod/semver"
)

type store struct {
	op *iodb.Operator
}

// Open connects to the dataset and checks that it was populated by a
// compatible version of the app.
func Open(ctx context.Context, cfg *config.Config) (gndex.Store, error) {
	op := iodb.New(cfg)
	if err := op.Connect(ctx); err != nil {
		return nil, err
	}
	res := &store{op: op}

	if err := res.checkVersion(ctx); err != nil {
		op.Close()
		return nil, err
	}

	slog.Info("Opened dataset",
		"backend", op.Backend(),
		"target", op.Target(),
	)
	return res, nil
}

func (s *store) checkVersion(ctx context.Context) error {
	ok, err := s.op.TableExists(ctx, schema.Meta{}.TableName())
	if err != nil {
		return err
	}
	if !ok {
		return NotReadyError(s.op.Target())
	}

	version, err := s.Meta(ctx, "version")
	if err != nil {
		return err
	}
	if version == "" {
		return NotReadyError(s.op.Target())
	}

	if !semver.IsValid(version) ||
		semver.MajorMinor(version) != semver.MajorMinor(app.Version) {
		return VersionError(version, app.Version)
	}
	return nil
}

func (s *store) Games(ctx context.Context) ([]schema.Game, error) {
	return selectRows[schema.Game](ctx, s, "")
}

func (s *store) Types(ctx context.Context) ([]schema.Type, error) {
	return selectRows[schema.Type](ctx, s, "")
}

func (s *store) TypeChanges(ctx context.Context) ([]schema.TypeChange, error) {
	return selectRows[schema.TypeChange](ctx, s, "")
}

func (s *store) Move(ctx context.Context, key string) (*schema.Move, error) {
	where, arg := keyFilter(key)
	return selectOne[schema.Move](ctx, s, where, arg)
}

func (s *store) MoveChanges(
	ctx context.Context,
	moveID int,
) ([]schema.MoveChange, error) {
	return selectRows[schema.MoveChange](ctx, s, "move_id = ?", moveID)
}

func (s *store) Ability(ctx context.Context, key string) (*schema.Ability, error) {
	where, arg := keyFilter(key)
	return selectOne[schema.Ability](ctx, s, where, arg)
}

func (s *store) Pokemon(ctx context.Context, key string) (*schema.Pokemon, error) {
	where, arg := keyFilter(key)
	return selectOne[schema.Pokemon](ctx, s, where, arg)
}

func (s *store) PokemonTypeChanges(
	ctx context.Context,
	pokemonID int,
) ([]schema.PokemonTypeChange, error) {
	return selectRows[schema.PokemonTypeChange](ctx, s, "pokemon_id = ?", pokemonID)
}

func (s *store) PokemonMoves(
	ctx context.Context,
	pokemonID int,
) ([]schema.PokemonMove, error) {
	return selectRows[schema.PokemonMove](ctx, s, "pokemon_id = ?", pokemonID)
}

func (s *store) PokemonAbilities(
	ctx context.Context,
	pokemonID int,
) ([]schema.PokemonAbility, error) {
	return selectRows[schema.PokemonAbility](ctx, s, "pokemon_id = ?", pokemonID)
}

func (s *store) Species(ctx context.Context, id int) (*schema.Species, error) {
	return selectOne[schema.Species](ctx, s, "id = ?", id)
}

func (s *store) Evolution(ctx context.Context, id int) (*schema.Evolution, error) {
	return selectOne[schema.Evolution](ctx, s, "id = ?", id)
}

var resourceTables = map[gndex.Resource]string{
	gndex.ResourcePokemon:   schema.Pokemon{}.TableName(),
	gndex.ResourceMoves:     schema.Move{}.TableName(),
	gndex.ResourceAbilities: schema.Ability{}.TableName(),
	gndex.ResourceGames:     schema.Game{}.TableName(),
	gndex.ResourceTypes:     schema.Type{}.TableName(),
}

func (s *store) Names(ctx context.Context, res gndex.Resource) ([]string, error) {
	table, ok := resourceTables[res]
	if !ok {
		return nil, ResourceError(string(res))
	}

	q := fmt.Sprintf("SELECT name FROM %s ORDER BY id", table)
	rows, err := s.op.DB().QueryContext(ctx, q)
	if err != nil {
		return nil, ReadError(table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, ReadError(table, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadError(table, err)
	}
	return names, nil
}

func (s *store) Meta(ctx context.Context, name string) (string, error) {
	row, err := selectOne[schema.Meta](ctx, s, "name = ?", name)
	if err != nil || row == nil {
		return "", err
	}
	return row.Value, nil
}

func (s *store) Close() error {
	return s.op.Close()
}

// keyFilter treats numeric keys as ids and everything else as names.
func keyFilter(key string) (string, any) {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		return "id = ?", id
	}
	return "name = ?", key
}

func selectRows[T schema.DDLGenerator](
	ctx context.Context,
	s *store,
	where string,
	args ...any,
) ([]T, error) {
	var zero T
	table := zero.TableName()
	cols := schema.Columns(zero)

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	if where != "" {
		q += " WHERE " + where
	}
	q += " ORDER BY " + cols[0]

	rows, err := s.op.DB().QueryContext(ctx, s.op.Rebind(q), args...)
	if err != nil {
		return nil, ReadError(table, err)
	}
	defer rows.Close()

	var res []T
	for rows.Next() {
		var row T
		if err = rows.Scan(schema.Targets(&row)...); err != nil {
			return nil, ReadError(table, err)
		}
		res = append(res, row)
	}
	if err = rows.Err(); err != nil {
		return nil, ReadError(table, err)
	}
	return res, nil
}

func selectOne[T schema.DDLGenerator](
	ctx context.Context,
	s *store,
	where string,
	args ...any,
) (*T, error) {
	rows, err := selectRows[T](ctx, s, where, args...)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

var _ gndex.Store = (*store)(nil)
