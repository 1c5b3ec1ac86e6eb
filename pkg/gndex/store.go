package gndex

import (
	"context"

	"github.com/gnames/gndex/pkg/schema"
)

// Resource is a kind of named records that can be listed.
type Resource string

const (
	ResourcePokemon   Resource = "pokemon"
	ResourceMoves     Resource = "moves"
	ResourceAbilities Resource = "abilities"
	ResourceGames     Resource = "games"
	ResourceTypes     Resource = "types"
)

// Resources lists all resources in the order the CLI shows them.
var Resources = []Resource{
	ResourcePokemon, ResourceMoves, ResourceAbilities,
	ResourceGames, ResourceTypes,
}

// Store gives row-level read access to the dataset.
//
// Lookups by key accept either a numeric id or a name. They return nil
// without an error when nothing matches. Change rows are returned for
// all generations, the caller decides which of them apply.
type Store interface {
	// Games returns all games.
	Games(ctx context.Context) ([]schema.Game, error)

	// Types returns canonical types.
	Types(ctx context.Context) ([]schema.Type, error)

	// TypeChanges returns change rows of all types.
	TypeChanges(ctx context.Context) ([]schema.TypeChange, error)

	// Move finds a canonical move by id or name.
	Move(ctx context.Context, key string) (*schema.Move, error)

	// MoveChanges returns change rows of a move.
	MoveChanges(ctx context.Context, moveID int) ([]schema.MoveChange, error)

	// Ability finds an ability by id or name.
	Ability(ctx context.Context, key string) (*schema.Ability, error)

	// Pokemon finds a canonical pokemon by id or name.
	Pokemon(ctx context.Context, key string) (*schema.Pokemon, error)

	// PokemonTypeChanges returns typing change rows of a pokemon.
	PokemonTypeChanges(
		ctx context.Context,
		pokemonID int,
	) ([]schema.PokemonTypeChange, error)

	// PokemonMoves returns learnset rows of a pokemon for all generations.
	PokemonMoves(ctx context.Context, pokemonID int) ([]schema.PokemonMove, error)

	// PokemonAbilities returns ability slots of a pokemon.
	PokemonAbilities(
		ctx context.Context,
		pokemonID int,
	) ([]schema.PokemonAbility, error)

	// Species finds species by id.
	Species(ctx context.Context, id int) (*schema.Species, error)

	// Evolution finds an evolution chain by id.
	Evolution(ctx context.Context, id int) (*schema.Evolution, error)

	// Names lists names of a resource ordered by id.
	Names(ctx context.Context, res Resource) ([]string, error)

	// Meta returns a metadata value, or empty string if it is not set.
	Meta(ctx context.Context, name string) (string, error)

	// Close releases the store.
	Close() error
}
