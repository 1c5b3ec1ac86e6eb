// Package schema provides storage models for gndex.
// Canonical tables hold the latest generation values; *_changes tables
// hold snapshots of changed fields for older generations.
package schema

// DDLGenerator defines how Go models generate SQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Game is a released game and the generation it belongs to.
type Game struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`

	// Name is a PokeAPI version-group name, for example 'scarlet-violet'.
	Name string `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`

	// ReleaseOrder sorts games chronologically.
	ReleaseOrder int `db:"release_order" ddl:"INTEGER NOT NULL" yaml:"release_order"`

	Generation int `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
}

// Type is an elemental type with its latest damage relations.
// Relations list type names.
type Type struct {
	ID               int       `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Name             string    `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`
	NoDamageTo       TypeNames `db:"no_damage_to" ddl:"TEXT NOT NULL" yaml:"no_damage_to"`
	HalfDamageTo     TypeNames `db:"half_damage_to" ddl:"TEXT NOT NULL" yaml:"half_damage_to"`
	DoubleDamageTo   TypeNames `db:"double_damage_to" ddl:"TEXT NOT NULL" yaml:"double_damage_to"`
	NoDamageFrom     TypeNames `db:"no_damage_from" ddl:"TEXT NOT NULL" yaml:"no_damage_from"`
	HalfDamageFrom   TypeNames `db:"half_damage_from" ddl:"TEXT NOT NULL" yaml:"half_damage_from"`
	DoubleDamageFrom TypeNames `db:"double_damage_from" ddl:"TEXT NOT NULL" yaml:"double_damage_from"`

	// Generation in which the type was introduced.
	Generation int `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
}

// TypeChange holds the damage relations a type had up to and including
// Generation. A nil relation means the relation did not change.
type TypeChange struct {
	ID               int        `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	TypeID           int        `db:"type_id" ddl:"INTEGER NOT NULL" yaml:"type_id"`
	Generation       int        `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
	NoDamageTo       *TypeNames `db:"no_damage_to" ddl:"TEXT" yaml:"no_damage_to"`
	HalfDamageTo     *TypeNames `db:"half_damage_to" ddl:"TEXT" yaml:"half_damage_to"`
	DoubleDamageTo   *TypeNames `db:"double_damage_to" ddl:"TEXT" yaml:"double_damage_to"`
	NoDamageFrom     *TypeNames `db:"no_damage_from" ddl:"TEXT" yaml:"no_damage_from"`
	HalfDamageFrom   *TypeNames `db:"half_damage_from" ddl:"TEXT" yaml:"half_damage_from"`
	DoubleDamageFrom *TypeNames `db:"double_damage_from" ddl:"TEXT" yaml:"double_damage_from"`
}

// Move is a move with its latest values.
type Move struct {
	ID           int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Name         string `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`
	Power        *int   `db:"power" ddl:"INTEGER" yaml:"power"`
	Accuracy     *int   `db:"accuracy" ddl:"INTEGER" yaml:"accuracy"`
	PP           *int   `db:"pp" ddl:"INTEGER" yaml:"pp"`
	EffectChance *int   `db:"effect_chance" ddl:"INTEGER" yaml:"effect_chance"`
	Effect       string `db:"effect" ddl:"TEXT NOT NULL" yaml:"effect"`
	Type         string `db:"type" ddl:"TEXT NOT NULL" yaml:"type"`

	// DamageClass is 'physical', 'special' or 'status'.
	DamageClass string `db:"damage_class" ddl:"TEXT NOT NULL" yaml:"damage_class"`

	// Generation in which the move was introduced.
	Generation int `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
}

// MoveChange holds move values that applied up to and including
// Generation. Nil fields did not change.
type MoveChange struct {
	ID           int     `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	MoveID       int     `db:"move_id" ddl:"INTEGER NOT NULL" yaml:"move_id"`
	Generation   int     `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
	Power        *int    `db:"power" ddl:"INTEGER" yaml:"power"`
	Accuracy     *int    `db:"accuracy" ddl:"INTEGER" yaml:"accuracy"`
	PP           *int    `db:"pp" ddl:"INTEGER" yaml:"pp"`
	EffectChance *int    `db:"effect_chance" ddl:"INTEGER" yaml:"effect_chance"`
	Effect       *string `db:"effect" ddl:"TEXT" yaml:"effect"`
	Type         *string `db:"type" ddl:"TEXT" yaml:"type"`
}

// Ability is generation-stable.
type Ability struct {
	ID         int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Name       string `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`
	Effect     string `db:"effect" ddl:"TEXT NOT NULL" yaml:"effect"`
	Generation int    `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
}

// Evolution keeps an evolution chain as a JSON tree of steps.
type Evolution struct {
	ID    int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Chain string `db:"chain" ddl:"TEXT NOT NULL" yaml:"chain"`
}

// Species groups pokemon forms.
type Species struct {
	ID          int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Name        string `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`
	IsBaby      bool   `db:"is_baby" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" yaml:"is_baby"`
	IsLegendary bool   `db:"is_legendary" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" yaml:"is_legendary"`
	IsMythical  bool   `db:"is_mythical" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" yaml:"is_mythical"`
	EvolutionID *int   `db:"evolution_id" ddl:"INTEGER" yaml:"evolution_id"`
}

// Pokemon is a pokemon form with its latest typing and base stats.
type Pokemon struct {
	ID             int     `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	Name           string  `db:"name" ddl:"TEXT NOT NULL UNIQUE" yaml:"name"`
	PrimaryType    string  `db:"primary_type" ddl:"TEXT NOT NULL" yaml:"primary_type"`
	SecondaryType  *string `db:"secondary_type" ddl:"TEXT" yaml:"secondary_type"`
	HP             int     `db:"hp" ddl:"INTEGER NOT NULL" yaml:"hp"`
	Attack         int     `db:"attack" ddl:"INTEGER NOT NULL" yaml:"attack"`
	Defense        int     `db:"defense" ddl:"INTEGER NOT NULL" yaml:"defense"`
	SpecialAttack  int     `db:"special_attack" ddl:"INTEGER NOT NULL" yaml:"special_attack"`
	SpecialDefense int     `db:"special_defense" ddl:"INTEGER NOT NULL" yaml:"special_defense"`
	Speed          int     `db:"speed" ddl:"INTEGER NOT NULL" yaml:"speed"`
	SpeciesID      int     `db:"species_id" ddl:"INTEGER NOT NULL" yaml:"species_id"`
}

// PokemonTypeChange is a full typing a pokemon had up to and including
// Generation. A nil SecondaryType means the pokemon was mono-typed.
type PokemonTypeChange struct {
	ID            int     `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	PokemonID     int     `db:"pokemon_id" ddl:"INTEGER NOT NULL" yaml:"pokemon_id"`
	Generation    int     `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
	PrimaryType   string  `db:"primary_type" ddl:"TEXT NOT NULL" yaml:"primary_type"`
	SecondaryType *string `db:"secondary_type" ddl:"TEXT" yaml:"secondary_type"`
}

// PokemonMove is a learnset entry for one generation.
type PokemonMove struct {
	ID          int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	PokemonID   int    `db:"pokemon_id" ddl:"INTEGER NOT NULL" yaml:"pokemon_id"`
	MoveName    string `db:"move_name" ddl:"TEXT NOT NULL" yaml:"move_name"`
	LearnMethod string `db:"learn_method" ddl:"TEXT NOT NULL" yaml:"learn_method"`
	LearnLevel  int    `db:"learn_level" ddl:"INTEGER NOT NULL DEFAULT 0" yaml:"learn_level"`
	Generation  int    `db:"generation" ddl:"INTEGER NOT NULL" yaml:"generation"`
}

// PokemonAbility links a pokemon to an ability slot.
type PokemonAbility struct {
	ID          int    `db:"id" ddl:"INTEGER PRIMARY KEY" yaml:"id"`
	PokemonID   int    `db:"pokemon_id" ddl:"INTEGER NOT NULL" yaml:"pokemon_id"`
	AbilityName string `db:"ability_name" ddl:"TEXT NOT NULL" yaml:"ability_name"`
	IsHidden    bool   `db:"is_hidden" ddl:"BOOLEAN NOT NULL DEFAULT FALSE" yaml:"is_hidden"`
	Slot        int    `db:"slot" ddl:"INTEGER NOT NULL" yaml:"slot"`
}

// Meta keeps dataset metadata such as its version.
type Meta struct {
	Name  string `db:"name" ddl:"TEXT PRIMARY KEY" yaml:"name" gorm:"primaryKey"`
	Value string `db:"value" ddl:"TEXT NOT NULL" yaml:"value"`
}
