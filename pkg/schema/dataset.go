package schema

// Dataset is a complete export of all tables. It is the format of
// dump files read by 'gndex populate'.
type Dataset struct {
	// Version of the dataset format, compared with the app version.
	Version string `yaml:"version"`

	Games              []Game              `yaml:"games"`
	Types              []Type              `yaml:"types"`
	TypeChanges        []TypeChange        `yaml:"type_changes"`
	Moves              []Move              `yaml:"moves"`
	MoveChanges        []MoveChange        `yaml:"move_changes"`
	Abilities          []Ability           `yaml:"abilities"`
	Evolutions         []Evolution         `yaml:"evolutions"`
	Species            []Species           `yaml:"species"`
	Pokemon            []Pokemon           `yaml:"pokemon"`
	PokemonTypeChanges []PokemonTypeChange `yaml:"pokemon_type_changes"`
	PokemonMoves       []PokemonMove       `yaml:"pokemon_moves"`
	PokemonAbilities   []PokemonAbility    `yaml:"pokemon_abilities"`
}

// Tables returns rows of every table in insertion order, with ids
// assigned to rows that came without them.
func (d *Dataset) Tables() []TableRows {
	return []TableRows{
		rowsOf(d.Games),
		rowsOf(d.Types),
		rowsOf(d.TypeChanges),
		rowsOf(d.Moves),
		rowsOf(d.MoveChanges),
		rowsOf(d.Abilities),
		rowsOf(d.Evolutions),
		rowsOf(d.Species),
		rowsOf(d.Pokemon),
		rowsOf(d.PokemonTypeChanges),
		rowsOf(d.PokemonMoves),
		rowsOf(d.PokemonAbilities),
	}
}

// TableRows are rows of one table.
type TableRows struct {
	Table   string
	Columns []string
	Rows    [][]any
}

func rowsOf[T DDLGenerator](rows []T) TableRows {
	var zero T
	res := TableRows{
		Table:   zero.TableName(),
		Columns: Columns(zero),
		Rows:    make([][]any, len(rows)),
	}
	for i := range rows {
		vals := Values(rows[i])
		// all dataset models start with an integer id
		if id, ok := vals[0].(int); ok && id == 0 {
			vals[0] = i + 1
		}
		res.Rows[i] = vals
	}
	return res
}
