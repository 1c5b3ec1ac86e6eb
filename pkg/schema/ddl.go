package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model any, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

func (g Game) TableDDL() string   { return generateDDL(g, g.TableName()) }
func (g Game) IndexDDL() []string { return nil }
func (g Game) TableName() string  { return "games" }

func (t Type) TableDDL() string   { return generateDDL(t, t.TableName()) }
func (t Type) IndexDDL() []string { return nil }
func (t Type) TableName() string  { return "types" }

func (tc TypeChange) TableDDL() string { return generateDDL(tc, tc.TableName()) }
func (tc TypeChange) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_type_changes_type ON type_changes(type_id);",
	}
}
func (tc TypeChange) TableName() string { return "type_changes" }

func (m Move) TableDDL() string   { return generateDDL(m, m.TableName()) }
func (m Move) IndexDDL() []string { return nil }
func (m Move) TableName() string  { return "moves" }

func (mc MoveChange) TableDDL() string { return generateDDL(mc, mc.TableName()) }
func (mc MoveChange) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_move_changes_move ON move_changes(move_id);",
	}
}
func (mc MoveChange) TableName() string { return "move_changes" }

func (a Ability) TableDDL() string   { return generateDDL(a, a.TableName()) }
func (a Ability) IndexDDL() []string { return nil }
func (a Ability) TableName() string  { return "abilities" }

func (e Evolution) TableDDL() string   { return generateDDL(e, e.TableName()) }
func (e Evolution) IndexDDL() []string { return nil }
func (e Evolution) TableName() string  { return "evolutions" }

func (s Species) TableDDL() string   { return generateDDL(s, s.TableName()) }
func (s Species) IndexDDL() []string { return nil }
func (s Species) TableName() string  { return "species" }

func (p Pokemon) TableDDL() string   { return generateDDL(p, p.TableName()) }
func (p Pokemon) IndexDDL() []string { return nil }
func (p Pokemon) TableName() string  { return "pokemon" }

func (ptc PokemonTypeChange) TableDDL() string { return generateDDL(ptc, ptc.TableName()) }
func (ptc PokemonTypeChange) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_pokemon_type_changes_pokemon ON pokemon_type_changes(pokemon_id);",
	}
}
func (ptc PokemonTypeChange) TableName() string { return "pokemon_type_changes" }

func (pm PokemonMove) TableDDL() string { return generateDDL(pm, pm.TableName()) }
func (pm PokemonMove) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_pokemon_moves_pokemon_gen ON pokemon_moves(pokemon_id, generation);",
	}
}
func (pm PokemonMove) TableName() string { return "pokemon_moves" }

func (pa PokemonAbility) TableDDL() string { return generateDDL(pa, pa.TableName()) }
func (pa PokemonAbility) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_pokemon_abilities_pokemon ON pokemon_abilities(pokemon_id);",
	}
}
func (pa PokemonAbility) TableName() string { return "pokemon_abilities" }

func (m Meta) TableDDL() string   { return generateDDL(m, m.TableName()) }
func (m Meta) IndexDDL() []string { return nil }
func (m Meta) TableName() string  { return "meta" }
