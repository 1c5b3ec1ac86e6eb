package dex

import (
	"slices"

	"github.com/gnames/gndex/pkg/typechart"
)

// Typing is one or two types of a pokemon.
type Typing struct {
	Primary string `json:"primary"`
	// Secondary is empty for mono-typed pokemon.
	Secondary string `json:"secondary,omitempty"`
}

// Types returns the types as a slice.
func (t Typing) Types() []string {
	if t.Secondary == "" {
		return []string{t.Primary}
	}
	return []string{t.Primary, t.Secondary}
}

// Has reports whether the typing includes a type. A move of such type
// gets the same-type attack bonus.
func (t Typing) Has(name string) bool {
	return slices.Contains(t.Types(), name)
}

// Stats are base stats of a pokemon.
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"specialAttack"`
	SpecialDefense int `json:"specialDefense"`
	Speed          int `json:"speed"`
}

// Total is the sum of all base stats.
func (s Stats) Total() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// PokemonAbility is an ability slot of a pokemon.
type PokemonAbility struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
	Slot   int    `json:"slot"`
}

// LearnMove is a way a pokemon learns a move in a generation.
type LearnMove struct {
	Name   string `json:"name"`
	Method string `json:"method"`
	Level  int    `json:"level,omitempty"`
}

// Pokemon is a pokemon as it was in one generation.
// Values returned by the Resolver are shared and must not be modified.
type Pokemon struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Generation int    `json:"generation"`
	Game       string `json:"game"`
	Typing     Typing `json:"typing"`
	Stats      Stats  `json:"stats"`
	Species    string `json:"species,omitempty"`

	// Group is 'baby', 'legendary', 'mythical' or 'regular'.
	Group       string           `json:"group,omitempty"`
	EvolutionID int              `json:"-"`
	Abilities   []PokemonAbility `json:"abilities"`

	// Learnset of the generation.
	Learnset []LearnMove `json:"learnset,omitempty"`

	// Learnable are names of moves the pokemon learns in any generation.
	Learnable []string `json:"-"`
}

// MoveNames returns names of moves the pokemon can use in its generation.
// Falls back to all learnable moves if the generation learnset is empty.
func (p Pokemon) MoveNames() []string {
	if len(p.Learnset) == 0 {
		return p.Learnable
	}
	var res []string
	seen := make(map[string]struct{})
	for _, v := range p.Learnset {
		if _, ok := seen[v.Name]; ok {
			continue
		}
		seen[v.Name] = struct{}{}
		res = append(res, v.Name)
	}
	return res
}

// Move is a move as it was in one generation.
type Move struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Generation   int    `json:"generation"`
	Introduced   int    `json:"introduced"`
	Power        *int   `json:"power"`
	Accuracy     *int   `json:"accuracy"`
	PP           *int   `json:"pp"`
	EffectChance *int   `json:"effectChance"`
	Effect       string `json:"effect"`
	Type         string `json:"type"`
	DamageClass  string `json:"damageClass"`
}

// IsStatus is true for moves that do not deal damage directly.
func (m Move) IsStatus() bool {
	return m.DamageClass == "status"
}

// Ability does not change between generations.
type Ability struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Effect     string `json:"effect"`
	Generation int    `json:"generation"`
}

// Type is one type with its offense and defense multipliers.
type Type struct {
	Name       string          `json:"name"`
	Generation int             `json:"generation"`
	Offense    typechart.Table `json:"offense"`
	Defense    typechart.Table `json:"defense"`
}
