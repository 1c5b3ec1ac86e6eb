package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in creation order.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Game{},
		&Type{},
		&TypeChange{},
		&Move{},
		&MoveChange{},
		&Ability{},
		&Evolution{},
		&Species{},
		&Pokemon{},
		&PokemonTypeChange{},
		&PokemonMove{},
		&PokemonAbility{},
		&Meta{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	res := make([]any, len(models))
	for i := range models {
		res[i] = models[i]
	}
	return db.AutoMigrate(res...)
}
