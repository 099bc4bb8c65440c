// Command gen writes gorm gen query code for the persistence models into
// internal/infra/persistence/postgres/query. The output is not checked in;
// the repositories are written against gorm directly.
package main

import (
	"gorm.io/gen"

	"foodgram/internal/infra/persistence/model"
)

func main() {
	models := []any{
		model.UserModel{},
		model.FollowModel{},
		model.IngredientModel{},
		model.TagModel{},
		model.RecipeModel{},
		model.RecipeIngredientModel{},
		model.RecipeTagModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
