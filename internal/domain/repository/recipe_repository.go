package repository

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/filter"
	"foodgram/internal/errors"
)

// ErrRecipeNotFound is returned when a recipe is not found.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines persistence of recipes and their ingredient and tag rows.
type RecipeRepository interface {
	// Create persists the recipe with its ingredients and tags and sets its ID.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update saves name, text, cooking time and image of an existing recipe.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// ReplaceIngredients swaps all ingredient rows of the recipe.
	ReplaceIngredients(ctx context.Context, recipeID int64, items []entity.IngredientAmount) error

	// ReplaceTags swaps all tag rows of the recipe.
	ReplaceTags(ctx context.Context, recipeID int64, tagIDs []int64) error

	// Delete removes the recipe. Ingredient, tag and mark rows cascade.
	Delete(ctx context.Context, id int64) error

	// FindByID loads a recipe with its author, tags and ingredients.
	FindByID(ctx context.Context, id int64) (*entity.Recipe, error)

	// List returns a page of recipes matching the plan, newest first,
	// and the number of matching recipes.
	List(ctx context.Context, plan filter.Plan, limit, offset int) ([]*entity.Recipe, int64, error)

	// ListByAuthor returns up to limit latest recipes of the author without
	// associations. A non-positive limit returns all of them.
	ListByAuthor(ctx context.Context, authorID int64, limit int) ([]*entity.Recipe, error)

	// CountByAuthor returns how many recipes the author has published.
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)

	// FindCartIngredients returns every ingredient line of every recipe in the
	// user's shopping cart, one entry per (recipe, ingredient).
	FindCartIngredients(ctx context.Context, userID int64) ([]entity.RecipeIngredient, error)
}
