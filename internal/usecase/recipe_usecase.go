package usecase

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/filter"
)

// RecipeInput carries recipe fields on create and update.
// On update zero values keep the stored fields, and nil Ingredients or TagIDs keep the stored rows.
type RecipeInput struct {
	Name        string
	Text        string
	CookingTime int
	Image       string // Base64 data URI.
	Ingredients []entity.IngredientAmount
	TagIDs      []int64
}

// RecipeUsecase defines recipe CRUD and listing.
type RecipeUsecase interface {
	CreateRecipe(ctx context.Context, actor *entity.Actor, input RecipeInput) (*RecipeView, error)
	UpdateRecipe(ctx context.Context, actor *entity.Actor, id int64, input RecipeInput) (*RecipeView, error)
	DeleteRecipe(ctx context.Context, actor *entity.Actor, id int64) error
	GetRecipe(ctx context.Context, actor *entity.Actor, id int64) (*RecipeView, error)
	ListRecipes(ctx context.Context, actor *entity.Actor, f filter.RecipeFilter, page PageRequest) (*Page[RecipeView], error)
	// RecipeQR returns a PNG QR code of the recipe's public link.
	RecipeQR(ctx context.Context, id int64) ([]byte, error)
}

// MarkUsecase adds and removes favorites and shopping cart entries.
type MarkUsecase interface {
	Add(ctx context.Context, actor *entity.Actor, kind entity.MarkKind, recipeID int64) (*RecipeShortView, error)
	Remove(ctx context.Context, actor *entity.Actor, kind entity.MarkKind, recipeID int64) error
}
