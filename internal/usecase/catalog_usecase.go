package usecase

import (
	"context"

	"foodgram/internal/domain/entity"
)

// CreateTagInput defines the data required to create a tag.
type CreateTagInput struct {
	Name  string
	Color string
	Slug  string
}

// CatalogUsecase serves tag and ingredient reference data.
type CatalogUsecase interface {
	ListTags(ctx context.Context) ([]*entity.Tag, error)
	GetTag(ctx context.Context, id int64) (*entity.Tag, error)
	CreateTag(ctx context.Context, actor *entity.Actor, input CreateTagInput) (*entity.Tag, error)
	// SearchIngredients returns ingredients whose name starts with prefix.
	SearchIngredients(ctx context.Context, prefix string) ([]*entity.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error)
}
