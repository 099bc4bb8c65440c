package repository

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/errors"
)

var (
	// ErrIngredientNotFound is returned when an ingredient is not found.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrTagNotFound is returned when a tag is not found.
	ErrTagNotFound = errors.New("tag not found")
	// ErrDuplicateTag is returned when a tag name, color or slug is taken.
	ErrDuplicateTag = errors.New("tag already exists")
)

// IngredientRepository defines persistence of ingredient reference data.
type IngredientRepository interface {
	// Search returns ingredients whose name starts with prefix, case-insensitively,
	// ordered by name. An empty prefix returns all ingredients.
	Search(ctx context.Context, prefix string) ([]*entity.Ingredient, error)

	FindByID(ctx context.Context, id int64) (*entity.Ingredient, error)

	// FindByIDs returns the ingredients that exist among ids.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Ingredient, error)

	// BulkCreate inserts ingredients, skipping existing (name, unit) pairs,
	// and returns the number of inserted rows.
	BulkCreate(ctx context.Context, ingredients []*entity.Ingredient) (int64, error)
}

// TagRepository defines persistence of tag reference data.
type TagRepository interface {
	// List returns all tags ordered by id.
	List(ctx context.Context) ([]*entity.Tag, error)

	FindByID(ctx context.Context, id int64) (*entity.Tag, error)

	// FindByIDs returns the tags that exist among ids.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Tag, error)

	// Create persists a new tag and sets its ID.
	Create(ctx context.Context, tag *entity.Tag) error

	// BulkCreate inserts tags, skipping conflicting ones, and returns the number of inserted rows.
	BulkCreate(ctx context.Context, tags []*entity.Tag) (int64, error)
}
