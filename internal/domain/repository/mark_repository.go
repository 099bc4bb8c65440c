package repository

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/errors"
)

var (
	// ErrMarkNotFound is returned when removing a mark that does not exist.
	ErrMarkNotFound = errors.New("mark not found")
	// ErrDuplicateMark is returned when the (kind, user, recipe) mark already exists.
	ErrDuplicateMark = errors.New("mark already exists")
)

// MarkRepository defines persistence of favorites and shopping cart entries.
type MarkRepository interface {
	// Create persists a mark. It returns ErrDuplicateMark on a unique violation.
	Create(ctx context.Context, mark *entity.Mark) error

	// Delete removes a mark. It returns ErrMarkNotFound when none was removed.
	Delete(ctx context.Context, kind entity.MarkKind, userID, recipeID int64) error

	// Exists reports whether the mark exists, reading from the primary.
	Exists(ctx context.Context, kind entity.MarkKind, userID, recipeID int64) (bool, error)

	// FindByRecipes returns the user's marks of any kind on the given recipes.
	FindByRecipes(ctx context.Context, userID int64, recipeIDs []int64) ([]*entity.Mark, error)
}
