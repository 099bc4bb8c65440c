package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	"foodgram/internal/infra/persistence/model"
)

var errUnknownMarkKind = errors.New("unknown mark kind")

// markTable maps a mark kind to its table.
func markTable(kind entity.MarkKind) (string, error) {
	switch kind {
	case entity.MarkFavorite:
		return "favorites", nil
	case entity.MarkShoppingCart:
		return "shopping_cart_entries", nil
	default:
		return "", errors.Wrapf(errUnknownMarkKind, "%q", kind)
	}
}

// markRepository implements the repository.MarkRepository interface for
// favorites and shopping cart entries.
type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository is the constructor for markRepository.
func NewMarkRepository(db *gorm.DB) repository.MarkRepository {
	return &markRepository{db: db}
}

// Create inserts a mark; a concurrent duplicate is caught by the unique constraint.
func (repo *markRepository) Create(ctx context.Context, mark *entity.Mark) error {
	table, err := markTable(mark.Kind)
	if err != nil {
		return err
	}

	markM := &model.RecipeMarkModel{UserID: mark.UserID, RecipeID: mark.RecipeID}
	if err := repo.db.WithContext(ctx).Table(table).Create(markM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMark
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRecipeNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+mark.Kind.String())
	}

	mark.CreatedAt = markM.CreatedAt
	if mark.CreatedAt.IsZero() {
		mark.CreatedAt = time.Now()
	}

	return nil
}

// Delete removes a mark.
func (repo *markRepository) Delete(ctx context.Context, kind entity.MarkKind, userID, recipeID int64) error {
	table, err := markTable(kind)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&model.RecipeMarkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+kind.String())
	}
	if result.RowsAffected == 0 {
		return repository.ErrMarkNotFound
	}

	return nil
}

// Exists reads from the primary so a mark written a moment ago is seen.
func (repo *markRepository) Exists(ctx context.Context, kind entity.MarkKind, userID, recipeID int64) (bool, error) {
	table, err := markTable(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Table(table).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to check %s", kind)
	}

	return count > 0, nil
}

// FindByRecipes returns the user's favorites and cart entries among recipeIDs.
func (repo *markRepository) FindByRecipes(ctx context.Context, userID int64, recipeIDs []int64) ([]*entity.Mark, error) {
	if userID <= 0 || len(recipeIDs) == 0 {
		return []*entity.Mark{}, nil
	}

	marks := make([]*entity.Mark, 0)
	for _, kind := range []entity.MarkKind{entity.MarkFavorite, entity.MarkShoppingCart} {
		table, err := markTable(kind)
		if err != nil {
			return nil, err
		}

		var markModels []*model.RecipeMarkModel
		if err := repo.db.WithContext(ctx).
			Table(table).
			Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
			Find(&markModels).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to load %s marks", kind)
		}

		for _, markM := range markModels {
			marks = append(marks, &entity.Mark{
				Kind:      kind,
				UserID:    markM.UserID,
				RecipeID:  markM.RecipeID,
				CreatedAt: markM.CreatedAt,
			})
		}
	}

	return marks, nil
}
