package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	"foodgram/internal/infra/persistence/model"
)

const clauseAuthor = "Author"

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{db: db}
}

// Create persists a follow. The store rejects duplicates and self follows.
func (repo *followRepository) Create(ctx context.Context, follow *entity.Follow) error {
	followM := &model.FollowModel{UserID: follow.UserID, AuthorID: follow.AuthorID}

	if err := repo.db.WithContext(ctx).Omit(clauseAuthor).Create(followM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateFollow
		case isCheckConstraintViolation(err):
			return repository.ErrSelfFollow
		case isForeignKeyConstraintViolation(err):
			return repository.ErrUserNotFound
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create follow")
		}
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// Delete removes a follow.
func (repo *followRepository) Delete(ctx context.Context, userID, authorID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.FollowModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete follow")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}

// Exists reads from the primary so a follow written a moment ago is seen.
func (repo *followRepository) Exists(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.FollowModel{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return count > 0, nil
}

// FindFollowedAmong returns the subset of authorIDs userID follows.
func (repo *followRepository) FindFollowedAmong(ctx context.Context, userID int64, authorIDs []int64) ([]int64, error) {
	if userID <= 0 || len(authorIDs) == 0 {
		return []int64{}, nil
	}

	followed := make([]int64, 0)
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &followed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find followed authors")
	}

	return followed, nil
}

// ListAuthors returns the followed authors, latest subscription first.
func (repo *followRepository) ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]*entity.User, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.FollowModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count follows")
	}

	var followModels []*model.FollowModel
	if err := repo.db.WithContext(ctx).
		Preload(clauseAuthor).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&followModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list followed authors")
	}

	authors := make([]*entity.User, 0, len(followModels))
	for _, followM := range followModels {
		if followM.Author != nil {
			authors = append(authors, toUserDomain(followM.Author))
		}
	}

	return authors, total, nil
}
