package repository

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/errors"
)

var (
	// ErrFollowNotFound is returned when removing a follow that does not exist.
	ErrFollowNotFound = errors.New("follow not found")
	// ErrDuplicateFollow is returned when the follower already follows the author.
	ErrDuplicateFollow = errors.New("follow already exists")
	// ErrSelfFollow is returned when the store rejects a follow of oneself.
	ErrSelfFollow = errors.New("self follow rejected")
)

// FollowRepository defines persistence of author subscriptions.
type FollowRepository interface {
	// Create persists a follow and sets its ID.
	Create(ctx context.Context, follow *entity.Follow) error

	// Delete removes the follow. It returns ErrFollowNotFound when none was removed.
	Delete(ctx context.Context, userID, authorID int64) error

	// Exists reports whether userID follows authorID, reading from the primary.
	Exists(ctx context.Context, userID, authorID int64) (bool, error)

	// FindFollowedAmong returns the ids among authorIDs that userID follows.
	FindFollowedAmong(ctx context.Context, userID int64, authorIDs []int64) ([]int64, error)

	// ListAuthors returns a page of authors followed by userID, most recent
	// subscription first, and the total number of followed authors.
	ListAuthors(ctx context.Context, userID int64, limit, offset int) ([]*entity.User, int64, error)
}
