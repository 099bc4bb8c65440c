package usecase

import (
	"context"

	"foodgram/internal/domain/entity"
)

// SubscriptionUsecase manages follows between users and authors.
type SubscriptionUsecase interface {
	// Follow subscribes the actor to the target author and returns the author view.
	Follow(ctx context.Context, actor *entity.Actor, targetID int64, recipesLimit int) (*SubscriptionView, error)
	// Unfollow removes the actor's subscription to the target author.
	Unfollow(ctx context.Context, actor *entity.Actor, targetID int64) error
	// IsFollowing reports whether userID follows targetID. Anonymous users follow nobody.
	IsFollowing(ctx context.Context, userID, targetID int64) (bool, error)
	// RecipeCountOf returns the number of recipes the author has published.
	RecipeCountOf(ctx context.Context, authorID int64) (int64, error)
	// ListSubscriptions returns a page of authors the actor follows.
	ListSubscriptions(ctx context.Context, actor *entity.Actor, page PageRequest, recipesLimit int) (*Page[SubscriptionView], error)
}
