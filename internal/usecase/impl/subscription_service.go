package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"foodgram/config"
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

type subscriptionService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	recipeRepo repository.RecipeRepository
	images     service.ImageStore
	config     *config.Config
	logger     *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	FollowRepo repository.FollowRepository
	RecipeRepo repository.RecipeRepository
	ImageStore service.ImageStore
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		userRepo:   params.UserRepo,
		followRepo: params.FollowRepo,
		recipeRepo: params.RecipeRepo,
		images:     params.ImageStore,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// Follow subscribes the actor to the target author.
func (s *subscriptionService) Follow(ctx context.Context, actor *entity.Actor, targetID int64, recipesLimit int) (*usecase.SubscriptionView, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}
	if actor.UserID == targetID {
		return nil, domainerrors.ErrSelfFollowNotAllowed
	}

	author, err := s.findUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.followRepo.Exists(ctx, actor.UserID, targetID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check follow")
	}
	if exists {
		return nil, domainerrors.ErrAlreadyFollowing
	}

	follow := &entity.Follow{
		UserID:    actor.UserID,
		AuthorID:  targetID,
		CreatedAt: time.Now(),
	}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateFollow):
			return nil, domainerrors.ErrAlreadyFollowing
		case errors.Is(err, repository.ErrSelfFollow):
			return nil, domainerrors.ErrSelfFollowNotAllowed
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		default:
			return nil, errors.Wrap(err, "failed to create follow")
		}
	}

	s.logger.Info("User followed author", slog.Int64("user_id", actor.UserID), slog.Int64("author_id", targetID))

	return s.subscriptionView(ctx, author, recipesLimit)
}

// Unfollow removes the actor's subscription to the target author.
func (s *subscriptionService) Unfollow(ctx context.Context, actor *entity.Actor, targetID int64) error {
	if err := policy.RequireIdentity(actor); err != nil {
		return err
	}

	if _, err := s.findUser(ctx, targetID); err != nil {
		return err
	}

	if err := s.followRepo.Delete(ctx, actor.UserID, targetID); err != nil {
		if errors.Is(err, repository.ErrFollowNotFound) {
			return domainerrors.ErrNotFollowing
		}

		return errors.Wrap(err, "failed to delete follow")
	}

	return nil
}

// IsFollowing reports whether userID follows targetID.
func (s *subscriptionService) IsFollowing(ctx context.Context, userID, targetID int64) (bool, error) {
	if userID <= 0 || userID == targetID {
		return false, nil
	}

	exists, err := s.followRepo.Exists(ctx, userID, targetID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check follow")
	}

	return exists, nil
}

// RecipeCountOf returns the number of recipes published by the author right now.
func (s *subscriptionService) RecipeCountOf(ctx context.Context, authorID int64) (int64, error) {
	count, err := s.recipeRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count recipes")
	}

	return count, nil
}

// ListSubscriptions returns a page of authors followed by the actor.
func (s *subscriptionService) ListSubscriptions(ctx context.Context, actor *entity.Actor, page usecase.PageRequest, recipesLimit int) (*usecase.Page[usecase.SubscriptionView], error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	limit, offset := pageBounds(s.config, page)

	authors, count, err := s.followRepo.ListAuthors(ctx, actor.UserID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list followed authors")
	}

	results := make([]usecase.SubscriptionView, 0, len(authors))
	for _, author := range authors {
		view, err := s.subscriptionView(ctx, author, recipesLimit)
		if err != nil {
			return nil, err
		}
		results = append(results, *view)
	}

	return &usecase.Page[usecase.SubscriptionView]{Count: count, Results: results}, nil
}

// subscriptionView describes a followed author, so IsSubscribed is always true.
func (s *subscriptionService) subscriptionView(ctx context.Context, author *entity.User, recipesLimit int) (*usecase.SubscriptionView, error) {
	recipes, err := s.recipeRepo.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list author recipes")
	}

	count, err := s.RecipeCountOf(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.SubscriptionView{
		UserView:     toUserView(author, true),
		Recipes:      toRecipeShortViews(recipes, s.images),
		RecipesCount: count,
	}, nil
}

func (s *subscriptionService) findUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
