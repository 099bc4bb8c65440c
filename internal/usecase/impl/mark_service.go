package impl

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

// markErrors holds the errors reported for one mark kind.
type markErrors struct {
	duplicate *domainerrors.BaseError
	missing   *domainerrors.BaseError
}

var markErrorsByKind = map[entity.MarkKind]markErrors{
	entity.MarkFavorite: {
		duplicate: domainerrors.ErrAlreadyFavorited,
		missing:   domainerrors.ErrNotFavorited,
	},
	entity.MarkShoppingCart: {
		duplicate: domainerrors.ErrAlreadyInShoppingCart,
		missing:   domainerrors.ErrNotInShoppingCart,
	},
}

// markService implements the MarkUsecase interface for every mark kind.
type markService struct {
	markRepo   repository.MarkRepository
	recipeRepo repository.RecipeRepository
	images     service.ImageStore
	logger     *slog.Logger
}

// MarkServiceParams holds dependencies for MarkService, injected by Fx.
type MarkServiceParams struct {
	fx.In

	MarkRepo   repository.MarkRepository
	RecipeRepo repository.RecipeRepository
	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// NewMarkService is the constructor for markService.
func NewMarkService(params MarkServiceParams) usecase.MarkUsecase {
	return &markService{
		markRepo:   params.MarkRepo,
		recipeRepo: params.RecipeRepo,
		images:     params.ImageStore,
		logger:     params.Logger,
	}
}

// Add marks the recipe for the actor and returns the recipe in short form.
func (srv *markService) Add(ctx context.Context, actor *entity.Actor, kind entity.MarkKind, recipeID int64) (*usecase.RecipeShortView, error) {
	kindErrors, err := srv.prepare(actor, kind)
	if err != nil {
		return nil, err
	}

	recipe, err := srv.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	exists, err := srv.markRepo.Exists(ctx, kind, actor.UserID, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check mark")
	}
	if exists {
		return nil, kindErrors.duplicate
	}

	mark := &entity.Mark{
		Kind:      kind,
		UserID:    actor.UserID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if err := srv.markRepo.Create(ctx, mark); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateMark):
			return nil, kindErrors.duplicate
		case errors.Is(err, repository.ErrRecipeNotFound):
			return nil, domainerrors.ErrRecipeNotFound
		default:
			return nil, errors.Wrap(err, "failed to create mark")
		}
	}

	srv.logger.Debug("Recipe marked",
		slog.String("kind", kind.String()),
		slog.Int64("user_id", actor.UserID),
		slog.Int64("recipe_id", recipeID),
	)

	view := toRecipeShortView(recipe, srv.images)

	return &view, nil
}

// Remove deletes the actor's mark on the recipe.
func (srv *markService) Remove(ctx context.Context, actor *entity.Actor, kind entity.MarkKind, recipeID int64) error {
	kindErrors, err := srv.prepare(actor, kind)
	if err != nil {
		return err
	}

	if _, err := srv.findRecipe(ctx, recipeID); err != nil {
		return err
	}

	if err := srv.markRepo.Delete(ctx, kind, actor.UserID, recipeID); err != nil {
		if errors.Is(err, repository.ErrMarkNotFound) {
			return kindErrors.missing
		}

		return errors.Wrap(err, "failed to delete mark")
	}

	return nil
}

func (srv *markService) prepare(actor *entity.Actor, kind entity.MarkKind) (markErrors, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return markErrors{}, err
	}

	kindErrors, ok := markErrorsByKind[kind]
	if !ok {
		return markErrors{}, domainerrors.ErrValidationFailed.WithDetails("unknown mark kind " + kind.String())
	}

	return kindErrors, nil
}

func (srv *markService) findRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}
