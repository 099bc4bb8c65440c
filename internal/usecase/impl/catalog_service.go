package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"go.uber.org/fx"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	tagRepo        repository.TagRepository
	ingredientRepo repository.IngredientRepository
	logger         *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TagRepo        repository.TagRepository
	IngredientRepo repository.IngredientRepository
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		tagRepo:        params.TagRepo,
		ingredientRepo: params.IngredientRepo,
		logger:         params.Logger,
	}
}

func (srv *catalogService) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := srv.tagRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func (srv *catalogService) GetTag(ctx context.Context, id int64) (*entity.Tag, error) {
	tag, err := srv.tagRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTagNotFound) {
			return nil, domainerrors.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag")
	}

	return tag, nil
}

// CreateTag adds a tag. Only administrators may write reference data.
func (srv *catalogService) CreateTag(ctx context.Context, actor *entity.Actor, input usecase.CreateTagInput) (*entity.Tag, error) {
	if err := policy.CheckAdminOnly(actor, policy.ActionCreate); err != nil {
		return nil, err
	}

	tag := &entity.Tag{
		Name:  strings.TrimSpace(input.Name),
		Color: strings.ToUpper(strings.TrimSpace(input.Color)),
		Slug:  strings.TrimSpace(input.Slug),
	}

	switch {
	case tag.Name == "" || utf8.RuneCountInString(tag.Name) > entity.MaxTagFieldLength:
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required and must be at most 200 characters")
	case !entity.ValidColor(tag.Color):
		return nil, domainerrors.ErrValidationFailed.WithDetails("color must be a hex color such as #E26C2D")
	case !entity.ValidSlug(tag.Slug):
		return nil, domainerrors.ErrValidationFailed.WithDetails("slug may contain only letters, digits, '-' and '_'")
	}

	if err := srv.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, repository.ErrDuplicateTag) {
			return nil, domainerrors.ErrTagAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create tag")
	}

	srv.logger.Info("Tag created", slog.Int64("tag_id", tag.ID), slog.String("slug", tag.Slug))

	return tag, nil
}

// SearchIngredients returns ingredients whose name starts with prefix, ignoring case.
func (srv *catalogService) SearchIngredients(ctx context.Context, prefix string) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.Search(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search ingredients")
	}

	return ingredients, nil
}

func (srv *catalogService) GetIngredient(ctx context.Context, id int64) (*entity.Ingredient, error) {
	ingredient, err := srv.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return nil, domainerrors.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	return ingredient, nil
}
