package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"go.uber.org/fx"

	"foodgram/config"
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/filter"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager      repository.TransactionManager
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
	tagRepo        repository.TagRepository
	images         service.ImageStore
	qrcode         service.QRCodeService
	viewer         recipeViewer
	config         *config.Config
	logger         *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	RecipeRepo     repository.RecipeRepository
	IngredientRepo repository.IngredientRepository
	TagRepo        repository.TagRepository
	MarkRepo       repository.MarkRepository
	FollowRepo     repository.FollowRepository
	ImageStore     service.ImageStore
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:      params.TxManager,
		recipeRepo:     params.RecipeRepo,
		ingredientRepo: params.IngredientRepo,
		tagRepo:        params.TagRepo,
		images:         params.ImageStore,
		qrcode:         params.QRCodeService,
		viewer: recipeViewer{
			markRepo:   params.MarkRepo,
			followRepo: params.FollowRepo,
			images:     params.ImageStore,
		},
		config: params.Config,
		logger: params.Logger,
	}
}

// CreateRecipe validates the input, stores the image and persists the recipe in one transaction.
func (srv *recipeService) CreateRecipe(ctx context.Context, actor *entity.Actor, input usecase.RecipeInput) (*usecase.RecipeView, error) {
	if err := policy.Check(actor, policy.ActionCreate, nil); err != nil {
		return nil, err
	}

	if input.Image == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("image is required")
	}

	ingredients, tagIDs, err := srv.prepareInput(ctx, &input, true)
	if err != nil {
		return nil, err
	}

	imageKey, err := srv.images.Save(ctx, input.Image)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store recipe image")
	}

	recipe := &entity.Recipe{
		AuthorID:    actor.UserID,
		Name:        input.Name,
		Text:        input.Text,
		CookingTime: input.CookingTime,
		Image:       imageKey,
		Tags:        tagsFromIDs(tagIDs),
		Ingredients: linesFromAmounts(ingredients),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRecipeRepository().Create(ctx, recipe); err != nil {
			return translateRecipeError(err)
		}

		return nil
	})
	if err != nil {
		srv.discardImage(ctx, imageKey)

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.logger.Info("Recipe created", slog.Int64("recipe_id", recipe.ID), slog.Int64("author_id", recipe.AuthorID))

	return srv.loadView(ctx, actor, recipe.ID)
}

// UpdateRecipe applies the input to a recipe the actor may modify.
func (srv *recipeService) UpdateRecipe(ctx context.Context, actor *entity.Actor, id int64, input usecase.RecipeInput) (*usecase.RecipeView, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Check(actor, policy.ActionUpdate, recipe); err != nil {
		return nil, err
	}

	if input.Name != "" {
		recipe.Name = input.Name
	}
	if input.Text != "" {
		recipe.Text = input.Text
	}
	if input.CookingTime != 0 {
		recipe.CookingTime = input.CookingTime
	}

	merged := input
	merged.Name, merged.Text, merged.CookingTime = recipe.Name, recipe.Text, recipe.CookingTime

	ingredients, tagIDs, err := srv.prepareInput(ctx, &merged, false)
	if err != nil {
		return nil, err
	}

	oldImage := recipe.Image
	newImage := ""
	if input.Image != "" {
		newImage, err = srv.images.Save(ctx, input.Image)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store recipe image")
		}
		recipe.Image = newImage
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipeRepo := repoFactory.NewRecipeRepository()

		if err := recipeRepo.Update(ctx, recipe); err != nil {
			return translateRecipeError(err)
		}
		if ingredients != nil {
			if err := recipeRepo.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
				return translateRecipeError(err)
			}
		}
		if tagIDs != nil {
			if err := recipeRepo.ReplaceTags(ctx, recipe.ID, tagIDs); err != nil {
				return translateRecipeError(err)
			}
		}

		return nil
	})
	if err != nil {
		srv.discardImage(ctx, newImage)

		return nil, errors.Wrap(err, "failed to update recipe")
	}

	if newImage != "" {
		srv.discardImage(ctx, oldImage)
	}

	return srv.loadView(ctx, actor, recipe.ID)
}

// DeleteRecipe removes a recipe the actor may modify together with its image.
func (srv *recipeService) DeleteRecipe(ctx context.Context, actor *entity.Actor, id int64) error {
	if err := policy.RequireIdentity(actor); err != nil {
		return err
	}

	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.Check(actor, policy.ActionDelete, recipe); err != nil {
		return err
	}

	if err := srv.recipeRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(translateRecipeError(err), "failed to delete recipe")
	}

	srv.discardImage(ctx, recipe.Image)
	srv.logger.Info("Recipe deleted", slog.Int64("recipe_id", id), slog.Int64("actor_id", actor.UserID))

	return nil
}

// GetRecipe returns one recipe as seen by the actor.
func (srv *recipeService) GetRecipe(ctx context.Context, actor *entity.Actor, id int64) (*usecase.RecipeView, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.viewer.view(ctx, actor, recipe)
}

// ListRecipes returns a page of recipes matching the filter, newest first.
func (srv *recipeService) ListRecipes(ctx context.Context, actor *entity.Actor, f filter.RecipeFilter, page usecase.PageRequest) (*usecase.Page[usecase.RecipeView], error) {
	plan := f.Resolve(actor)
	limit, offset := pageBounds(srv.config, page)

	srv.logger.Debug("Listing recipes",
		slog.Int("limit", limit),
		slog.Int("offset", offset),
		slog.Bool("empty_plan", plan.Empty),
	)

	recipes, count, err := srv.recipeRepo.List(ctx, plan, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	views, err := srv.viewer.views(ctx, actor, recipes)
	if err != nil {
		return nil, err
	}

	return &usecase.Page[usecase.RecipeView]{Count: count, Results: views}, nil
}

// RecipeQR returns a PNG QR code of the public link of an existing recipe.
func (srv *recipeService) RecipeQR(ctx context.Context, id int64) ([]byte, error) {
	if _, err := srv.findRecipe(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateRecipeQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate recipe QR")
	}

	return png, nil
}

func (srv *recipeService) findRecipe(ctx context.Context, id int64) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

func (srv *recipeService) loadView(ctx context.Context, actor *entity.Actor, id int64) (*usecase.RecipeView, error) {
	recipe, err := srv.findRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.viewer.view(ctx, actor, recipe)
}

// prepareInput validates input and returns coalesced ingredients and distinct tag ids.
// A nil result means the field was not supplied.
func (srv *recipeService) prepareInput(ctx context.Context, input *usecase.RecipeInput, creating bool) ([]entity.IngredientAmount, []int64, error) {
	if err := validateRecipeFields(input); err != nil {
		return nil, nil, err
	}

	var ingredients []entity.IngredientAmount
	if input.Ingredients != nil || creating {
		for _, item := range input.Ingredients {
			if item.Amount < entity.MinAmount || item.Amount > entity.MaxAmount {
				return nil, nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("amount of ingredient %d must be between %d and %d", item.IngredientID, entity.MinAmount, entity.MaxAmount))
			}
		}

		ingredients = entity.CoalesceAmounts(input.Ingredients)
		if len(ingredients) == 0 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("at least one ingredient is required")
		}
		for _, item := range ingredients {
			if item.Amount > entity.MaxAmount {
				return nil, nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("total amount of ingredient %d exceeds %d", item.IngredientID, entity.MaxAmount))
			}
		}

		if err := srv.ensureIngredients(ctx, ingredients); err != nil {
			return nil, nil, err
		}
	}

	var tagIDs []int64
	if input.TagIDs != nil || creating {
		tagIDs = slices.Clone(input.TagIDs)
		slices.Sort(tagIDs)
		tagIDs = slices.Compact(tagIDs)
		if tagIDs == nil {
			tagIDs = []int64{}
		}
		if len(tagIDs) == 0 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("at least one tag is required")
		}

		if err := srv.ensureTags(ctx, tagIDs); err != nil {
			return nil, nil, err
		}
	}

	return ingredients, tagIDs, nil
}

func (srv *recipeService) ensureIngredients(ctx context.Context, items []entity.IngredientAmount) error {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.IngredientID)
	}

	found, err := srv.ingredientRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find ingredients")
	}

	known := make(map[int64]struct{}, len(found))
	for _, ingredient := range found {
		known[ingredient.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domainerrors.ErrIngredientNotFound.WithDetails(fmt.Sprintf("ingredient %d does not exist", id))
		}
	}

	return nil
}

func (srv *recipeService) ensureTags(ctx context.Context, ids []int64) error {
	found, err := srv.tagRepo.FindByIDs(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to find tags")
	}

	known := make(map[int64]struct{}, len(found))
	for _, tag := range found {
		known[tag.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return domainerrors.ErrTagNotFound.WithDetails(fmt.Sprintf("tag %d does not exist", id))
		}
	}

	return nil
}

// discardImage deletes an image that is no longer referenced. Failures are only logged.
func (srv *recipeService) discardImage(ctx context.Context, key string) {
	if key == "" {
		return
	}

	if err := srv.images.Delete(ctx, key); err != nil {
		srv.logger.Warn("Failed to delete recipe image", slog.String("key", key), slog.Any("error", err))
	}
}

func validateRecipeFields(input *usecase.RecipeInput) error {
	switch {
	case input.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case utf8.RuneCountInString(input.Name) > entity.MaxRecipeNameLength:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("name must be at most %d characters", entity.MaxRecipeNameLength))
	case input.Text == "":
		return domainerrors.ErrValidationFailed.WithDetails("text is required")
	case input.CookingTime < entity.MinCookingTime || input.CookingTime > entity.MaxCookingTime:
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("cooking_time must be between %d and %d", entity.MinCookingTime, entity.MaxCookingTime))
	}

	return nil
}

// translateRecipeError maps repository sentinels to domain errors.
func translateRecipeError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRecipeNotFound):
		return domainerrors.ErrRecipeNotFound
	case errors.Is(err, repository.ErrIngredientNotFound):
		return domainerrors.ErrIngredientNotFound
	case errors.Is(err, repository.ErrTagNotFound):
		return domainerrors.ErrTagNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	default:
		return err
	}
}

func tagsFromIDs(ids []int64) []entity.Tag {
	tags := make([]entity.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, entity.Tag{ID: id})
	}

	return tags
}

func linesFromAmounts(items []entity.IngredientAmount) []entity.RecipeIngredient {
	lines := make([]entity.RecipeIngredient, 0, len(items))
	for _, item := range items {
		lines = append(lines, entity.RecipeIngredient{IngredientID: item.IngredientID, Amount: item.Amount})
	}

	return lines
}
