// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"slices"

	"foodgram/config"
	"foodgram/internal/domain/entity"
	"foodgram/internal/domain/filter"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

const (
	fallbackPageLimit    = 6
	fallbackMaxPageLimit = 100
)

// pageBounds resolves a page request against the configured limits.
func pageBounds(cfg *config.Config, page usecase.PageRequest) (limit, offset int) {
	defaultLimit, maxLimit := fallbackPageLimit, fallbackMaxPageLimit
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultLimit > 0 {
			defaultLimit = cfg.Pagination.DefaultLimit
		}
		if cfg.Pagination.MaxLimit > 0 {
			maxLimit = cfg.Pagination.MaxLimit
		}
	}

	return page.Bounds(defaultLimit, maxLimit)
}

func toUserView(user *entity.User, subscribed bool) usecase.UserView {
	if user == nil {
		return usecase.UserView{}
	}

	return usecase.UserView{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}

func toRecipeShortView(recipe *entity.Recipe, images service.ImageStore) usecase.RecipeShortView {
	return usecase.RecipeShortView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       images.URL(recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

func toRecipeShortViews(recipes []*entity.Recipe, images service.ImageStore) []usecase.RecipeShortView {
	views := make([]usecase.RecipeShortView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, toRecipeShortView(recipe, images))
	}

	return views
}

// recipeViewer builds full recipe views with the actor's marks and follows.
type recipeViewer struct {
	markRepo   repository.MarkRepository
	followRepo repository.FollowRepository
	images     service.ImageStore
}

func (v recipeViewer) view(ctx context.Context, actor *entity.Actor, recipe *entity.Recipe) (*usecase.RecipeView, error) {
	views, err := v.views(ctx, actor, []*entity.Recipe{recipe})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

func (v recipeViewer) views(ctx context.Context, actor *entity.Actor, recipes []*entity.Recipe) ([]usecase.RecipeView, error) {
	views := make([]usecase.RecipeView, 0, len(recipes))
	if len(recipes) == 0 {
		return views, nil
	}

	marks := filter.MarkIndex{}
	followed := map[int64]bool{}

	if !actor.IsAnonymous() {
		recipeIDs := make([]int64, 0, len(recipes))
		authorIDs := make([]int64, 0, len(recipes))
		for _, recipe := range recipes {
			recipeIDs = append(recipeIDs, recipe.ID)
			authorIDs = append(authorIDs, recipe.AuthorID)
		}
		slices.Sort(authorIDs)
		authorIDs = slices.Compact(authorIDs)

		found, err := v.markRepo.FindByRecipes(ctx, actor.UserID, recipeIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load recipe marks")
		}
		marks = filter.NewMarkIndex(found)

		followedIDs, err := v.followRepo.FindFollowedAmong(ctx, actor.UserID, authorIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load followed authors")
		}
		for _, id := range followedIDs {
			followed[id] = true
		}
	}

	var actorID int64
	if !actor.IsAnonymous() {
		actorID = actor.UserID
	}

	for _, recipe := range recipes {
		views = append(views, toRecipeView(recipe, v.images, marks, actorID, followed[recipe.AuthorID]))
	}

	return views, nil
}

func toRecipeView(recipe *entity.Recipe, images service.ImageStore, marks filter.Relations, actorID int64, authorSubscribed bool) usecase.RecipeView {
	ingredients := make([]usecase.RecipeIngredientView, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		ingredients = append(ingredients, usecase.RecipeIngredientView{
			ID:              line.IngredientID,
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Amount:          line.Amount,
		})
	}

	tags := recipe.Tags
	if tags == nil {
		tags = []entity.Tag{}
	}

	author := toUserView(recipe.Author, authorSubscribed)
	if recipe.Author == nil {
		author.ID = recipe.AuthorID
	}

	return usecase.RecipeView{
		ID:               recipe.ID,
		Tags:             tags,
		Author:           author,
		Ingredients:      ingredients,
		IsFavorited:      actorID > 0 && marks.HasMark(entity.MarkFavorite, actorID, recipe.ID),
		IsInShoppingCart: actorID > 0 && marks.HasMark(entity.MarkShoppingCart, actorID, recipe.ID),
		Name:             recipe.Name,
		Image:            images.URL(recipe.Image),
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}
