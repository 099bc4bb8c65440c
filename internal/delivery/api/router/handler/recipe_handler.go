package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/filter"
	"foodgram/internal/usecase"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

// RecipeHandler handles recipe CRUD, listing and QR codes
type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler
func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// RecipeIngredientRequest is one ingredient line of a recipe request
type RecipeIngredientRequest struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	Amount int   `json:"amount" validate:"required,gte=1"`
}

// CreateRecipeRequest represents the request body for publishing a recipe
type CreateRecipeRequest struct {
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64                   `json:"tags" validate:"required,min=1,dive,gt=0"`
	Image       string                    `json:"image" validate:"required"`
	Name        string                    `json:"name" validate:"required,max=200"`
	Text        string                    `json:"text" validate:"required"`
	CookingTime int                       `json:"cooking_time" validate:"required,gte=1,lte=32767"`
}

// UpdateRecipeRequest represents the request body for a partial recipe update.
// Omitted fields keep their stored values.
type UpdateRecipeRequest struct {
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	Tags        []int64                   `json:"tags" validate:"omitempty,dive,gt=0"`
	Image       string                    `json:"image"`
	Name        string                    `json:"name" validate:"max=200"`
	Text        string                    `json:"text"`
	CookingTime int                       `json:"cooking_time" validate:"omitempty,gte=1,lte=32767"`
}

// ListRecipes handles the filtered, paginated recipe list
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	f, err := recipeFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipes, err := h.recipeUC.ListRecipes(c.Request().Context(), deliverycontext.GetActor(c), f, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipes)
}

// CreateRecipe handles publishing a recipe
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindingError(err))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.CreateRecipe(c.Request().Context(), deliverycontext.GetActor(c), usecase.RecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		Ingredients: ingredientAmounts(req.Ingredients),
		TagIDs:      req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.GetRecipe(c.Request().Context(), deliverycontext.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

// UpdateRecipe handles a partial recipe update by its author or an administrator
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindingError(err))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	recipe, err := h.recipeUC.UpdateRecipe(c.Request().Context(), deliverycontext.GetActor(c), id, usecase.RecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		Ingredients: ingredientAmounts(req.Ingredients),
		TagIDs:      req.Tags,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.recipeUC.DeleteRecipe(c.Request().Context(), deliverycontext.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// RecipeQR returns a PNG QR code linking to the public recipe page
func (h *RecipeHandler) RecipeQR(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.recipeUC.RecipeQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// recipeFilter reads author, tags, is_favorited and is_in_shopping_cart.
func recipeFilter(c echo.Context) (filter.RecipeFilter, error) {
	var f filter.RecipeFilter

	if raw := c.QueryParam("author"); raw != "" {
		authorID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, domainerrors.ErrValidationFailed.WithDetails("author must be an integer")
		}
		f.AuthorID = &authorID
	}

	f.TagSlugs = c.QueryParams()["tags"]

	var err error
	if f.IsFavorited, err = queryBool(c, "is_favorited"); err != nil {
		return f, err
	}
	if f.IsInShoppingCart, err = queryBool(c, "is_in_shopping_cart"); err != nil {
		return f, err
	}

	return f, nil
}

// ingredientAmounts keeps nil as nil so an update without ingredients keeps them.
func ingredientAmounts(items []RecipeIngredientRequest) []entity.IngredientAmount {
	if items == nil {
		return nil
	}

	amounts := make([]entity.IngredientAmount, 0, len(items))
	for _, item := range items {
		amounts = append(amounts, entity.IngredientAmount{IngredientID: item.ID, Amount: item.Amount})
	}

	return amounts
}
