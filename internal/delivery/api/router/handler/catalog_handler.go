package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/usecase"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves tags and ingredients
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateTagRequest represents the request body for creating a tag
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"required,hexcolor3or6"`
	Slug  string `json:"slug" validate:"required,max=200,slug"`
}

func (h *CatalogHandler) ListTags(c echo.Context) error {
	tags, err := h.catalogUC.ListTags(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tags)
}

func (h *CatalogHandler) GetTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.catalogUC.GetTag(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tag)
}

// CreateTag handles tag creation by administrators
func (h *CatalogHandler) CreateTag(c echo.Context) error {
	var req CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, bindingError(err))
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.catalogUC.CreateTag(c.Request().Context(), deliverycontext.GetActor(c), usecase.CreateTagInput{
		Name:  req.Name,
		Color: req.Color,
		Slug:  req.Slug,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tag)
}

// ListIngredients handles ingredient lookup; name filters by prefix.
func (h *CatalogHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.catalogUC.SearchIngredients(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredients)
}

func (h *CatalogHandler) GetIngredient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ingredient, err := h.catalogUC.GetIngredient(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ingredient)
}
