package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/domain/entity"
	"foodgram/internal/usecase"
)

// MarkHandlerParams holds dependencies for MarkHandler, injected by Fx.
type MarkHandlerParams struct {
	fx.In

	MarkUC usecase.MarkUsecase
	Logger *slog.Logger
}

// MarkHandler adds and removes favorites and shopping cart entries
type MarkHandler struct {
	markUC usecase.MarkUsecase
	logger *slog.Logger
}

// NewMarkHandler is the constructor for MarkHandler
func NewMarkHandler(params MarkHandlerParams) *MarkHandler {
	return &MarkHandler{
		markUC: params.MarkUC,
		logger: params.Logger,
	}
}

// Add returns a handler marking the recipe in the path with kind.
func (h *MarkHandler) Add(kind entity.MarkKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipeID, err := pathID(c, "id")
		if err != nil {
			return response.HandleAppError(c, err)
		}

		recipe, err := h.markUC.Add(c.Request().Context(), deliverycontext.GetActor(c), kind, recipeID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, recipe)
	}
}

// Remove returns a handler removing the kind mark from the recipe in the path.
func (h *MarkHandler) Remove(kind entity.MarkKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipeID, err := pathID(c, "id")
		if err != nil {
			return response.HandleAppError(c, err)
		}

		if err := h.markUC.Remove(c.Request().Context(), deliverycontext.GetActor(c), kind, recipeID); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.NoContent(c)
	}
}
