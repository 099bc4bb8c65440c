package handler

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/usecase"
)

// ShoppingHandlerParams holds dependencies for ShoppingHandler, injected by Fx.
type ShoppingHandlerParams struct {
	fx.In

	ShoppingUC usecase.ShoppingUsecase
	Logger     *slog.Logger
}

// ShoppingHandler serves the aggregated shopping list
type ShoppingHandler struct {
	shoppingUC usecase.ShoppingUsecase
	logger     *slog.Logger
}

// NewShoppingHandler is the constructor for ShoppingHandler
func NewShoppingHandler(params ShoppingHandlerParams) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingUC: params.ShoppingUC,
		logger:     params.Logger,
	}
}

// Download returns the actor's shopping list as an attachment in the
// format named by the format query parameter.
func (h *ShoppingHandler) Download(c echo.Context) error {
	export, err := h.shoppingUC.Export(c.Request().Context(), deliverycontext.GetActor(c), c.QueryParam("format"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, export.FileName, export.ContentType, export.Content)
}
