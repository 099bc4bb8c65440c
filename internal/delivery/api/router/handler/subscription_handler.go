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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler handles author subscriptions
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// ListSubscriptions returns the authors followed by the actor.
// recipes_limit caps the recipes embedded per author.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipesLimit, err := queryInt(c, "recipes_limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscriptions, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), deliverycontext.GetActor(c), page, recipesLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscriptions)
}

// Subscribe follows the author in the path
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	authorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recipesLimit, err := queryInt(c, "recipes_limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscription, err := h.subscriptionUC.Follow(c.Request().Context(), deliverycontext.GetActor(c), authorID, recipesLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// Unsubscribe stops following the author in the path
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	authorID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.subscriptionUC.Unfollow(c.Request().Context(), deliverycontext.GetActor(c), authorID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
