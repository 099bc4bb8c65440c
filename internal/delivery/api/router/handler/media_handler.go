package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/internal/delivery/api/response"
	"foodgram/internal/domain/service"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	ImageStore service.ImageStore
	Logger     *slog.Logger
}

// MediaHandler streams stored recipe images
type MediaHandler struct {
	images service.ImageStore
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		images: params.ImageStore,
		logger: params.Logger,
	}
}

// ServeImage streams the object named by the wildcard path.
func (h *MediaHandler) ServeImage(c echo.Context) error {
	reader, contentType, err := h.images.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			h.logger.Warn("Failed to close image reader", slog.Any("error", closeErr))
		}
	}()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, reader)
}
