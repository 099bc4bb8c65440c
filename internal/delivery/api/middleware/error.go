package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/errors"
)

// ErrorMiddleware is the echo HTTPErrorHandler of the API server.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders err unless a response was already written.
// AppErrors keep their own status and code, echo errors (unknown route,
// body too large) become HTTP_ERROR, and anything else is logged and
// hidden behind a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	req := c.Request()
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).With(
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		m.write(logger, response.HandleAppError(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = "An error occurred"
		}
		m.write(logger, response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil))

		return
	}

	logger.Error("Unhandled error", slog.Any("error", err))
	m.write(logger, response.InternalServerError(c))
}

func (m *ErrorMiddleware) write(logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Failed to write error response", slog.Any("error", err))
	}
}
