package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware reports the actor resolved by the auth middleware.
// This endpoint requires a valid token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	actor := deliverycontext.GetActor(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"message":  "Authentication middleware test successful",
		"userID":   actor.UserID,
		"username": actor.Username,
		"roles":    actor.Roles.ToStrings(),
		"status":   "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
