package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"foodgram/internal/delivery/api/response"
	deliverycontext "foodgram/internal/delivery/context"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/usecase"
)

// Accepted authorization schemes, compared case-insensitively.
var authSchemes = []string{"Token", "Bearer"}

// AuthMiddleware resolves the actor of each request from its access token.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(userUC usecase.UserUsecase) *AuthMiddleware {
	return &AuthMiddleware{userUC: userUC}
}

// Authenticate stores the request actor. A request without an Authorization
// header runs as the anonymous actor; a malformed or invalid token is rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token, ok := parseAuthorization(authHeader)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("authorization header must be 'Token <jwt>'"))
		}

		actor, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireAuth rejects anonymous requests. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := policy.RequireIdentity(deliverycontext.GetActor(c)); err != nil {
			return response.HandleAppError(c, err)
		}

		return next(c)
	}
}

func parseAuthorization(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	for _, accepted := range authSchemes {
		if strings.EqualFold(scheme, accepted) {
			return token, true
		}
	}

	return "", false
}
