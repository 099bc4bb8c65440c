package context

import (
	"github.com/labstack/echo/v4"

	"foodgram/internal/domain/entity"
)

// KeyActor is the key for storing the authenticated actor in echo.Context.
const KeyActor ContextKey = "actor"

// SetActor stores the actor resolved by the auth middleware.
func SetActor(c echo.Context, actor *entity.Actor) {
	c.Set(string(KeyActor), actor)
}

// GetActor returns the actor of the request, or the anonymous actor
// when the auth middleware has not run or found no credentials.
func GetActor(c echo.Context) *entity.Actor {
	if actor, ok := c.Get(string(KeyActor)).(*entity.Actor); ok && actor != nil {
		return actor
	}

	return entity.Anonymous()
}
