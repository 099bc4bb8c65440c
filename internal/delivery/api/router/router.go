// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"foodgram/config"
	"foodgram/internal/delivery/api/middleware"
	"foodgram/internal/delivery/api/router/handler"
	"foodgram/internal/domain/entity"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SubscriptionHandler *handler.SubscriptionHandler
	CatalogHandler      *handler.CatalogHandler
	RecipeHandler       *handler.RecipeHandler
	MarkHandler         *handler.MarkHandler
	ShoppingHandler     *handler.ShoppingHandler
	MediaHandler        *handler.MediaHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	subscriptionHandler *handler.SubscriptionHandler
	catalogHandler      *handler.CatalogHandler
	recipeHandler       *handler.RecipeHandler
	markHandler         *handler.MarkHandler
	shoppingHandler     *handler.ShoppingHandler
	mediaHandler        *handler.MediaHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		subscriptionHandler: params.SubscriptionHandler,
		catalogHandler:      params.CatalogHandler,
		recipeHandler:       params.RecipeHandler,
		markHandler:         params.MarkHandler,
		shoppingHandler:     params.ShoppingHandler,
		mediaHandler:        params.MediaHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Stored recipe images
	e.GET("/media/*", r.mediaHandler.ServeImage)

	// Every API route resolves the actor; anonymous requests pass through
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	requireAuth := r.authMiddleware.RequireAuth

	authGroup := api.Group("/auth/token")
	{
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/logout", r.userHandler.Logout, requireAuth)
	}

	usersGroup := api.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/me", r.userHandler.Me, requireAuth)
		usersGroup.POST("/set_password", r.userHandler.SetPassword, requireAuth)
		usersGroup.GET("/subscriptions", r.subscriptionHandler.ListSubscriptions, requireAuth)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.POST("/:id/subscribe", r.subscriptionHandler.Subscribe, requireAuth)
		usersGroup.DELETE("/:id/subscribe", r.subscriptionHandler.Unsubscribe, requireAuth)
	}

	tagsGroup := api.Group("/tags")
	{
		tagsGroup.GET("", r.catalogHandler.ListTags)
		tagsGroup.GET("/:id", r.catalogHandler.GetTag)
		// Admin rights are checked by the catalog use case
		tagsGroup.POST("", r.catalogHandler.CreateTag, requireAuth)
	}

	ingredientsGroup := api.Group("/ingredients")
	{
		ingredientsGroup.GET("", r.catalogHandler.ListIngredients)
		ingredientsGroup.GET("/:id", r.catalogHandler.GetIngredient)
	}

	recipesGroup := api.Group("/recipes")
	{
		recipesGroup.GET("", r.recipeHandler.ListRecipes)
		recipesGroup.POST("", r.recipeHandler.CreateRecipe, requireAuth)
		recipesGroup.GET("/download_shopping_cart", r.shoppingHandler.Download, requireAuth)
		recipesGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipesGroup.PATCH("/:id", r.recipeHandler.UpdateRecipe, requireAuth)
		recipesGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe, requireAuth)
		recipesGroup.GET("/:id/qr", r.recipeHandler.RecipeQR)

		recipesGroup.POST("/:id/favorite", r.markHandler.Add(entity.MarkFavorite), requireAuth)
		recipesGroup.DELETE("/:id/favorite", r.markHandler.Remove(entity.MarkFavorite), requireAuth)
		recipesGroup.POST("/:id/shopping_cart", r.markHandler.Add(entity.MarkShoppingCart), requireAuth)
		recipesGroup.DELETE("/:id/shopping_cart", r.markHandler.Remove(entity.MarkShoppingCart), requireAuth)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		// Test routes that require authentication
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate, r.authMiddleware.RequireAuth)
	}
}
