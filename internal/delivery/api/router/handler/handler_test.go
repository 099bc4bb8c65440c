package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apimiddleware "foodgram/internal/delivery/api/middleware"
	"foodgram/internal/delivery/api/validator"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/filter"
	mockSvc "foodgram/internal/mocks/service"
	mockUC "foodgram/internal/mocks/usecase"
	"foodgram/internal/usecase"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an echo instance with the production validator and
// error handler. When actor is non-nil it is injected for every request.
func newTestEcho(actor *entity.Actor) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	if actor != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				deliverycontext.SetActor(c, actor)

				return next(c)
			}
		})
	}

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRecipeHandler_ListRecipes_ParsesFilter(t *testing.T) {
	recipeUC := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	actor := &entity.Actor{UserID: 3}
	e := newTestEcho(actor)
	e.GET("/api/recipes", h.ListRecipes)

	recipeUC.EXPECT().
		ListRecipes(mock.Anything, actor, mock.MatchedBy(func(f filter.RecipeFilter) bool {
			return f.AuthorID != nil && *f.AuthorID == 7 &&
				assert.ObjectsAreEqual([]string{"breakfast", "dinner"}, f.TagSlugs) &&
				f.IsFavorited != nil && *f.IsFavorited &&
				f.IsInShoppingCart == nil
		}), usecase.PageRequest{Page: 2, Limit: 3}).
		Return(&usecase.Page[usecase.RecipeView]{Count: 0, Results: []usecase.RecipeView{}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/recipes?author=7&tags=breakfast&tags=dinner&is_favorited=1&page=2&limit=3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"results":[]}`, string(decode(t, rec).Data))
}

func TestRecipeHandler_ListRecipes_BadQuery(t *testing.T) {
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: mockUC.NewMockRecipeUsecase(t), Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/api/recipes", h.ListRecipes)

	for _, query := range []string{"author=me", "is_favorited=maybe", "limit=-1"} {
		rec := doRequest(e, http.MethodGet, "/api/recipes?"+query, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code, query)
	}
}

func TestRecipeHandler_CreateRecipe(t *testing.T) {
	t.Run("rejects body without ingredients", func(t *testing.T) {
		h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: mockUC.NewMockRecipeUsecase(t), Logger: newDiscardLogger()})
		e := newTestEcho(&entity.Actor{UserID: 3})
		e.POST("/api/recipes", h.CreateRecipe)

		rec := doRequest(e, http.MethodPost, "/api/recipes",
			`{"ingredients":[],"tags":[1],"image":"data:image/png;base64,AA==","name":"Soup","text":"Boil","cooking_time":10}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error.Details, "ingredients")
	})

	t.Run("maps request to input", func(t *testing.T) {
		recipeUC := mockUC.NewMockRecipeUsecase(t)
		h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
		e := newTestEcho(&entity.Actor{UserID: 3})
		e.POST("/api/recipes", h.CreateRecipe)

		recipeUC.EXPECT().
			CreateRecipe(mock.Anything, mock.Anything, usecase.RecipeInput{
				Name:        "Soup",
				Text:        "Boil",
				CookingTime: 10,
				Image:       "data:image/png;base64,AA==",
				Ingredients: []entity.IngredientAmount{{IngredientID: 1, Amount: 2}},
				TagIDs:      []int64{4},
			}).
			Return(&usecase.RecipeView{ID: 11, Name: "Soup"}, nil)

		rec := doRequest(e, http.MethodPost, "/api/recipes",
			`{"ingredients":[{"id":1,"amount":2}],"tags":[4],"image":"data:image/png;base64,AA==","name":"Soup","text":"Boil","cooking_time":10}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestRecipeHandler_UpdateRecipe_KeepsOmittedAssociations(t *testing.T) {
	recipeUC := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	e := newTestEcho(&entity.Actor{UserID: 3})
	e.PATCH("/api/recipes/:id", h.UpdateRecipe)

	recipeUC.EXPECT().
		UpdateRecipe(mock.Anything, mock.Anything, int64(11), usecase.RecipeInput{Name: "Better soup"}).
		Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(e, http.MethodPatch, "/api/recipes/11", `{"name":"Better soup"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRecipeHandler_RecipeQR(t *testing.T) {
	recipeUC := mockUC.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(RecipeHandlerParams{RecipeUC: recipeUC, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/api/recipes/:id/qr", h.RecipeQR)

	recipeUC.EXPECT().RecipeQR(mock.Anything, int64(5)).Return([]byte("\x89PNG"), nil)

	rec := doRequest(e, http.MethodGet, "/api/recipes/5/qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))

	rec = doRequest(e, http.MethodGet, "/api/recipes/zero/qr", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		method string
		kind   entity.MarkKind
		err    error
		code   int
		errKey string
	}{
		{name: "favorite added", method: http.MethodPost, kind: entity.MarkFavorite, code: http.StatusCreated},
		{name: "favorite duplicate", method: http.MethodPost, kind: entity.MarkFavorite, err: domainerrors.ErrAlreadyFavorited, code: http.StatusConflict, errKey: "ALREADY_FAVORITED"},
		{name: "cart removed", method: http.MethodDelete, kind: entity.MarkShoppingCart, code: http.StatusNoContent},
		{name: "cart absent", method: http.MethodDelete, kind: entity.MarkShoppingCart, err: domainerrors.ErrNotInShoppingCart, code: http.StatusNotFound, errKey: "NOT_IN_SHOPPING_CART"},
		{name: "recipe absent", method: http.MethodPost, kind: entity.MarkShoppingCart, err: domainerrors.ErrRecipeNotFound, code: http.StatusNotFound, errKey: "RECIPE_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markUC := mockUC.NewMockMarkUsecase(t)
			h := NewMarkHandler(MarkHandlerParams{MarkUC: markUC, Logger: newDiscardLogger()})
			e := newTestEcho(&entity.Actor{UserID: 3})
			e.POST("/api/recipes/:id/mark", h.Add(tt.kind))
			e.DELETE("/api/recipes/:id/mark", h.Remove(tt.kind))

			if tt.method == http.MethodPost {
				var view *usecase.RecipeShortView
				if tt.err == nil {
					view = &usecase.RecipeShortView{ID: 9}
				}
				markUC.EXPECT().Add(mock.Anything, mock.Anything, tt.kind, int64(9)).Return(view, tt.err)
			} else {
				markUC.EXPECT().Remove(mock.Anything, mock.Anything, tt.kind, int64(9)).Return(tt.err)
			}

			rec := doRequest(e, tt.method, "/api/recipes/9/mark", "")

			assert.Equal(t, tt.code, rec.Code)
			if tt.errKey != "" {
				assert.Equal(t, tt.errKey, decode(t, rec).Error.Code)
			}
		})
	}
}

func TestShoppingHandler_Download(t *testing.T) {
	shoppingUC := mockUC.NewMockShoppingUsecase(t)
	h := NewShoppingHandler(ShoppingHandlerParams{ShoppingUC: shoppingUC, Logger: newDiscardLogger()})
	e := newTestEcho(&entity.Actor{UserID: 3, Username: "alice"})
	e.GET("/api/recipes/download_shopping_cart", h.Download)

	shoppingUC.EXPECT().Export(mock.Anything, mock.Anything, "csv").Return(&usecase.ShoppingListExport{
		FileName:    "shopping-list-alice.csv",
		ContentType: "text/csv; charset=utf-8",
		Content:     []byte("name,unit,amount\n"),
	}, nil)
	shoppingUC.EXPECT().Export(mock.Anything, mock.Anything, "pdf").Return(nil, domainerrors.ErrUnsupportedFormat)

	rec := doRequest(e, http.MethodGet, "/api/recipes/download_shopping_cart?format=csv", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="shopping-list-alice.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "name,unit,amount\n", rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/recipes/download_shopping_cart?format=pdf", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Register(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.POST("/api/users", h.Register)

	userUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{
		Email: "alice@example.com", Username: "alice", FirstName: "Alice", LastName: "Liddell", Password: "secret",
	}).Return(&usecase.UserView{ID: 1, Email: "alice@example.com", Username: "alice"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/users",
		`{"email":"alice@example.com","username":"alice","first_name":"Alice","last_name":"Liddell","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/users",
		`{"email":"alice@example.com","username":"alice smith","first_name":"Alice","last_name":"Liddell","password":"secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "username")

	rec = doRequest(e, http.MethodPost, "/api/users", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_Login(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.POST("/api/auth/token/login", h.Login)

	userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "alice@example.com", Password: "secret"}).
		Return(&usecase.LoginOutput{AuthToken: "signed", ExpiresIn: time.Hour}, nil)
	userUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "alice@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/api/auth/token/login", `{"email":"alice@example.com","password":"secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"auth_token":"signed","expires_in":3600}`, string(decode(t, rec).Data))

	rec = doRequest(e, http.MethodPost, "/api/auth/token/login", `{"email":"alice@example.com","password":"wrong"}`)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.HTTPCode(), rec.Code)
}

func TestSubscriptionHandler_Subscribe(t *testing.T) {
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(SubscriptionHandlerParams{SubscriptionUC: subscriptionUC, Logger: newDiscardLogger()})
	e := newTestEcho(&entity.Actor{UserID: 3})
	e.POST("/api/users/:id/subscribe", h.Subscribe)
	e.DELETE("/api/users/:id/subscribe", h.Unsubscribe)

	subscriptionUC.EXPECT().Follow(mock.Anything, mock.Anything, int64(7), 2).
		Return(&usecase.SubscriptionView{UserView: usecase.UserView{ID: 7, IsSubscribed: true}, Recipes: []usecase.RecipeShortView{}}, nil)
	subscriptionUC.EXPECT().Follow(mock.Anything, mock.Anything, int64(3), 0).
		Return(nil, domainerrors.ErrSelfFollowNotAllowed)
	subscriptionUC.EXPECT().Unfollow(mock.Anything, mock.Anything, int64(7)).Return(domainerrors.ErrNotFollowing)

	rec := doRequest(e, http.MethodPost, "/api/users/7/subscribe?recipes_limit=2", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"is_subscribed":true`)

	rec = doRequest(e, http.MethodPost, "/api/users/3/subscribe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(e, http.MethodDelete, "/api/users/7/subscribe", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogHandler_CreateTag(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()})
	e := newTestEcho(&entity.Actor{UserID: 3})
	e.POST("/api/tags", h.CreateTag)

	catalogUC.EXPECT().CreateTag(mock.Anything, mock.Anything, usecase.CreateTagInput{Name: "Dinner", Color: "#E26C2D", Slug: "dinner"}).
		Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(e, http.MethodPost, "/api/tags", `{"name":"Dinner","color":"#E26C2D","slug":"dinner"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/tags", `{"name":"Dinner","color":"red","slug":"dinner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaHandler_ServeImage(t *testing.T) {
	images := mockSvc.NewMockImageStore(t)
	h := NewMediaHandler(MediaHandlerParams{ImageStore: images, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/media/*", h.ServeImage)

	images.EXPECT().Open(mock.Anything, "recipes/images/a.jpg").
		Return(io.NopCloser(strings.NewReader("jpeg-bytes")), "image/jpeg", nil)
	images.EXPECT().Open(mock.Anything, "recipes/images/missing.jpg").
		Return(nil, "", domainerrors.ErrNotFound)

	rec := doRequest(e, http.MethodGet, "/media/recipes/images/a.jpg", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/media/recipes/images/missing.jpg", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
