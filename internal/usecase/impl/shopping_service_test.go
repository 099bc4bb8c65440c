package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/service"
	"foodgram/internal/infra/report"
	mockRepo "foodgram/internal/mocks/repository"
	"foodgram/internal/usecase"
)

func createTestShoppingService(t *testing.T) (usecase.ShoppingUsecase, *mockRepo.MockRecipeRepository) {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	srv := NewShoppingService(ShoppingServiceParams{
		RecipeRepo: recipeRepo,
		Renderers:  []service.ShoppingListRenderer{report.NewCSVRenderer(), report.NewTextRenderer()},
		Logger:     newDiscardLogger(),
	})

	return srv, recipeRepo
}

func cartLines() []entity.RecipeIngredient {
	return []entity.RecipeIngredient{
		{RecipeID: 1, IngredientID: 5, Name: "sugar", MeasurementUnit: "g", Amount: 100},
		{RecipeID: 1, IngredientID: 2, Name: "egg", MeasurementUnit: "pcs", Amount: 2},
		{RecipeID: 2, IngredientID: 5, Name: "sugar", MeasurementUnit: "g", Amount: 50},
	}
}

func TestShoppingService_BuildShoppingList(t *testing.T) {
	srv, recipeRepo := createTestShoppingService(t)
	ctx := context.Background()

	recipeRepo.EXPECT().FindCartIngredients(ctx, int64(8)).Return(cartLines(), nil)

	items, err := srv.BuildShoppingList(ctx, userActor(8))

	require.NoError(t, err)
	assert.Equal(t, []entity.ShoppingListItem{
		{IngredientID: 2, Name: "egg", MeasurementUnit: "pcs", Total: 2},
		{IngredientID: 5, Name: "sugar", MeasurementUnit: "g", Total: 150},
	}, items)
}

func TestShoppingService_BuildShoppingList_LogsTotals(t *testing.T) {
	var buf bytes.Buffer
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	srv := NewShoppingService(ShoppingServiceParams{
		RecipeRepo: recipeRepo,
		Logger:     slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	ctx := context.Background()

	recipeRepo.EXPECT().FindCartIngredients(ctx, int64(8)).Return(cartLines(), nil)

	_, err := srv.BuildShoppingList(ctx, userActor(8))

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "lines=3")
	assert.Contains(t, buf.String(), "items=2")
	assert.Contains(t, buf.String(), "total_amount=152")
}

func TestShoppingService_BuildShoppingList_EmptyCart(t *testing.T) {
	srv, recipeRepo := createTestShoppingService(t)
	ctx := context.Background()

	recipeRepo.EXPECT().FindCartIngredients(ctx, int64(8)).Return(nil, nil)

	items, err := srv.BuildShoppingList(ctx, userActor(8))

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestShoppingService_BuildShoppingList_Anonymous(t *testing.T) {
	srv, _ := createTestShoppingService(t)

	_, err := srv.BuildShoppingList(context.Background(), entity.Anonymous())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestShoppingService_Export(t *testing.T) {
	srv, recipeRepo := createTestShoppingService(t)
	ctx := context.Background()
	actor := userActor(8)
	actor.Username = "alice"

	recipeRepo.EXPECT().FindCartIngredients(ctx, int64(8)).Return(cartLines(), nil).Twice()

	csvExport, err := srv.Export(ctx, actor, "CSV")
	require.NoError(t, err)
	assert.Equal(t, "shopping-list-alice.csv", csvExport.FileName)
	assert.Equal(t, "text/csv; charset=utf-8", csvExport.ContentType)
	assert.True(t, bytes.HasPrefix(csvExport.Content, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(csvExport.Content), "sugar,g,150")

	txtExport, err := srv.Export(ctx, actor, "")
	require.NoError(t, err)
	assert.Equal(t, "shopping-list-alice.txt", txtExport.FileName)
	assert.Equal(t, "egg (pcs) - 2\nsugar (g) - 150\n", string(txtExport.Content))
}

func TestShoppingService_Export_UnsupportedFormat(t *testing.T) {
	srv, _ := createTestShoppingService(t)

	_, err := srv.Export(context.Background(), userActor(8), "pdf")

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFormat)
}
