package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/repository"
	mockRepo "foodgram/internal/mocks/repository"
	"foodgram/internal/usecase"
)

type catalogServiceFixtures struct {
	service        usecase.CatalogUsecase
	tagRepo        *mockRepo.MockTagRepository
	ingredientRepo *mockRepo.MockIngredientRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		tagRepo:        mockRepo.NewMockTagRepository(t),
		ingredientRepo: mockRepo.NewMockIngredientRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		TagRepo:        fx.tagRepo,
		IngredientRepo: fx.ingredientRepo,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_CreateTag(t *testing.T) {
	input := usecase.CreateTagInput{Name: " Dinner ", Color: "#e26c2d", Slug: "dinner"}

	t.Run("admin creates", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.tagRepo.EXPECT().
			Create(ctx, &entity.Tag{Name: "Dinner", Color: "#E26C2D", Slug: "dinner"}).
			Run(func(_ context.Context, tag *entity.Tag) { tag.ID = 4 }).
			Return(nil)

		tag, err := fx.service.CreateTag(ctx, adminActor(1), input)

		require.NoError(t, err)
		assert.Equal(t, int64(4), tag.ID)
	})

	t.Run("regular user forbidden", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateTag(context.Background(), userActor(2), input)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateTag(context.Background(), entity.Anonymous(), input)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("invalid color", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateTag(context.Background(), adminActor(1),
			usecase.CreateTagInput{Name: "Dinner", Color: "orange", Slug: "dinner"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid slug", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.CreateTag(context.Background(), adminActor(1),
			usecase.CreateTagInput{Name: "Dinner", Color: "#FFF", Slug: "late dinner"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		fx.tagRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateTag)

		_, err := fx.service.CreateTag(ctx, adminActor(1), input)

		assert.ErrorIs(t, err, domainerrors.ErrTagAlreadyExists)
	})
}

func TestCatalogService_SearchIngredients(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	want := []*entity.Ingredient{{ID: 1, Name: "beet", MeasurementUnit: "g"}}
	fx.ingredientRepo.EXPECT().Search(ctx, "Be").Return(want, nil)

	got, err := fx.service.SearchIngredients(ctx, "  Be ")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.tagRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrTagNotFound)
	fx.ingredientRepo.EXPECT().FindByID(ctx, int64(99)).Return(nil, repository.ErrIngredientNotFound)

	_, err := fx.service.GetTag(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)

	_, err = fx.service.GetIngredient(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}
