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

type markServiceFixtures struct {
	service    usecase.MarkUsecase
	markRepo   *mockRepo.MockMarkRepository
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestMarkService(t *testing.T) markServiceFixtures {
	fx := markServiceFixtures{
		markRepo:   mockRepo.NewMockMarkRepository(t),
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
	}
	fx.service = NewMarkService(MarkServiceParams{
		MarkRepo:   fx.markRepo,
		RecipeRepo: fx.recipeRepo,
		ImageStore: newURLImageStore(t),
		Logger:     newDiscardLogger(),
	})

	return fx
}

var markKindCases = []struct {
	kind      entity.MarkKind
	duplicate error
	missing   error
}{
	{kind: entity.MarkFavorite, duplicate: domainerrors.ErrAlreadyFavorited, missing: domainerrors.ErrNotFavorited},
	{kind: entity.MarkShoppingCart, duplicate: domainerrors.ErrAlreadyInShoppingCart, missing: domainerrors.ErrNotInShoppingCart},
}

func TestMarkService_Add_Success(t *testing.T) {
	for _, tc := range markKindCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			fx := createTestMarkService(t)
			ctx := context.Background()

			fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
			fx.markRepo.EXPECT().Exists(ctx, tc.kind, int64(8), int64(10)).Return(false, nil)
			fx.markRepo.EXPECT().
				Create(ctx, mock.MatchedBy(func(m *entity.Mark) bool {
					return m.Kind == tc.kind && m.UserID == 8 && m.RecipeID == 10
				})).
				Return(nil)

			view, err := fx.service.Add(ctx, userActor(8), tc.kind, 10)

			require.NoError(t, err)
			assert.Equal(t, usecase.RecipeShortView{
				ID:          10,
				Name:        "Borscht",
				Image:       "http://media.test/recipes/images/borscht.jpg",
				CookingTime: 90,
			}, *view)
		})
	}
}

func TestMarkService_Add_Duplicate(t *testing.T) {
	for _, tc := range markKindCases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			fx := createTestMarkService(t)
			ctx := context.Background()

			fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
			fx.markRepo.EXPECT().Exists(ctx, tc.kind, int64(8), int64(10)).Return(true, nil)

			_, err := fx.service.Add(ctx, userActor(8), tc.kind, 10)

			assert.ErrorIs(t, err, tc.duplicate)
		})
	}
}

func TestMarkService_Add_ConcurrentDuplicate(t *testing.T) {
	fx := createTestMarkService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
	fx.markRepo.EXPECT().Exists(ctx, entity.MarkFavorite, int64(8), int64(10)).Return(false, nil)
	fx.markRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateMark)

	_, err := fx.service.Add(ctx, userActor(8), entity.MarkFavorite, 10)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyFavorited)
}

func TestMarkService_Add_MissingRecipe(t *testing.T) {
	fx := createTestMarkService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.Add(ctx, userActor(8), entity.MarkShoppingCart, 10)

	assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
}

func TestMarkService_RejectsAnonymousAndUnknownKind(t *testing.T) {
	fx := createTestMarkService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, entity.Anonymous(), entity.MarkFavorite, 10)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	err = fx.service.Remove(ctx, userActor(8), entity.MarkKind("bookmark"), 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMarkService_Remove(t *testing.T) {
	for _, tc := range markKindCases {
		t.Run(tc.kind.String()+" removed", func(t *testing.T) {
			fx := createTestMarkService(t)
			ctx := context.Background()

			fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
			fx.markRepo.EXPECT().Delete(ctx, tc.kind, int64(8), int64(10)).Return(nil)

			assert.NoError(t, fx.service.Remove(ctx, userActor(8), tc.kind, 10))
		})

		t.Run(tc.kind.String()+" absent", func(t *testing.T) {
			fx := createTestMarkService(t)
			ctx := context.Background()

			fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
			fx.markRepo.EXPECT().Delete(ctx, tc.kind, int64(8), int64(10)).Return(repository.ErrMarkNotFound)

			err := fx.service.Remove(ctx, userActor(8), tc.kind, 10)

			assert.ErrorIs(t, err, tc.missing)
		})
	}
}
