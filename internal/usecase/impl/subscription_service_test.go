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

type subscriptionServiceFixtures struct {
	service    usecase.SubscriptionUsecase
	userRepo   *mockRepo.MockUserRepository
	followRepo *mockRepo.MockFollowRepository
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	fx := subscriptionServiceFixtures{
		userRepo:   mockRepo.NewMockUserRepository(t),
		followRepo: mockRepo.NewMockFollowRepository(t),
		recipeRepo: mockRepo.NewMockRecipeRepository(t),
	}
	fx.service = NewSubscriptionService(SubscriptionServiceParams{
		UserRepo:   fx.userRepo,
		FollowRepo: fx.followRepo,
		RecipeRepo: fx.recipeRepo,
		ImageStore: newURLImageStore(t),
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return fx
}

func sampleAuthor(id int64) *entity.User {
	return &entity.User{ID: id, Username: "author", Email: "author@example.com", FirstName: "Ann", LastName: "Author"}
}

func TestSubscriptionService_Follow_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(sampleAuthor(7), nil)
	fx.followRepo.EXPECT().Exists(ctx, int64(8), int64(7)).Return(false, nil)
	fx.followRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(f *entity.Follow) bool { return f.UserID == 8 && f.AuthorID == 7 })).
		Return(nil)
	fx.recipeRepo.EXPECT().ListByAuthor(ctx, int64(7), 3).Return([]*entity.Recipe{sampleRecipe(10, 7)}, nil)
	fx.recipeRepo.EXPECT().CountByAuthor(ctx, int64(7)).Return(5, nil)

	view, err := fx.service.Follow(ctx, userActor(8), 7, 3)

	require.NoError(t, err)
	assert.True(t, view.IsSubscribed)
	assert.Equal(t, int64(5), view.RecipesCount)
	require.Len(t, view.Recipes, 1)
	assert.Equal(t, int64(10), view.Recipes[0].ID)
}

func TestSubscriptionService_Follow_Errors(t *testing.T) {
	t.Run("self follow", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		_, err := fx.service.Follow(context.Background(), userActor(7), 7, 0)

		assert.ErrorIs(t, err, domainerrors.ErrSelfFollowNotAllowed)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		_, err := fx.service.Follow(context.Background(), entity.Anonymous(), 7, 0)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("missing target", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Follow(ctx, userActor(8), 7, 0)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("already following", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(sampleAuthor(7), nil)
		fx.followRepo.EXPECT().Exists(ctx, int64(8), int64(7)).Return(true, nil)

		_, err := fx.service.Follow(ctx, userActor(8), 7, 0)

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyFollowing)
	})

	t.Run("concurrent duplicate rejected by store", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(sampleAuthor(7), nil)
		fx.followRepo.EXPECT().Exists(ctx, int64(8), int64(7)).Return(false, nil)
		fx.followRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateFollow)

		_, err := fx.service.Follow(ctx, userActor(8), 7, 0)

		assert.ErrorIs(t, err, domainerrors.ErrAlreadyFollowing)
	})
}

func TestSubscriptionService_Unfollow(t *testing.T) {
	t.Run("removes follow", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(sampleAuthor(7), nil)
		fx.followRepo.EXPECT().Delete(ctx, int64(8), int64(7)).Return(nil)

		assert.NoError(t, fx.service.Unfollow(ctx, userActor(8), 7))
	})

	t.Run("not following", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(sampleAuthor(7), nil)
		fx.followRepo.EXPECT().Delete(ctx, int64(8), int64(7)).Return(repository.ErrFollowNotFound)

		err := fx.service.Unfollow(ctx, userActor(8), 7)

		assert.ErrorIs(t, err, domainerrors.ErrNotFollowing)
	})
}

func TestSubscriptionService_IsFollowing(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	following, err := fx.service.IsFollowing(ctx, 0, 7)
	require.NoError(t, err)
	assert.False(t, following)

	fx.followRepo.EXPECT().Exists(ctx, int64(8), int64(7)).Return(true, nil)

	following, err = fx.service.IsFollowing(ctx, 8, 7)
	require.NoError(t, err)
	assert.True(t, following)
}

func TestSubscriptionService_RecipeCountOf(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().CountByAuthor(ctx, int64(7)).Return(2, nil).Once()
	fx.recipeRepo.EXPECT().CountByAuthor(ctx, int64(7)).Return(3, nil).Once()

	first, err := fx.service.RecipeCountOf(ctx, 7)
	require.NoError(t, err)
	second, err := fx.service.RecipeCountOf(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(2), first)
	assert.Equal(t, int64(3), second)
}

func TestSubscriptionService_ListSubscriptions(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.followRepo.EXPECT().ListAuthors(ctx, int64(8), 6, 0).Return([]*entity.User{sampleAuthor(7), sampleAuthor(9)}, 2, nil)
	fx.recipeRepo.EXPECT().ListByAuthor(ctx, mock.Anything, 0).Return([]*entity.Recipe{}, nil).Twice()
	fx.recipeRepo.EXPECT().CountByAuthor(ctx, mock.Anything).Return(0, nil).Twice()

	page, err := fx.service.ListSubscriptions(ctx, userActor(8), usecase.PageRequest{}, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	require.Len(t, page.Results, 2)
	for _, view := range page.Results {
		assert.True(t, view.IsSubscribed)
		assert.NotNil(t, view.Recipes)
	}
}
