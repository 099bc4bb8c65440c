package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/filter"
	"foodgram/internal/domain/repository"
	"foodgram/internal/errors"
	mockRepo "foodgram/internal/mocks/repository"
	mockSvc "foodgram/internal/mocks/service"
	"foodgram/internal/usecase"
)

type recipeServiceFixtures struct {
	service        usecase.RecipeUsecase
	txManager      *mockRepo.MockTransactionManager
	recipeRepo     *mockRepo.MockRecipeRepository
	ingredientRepo *mockRepo.MockIngredientRepository
	tagRepo        *mockRepo.MockTagRepository
	markRepo       *mockRepo.MockMarkRepository
	followRepo     *mockRepo.MockFollowRepository
	images         *mockSvc.MockImageStore
	qrcode         *mockSvc.MockQRCodeService
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	fx := recipeServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		recipeRepo:     mockRepo.NewMockRecipeRepository(t),
		ingredientRepo: mockRepo.NewMockIngredientRepository(t),
		tagRepo:        mockRepo.NewMockTagRepository(t),
		markRepo:       mockRepo.NewMockMarkRepository(t),
		followRepo:     mockRepo.NewMockFollowRepository(t),
		images:         newURLImageStore(t),
		qrcode:         mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewRecipeService(RecipeServiceParams{
		TxManager:      fx.txManager,
		RecipeRepo:     fx.recipeRepo,
		IngredientRepo: fx.ingredientRepo,
		TagRepo:        fx.tagRepo,
		MarkRepo:       fx.markRepo,
		FollowRepo:     fx.followRepo,
		ImageStore:     fx.images,
		QRCodeService:  fx.qrcode,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func sampleRecipe(id, authorID int64) *entity.Recipe {
	return &entity.Recipe{
		ID:          id,
		AuthorID:    authorID,
		Author:      &entity.User{ID: authorID, Username: "author", Email: "author@example.com"},
		Name:        "Borscht",
		Text:        "Boil beets.",
		CookingTime: 90,
		Image:       "recipes/images/borscht.jpg",
		Tags:        []entity.Tag{{ID: 3, Name: "Dinner", Color: "#E26C2D", Slug: "dinner"}},
		Ingredients: []entity.RecipeIngredient{
			{RecipeID: id, IngredientID: 1, Name: "beet", MeasurementUnit: "g", Amount: 500},
		},
	}
}

func validRecipeInput() usecase.RecipeInput {
	return usecase.RecipeInput{
		Name:        "Borscht",
		Text:        "Boil beets.",
		CookingTime: 90,
		Image:       "data:image/png;base64,AAAA",
		Ingredients: []entity.IngredientAmount{
			{IngredientID: 1, Amount: 200},
			{IngredientID: 2, Amount: 1},
			{IngredientID: 1, Amount: 300},
		},
		TagIDs: []int64{3, 3},
	}
}

func TestRecipeService_CreateRecipe_Anonymous(t *testing.T) {
	fx := createTestRecipeService(t)

	view, err := fx.service.CreateRecipe(context.Background(), entity.Anonymous(), validRecipeInput())

	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestRecipeService_CreateRecipe_Success(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	actor := userActor(7)

	fx.ingredientRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).
		Return([]*entity.Ingredient{{ID: 1}, {ID: 2}}, nil)
	fx.tagRepo.EXPECT().FindByIDs(ctx, []int64{3}).
		Return([]*entity.Tag{{ID: 3}}, nil)
	fx.images.EXPECT().Save(ctx, "data:image/png;base64,AAAA").Return("recipes/images/new.png", nil)

	recipeRepoTx := mockRepo.NewMockRecipeRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRecipeRepository().Return(recipeRepoTx)
	})
	recipeRepoTx.EXPECT().
		Create(ctx, mock.MatchedBy(func(r *entity.Recipe) bool {
			return r.AuthorID == 7 &&
				r.Image == "recipes/images/new.png" &&
				assert.ObjectsAreEqual([]entity.RecipeIngredient{
					{IngredientID: 1, Amount: 500},
					{IngredientID: 2, Amount: 1},
				}, r.Ingredients) &&
				len(r.Tags) == 1 && r.Tags[0].ID == 3
		})).
		Run(func(_ context.Context, r *entity.Recipe) { r.ID = 10 }).
		Return(nil)

	stored := sampleRecipe(10, 7)
	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(stored, nil)
	fx.markRepo.EXPECT().FindByRecipes(ctx, int64(7), []int64{10}).Return(nil, nil)
	fx.followRepo.EXPECT().FindFollowedAmong(ctx, int64(7), []int64{7}).Return(nil, nil)

	view, err := fx.service.CreateRecipe(ctx, actor, validRecipeInput())

	require.NoError(t, err)
	assert.Equal(t, int64(10), view.ID)
	assert.Equal(t, "http://media.test/recipes/images/borscht.jpg", view.Image)
	assert.False(t, view.IsFavorited)
	assert.False(t, view.Author.IsSubscribed)
	require.Len(t, view.Ingredients, 1)
	assert.Equal(t, "beet", view.Ingredients[0].Name)
}

func TestRecipeService_CreateRecipe_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RecipeInput)
	}{
		{name: "missing image", mutate: func(in *usecase.RecipeInput) { in.Image = "" }},
		{name: "missing name", mutate: func(in *usecase.RecipeInput) { in.Name = "" }},
		{name: "cooking time too small", mutate: func(in *usecase.RecipeInput) { in.CookingTime = 0 }},
		{name: "no ingredients", mutate: func(in *usecase.RecipeInput) { in.Ingredients = nil }},
		{name: "zero amount", mutate: func(in *usecase.RecipeInput) { in.Ingredients[0].Amount = 0 }},
		{name: "coalesced amount overflows", mutate: func(in *usecase.RecipeInput) {
			in.Ingredients = []entity.IngredientAmount{{IngredientID: 1, Amount: 20000}, {IngredientID: 1, Amount: 20000}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)
			input := validRecipeInput()
			tt.mutate(&input)

			_, err := fx.service.CreateRecipe(context.Background(), userActor(7), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestRecipeService_CreateRecipe_UnknownIngredient(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).
		Return([]*entity.Ingredient{{ID: 1}}, nil)

	_, err := fx.service.CreateRecipe(ctx, userActor(7), validRecipeInput())

	assert.ErrorIs(t, err, domainerrors.ErrIngredientNotFound)
}

func TestRecipeService_CreateRecipe_TransactionFailureDiscardsImage(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.ingredientRepo.EXPECT().FindByIDs(ctx, []int64{1, 2}).Return([]*entity.Ingredient{{ID: 1}, {ID: 2}}, nil)
	fx.tagRepo.EXPECT().FindByIDs(ctx, []int64{3}).Return([]*entity.Tag{{ID: 3}}, nil)
	fx.images.EXPECT().Save(ctx, mock.Anything).Return("recipes/images/new.png", nil)
	fx.images.EXPECT().Delete(ctx, "recipes/images/new.png").Return(nil)

	recipeRepoTx := mockRepo.NewMockRecipeRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRecipeRepository().Return(recipeRepoTx)
	})
	recipeRepoTx.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrTagNotFound)

	_, err := fx.service.CreateRecipe(ctx, userActor(7), validRecipeInput())

	assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
}

func TestRecipeService_UpdateRecipe_Forbidden(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)

	_, err := fx.service.UpdateRecipe(ctx, userActor(8), 10, usecase.RecipeInput{Name: "Mine now"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRecipeService_UpdateRecipe_AdminKeepsAssociations(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	admin := adminActor(1)

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil).Twice()

	recipeRepoTx := mockRepo.NewMockRecipeRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewRecipeRepository().Return(recipeRepoTx)
	})
	recipeRepoTx.EXPECT().
		Update(ctx, mock.MatchedBy(func(r *entity.Recipe) bool {
			return r.Name == "Renamed" && r.Text == "Boil beets." && r.AuthorID == 7
		})).
		Return(nil)

	fx.markRepo.EXPECT().FindByRecipes(ctx, int64(1), []int64{10}).Return(nil, nil)
	fx.followRepo.EXPECT().FindFollowedAmong(ctx, int64(1), []int64{7}).Return([]int64{7}, nil)

	view, err := fx.service.UpdateRecipe(ctx, admin, 10, usecase.RecipeInput{Name: "Renamed"})

	require.NoError(t, err)
	assert.True(t, view.Author.IsSubscribed)
	recipeRepoTx.AssertNotCalled(t, "ReplaceIngredients", mock.Anything, mock.Anything, mock.Anything)
	recipeRepoTx.AssertNotCalled(t, "ReplaceTags", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Run("owner deletes recipe and image", func(t *testing.T) {
		fx := createTestRecipeService(t)
		ctx := context.Background()

		fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
		fx.recipeRepo.EXPECT().Delete(ctx, int64(10)).Return(nil)
		fx.images.EXPECT().Delete(ctx, "recipes/images/borscht.jpg").Return(nil)

		require.NoError(t, fx.service.DeleteRecipe(ctx, userActor(7), 10))
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestRecipeService(t)

		err := fx.service.DeleteRecipe(context.Background(), nil, 10)

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("missing recipe", func(t *testing.T) {
		fx := createTestRecipeService(t)
		ctx := context.Background()

		fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(nil, repository.ErrRecipeNotFound)

		err := fx.service.DeleteRecipe(ctx, userActor(7), 10)

		assert.ErrorIs(t, err, domainerrors.ErrRecipeNotFound)
	})
}

func TestRecipeService_ListRecipes_AnonymousFavorites(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	favorited := true

	fx.recipeRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(p filter.Plan) bool { return p.Empty }), 6, 0).
		Return(nil, 0, nil)

	page, err := fx.service.ListRecipes(ctx, entity.Anonymous(), filter.RecipeFilter{IsFavorited: &favorited}, usecase.PageRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Count)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}

func TestRecipeService_ListRecipes_MarksFlags(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	actor := userActor(8)

	recipes := []*entity.Recipe{sampleRecipe(10, 7), sampleRecipe(11, 9)}
	fx.recipeRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(p filter.Plan) bool { return p.ActorID == 8 }), 10, 10).
		Return(recipes, 12, nil)
	fx.markRepo.EXPECT().FindByRecipes(ctx, int64(8), []int64{10, 11}).Return([]*entity.Mark{
		{Kind: entity.MarkFavorite, UserID: 8, RecipeID: 10},
		{Kind: entity.MarkShoppingCart, UserID: 8, RecipeID: 11},
	}, nil)
	fx.followRepo.EXPECT().FindFollowedAmong(ctx, int64(8), []int64{7, 9}).Return([]int64{9}, nil)

	page, err := fx.service.ListRecipes(ctx, actor, filter.RecipeFilter{}, usecase.PageRequest{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Count)
	require.Len(t, page.Results, 2)
	assert.True(t, page.Results[0].IsFavorited)
	assert.False(t, page.Results[0].IsInShoppingCart)
	assert.False(t, page.Results[0].Author.IsSubscribed)
	assert.False(t, page.Results[1].IsFavorited)
	assert.True(t, page.Results[1].IsInShoppingCart)
	assert.True(t, page.Results[1].Author.IsSubscribed)
}

func TestRecipeService_RecipeQR(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(sampleRecipe(10, 7), nil)
	fx.qrcode.EXPECT().GenerateRecipeQR(int64(10)).Return([]byte("\x89PNG"), nil)

	png, err := fx.service.RecipeQR(ctx, 10)

	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png)
}

func TestRecipeService_GetRecipe_StoreError(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().FindByID(ctx, int64(10)).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetRecipe(ctx, entity.Anonymous(), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find recipe")
}
