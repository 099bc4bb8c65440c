package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	mockRepo "foodgram/internal/mocks/repository"
	mockSvc "foodgram/internal/mocks/service"
	"foodgram/internal/usecase"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	followRepo   *mockRepo.MockFollowRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		followRepo:   mockRepo.NewMockFollowRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fx.service = NewUserService(UserServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		FollowRepo:   fx.followRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:     " alice@example.com ",
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Liddell",
		Password:  "wonderland",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("wonderland").Return("hashed", nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewUserRepository().Return(fx.userRepo)
	})
	fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, "alice@example.com", "alice").Return(false, nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.PasswordHash == "hashed" && u.Role == entity.RoleUser
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 42 }).
		Return(nil)

	view, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, "alice@example.com", view.Email)
	assert.False(t, view.IsSubscribed)
}

func TestUserService_Register_Taken(t *testing.T) {
	t.Run("detected before insert", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		})
		fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, mock.Anything, mock.Anything).Return(true, nil)

		_, err := fx.service.Register(ctx, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("rejected by unique constraint", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		})
		fx.userRepo.EXPECT().ExistsByEmailOrUsername(ctx, mock.Anything, mock.Anything).Return(false, nil)
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUser)

		_, err := fx.service.Register(ctx, validRegisterInput())

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
	}{
		{name: "bad email", mutate: func(in *usecase.RegisterInput) { in.Email = "not-an-email" }},
		{name: "bad username", mutate: func(in *usecase.RegisterInput) { in.Username = "alice smith" }},
		{name: "missing first name", mutate: func(in *usecase.RegisterInput) { in.FirstName = "" }},
		{name: "long last name", mutate: func(in *usecase.RegisterInput) { in.LastName = strings.Repeat("x", 151) }},
		{name: "empty password", mutate: func(in *usecase.RegisterInput) { in.Password = "" }},
		{name: "password over bcrypt limit", mutate: func(in *usecase.RegisterInput) { in.Password = strings.Repeat("p", 73) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validRegisterInput()
			tt.mutate(&input)

			_, err := fx.service.Register(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	stored := &entity.User{ID: 42, Email: "alice@example.com", Username: "alice", PasswordHash: "hashed", Role: entity.RoleAdmin}

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("issues token with roles", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)
		fx.hasher.EXPECT().Check("wonderland", "hashed").Return(true)
		fx.tokenService.EXPECT().
			GenerateAccessToken(service.TokenSubject{UserID: 42, Username: "alice", Roles: []string{"user", "admin"}}).
			Return("signed", nil)
		fx.tokenService.EXPECT().AccessTokenTTL().Return(time.Hour)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wonderland"})

		require.NoError(t, err)
		assert.Equal(t, "signed", out.AuthToken)
		assert.Equal(t, time.Hour, out.ExpiresIn)
		assert.Equal(t, stored, out.User)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	t.Run("invalid token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("malformed"))

		_, err := fx.service.Authenticate(context.Background(), "garbage")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("signed").Return(&service.Claims{UserID: 42}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "signed")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("roles come from the stored user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateToken("signed").
			Return(&service.Claims{UserID: 42, Roles: []string{"user", "admin"}}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, int64(42)).
			Return(&entity.User{ID: 42, Username: "alice", Role: entity.RoleUser}, nil)

		actor, err := fx.service.Authenticate(ctx, "signed")

		require.NoError(t, err)
		assert.Equal(t, int64(42), actor.UserID)
		assert.False(t, actor.IsAdmin())
	})
}

func TestUserService_GetUser(t *testing.T) {
	target := &entity.User{ID: 7, Username: "bob"}

	t.Run("anonymous never subscribed", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(target, nil)

		view, err := fx.service.GetUser(ctx, entity.Anonymous(), 7)

		require.NoError(t, err)
		assert.False(t, view.IsSubscribed)
	})

	t.Run("follower sees subscription", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(target, nil)
		fx.followRepo.EXPECT().Exists(ctx, int64(8), int64(7)).Return(true, nil)

		view, err := fx.service.GetUser(ctx, userActor(8), 7)

		require.NoError(t, err)
		assert.True(t, view.IsSubscribed)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(ctx, userActor(8), 7)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	users := []*entity.User{{ID: 7, Username: "bob"}, {ID: 9, Username: "carol"}}
	fx.userRepo.EXPECT().List(ctx, 2, 2).Return(users, 4, nil)
	fx.followRepo.EXPECT().FindFollowedAmong(ctx, int64(8), []int64{7, 9}).Return([]int64{9}, nil)

	page, err := fx.service.ListUsers(ctx, userActor(8), usecase.PageRequest{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Count)
	require.Len(t, page.Results, 2)
	assert.False(t, page.Results[0].IsSubscribed)
	assert.True(t, page.Results[1].IsSubscribed)
}

func TestUserService_SetPassword(t *testing.T) {
	stored := &entity.User{ID: 8, PasswordHash: "old-hash"}

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(8)).Return(stored, nil)
		fx.hasher.EXPECT().Check("guess", "old-hash").Return(false)

		err := fx.service.SetPassword(ctx, userActor(8), usecase.SetPasswordInput{CurrentPassword: "guess", NewPassword: "fresh"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCurrentPassword)
	})

	t.Run("replaces hash", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByID(ctx, int64(8)).Return(stored, nil)
		fx.hasher.EXPECT().Check("old", "old-hash").Return(true)
		fx.hasher.EXPECT().Hash("fresh").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(ctx, int64(8), "new-hash").Return(nil)

		err := fx.service.SetPassword(ctx, userActor(8), usecase.SetPasswordInput{CurrentPassword: "old", NewPassword: "fresh"})

		assert.NoError(t, err)
	})

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.SetPassword(context.Background(), entity.Anonymous(), usecase.SetPasswordInput{NewPassword: "fresh"})

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
