package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	"foodgram/config"
	deliverycontext "foodgram/internal/delivery/context"
	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/policy"
	"foodgram/internal/domain/repository"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
	"foodgram/internal/usecase"
)

var fieldValidator = validator.New()

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	followRepo   repository.FollowRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	config       *config.Config
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FollowRepo   repository.FollowRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		followRepo:   params.FollowRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with a unique email and username.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.UserView, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	newUser := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		taken, err := userRepo.ExistsByEmailOrUsername(ctx, newUser.Email, newUser.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check existing user")
		}
		if taken {
			return domainerrors.ErrUserAlreadyExists
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUser) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("user_id", newUser.ID))

	view := toUserView(newUser, false)

	return &view, nil
}

// Login verifies the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateAccessToken(service.TokenSubject{
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.Roles().ToStrings(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		AuthToken: token,
		ExpiresIn: srv.tokenService.AccessTokenTTL(),
		User:      user,
	}, nil
}

// Authenticate validates the access token and reloads the user it names,
// so deleted accounts and revoked admin rights take effect immediately.
func (srv *userService) Authenticate(ctx context.Context, token string) (*entity.Actor, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WithDetails("invalid or expired token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUnauthorized.WithDetails("token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token user")
	}

	return entity.NewActor(user), nil
}

// Me returns the actor's own account.
func (srv *userService) Me(ctx context.Context, actor *entity.Actor) (*usecase.UserView, error) {
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, err
	}

	user, err := srv.findUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	view := toUserView(user, false)

	return &view, nil
}

// GetUser returns a user with whether the actor follows them.
func (srv *userService) GetUser(ctx context.Context, actor *entity.Actor, id int64) (*usecase.UserView, error) {
	user, err := srv.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if !actor.IsAnonymous() && actor.UserID != id {
		subscribed, err = srv.followRepo.Exists(ctx, actor.UserID, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check follow")
		}
	}

	view := toUserView(user, subscribed)

	return &view, nil
}

// ListUsers returns a page of users ordered by id.
func (srv *userService) ListUsers(ctx context.Context, actor *entity.Actor, page usecase.PageRequest) (*usecase.Page[usecase.UserView], error) {
	limit, offset := pageBounds(srv.config, page)

	users, count, err := srv.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	followed := map[int64]bool{}
	if !actor.IsAnonymous() && len(users) > 0 {
		ids := make([]int64, 0, len(users))
		for _, user := range users {
			ids = append(ids, user.ID)
		}

		followedIDs, err := srv.followRepo.FindFollowedAmong(ctx, actor.UserID, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load followed users")
		}
		for _, id := range followedIDs {
			followed[id] = true
		}
	}

	results := make([]usecase.UserView, 0, len(users))
	for _, user := range users {
		results = append(results, toUserView(user, followed[user.ID]))
	}

	return &usecase.Page[usecase.UserView]{Count: count, Results: results}, nil
}

// SetPassword replaces the actor's password after verifying the current one.
func (srv *userService) SetPassword(ctx context.Context, actor *entity.Actor, input usecase.SetPasswordInput) error {
	if err := policy.RequireIdentity(actor); err != nil {
		return err
	}
	if err := validatePassword(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.findUser(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected", slog.Int64("user_id", user.ID))

		return domainerrors.ErrInvalidCurrentPassword
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	if err := srv.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.Int64("user_id", user.ID))

	return nil
}

func (srv *userService) findUser(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func validateRegistration(input usecase.RegisterInput) error {
	if err := fieldValidator.Var(input.Email, "required,email,max=254"); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("email must be a valid address of at most 254 characters")
	}
	if !entity.ValidUsername(input.Username) {
		return domainerrors.ErrValidationFailed.WithDetails("username may contain only letters, digits and @/./+/-/_")
	}
	if input.FirstName == "" || utf8.RuneCountInString(input.FirstName) > entity.MaxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("first_name is required and must be at most 150 characters")
	}
	if input.LastName == "" || utf8.RuneCountInString(input.LastName) > entity.MaxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("last_name is required and must be at most 150 characters")
	}

	return validatePassword(input.Password)
}

func validatePassword(password string) error {
	if password == "" || len(password) > entity.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithDetails("password is required and must be at most 72 bytes")
	}

	return nil
}
