package usecase

import (
	"context"
	"time"

	"foodgram/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to sign up.
type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SetPasswordInput defines the data required to change the actor's password.
type SetPasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AuthToken string
	ExpiresIn time.Duration
	User      *entity.User
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*UserView, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	// Authenticate resolves an access token into an actor.
	Authenticate(ctx context.Context, token string) (*entity.Actor, error)
	Me(ctx context.Context, actor *entity.Actor) (*UserView, error)
	GetUser(ctx context.Context, actor *entity.Actor, id int64) (*UserView, error)
	ListUsers(ctx context.Context, actor *entity.Actor, page PageRequest) (*Page[UserView], error)
	SetPassword(ctx context.Context, actor *entity.Actor, input SetPasswordInput) error
}
