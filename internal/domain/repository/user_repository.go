// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"foodgram/internal/domain/entity"
	"foodgram/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when the email or username is already taken.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether either value is already taken.
	// It reads from the primary so a freshly written row is visible.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// List returns a page of users ordered by id and the total number of users.
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)

	// Create persists a new user and sets its ID.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
