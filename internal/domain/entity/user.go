// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"time"
)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MaxNameLength     = 150
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// User is an account that can publish recipes, follow authors and keep a shopping cart.
type User struct {
	ID           int64  // Store-assigned identifier.
	Email        string // Login identifier, unique.
	Username     string // Public handle, unique.
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt hash of the password.
	Role         Role   // RoleUser or RoleAdmin.
	IsSuperuser  bool   // Grants the administrator capability regardless of Role.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the administrator capability.
func (u *User) IsAdmin() bool {
	return u != nil && (u.Role == RoleAdmin || u.IsSuperuser)
}

// Roles returns the roles carried in access tokens for this user.
func (u *User) Roles() Roles {
	if u.IsAdmin() {
		return Roles{RoleUser, RoleAdmin}
	}

	return Roles{RoleUser}
}

// ValidUsername reports whether s is an acceptable username.
func ValidUsername(s string) bool {
	return len(s) <= MaxUsernameLength && usernamePattern.MatchString(s)
}
