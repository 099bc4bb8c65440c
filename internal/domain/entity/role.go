package entity

import "slices"

// Role is the account type stored with a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin" // May moderate any recipe and manage reference data.
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the set of roles carried by an actor and its access token.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the roles in token claim form.
func (rs Roles) ToStrings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}
