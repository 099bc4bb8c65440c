package entity

import "time"

// MarkKind names a per-user relation to a recipe.
type MarkKind string

const (
	MarkFavorite     MarkKind = "favorite"
	MarkShoppingCart MarkKind = "shopping_cart"
)

// String returns the string representation of the MarkKind.
func (k MarkKind) String() string {
	return string(k)
}

// IsValid checks if the MarkKind is a known relation.
func (k MarkKind) IsValid() bool {
	switch k {
	case MarkFavorite, MarkShoppingCart:
		return true
	default:
		return false
	}
}

// Mark records that a user favorited a recipe or put it into their cart.
// At most one Mark exists per (Kind, UserID, RecipeID).
type Mark struct {
	Kind      MarkKind
	UserID    int64
	RecipeID  int64
	CreatedAt time.Time
}
