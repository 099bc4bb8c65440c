package entity

import "time"

const (
	MaxRecipeNameLength = 200
	MinCookingTime      = 1
	MaxCookingTime      = 32767
	MinAmount           = 1
	MaxAmount           = 32767
)

// Recipe is a dish published by an author.
type Recipe struct {
	ID          int64
	AuthorID    int64 // Immutable after creation.
	Author      *User // Loaded on reads, nil otherwise.
	Name        string
	Text        string
	CookingTime int    // Minutes.
	Image       string // Object key in blob storage.
	Tags        []Tag
	Ingredients []RecipeIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID returns the author's id, or zero for a nil recipe.
func (r *Recipe) OwnerID() int64 {
	if r == nil {
		return 0
	}

	return r.AuthorID
}

// HasTag reports whether the recipe carries a tag with the given slug.
func (r *Recipe) HasTag(slug string) bool {
	for _, tag := range r.Tags {
		if tag.Slug == slug {
			return true
		}
	}

	return false
}

// RecipeIngredient is one ingredient line of a recipe.
type RecipeIngredient struct {
	RecipeID        int64
	IngredientID    int64
	Name            string
	MeasurementUnit string
	Amount          int
}

// IngredientAmount is a requested (ingredient, amount) pair before persistence.
type IngredientAmount struct {
	IngredientID int64
	Amount       int
}

// CoalesceAmounts merges entries that reference the same ingredient by summing
// their amounts. The order of first appearance is kept.
func CoalesceAmounts(items []IngredientAmount) []IngredientAmount {
	result := make([]IngredientAmount, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if i, ok := index[item.IngredientID]; ok {
			result[i].Amount += item.Amount
			continue
		}
		index[item.IngredientID] = len(result)
		result = append(result, item)
	}

	return result
}
