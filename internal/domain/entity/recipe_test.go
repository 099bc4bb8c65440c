package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceAmounts(t *testing.T) {
	got := CoalesceAmounts([]IngredientAmount{
		{IngredientID: 3, Amount: 100},
		{IngredientID: 1, Amount: 2},
		{IngredientID: 3, Amount: 50},
		{IngredientID: 1, Amount: 1},
		{IngredientID: 9, Amount: 7},
	})

	assert.Equal(t, []IngredientAmount{
		{IngredientID: 3, Amount: 150},
		{IngredientID: 1, Amount: 3},
		{IngredientID: 9, Amount: 7},
	}, got)
}

func TestCoalesceAmounts_Empty(t *testing.T) {
	assert.Empty(t, CoalesceAmounts(nil))
}

func TestRecipe_OwnerID(t *testing.T) {
	var missing *Recipe
	assert.Zero(t, missing.OwnerID())
	assert.Equal(t, int64(4), (&Recipe{AuthorID: 4}).OwnerID())
}

func TestTagValidation(t *testing.T) {
	assert.True(t, ValidColor("#fff"))
	assert.True(t, ValidColor("#B39F7A"))
	assert.False(t, ValidColor("#ffff"))
	assert.False(t, ValidColor("b39f7a"))
	assert.True(t, ValidSlug("main-course_2"))
	assert.False(t, ValidSlug("main course"))
	assert.False(t, ValidSlug(""))
}

func TestUserCapabilities(t *testing.T) {
	admin := &User{ID: 1, Role: RoleAdmin}
	superuser := &User{ID: 2, Role: RoleUser, IsSuperuser: true}
	user := &User{ID: 3, Role: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.True(t, superuser.IsAdmin())
	assert.False(t, user.IsAdmin())
	assert.True(t, NewActor(superuser).IsAdmin())
	assert.False(t, NewActor(user).IsAdmin())
	assert.False(t, Anonymous().IsAdmin())
	assert.True(t, ValidUsername("chef.anna+1@home"))
	assert.False(t, ValidUsername("chef anna"))
}
