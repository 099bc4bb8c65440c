package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram/internal/domain/entity"
)

type filterFixtures struct {
	breakfast entity.Tag
	lunch     entity.Tag
	dinner    entity.Tag
	recipes   []*entity.Recipe
	marks     MarkIndex
	actor     *entity.Actor
}

func createFilterFixtures() *filterFixtures {
	fx := &filterFixtures{
		breakfast: entity.Tag{ID: 1, Name: "Breakfast", Color: "#b39f7a", Slug: "breakfast"},
		lunch:     entity.Tag{ID: 2, Name: "Lunch", Color: "#7fff00", Slug: "lunch"},
		dinner:    entity.Tag{ID: 3, Name: "Dinner", Color: "#d2691e", Slug: "dinner"},
		actor:     &entity.Actor{UserID: 100, Username: "cook", Roles: entity.Roles{entity.RoleUser}},
	}

	fx.recipes = []*entity.Recipe{
		{ID: 1, AuthorID: 1, Name: "Pancakes", Tags: []entity.Tag{fx.breakfast}},
		{ID: 2, AuthorID: 1, Name: "Soup", Tags: []entity.Tag{fx.lunch, fx.dinner}},
		{ID: 3, AuthorID: 2, Name: "Omelette", Tags: []entity.Tag{fx.breakfast, fx.lunch}},
		{ID: 4, AuthorID: 2, Name: "Steak", Tags: []entity.Tag{fx.dinner}},
		{ID: 5, AuthorID: 3, Name: "Bread"},
	}

	fx.marks = NewMarkIndex([]*entity.Mark{
		{Kind: entity.MarkFavorite, UserID: 100, RecipeID: 1},
		{Kind: entity.MarkFavorite, UserID: 100, RecipeID: 4},
		{Kind: entity.MarkShoppingCart, UserID: 100, RecipeID: 4},
		{Kind: entity.MarkShoppingCart, UserID: 100, RecipeID: 5},
		{Kind: entity.MarkFavorite, UserID: 200, RecipeID: 2},
	})

	return fx
}

func ids(recipes []*entity.Recipe) []int64 {
	result := make([]int64, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, recipe.ID)
	}

	return result
}

func ptr[T any](v T) *T {
	return &v
}

func TestApply(t *testing.T) {
	fx := createFilterFixtures()

	tests := []struct {
		name   string
		filter RecipeFilter
		actor  *entity.Actor
		want   []int64
	}{
		{
			name:   "no constraints",
			filter: RecipeFilter{},
			actor:  fx.actor,
			want:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:   "by author",
			filter: RecipeFilter{AuthorID: ptr(int64(2))},
			actor:  fx.actor,
			want:   []int64{3, 4},
		},
		{
			name:   "tags are joined by or",
			filter: RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}},
			actor:  fx.actor,
			want:   []int64{1, 2, 3, 4},
		},
		{
			name:   "unknown tag matches nothing",
			filter: RecipeFilter{TagSlugs: []string{"brunch"}},
			actor:  fx.actor,
			want:   []int64{},
		},
		{
			name:   "favorited",
			filter: RecipeFilter{IsFavorited: ptr(true)},
			actor:  fx.actor,
			want:   []int64{1, 4},
		},
		{
			name:   "not favorited",
			filter: RecipeFilter{IsFavorited: ptr(false)},
			actor:  fx.actor,
			want:   []int64{2, 3, 5},
		},
		{
			name:   "in shopping cart uses the cart relation",
			filter: RecipeFilter{IsInShoppingCart: ptr(true)},
			actor:  fx.actor,
			want:   []int64{4, 5},
		},
		{
			name:   "not in shopping cart",
			filter: RecipeFilter{IsInShoppingCart: ptr(false)},
			actor:  fx.actor,
			want:   []int64{1, 2, 3},
		},
		{
			name:   "constraints intersect",
			filter: RecipeFilter{AuthorID: ptr(int64(2)), TagSlugs: []string{"dinner"}, IsFavorited: ptr(true)},
			actor:  fx.actor,
			want:   []int64{4},
		},
		{
			name:   "anonymous favorited is empty",
			filter: RecipeFilter{IsFavorited: ptr(true)},
			actor:  entity.Anonymous(),
			want:   []int64{},
		},
		{
			name:   "anonymous not in cart is unconstrained",
			filter: RecipeFilter{IsInShoppingCart: ptr(false)},
			actor:  entity.Anonymous(),
			want:   []int64{1, 2, 3, 4, 5},
		},
		{
			name:   "nil actor is anonymous",
			filter: RecipeFilter{IsInShoppingCart: ptr(true), AuthorID: ptr(int64(2))},
			actor:  nil,
			want:   []int64{},
		},
		{
			name:   "other users marks are ignored",
			filter: RecipeFilter{IsFavorited: ptr(true), AuthorID: ptr(int64(1))},
			actor:  &entity.Actor{UserID: 300},
			want:   []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := tt.filter.Resolve(tt.actor)
			got := Apply(fx.recipes, plan, fx.marks)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_IsSubset(t *testing.T) {
	fx := createFilterFixtures()
	filters := []RecipeFilter{
		{},
		{AuthorID: ptr(int64(1))},
		{TagSlugs: []string{"lunch"}},
		{IsFavorited: ptr(false), IsInShoppingCart: ptr(true)},
	}

	for _, f := range filters {
		got := Apply(fx.recipes, f.Resolve(fx.actor), fx.marks)
		for _, recipe := range got {
			assert.Contains(t, fx.recipes, recipe)
		}
		assert.LessOrEqual(t, len(got), len(fx.recipes))
	}
}

func TestPlan_Intersect(t *testing.T) {
	fx := createFilterFixtures()
	filters := []RecipeFilter{
		{},
		{AuthorID: ptr(int64(1))},
		{AuthorID: ptr(int64(2))},
		{TagSlugs: []string{"breakfast"}},
		{TagSlugs: []string{"lunch", "dinner"}},
		{IsFavorited: ptr(true)},
		{IsFavorited: ptr(false)},
		{IsInShoppingCart: ptr(true)},
		{IsInShoppingCart: ptr(false), TagSlugs: []string{"dinner"}},
	}

	for i, f1 := range filters {
		for j, f2 := range filters {
			p1 := f1.Resolve(fx.actor)
			p2 := f2.Resolve(fx.actor)

			chained := Apply(Apply(fx.recipes, p1, fx.marks), p2, fx.marks)
			combined := Apply(fx.recipes, p1.Intersect(p2), fx.marks)

			assert.Equal(t, ids(chained), ids(combined), "filters %d and %d", i, j)
		}
	}
}

func TestResolve(t *testing.T) {
	f := RecipeFilter{
		AuthorID:    ptr(int64(7)),
		TagSlugs:    []string{"lunch", "", "breakfast", "lunch"},
		IsFavorited: ptr(false),
	}

	plan := f.Resolve(&entity.Actor{UserID: 9})

	require.NotNil(t, plan.AuthorID)
	assert.Equal(t, int64(7), *plan.AuthorID)
	assert.Equal(t, int64(9), plan.ActorID)
	assert.Equal(t, [][]string{{"breakfast", "lunch"}}, plan.TagGroups)
	assert.Equal(t, []MarkConstraint{{Kind: entity.MarkFavorite, Present: false}}, plan.Marks)
	assert.False(t, plan.Empty)

	*f.AuthorID = 8
	assert.Equal(t, int64(7), *plan.AuthorID, "plan must not alias the filter")
}

func TestMatch_NilRecipe(t *testing.T) {
	assert.False(t, RecipeFilter{}.Resolve(nil).Match(nil, nil))
}
