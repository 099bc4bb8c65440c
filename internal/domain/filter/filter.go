// Package filter narrows recipe collections by author, tags and the acting
// user's favorite and shopping cart relations.
//
// A RecipeFilter holds request parameters. Resolve binds it to an actor and
// yields a Plan, which is evaluated in memory by Match and Apply or translated
// into SQL by the recipe repository.
package filter

import (
	"slices"

	"foodgram/internal/domain/entity"
)

// RecipeFilter is the set of optional recipe constraints of a request.
type RecipeFilter struct {
	AuthorID         *int64
	TagSlugs         []string
	IsFavorited      *bool
	IsInShoppingCart *bool
}

// MarkConstraint requires the presence or absence of a mark by the plan's actor.
type MarkConstraint struct {
	Kind    entity.MarkKind
	Present bool
}

// Plan is a filter bound to an actor.
// Constraints are joined by AND; slugs inside one tag group are joined by OR.
type Plan struct {
	ActorID   int64
	AuthorID  *int64
	TagGroups [][]string
	Marks     []MarkConstraint
	// Empty is set when the plan matches nothing.
	Empty bool
}

// Relations answers whether a user holds a mark on a recipe.
type Relations interface {
	HasMark(kind entity.MarkKind, userID, recipeID int64) bool
}

// Resolve binds the filter to actor.
// For an anonymous actor a required mark matches nothing and an excluded
// mark is no constraint, since an anonymous actor holds no marks.
func (f RecipeFilter) Resolve(actor *entity.Actor) Plan {
	plan := Plan{}
	if !actor.IsAnonymous() {
		plan.ActorID = actor.UserID
	}

	if f.AuthorID != nil {
		id := *f.AuthorID
		plan.AuthorID = &id
	}

	if slugs := normalizeSlugs(f.TagSlugs); len(slugs) > 0 {
		plan.TagGroups = [][]string{slugs}
	}

	plan.addMark(entity.MarkFavorite, f.IsFavorited)
	plan.addMark(entity.MarkShoppingCart, f.IsInShoppingCart)

	return plan
}

func (p *Plan) addMark(kind entity.MarkKind, want *bool) {
	if want == nil {
		return
	}
	if p.ActorID == 0 {
		if *want {
			p.Empty = true
		}

		return
	}

	p.Marks = append(p.Marks, MarkConstraint{Kind: kind, Present: *want})
}

// Intersect returns a plan matching the recipes matched by both p and other.
// Both plans must be bound to the same actor; otherwise the result is empty.
func (p Plan) Intersect(other Plan) Plan {
	result := Plan{ActorID: p.ActorID, Empty: p.Empty || other.Empty}
	if other.ActorID != p.ActorID && (len(p.Marks) > 0 || len(other.Marks) > 0) {
		result.Empty = true
	}

	switch {
	case p.AuthorID != nil && other.AuthorID != nil:
		if *p.AuthorID != *other.AuthorID {
			result.Empty = true
		}
		id := *p.AuthorID
		result.AuthorID = &id
	case p.AuthorID != nil:
		id := *p.AuthorID
		result.AuthorID = &id
	case other.AuthorID != nil:
		id := *other.AuthorID
		result.AuthorID = &id
	}

	result.TagGroups = append(slices.Clone(p.TagGroups), other.TagGroups...)

	for _, mark := range append(slices.Clone(p.Marks), other.Marks...) {
		switch present, ok := result.markRequirement(mark.Kind); {
		case !ok:
			result.Marks = append(result.Marks, mark)
		case present != mark.Present:
			result.Empty = true
		}
	}

	return result
}

func (p Plan) markRequirement(kind entity.MarkKind) (present, ok bool) {
	for _, mark := range p.Marks {
		if mark.Kind == kind {
			return mark.Present, true
		}
	}

	return false, false
}

// Match reports whether recipe satisfies the plan.
func (p Plan) Match(recipe *entity.Recipe, relations Relations) bool {
	if p.Empty || recipe == nil {
		return false
	}
	if p.AuthorID != nil && recipe.AuthorID != *p.AuthorID {
		return false
	}

	for _, group := range p.TagGroups {
		if !slices.ContainsFunc(group, recipe.HasTag) {
			return false
		}
	}

	for _, mark := range p.Marks {
		has := relations != nil && relations.HasMark(mark.Kind, p.ActorID, recipe.ID)
		if has != mark.Present {
			return false
		}
	}

	return true
}

// Apply returns the recipes matching the plan, keeping their order.
func Apply(recipes []*entity.Recipe, plan Plan, relations Relations) []*entity.Recipe {
	result := make([]*entity.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if plan.Match(recipe, relations) {
			result = append(result, recipe)
		}
	}

	return result
}

func normalizeSlugs(slugs []string) []string {
	result := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			result = append(result, slug)
		}
	}
	slices.Sort(result)

	return slices.Compact(result)
}
