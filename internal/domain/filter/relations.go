package filter

import "foodgram/internal/domain/entity"

type markKey struct {
	kind     entity.MarkKind
	userID   int64
	recipeID int64
}

// MarkIndex is an in-memory Relations built from loaded marks.
type MarkIndex map[markKey]struct{}

// NewMarkIndex indexes marks for lookups by kind, user and recipe.
func NewMarkIndex(marks []*entity.Mark) MarkIndex {
	index := make(MarkIndex, len(marks))
	for _, mark := range marks {
		index.Add(mark.Kind, mark.UserID, mark.RecipeID)
	}

	return index
}

// Add records a mark.
func (m MarkIndex) Add(kind entity.MarkKind, userID, recipeID int64) {
	m[markKey{kind: kind, userID: userID, recipeID: recipeID}] = struct{}{}
}

// HasMark implements Relations.
func (m MarkIndex) HasMark(kind entity.MarkKind, userID, recipeID int64) bool {
	_, ok := m[markKey{kind: kind, userID: userID, recipeID: recipeID}]

	return ok
}
