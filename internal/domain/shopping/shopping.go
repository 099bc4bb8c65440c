// Package shopping reduces the ingredient lines of carted recipes to a shopping list.
package shopping

import (
	"cmp"
	"slices"

	"foodgram/internal/domain/entity"
)

// Aggregate groups lines by ingredient and sums their amounts.
// The result has one item per ingredient ordered by ingredient id.
// lines is not modified.
func Aggregate(lines []entity.RecipeIngredient) []entity.ShoppingListItem {
	items := make([]entity.ShoppingListItem, 0)
	index := make(map[int64]int)

	for _, line := range lines {
		if i, ok := index[line.IngredientID]; ok {
			items[i].Total += line.Amount
			continue
		}

		index[line.IngredientID] = len(items)
		items = append(items, entity.ShoppingListItem{
			IngredientID:    line.IngredientID,
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Total:           line.Amount,
		})
	}

	slices.SortFunc(items, func(a, b entity.ShoppingListItem) int {
		return cmp.Compare(a.IngredientID, b.IngredientID)
	})

	return items
}

// Total returns the sum of all item totals.
func Total(items []entity.ShoppingListItem) int {
	sum := 0
	for _, item := range items {
		sum += item.Total
	}

	return sum
}
