package entity

// ShoppingListItem is one aggregated line of a shopping list.
type ShoppingListItem struct {
	IngredientID    int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}
