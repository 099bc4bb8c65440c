package entity

const MaxIngredientFieldLength = 200

// Ingredient is reference data: a named product with its unit of measure.
// The (Name, MeasurementUnit) pair is unique.
type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}
