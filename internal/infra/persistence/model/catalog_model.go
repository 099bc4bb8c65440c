package model

// IngredientModel mirrors the 'ingredients' table. (name, measurement_unit) is unique.
type IngredientModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Name            string `gorm:"type:varchar(200);not null;uniqueIndex:uq_ingredients_name_unit"`
	MeasurementUnit string `gorm:"type:varchar(200);not null;uniqueIndex:uq_ingredients_name_unit"`
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// TagModel mirrors the 'tags' table.
type TagModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"type:varchar(200);uniqueIndex;not null"`
	Color string `gorm:"type:varchar(7);uniqueIndex;not null"`
	Slug  string `gorm:"type:varchar(200);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}
