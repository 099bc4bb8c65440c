package model

import "time"

// RecipeModel mirrors the 'recipes' table.
type RecipeModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	AuthorID    int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(200);not null"`
	Text        string `gorm:"type:text;not null"`
	CookingTime int    `gorm:"type:smallint;not null"`
	Image       string `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author      *UserModel              `gorm:"foreignKey:AuthorID"`
	Tags        []TagModel              `gorm:"many2many:recipe_tags;joinForeignKey:RecipeID;joinReferences:TagID"`
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel mirrors the 'recipe_ingredients' table.
// (recipe_id, ingredient_id) is unique.
type RecipeIngredientModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RecipeID     int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredients_pair"`
	IngredientID int64 `gorm:"not null;uniqueIndex:uq_recipe_ingredients_pair"`
	Amount       int   `gorm:"type:smallint;not null"`

	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// RecipeTagModel mirrors the 'recipe_tags' join table.
type RecipeTagModel struct {
	RecipeID int64 `gorm:"primaryKey"`
	TagID    int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeTagModel) TableName() string {
	return "recipe_tags"
}

// RecipeMarkModel mirrors both the 'favorites' and the 'shopping_cart_entries'
// tables, which share one shape. The table is chosen per query.
type RecipeMarkModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null"`
	RecipeID  int64 `gorm:"not null"`
	CreatedAt time.Time
}
