package service

// QRCodeService defines the interface for QR code generation of public recipe links.
type QRCodeService interface {
	// RecipeLink returns the public URL of a recipe.
	RecipeLink(recipeID int64) string

	// GenerateRecipeQR returns a PNG encoded QR code of the recipe link.
	GenerateRecipeQR(recipeID int64) ([]byte, error)
}
