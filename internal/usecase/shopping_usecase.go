package usecase

import (
	"context"

	"foodgram/internal/domain/entity"
)

// ShoppingListExport is a rendered shopping list ready to be sent as an attachment.
type ShoppingListExport struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ShoppingUsecase builds the actor's shopping list from their cart.
type ShoppingUsecase interface {
	BuildShoppingList(ctx context.Context, actor *entity.Actor) ([]entity.ShoppingListItem, error)
	// Export renders the shopping list in the given format, e.g. "csv" or "txt".
	Export(ctx context.Context, actor *entity.Actor, format string) (*ShoppingListExport, error)
}
