package service

import (
	"io"

	"foodgram/internal/domain/entity"
)

// ShoppingListRenderer writes a shopping list in one export format.
type ShoppingListRenderer interface {
	// Format is the value of the format query parameter selecting this renderer.
	Format() string
	ContentType() string
	// FileName returns the attachment file name for the list owner.
	FileName(owner string) string
	Render(w io.Writer, items []entity.ShoppingListItem) error
}
