package service

import (
	"context"
	"io"
)

// ImageStore keeps recipe images.
type ImageStore interface {
	// Save decodes a base64 data URI, normalizes the image and stores it.
	// It returns the object key of the stored image.
	Save(ctx context.Context, dataURI string) (string, error)

	// Open returns a reader for a stored image and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes a stored image. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of a stored image, or "" for an empty key.
	URL(key string) string
}
