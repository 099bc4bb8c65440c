// Package storage keeps recipe images in a gocloud.dev blob bucket.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"foodgram/config"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"
)

const (
	keyPrefix   = "recipes/images/"
	jpegQuality = 85

	// fallbackMaxPixels applies when the configuration leaves the cap unset.
	fallbackMaxPixels = 40_000_000
)

// ErrImageNotFound is returned by Open for a missing key.
var ErrImageNotFound = domainerrors.ErrNotFound.WithDetails("image not found")

// Params defines the dependencies of the image store.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type imageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSide       int
	maxPixels     int64
}

// NewImageStore opens the configured bucket and closes it when the application stops.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return newImageStore(bucket, cfg), nil
}

func newImageStore(bucket *blob.Bucket, cfg *config.StorageConfig) *imageStore {
	maxPixels := cfg.MaxImagePixels
	if maxPixels <= 0 {
		maxPixels = fallbackMaxPixels
	}

	return &imageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxSide:       cfg.MaxImageSide,
		maxPixels:     maxPixels,
	}
}

// Save decodes the data URI, fits the image into maxSide and stores it re-encoded.
// Images above maxPixels are rejected from their header alone.
// PNG sources stay PNG, everything else becomes JPEG.
func (s *imageStore) Save(ctx context.Context, dataURI string) (string, error) {
	raw, err := parseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil || imgCfg.Width == 0 || imgCfg.Height == 0 {
		return "", domainerrors.ErrInvalidImage.WithDetails("unreadable image data")
	}
	if int64(imgCfg.Width)*int64(imgCfg.Height) > s.maxPixels {
		return "", domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("image is %dx%d, at most %d pixels are allowed", imgCfg.Width, imgCfg.Height, s.maxPixels))
	}

	decoded, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", domainerrors.ErrInvalidImage.WithDetails("unreadable image data")
	}
	if s.maxSide > 0 {
		decoded = imaging.Fit(decoded, s.maxSide, s.maxSide, imaging.Lanczos)
	}

	outFormat, ext, contentType := imaging.JPEG, ".jpg", "image/jpeg"
	if format == "png" {
		outFormat, ext, contentType = imaging.PNG, ".png", "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, decoded, outFormat, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", errors.Wrap(err, "failed to encode image")
	}

	key := keyPrefix + uuid.NewString() + ext
	if err := s.bucket.WriteAll(ctx, key, buf.Bytes(), &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	return key, nil
}

// Open returns a reader for a stored image and its content type.
func (s *imageStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if !strings.HasPrefix(key, keyPrefix) {
		return nil, "", ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open image %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes a stored image. Missing keys are ignored.
func (s *imageStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete image %s", key)
	}

	return nil
}

// URL returns the public URL of a stored image.
func (s *imageStore) URL(key string) string {
	if key == "" {
		return ""
	}

	return s.publicBaseURL + "/" + key
}

// parseDataURI extracts the payload of a data:image/...;base64, URI.
func parseDataURI(dataURI string) ([]byte, error) {
	meta, payload, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
		return nil, domainerrors.ErrInvalidImage.WithDetails("expected data:image/<type>;base64,<payload>")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, domainerrors.ErrInvalidImage.WithDetails("malformed base64 payload")
	}

	return raw, nil
}
