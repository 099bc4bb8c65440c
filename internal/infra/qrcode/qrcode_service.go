package qrcode

import (
	"strconv"
	"strings"

	"foodgram/config"
	"foodgram/internal/domain/service"
	"foodgram/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := config.QRCodeConfig{}
	if cfg != nil && cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// RecipeLink returns the public URL of a recipe
func (s *qrcodeService) RecipeLink(recipeID int64) string {
	return s.baseURL + "/recipes/" + strconv.FormatInt(recipeID, 10)
}

// GenerateRecipeQR generates a PNG QR code pointing at the recipe page
func (s *qrcodeService) GenerateRecipeQR(recipeID int64) ([]byte, error) {
	qrCode, err := qrcode.New(s.RecipeLink(recipeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
