// Package qrcode renders promo codes as PNG QR images.
package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"streetbite/config"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	payloadType    = "promo_code"
	defaultSize    = 256
	maxSize        = 1024
	maxPromoLength = 64
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	redeemURL            string
}

// PromoPayload is the JSON encoded in a promo QR image.
type PromoPayload struct {
	Type      string `json:"type"`
	Code      string `json:"code"`
	RedeemURL string `json:"redeemUrl,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, redeemURL := defaultSize, "M", ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		redeemURL = cfg.QRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		redeemURL:            redeemURL,
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePromoQR encodes the promo code payload. A non-positive size uses
// the configured default.
func (s *qrcodeService) GeneratePromoQR(promoCode string, size int) ([]byte, error) {
	code := strings.TrimSpace(promoCode)
	if code == "" || len(code) > maxPromoLength {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"promoCode": "must be 1 to 64 characters",
		})
	}
	if size <= 0 {
		size = s.size
	}
	size = min(size, maxSize)

	data, err := json.Marshal(PromoPayload{Type: payloadType, Code: code, RedeemURL: s.redeemLink(code)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(data), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := qrCode.PNG(size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParsePromoQR extracts the promo code from a scanned payload.
func (s *qrcodeService) ParsePromoQR(payload string) (string, error) {
	var data PromoPayload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", domainerrors.ErrValidationFailed.WithDetails("unreadable QR payload").WithCause(err)
	}
	if data.Type != payloadType {
		return "", domainerrors.ErrValidationFailed.WithDetails("invalid QR code type: " + data.Type)
	}
	if strings.TrimSpace(data.Code) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("QR payload carries no promo code")
	}

	return data.Code, nil
}

func (s *qrcodeService) redeemLink(code string) string {
	if s.redeemURL == "" {
		return ""
	}

	return s.redeemURL + "?code=" + url.QueryEscape(code)
}
