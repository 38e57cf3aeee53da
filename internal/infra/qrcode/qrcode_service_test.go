package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"streetbite/config"
	domainerrors "streetbite/internal/domain/errors"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, size int, level, baseURL string) *qrcodeService {
	t.Helper()

	svc, ok := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}}).(*qrcodeService)
	require.True(t, ok)

	return svc
}

func TestRecoveryLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, recoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GeneratePromoQR(t *testing.T) {
	t.Parallel()

	svc := newService(t, 256, "M", "streetbite://offers/redeem")

	tests := []struct {
		name     string
		size     int
		wantSize int
	}{
		{"configured default", 0, 256},
		{"explicit", 128, 128},
		{"capped", 4096, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data, err := svc.GeneratePromoQR("CHAI50", tt.size)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GeneratePromoQR_Invalid(t *testing.T) {
	t.Parallel()

	svc := newService(t, 256, "M", "")

	_, err := svc.GeneratePromoQR("   ", 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.GeneratePromoQR(string(make([]byte, 65)), 0)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestQRCodeService_ParsePromoQR(t *testing.T) {
	t.Parallel()

	svc := newService(t, 256, "M", "streetbite://offers/redeem")

	code, err := svc.ParsePromoQR(`{"type":"promo_code","code":"TACO","redeemUrl":"streetbite://offers/redeem?code=TACO"}`)
	require.NoError(t, err)
	assert.Equal(t, "TACO", code)

	_, err = svc.ParsePromoQR(`{"type":"subscription","code":"TACO"}`)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ParsePromoQR(`not json`)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ParsePromoQR(`{"type":"promo_code"}`)
	assert.Error(t, err)

	assert.Equal(t, "streetbite://offers/redeem?code=A+B", svc.redeemLink("A B"))
}
