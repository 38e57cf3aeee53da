package service

// QRCodeService renders promo codes as scannable images.
type QRCodeService interface {
	// GeneratePromoQR returns a PNG encoding of the promo code payload.
	GeneratePromoQR(promoCode string, size int) ([]byte, error)

	// ParsePromoQR extracts the promo code from a scanned payload.
	ParsePromoQR(payload string) (string, error)
}
