package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
)

// OfferView is one promotion card.
type OfferView struct {
	entity.Promotion

	DaysLeft      *int   `json:"daysLeft"`
	ExpiryLabel   string `json:"expiryLabel"`
	DiscountLabel string `json:"discountLabel"`
}

// OfferPage is the offers page view model.
type OfferPage struct {
	Offers   []OfferView               `json:"offers"`
	Featured *OfferView                `json:"featured,omitempty"`
	Cuisines []string                  `json:"cuisines"`
	Criteria listing.PromotionCriteria `json:"criteria"`
}

// OfferUsecase serves the offers page.
type OfferUsecase interface {
	// ActivePromotions returns the published promotions in backend order.
	ActivePromotions(ctx context.Context) ([]entity.Promotion, error)

	// ListOffers filters and sorts the active promotions.
	ListOffers(ctx context.Context, criteria listing.PromotionCriteria) (*OfferPage, error)

	// PromoQRCode renders the promo code of an active promotion as a PNG.
	PromoQRCode(ctx context.Context, promotionID entity.ID, size int) ([]byte, error)
}
