package impl

import (
	"context"
	"log/slog"
	"time"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type offerService struct {
	promotionRepo repository.PromotionRepository
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	logger        *slog.Logger
	now           func() time.Time
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	PromotionRepo repository.PromotionRepository
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewOfferService creates a new offer service instance
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		promotionRepo: params.PromotionRepo,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// ActivePromotions returns the published promotions.
func (s *offerService) ActivePromotions(ctx context.Context) ([]entity.Promotion, error) {
	promos, err := s.promotionRepo.ListActivePromotions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotions")
	}

	return promos, nil
}

// ListOffers builds the offers page. The featured offer is taken from the
// visible list so it always matches the current filters.
func (s *offerService) ListOffers(ctx context.Context, criteria listing.PromotionCriteria) (*usecase.OfferPage, error) {
	promos, err := s.ActivePromotions(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	visible := listing.ApplyPromotions(promos, criteria)
	page := &usecase.OfferPage{
		Offers:   offerViews(visible, now),
		Cuisines: listing.Cuisines(promos),
		Criteria: criteria,
	}
	if featured, ok := listing.Featured(visible); ok {
		view := offerView(featured, now)
		page.Featured = &view
	}

	return page, nil
}

// PromoQRCode renders the promo code of an active promotion.
func (s *offerService) PromoQRCode(ctx context.Context, promotionID entity.ID, size int) ([]byte, error) {
	promos, err := s.ActivePromotions(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range promos {
		if p.ID != promotionID {
			continue
		}
		if p.PromoCode == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("promotion has no promo code")
		}

		png, err := s.qrcodeService.GeneratePromoQR(p.PromoCode, size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate promo QR code")
		}

		emitEvent(ctx, s.publisher, s.logger, &entity.UIEvent{
			Type:       entity.UIEventPromoCodeViewed,
			VendorID:   p.Vendor.ID,
			Attributes: map[string]string{"promotion_id": p.ID.String()},
		})

		return png, nil
	}

	return nil, domainerrors.ErrPromotionNotFound.WithDetails("promotion " + promotionID.String())
}

func offerView(p entity.Promotion, now time.Time) usecase.OfferView {
	v := usecase.OfferView{
		Promotion:     p,
		ExpiryLabel:   listing.ExpiryLabel(p.EndDate, now),
		DiscountLabel: listing.DiscountLabel(p),
	}
	if days, ok := listing.DaysUntilExpiry(p.EndDate, now); ok {
		v.DaysLeft = &days
	}

	return v
}

func offerViews(promos []entity.Promotion, now time.Time) []usecase.OfferView {
	out := make([]usecase.OfferView, 0, len(promos))
	for _, p := range promos {
		out = append(out, offerView(p, now))
	}

	return out
}
