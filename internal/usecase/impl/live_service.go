package impl

import (
	"context"
	"log/slog"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/live"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type liveService struct {
	source     service.LiveFieldSource
	publisher  service.LivePublisher
	vendorRepo repository.VendorRepository
	logger     *slog.Logger
}

// LiveServiceParams holds dependencies for LiveService, injected by Fx.
type LiveServiceParams struct {
	fx.In

	Source     service.LiveFieldSource
	Publisher  service.LivePublisher
	VendorRepo repository.VendorRepository
	Logger     *slog.Logger
}

// NewLiveService creates a new live service instance
func NewLiveService(params LiveServiceParams) usecase.LiveUsecase {
	return &liveService{
		source:     params.Source,
		publisher:  params.Publisher,
		vendorRepo: params.VendorRepo,
		logger:     params.Logger,
	}
}

// WatchMenuItem opens an availability listener. The subscription lives until
// ctx is done or the caller closes it.
func (s *liveService) WatchMenuItem(ctx context.Context, menuItemID entity.ID, available bool) (*live.Subscription[entity.MenuItemLive], error) {
	if menuItemID.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"menuItemId": "is required"})
	}

	return live.MenuAvailability(ctx, s.source, s.logger, menuItemID.String(), available), nil
}

// WatchVendor loads the vendor and follows its live status and position.
func (s *liveService) WatchVendor(ctx context.Context, vendorID entity.ID) (*live.Subscription[entity.VendorLive], error) {
	vendor, err := s.vendorRepo.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vendor")
	}

	initial := entity.VendorLive{
		Status:    vendor.Status,
		Latitude:  vendor.Latitude,
		Longitude: vendor.Longitude,
		Address:   vendor.Address,
	}

	return live.VendorPresence(ctx, s.source, s.logger, vendorID.String(), initial), nil
}

// Publish merges fields into a live document.
func (s *liveService) Publish(ctx context.Context, collection string, id entity.ID, fields map[string]any) error {
	switch collection {
	case entity.LiveMenuItemsCollection, entity.LiveVendorsCollection:
	default:
		return domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"collection": "unknown collection"})
	}
	if len(fields) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("no fields to publish")
	}

	return errors.Wrap(s.publisher.Publish(ctx, collection, id.String(), fields), "failed to publish live fields")
}
