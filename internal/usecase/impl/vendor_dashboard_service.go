package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type vendorDashboardService struct {
	vendorRepo repository.VendorRepository
	menuRepo   repository.MenuRepository
	cell       usecase.SessionCell
	logger     *slog.Logger
}

// VendorDashboardServiceParams holds dependencies for VendorDashboardService, injected by Fx.
type VendorDashboardServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	MenuRepo   repository.MenuRepository
	Cell       usecase.SessionCell
	Logger     *slog.Logger
}

// NewVendorDashboardService creates a new vendor dashboard service instance
func NewVendorDashboardService(params VendorDashboardServiceParams) usecase.VendorDashboardUsecase {
	return &vendorDashboardService{
		vendorRepo: params.VendorRepo,
		menuRepo:   params.MenuRepo,
		cell:       params.Cell,
		logger:     params.Logger,
	}
}

// Menu returns the vendor's menu filtered and sorted for the menu table.
func (s *vendorDashboardService) Menu(ctx context.Context, criteria listing.MenuCriteria) (*usecase.MenuPage, error) {
	vendorID, err := linkedVendor(s.cell)
	if err != nil {
		return nil, err
	}

	items, err := s.menuRepo.ListMenu(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}

	return &usecase.MenuPage{
		Items:      listing.ApplyMenu(items, criteria),
		Categories: listing.Categories(listing.ApplyMenu(items, listing.MenuCriteria{})),
		Criteria:   criteria,
	}, nil
}

// CreateMenuItem adds an item to the vendor's menu. Items are available
// unless the form says otherwise.
func (s *vendorDashboardService) CreateMenuItem(ctx context.Context, input usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	vendorID, err := linkedVendor(s.cell)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		VendorID:        vendorID,
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		Price:           input.Price,
		IsAvailable:     input.IsAvailable == nil || *input.IsAvailable,
		Description:     strings.TrimSpace(input.Description),
		PreparationTime: input.PreparationTime,
		ImageURL:        strings.TrimSpace(input.ImageURL),
	}

	created, err := s.menuRepo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create menu item")
	}

	return created, nil
}

// UpdateMenuItem applies a partial update.
func (s *vendorDashboardService) UpdateMenuItem(ctx context.Context, id entity.ID, patch entity.MenuItemPatch) (*entity.MenuItem, error) {
	if _, err := linkedVendor(s.cell); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nothing to update")
	}

	updated, err := s.menuRepo.UpdateMenuItem(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update menu item")
	}

	return updated, nil
}

// DeleteMenuItem removes an item.
func (s *vendorDashboardService) DeleteMenuItem(ctx context.Context, id entity.ID) error {
	if _, err := linkedVendor(s.cell); err != nil {
		return err
	}

	return errors.Wrap(s.menuRepo.DeleteMenuItem(ctx, id), "failed to delete menu item")
}

// UpdateStatus sets the operating state of the vendor.
func (s *vendorDashboardService) UpdateStatus(ctx context.Context, status entity.VendorStatus) (*entity.Vendor, error) {
	vendorID, err := linkedVendor(s.cell)
	if err != nil {
		return nil, err
	}
	if !status.IsOperational() {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"status": "must be one of AVAILABLE, BUSY, UNAVAILABLE",
		})
	}

	vendor, err := s.vendorRepo.UpdateVendorStatus(ctx, vendorID, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vendor status")
	}

	deliverycontext.Logger(ctx, s.logger).Info("Vendor status changed",
		slog.String("vendor_id", vendorID.String()),
		slog.String("status", string(status)),
	)

	return vendor, nil
}

// UpdateLocation records the vendor's stall position.
func (s *vendorDashboardService) UpdateLocation(ctx context.Context, location entity.VendorLocation) (*entity.Vendor, error) {
	vendorID, err := linkedVendor(s.cell)
	if err != nil {
		return nil, err
	}

	location.Address = strings.TrimSpace(location.Address)

	vendor, err := s.vendorRepo.UpdateVendorLocation(ctx, vendorID, location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vendor location")
	}

	return vendor, nil
}
