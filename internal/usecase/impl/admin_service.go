package impl

import (
	"context"
	"log/slog"

	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type adminService struct {
	vendorRepo    repository.VendorRepository
	analyticsRepo repository.AnalyticsRepository
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	VendorRepo    repository.VendorRepository
	AnalyticsRepo repository.AnalyticsRepository
	Logger        *slog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		vendorRepo:    params.VendorRepo,
		analyticsRepo: params.AnalyticsRepo,
		logger:        params.Logger,
	}
}

// ListAllVendors returns every vendor regardless of status.
func (s *adminService) ListAllVendors(ctx context.Context) ([]entity.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// ListVendors builds the moderation table. The pending count covers all
// vendors, not only the visible ones.
func (s *adminService) ListVendors(ctx context.Context, criteria listing.AdminVendorCriteria) (*usecase.AdminVendorPage, error) {
	vendors, err := s.ListAllVendors(ctx)
	if err != nil {
		return nil, err
	}

	visible := listing.FilterAdminVendors(vendors, criteria)

	return &usecase.AdminVendorPage{
		Vendors:      visible,
		Total:        len(vendors),
		PendingCount: listing.PendingCount(vendors),
	}, nil
}

// ChangeVendorStatus applies a moderation decision.
func (s *adminService) ChangeVendorStatus(ctx context.Context, id entity.ID, status entity.VendorStatus) (*entity.Vendor, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"status": "unknown status"})
	}

	current, err := s.vendorRepo.GetVendor(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vendor")
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			string(current.Status) + " to " + string(status))
	}

	updated, err := s.vendorRepo.UpdateVendorStatus(ctx, id, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vendor status")
	}

	deliverycontext.Logger(ctx, s.logger).Info("Vendor moderated",
		slog.String("vendor_id", id.String()),
		slog.String("from", string(current.Status)),
		slog.String("to", string(status)),
	)

	return updated, nil
}

// DeleteVendor removes a vendor listing.
func (s *adminService) DeleteVendor(ctx context.Context, id entity.ID) error {
	if err := s.vendorRepo.DeleteVendor(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete vendor")
	}

	deliverycontext.Logger(ctx, s.logger).Info("Vendor deleted", slog.String("vendor_id", id.String()))

	return nil
}

// PlatformAnalytics returns the dashboard totals.
func (s *adminService) PlatformAnalytics(ctx context.Context) (*entity.PlatformAnalytics, error) {
	stats, err := s.analyticsRepo.PlatformAnalytics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform analytics")
	}

	return stats, nil
}
