package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
)

// AdminVendorPage is the vendor moderation table.
type AdminVendorPage struct {
	Vendors      []entity.Vendor `json:"vendors"`
	Total        int             `json:"total"`
	PendingCount int             `json:"pendingCount"`
}

// AdminUsecase serves the admin console.
type AdminUsecase interface {
	// ListAllVendors returns every vendor regardless of status.
	ListAllVendors(ctx context.Context) ([]entity.Vendor, error)

	ListVendors(ctx context.Context, criteria listing.AdminVendorCriteria) (*AdminVendorPage, error)

	// ChangeVendorStatus moves a vendor along the moderation lifecycle and
	// rejects transitions the lifecycle does not allow.
	ChangeVendorStatus(ctx context.Context, id entity.ID, status entity.VendorStatus) (*entity.Vendor, error)

	DeleteVendor(ctx context.Context, id entity.ID) error
	PlatformAnalytics(ctx context.Context) (*entity.PlatformAnalytics, error)
}
