// Package repository defines the data-access contracts consumed by the use
// cases. The remote backend facade implements the remote ones; local state
// lives behind LocalStateRepository.
package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// VendorRepository reads and moderates vendor listings.
type VendorRepository interface {
	ListVendors(ctx context.Context) ([]entity.Vendor, error)

	// GetVendor returns ErrVendorNotFound when the id is unknown.
	GetVendor(ctx context.Context, id entity.ID) (*entity.Vendor, error)

	UpdateVendorStatus(ctx context.Context, id entity.ID, status entity.VendorStatus) (*entity.Vendor, error)

	// UpdateVendorLocation records the vendor's current stall position.
	UpdateVendorLocation(ctx context.Context, id entity.ID, location entity.VendorLocation) (*entity.Vendor, error)

	DeleteVendor(ctx context.Context, id entity.ID) error
}

// FavoriteRepository manages the signed-in user's saved vendors.
type FavoriteRepository interface {
	ListFavorites(ctx context.Context) ([]entity.Vendor, error)
	AddFavorite(ctx context.Context, vendorID entity.ID) error
	RemoveFavorite(ctx context.Context, vendorID entity.ID) error
}
