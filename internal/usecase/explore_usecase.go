package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"

	"github.com/paulmach/orb"
)

// ExploreCriteria is the explore page state: the search filters plus the
// browser position used for ranking.
type ExploreCriteria struct {
	listing.VendorCriteria

	Latitude  *float64 `json:"lat,omitempty" query:"lat" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"lng,omitempty" query:"lng" validate:"omitempty,gte=-180,lte=180"`
}

// Reference returns the browser position, or false when it is unknown.
func (c ExploreCriteria) Reference() (orb.Point, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return orb.Point{}, false
	}

	return orb.Point{*c.Longitude, *c.Latitude}, true
}

// RankedVendor is a vendor with its distance from the browser. DistanceKm is
// nil when either position is unknown.
type RankedVendor struct {
	entity.Vendor

	DistanceKm *float64 `json:"distance"`
}

// ExplorePage is the explore page view model.
type ExplorePage struct {
	Vendors  []RankedVendor `json:"vendors"`
	Cuisines []string       `json:"cuisines"`
}

// VendorDetail is the vendor page view model.
type VendorDetail struct {
	Vendor     entity.Vendor     `json:"vendor"`
	Menu       []entity.MenuItem `json:"menu"`
	Categories []string          `json:"categories"`
}

// ExploreUsecase serves the public vendor pages.
type ExploreUsecase interface {
	// ListPublicVendors returns vendors visible to customers, in backend order.
	ListPublicVendors(ctx context.Context) ([]entity.Vendor, error)

	// Explore filters the public vendors and ranks them nearest first.
	Explore(ctx context.Context, criteria ExploreCriteria) (*ExplorePage, error)

	// GetVendor returns a vendor with its sorted menu.
	GetVendor(ctx context.Context, id entity.ID) (*VendorDetail, error)
}
