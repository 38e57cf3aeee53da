package impl

import (
	"context"
	"log/slog"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/geo"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type exploreService struct {
	vendorRepo repository.VendorRepository
	menuRepo   repository.MenuRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ExploreServiceParams holds dependencies for ExploreService, injected by Fx.
type ExploreServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	MenuRepo   repository.MenuRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewExploreService creates a new explore service instance
func NewExploreService(params ExploreServiceParams) usecase.ExploreUsecase {
	return &exploreService{
		vendorRepo: params.VendorRepo,
		menuRepo:   params.MenuRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// ListPublicVendors returns the vendors customers may see.
func (s *exploreService) ListPublicVendors(ctx context.Context) ([]entity.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return listing.PublicVisible(vendors), nil
}

// Explore filters the public vendors and ranks them by distance.
func (s *exploreService) Explore(ctx context.Context, criteria usecase.ExploreCriteria) (*usecase.ExplorePage, error) {
	vendors, err := s.ListPublicVendors(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ExplorePage{
		Vendors:  rankVendors(vendors, criteria),
		Cuisines: listing.VendorCuisines(vendors),
	}, nil
}

// GetVendor returns a vendor with its menu. Vendors hidden from customers
// are reported as not found.
func (s *exploreService) GetVendor(ctx context.Context, id entity.ID) (*usecase.VendorDetail, error) {
	vendor, err := s.vendorRepo.GetVendor(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get vendor")
	}
	if !listing.IsPublic(vendor.Status) {
		return nil, errors.Wrap(vendorNotFound(id), "vendor is not public")
	}

	items, err := s.menuRepo.ListMenu(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list menu")
	}
	menu := listing.ApplyMenu(items, listing.MenuCriteria{})

	emitEvent(ctx, s.publisher, s.logger, &entity.UIEvent{Type: entity.UIEventVendorViewed, VendorID: id})

	return &usecase.VendorDetail{
		Vendor:     *vendor,
		Menu:       menu,
		Categories: listing.Categories(menu),
	}, nil
}

// rankVendors applies the search filters and orders the result nearest
// first. Without a browser position the filtered order is kept.
func rankVendors(vendors []entity.Vendor, criteria usecase.ExploreCriteria) []usecase.RankedVendor {
	filtered := listing.FilterVendors(vendors, criteria.VendorCriteria)

	ref, ok := criteria.Reference()
	if !ok {
		out := make([]usecase.RankedVendor, 0, len(filtered))
		for _, v := range filtered {
			out = append(out, usecase.RankedVendor{Vendor: v})
		}

		return out
	}

	ranked := geo.RankByDistance(filtered, ref)
	out := make([]usecase.RankedVendor, 0, len(ranked))
	for _, r := range ranked {
		rv := usecase.RankedVendor{Vendor: r.Item}
		if r.HasDistance() {
			d := r.DistanceKm
			rv.DistanceKm = &d
		}
		out = append(out, rv)
	}

	return out
}
