package impl

import (
	"context"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"
	"streetbite/internal/view"

	"go.uber.org/fx"
)

type pageService struct {
	vendorRepo    repository.VendorRepository
	promotionRepo repository.PromotionRepository
	hotTopicRepo  repository.HotTopicRepository
	now           func() time.Time
}

// PageServiceParams holds dependencies for PageService, injected by Fx.
type PageServiceParams struct {
	fx.In

	VendorRepo    repository.VendorRepository
	PromotionRepo repository.PromotionRepository
	HotTopicRepo  repository.HotTopicRepository
}

// NewPageService creates a new page service instance
func NewPageService(params PageServiceParams) usecase.PageUsecase {
	return &pageService{
		vendorRepo:    params.VendorRepo,
		promotionRepo: params.PromotionRepo,
		hotTopicRepo:  params.HotTopicRepo,
		now:           time.Now,
	}
}

func (s *pageService) OffersPage(criteria listing.PromotionCriteria) *view.Container[usecase.OfferView, listing.PromotionCriteria] {
	fetch := func(ctx context.Context) ([]usecase.OfferView, error) {
		promos, err := s.promotionRepo.ListActivePromotions(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list promotions")
		}

		return offerViews(promos, s.now()), nil
	}
	apply := func(items []usecase.OfferView, c listing.PromotionCriteria) []usecase.OfferView {
		promos := make([]entity.Promotion, 0, len(items))
		for _, item := range items {
			promos = append(promos, item.Promotion)
		}

		return offerViews(listing.ApplyPromotions(promos, c), s.now())
	}

	return view.New(fetch, apply, criteria)
}

func (s *pageService) ExplorePage(criteria usecase.ExploreCriteria) *view.Container[usecase.RankedVendor, usecase.ExploreCriteria] {
	fetch := func(ctx context.Context) ([]usecase.RankedVendor, error) {
		vendors, err := s.vendorRepo.ListVendors(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list vendors")
		}

		public := listing.PublicVisible(vendors)
		out := make([]usecase.RankedVendor, 0, len(public))
		for _, v := range public {
			out = append(out, usecase.RankedVendor{Vendor: v})
		}

		return out, nil
	}
	apply := func(items []usecase.RankedVendor, c usecase.ExploreCriteria) []usecase.RankedVendor {
		vendors := make([]entity.Vendor, 0, len(items))
		for _, item := range items {
			vendors = append(vendors, item.Vendor)
		}

		return rankVendors(vendors, c)
	}

	return view.New(fetch, apply, criteria)
}

func (s *pageService) AdminVendorsPage(criteria listing.AdminVendorCriteria) *view.Container[entity.Vendor, listing.AdminVendorCriteria] {
	fetch := func(ctx context.Context) ([]entity.Vendor, error) {
		vendors, err := s.vendorRepo.ListVendors(ctx)

		return vendors, errors.Wrap(err, "failed to list vendors")
	}

	return view.New(fetch, listing.FilterAdminVendors, criteria)
}

func (s *pageService) HotTopicsPage(criteria listing.HotTopicCriteria) *view.Container[entity.HotTopic, listing.HotTopicCriteria] {
	fetch := func(ctx context.Context) ([]entity.HotTopic, error) {
		topics, err := s.hotTopicRepo.ListHotTopics(ctx)

		return topics, errors.Wrap(err, "failed to list hot topics")
	}

	return view.New(fetch, listing.ApplyHotTopics, criteria)
}
