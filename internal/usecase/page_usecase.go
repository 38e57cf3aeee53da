package usecase

import (
	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
	"streetbite/internal/view"
)

// Page names served over page sessions.
const (
	PageOffers       = "offers"
	PageExplore      = "explore"
	PageAdminVendors = "admin-vendors"
	PageHotTopics    = "hot-topics"
)

// PageUsecase builds the list state containers behind the live pages. Each
// call returns a fresh container owned by the caller, who must Close it.
type PageUsecase interface {
	OffersPage(criteria listing.PromotionCriteria) *view.Container[OfferView, listing.PromotionCriteria]
	ExplorePage(criteria ExploreCriteria) *view.Container[RankedVendor, ExploreCriteria]
	AdminVendorsPage(criteria listing.AdminVendorCriteria) *view.Container[entity.Vendor, listing.AdminVendorCriteria]
	HotTopicsPage(criteria listing.HotTopicCriteria) *view.Container[entity.HotTopic, listing.HotTopicCriteria]
}
