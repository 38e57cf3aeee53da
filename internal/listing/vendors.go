package listing

import (
	"slices"

	"streetbite/internal/domain/entity"
)

var publicStatuses = []entity.VendorStatus{
	entity.VendorStatusApproved,
	entity.VendorStatusAvailable,
	entity.VendorStatusBusy,
}

// IsPublic reports whether a vendor with status s may appear on public pages.
func IsPublic(s entity.VendorStatus) bool {
	return slices.Contains(publicStatuses, s)
}

// PublicVisible drops vendors that are pending, rejected, suspended or
// unavailable.
func PublicVisible(items []entity.Vendor) []entity.Vendor {
	return filter(items, func(v entity.Vendor) bool {
		return IsPublic(v.Status)
	})
}

// VendorCriteria is the explore page filter state.
type VendorCriteria struct {
	Query    string                `json:"q" query:"q"`
	Cuisine  string                `json:"cuisine" query:"cuisine"`
	Statuses []entity.VendorStatus `json:"statuses,omitempty"`
}

// FilterVendors keeps vendors matching c, preserving their order. An empty
// status set allows any status.
func FilterVendors(items []entity.Vendor, c VendorCriteria) []entity.Vendor {
	query := normalizeQuery(c.Query)

	return filter(items, func(v entity.Vendor) bool {
		if len(c.Statuses) > 0 && !slices.Contains(c.Statuses, v.Status) {
			return false
		}
		if !isAll(c.Cuisine) && !equalFoldTrim(v.Cuisine, c.Cuisine) {
			return false
		}

		return containsAny(query, v.Name, v.Cuisine, v.Address)
	})
}

// AdminVendorCriteria is the admin vendor table filter state.
type AdminVendorCriteria struct {
	Status string `json:"status" query:"status"`
	Query  string `json:"q" query:"q"`
}

// FilterAdminVendors applies the admin status filter ("All" or exact match)
// and a search over vendor and owner names.
func FilterAdminVendors(items []entity.Vendor, c AdminVendorCriteria) []entity.Vendor {
	query := normalizeQuery(c.Query)

	return filter(items, func(v entity.Vendor) bool {
		if !isAll(c.Status) && string(v.Status) != c.Status {
			return false
		}

		return containsAny(query, v.Name, v.OwnerName())
	})
}

// PendingCount counts vendors awaiting moderation.
func PendingCount(items []entity.Vendor) int {
	n := 0
	for _, v := range items {
		if v.Status == entity.VendorStatusPending {
			n++
		}
	}

	return n
}

// VendorCuisines returns "All" followed by the distinct vendor cuisines in
// first appearance order.
func VendorCuisines(items []entity.Vendor) []string {
	out := []string{AllOption}
	for _, v := range items {
		if v.Cuisine != "" && !slices.Contains(out, v.Cuisine) {
			out = append(out, v.Cuisine)
		}
	}

	return out
}
