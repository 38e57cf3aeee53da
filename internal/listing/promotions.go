package listing

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"streetbite/internal/domain/entity"
)

// PromotionType narrows promotions by discount kind.
type PromotionType string

const (
	PromotionTypeAll        PromotionType = "all"
	PromotionTypePercentage PromotionType = "percentage"
	PromotionTypeFixed      PromotionType = "fixed"
)

// PromotionSort is the order of the offers page.
type PromotionSort string

const (
	SortNewest          PromotionSort = "newest"
	SortHighestDiscount PromotionSort = "highest_discount"
	SortEndingSoon      PromotionSort = "ending_soon"
)

// PromotionCriteria is the offers page filter state.
type PromotionCriteria struct {
	Query   string        `json:"q" query:"q"`
	Cuisine string        `json:"cuisine" query:"cuisine"`
	Type    PromotionType `json:"type" query:"type" validate:"omitempty,oneof=all percentage fixed"`
	Sort    PromotionSort `json:"sort" query:"sort" validate:"omitempty,oneof=newest highest_discount ending_soon"`
}

// FilterPromotions keeps promotions matching c, preserving their order.
func FilterPromotions(items []entity.Promotion, c PromotionCriteria) []entity.Promotion {
	query := normalizeQuery(c.Query)

	return filter(items, func(p entity.Promotion) bool {
		switch c.Type {
		case PromotionTypePercentage:
			if p.DiscountType != entity.DiscountTypePercentage {
				return false
			}
		case PromotionTypeFixed:
			if !p.DiscountType.IsFixed() {
				return false
			}
		}
		if !isAll(c.Cuisine) && p.Vendor.Cuisine != c.Cuisine {
			return false
		}

		return containsAny(query, p.Title, p.Description, p.Vendor.Name, p.PromoCode)
	})
}

// SortPromotions returns a stably sorted copy. Unknown orders fall back to
// newest first.
func SortPromotions(items []entity.Promotion, by PromotionSort) []entity.Promotion {
	out := slices.Clone(items)

	switch by {
	case SortHighestDiscount:
		slices.SortStableFunc(out, func(a, b entity.Promotion) int {
			return cmpFloatDesc(a.DiscountValue, b.DiscountValue)
		})
	case SortEndingSoon:
		slices.SortStableFunc(out, func(a, b entity.Promotion) int {
			switch {
			case a.EndDate == nil && b.EndDate == nil:
				return 0
			case a.EndDate == nil:
				return 1
			case b.EndDate == nil:
				return -1
			}

			return a.EndDate.Compare(*b.EndDate)
		})
	default:
		slices.SortStableFunc(out, func(a, b entity.Promotion) int {
			return compareIDs(b.ID, a.ID)
		})
	}

	return out
}

// ApplyPromotions filters then sorts.
func ApplyPromotions(items []entity.Promotion, c PromotionCriteria) []entity.Promotion {
	return SortPromotions(FilterPromotions(items, c), c.Sort)
}

// Featured returns the promotion with the largest discount value. Among equal
// values the later one wins.
func Featured(items []entity.Promotion) (entity.Promotion, bool) {
	if len(items) == 0 {
		return entity.Promotion{}, false
	}

	best := items[0]
	for _, p := range items[1:] {
		if !(best.DiscountValue > p.DiscountValue) {
			best = p
		}
	}

	return best, true
}

// Cuisines returns "All" followed by the distinct vendor cuisines in first
// appearance order.
func Cuisines(items []entity.Promotion) []string {
	seen := make(map[string]struct{}, len(items))
	out := []string{AllOption}
	for _, p := range items {
		c := p.Vendor.Cuisine
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}

// DaysUntilExpiry returns the whole days left before end, rounded up. A
// result of zero or less means the promotion has expired. ok is false when
// the promotion never expires.
func DaysUntilExpiry(end *time.Time, now time.Time) (days int, ok bool) {
	if end == nil {
		return 0, false
	}

	return int(math.Ceil(end.Sub(now).Hours() / 24)), true
}

// ExpiryLabel renders DaysUntilExpiry for display.
func ExpiryLabel(end *time.Time, now time.Time) string {
	days, ok := DaysUntilExpiry(end, now)
	switch {
	case !ok:
		return "No Expiry"
	case days <= 0:
		return "Expired"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// DiscountLabel renders the discount badge text.
func DiscountLabel(p entity.Promotion) string {
	value := strconv.FormatFloat(p.DiscountValue, 'f', -1, 64)
	switch p.DiscountType {
	case entity.DiscountTypePercentage:
		return value + "% OFF"
	case entity.DiscountTypeFixedAmount:
		return "₹" + value + " OFF"
	default:
		return "SPECIAL OFFER"
	}
}

func cmpFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
