package entity

import "time"

// DiscountType is how a promotion's discount value is interpreted.
type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountTypeFixed       DiscountType = "FIXED"
)

// IsFixed reports whether the discount is an absolute amount. The backend
// emits both FIXED_AMOUNT and FIXED for the same thing.
func (d DiscountType) IsFixed() bool {
	return d == DiscountTypeFixedAmount || d == DiscountTypeFixed
}

// Promotion is an offer published by a vendor.
type Promotion struct {
	ID            ID           `json:"id"`
	Vendor        Vendor       `json:"vendor"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	PromoCode     string       `json:"promoCode"`
	StartDate     *time.Time   `json:"startDate,omitempty"`
	EndDate       *time.Time   `json:"endDate,omitempty"`
	IsActive      bool         `json:"isActive"`
	MaxUses       int          `json:"maxUses,omitempty"`
	CurrentUses   int          `json:"currentUses,omitempty"`
	MinOrderValue float64      `json:"minOrderValue,omitempty"`
}
