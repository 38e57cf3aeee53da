package entity

import (
	"math"
	"time"

	"github.com/paulmach/orb"
)

// VendorStatus covers both the moderation lifecycle and the live operating state.
type VendorStatus string

const (
	VendorStatusPending     VendorStatus = "PENDING"
	VendorStatusApproved    VendorStatus = "APPROVED"
	VendorStatusRejected    VendorStatus = "REJECTED"
	VendorStatusSuspended   VendorStatus = "SUSPENDED"
	VendorStatusAvailable   VendorStatus = "AVAILABLE"
	VendorStatusBusy        VendorStatus = "BUSY"
	VendorStatusUnavailable VendorStatus = "UNAVAILABLE"
)

var vendorStatuses = map[VendorStatus]struct{}{
	VendorStatusPending:     {},
	VendorStatusApproved:    {},
	VendorStatusRejected:    {},
	VendorStatusSuspended:   {},
	VendorStatusAvailable:   {},
	VendorStatusBusy:        {},
	VendorStatusUnavailable: {},
}

// IsValid reports whether s is one of the known statuses.
func (s VendorStatus) IsValid() bool {
	_, ok := vendorStatuses[s]

	return ok
}

// IsOperational reports whether s is one of the live operating states a vendor
// toggles from the dashboard.
func (s VendorStatus) IsOperational() bool {
	return s == VendorStatusAvailable || s == VendorStatusBusy || s == VendorStatusUnavailable
}

// VendorOwner is the account behind a vendor listing.
type VendorOwner struct {
	ID          ID     `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Vendor is the vendor summary as consumed by list and detail views.
// Optional fields default to their zero value; coordinates are nil when unknown.
type Vendor struct {
	ID              ID           `json:"id"`
	Name            string       `json:"name"`
	Cuisine         string       `json:"cuisine"`
	Address         string       `json:"address"`
	Description     string       `json:"description,omitempty"`
	Latitude        *float64     `json:"latitude,omitempty"`
	Longitude       *float64     `json:"longitude,omitempty"`
	Status          VendorStatus `json:"status"`
	Rating          float64      `json:"rating"`
	DisplayImageURL string       `json:"displayImageUrl,omitempty"`
	Owner           *VendorOwner `json:"owner,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Location returns the vendor position. ok is false when either coordinate is
// missing or out of range.
func (v Vendor) Location() (orb.Point, bool) {
	if v.Latitude == nil || v.Longitude == nil {
		return orb.Point{}, false
	}

	lat, lng := *v.Latitude, *v.Longitude
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// OwnerName returns the owner's display name or "" when the backend omitted it.
func (v Vendor) OwnerName() string {
	if v.Owner == nil {
		return ""
	}

	return v.Owner.DisplayName
}

var vendorTransitions = map[VendorStatus][]VendorStatus{
	VendorStatusPending:   {VendorStatusApproved, VendorStatusRejected},
	VendorStatusApproved:  {VendorStatusSuspended},
	VendorStatusAvailable: {VendorStatusSuspended},
	VendorStatusSuspended: {VendorStatusApproved},
}

// CanTransitionTo reports whether an admin may move a vendor from s to next.
func (s VendorStatus) CanTransitionTo(next VendorStatus) bool {
	for _, allowed := range vendorTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// VendorLocation is a position reported from the vendor dashboard.
type VendorLocation struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Address   string  `json:"address,omitempty" validate:"max=255"`
}
