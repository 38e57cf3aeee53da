package entity

import "time"

// PlatformAnalytics is the admin dashboard summary.
type PlatformAnalytics struct {
	TotalUsers      int `json:"totalUsers"`
	TotalVendors    int `json:"totalVendors"`
	ActiveVendors   int `json:"activeVendors"`
	PendingVendors  int `json:"pendingVendors"`
	TotalPromotions int `json:"totalPromotions"`
	TotalReviews    int `json:"totalReviews"`
	TotalOrders     int `json:"totalOrders"`
}

// UIEvent is a client-side interaction forwarded for analytics.
type UIEvent struct {
	ID         string            `json:"id"`
	Type       string            `json:"eventType"`
	UserID     ID                `json:"userId,omitempty"`
	VendorID   ID                `json:"vendorId,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
	RequestID  string            `json:"-"`
}

// Event types emitted by the gateway.
const (
	UIEventPollVote        = "POLL_VOTE"
	UIEventQuizCompleted   = "QUIZ_COMPLETED"
	UIEventVendorViewed    = "VENDOR_VIEWED"
	UIEventPromoCodeViewed = "PROMO_CODE_VIEWED"
)
