package live

import (
	"context"
	"log/slog"
	"math"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/service"
)

// MergeMenuItemLive applies an availability message.
func MergeMenuItemLive(prev entity.MenuItemLive, fields map[string]any) entity.MenuItemLive {
	next := prev
	if v, ok := fields["isAvailable"].(bool); ok {
		next.IsAvailable = v
	}
	if ms, ok := epochMillis(fields["lastUpdated"]); ok {
		next.LastUpdated = ms
	}

	return next
}

// MergeVendorLive applies a vendor presence message. Unknown statuses and
// out-of-range coordinates are ignored.
func MergeVendorLive(prev entity.VendorLive, fields map[string]any) entity.VendorLive {
	next := prev
	if v, ok := fields["status"].(string); ok && entity.VendorStatus(v).IsValid() {
		next.Status = entity.VendorStatus(v)
	}
	if lat, ok := number(fields["latitude"]); ok && lat >= -90 && lat <= 90 {
		next.Latitude = &lat
	}
	if lng, ok := number(fields["longitude"]); ok && lng >= -180 && lng <= 180 {
		next.Longitude = &lng
	}
	if v, ok := fields["address"].(string); ok {
		next.Address = v
	}
	if ms, ok := epochMillis(fields["lastUpdated"]); ok {
		next.LastUpdated = ms
	}

	return next
}

// MenuAvailability subscribes to the availability flag of one menu item.
func MenuAvailability(
	ctx context.Context,
	src service.LiveFieldSource,
	logger *slog.Logger,
	menuItemID string,
	available bool,
) *Subscription[entity.MenuItemLive] {
	return Subscribe(ctx, src, logger, entity.LiveMenuItemsCollection, menuItemID,
		entity.MenuItemLive{IsAvailable: available}, MergeMenuItemLive)
}

// VendorPresence subscribes to the live status and position of one vendor.
func VendorPresence(
	ctx context.Context,
	src service.LiveFieldSource,
	logger *slog.Logger,
	vendorID string,
	initial entity.VendorLive,
) *Subscription[entity.VendorLive] {
	return Subscribe(ctx, src, logger, entity.LiveVendorsCollection, vendorID, initial, MergeVendorLive)
}

func number(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func epochMillis(v any) (int64, bool) {
	if t, ok := v.(time.Time); ok {
		return t.UnixMilli(), true
	}
	f, ok := number(v)
	if !ok {
		return 0, false
	}

	return int64(f), true
}
