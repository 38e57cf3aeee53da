package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/live"
)

// LiveUsecase opens live views of volatile entity fields.
type LiveUsecase interface {
	// WatchMenuItem follows the availability of one menu item, starting from
	// the availability the caller already knows.
	WatchMenuItem(ctx context.Context, menuItemID entity.ID, available bool) (*live.Subscription[entity.MenuItemLive], error)

	// WatchVendor follows the status and position of one vendor, starting
	// from the vendor record.
	WatchVendor(ctx context.Context, vendorID entity.ID) (*live.Subscription[entity.VendorLive], error)

	// Publish writes fields into a live document.
	Publish(ctx context.Context, collection string, id entity.ID, fields map[string]any) error
}
