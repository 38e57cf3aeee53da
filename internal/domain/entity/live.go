package entity

// Collections of the real-time document store.
const (
	LiveMenuItemsCollection = "live_menu_items"
	LiveVendorsCollection   = "live_vendors"
)

// MenuItemLive is the volatile part of a menu item.
type MenuItemLive struct {
	IsAvailable bool  `json:"isAvailable"`
	LastUpdated int64 `json:"lastUpdated,omitempty"` // epoch millis
}

// VendorLive is the volatile part of a vendor: operating state and position.
type VendorLive struct {
	Status      VendorStatus `json:"status,omitempty"`
	Latitude    *float64     `json:"latitude,omitempty"`
	Longitude   *float64     `json:"longitude,omitempty"`
	Address     string       `json:"address,omitempty"`
	LastUpdated int64        `json:"lastUpdated,omitempty"` // epoch millis
}
