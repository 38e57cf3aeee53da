package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
)

// CreateMenuItemInput carries the new menu item form.
type CreateMenuItemInput struct {
	Name            string  `json:"name" validate:"required,max=120"`
	Category        string  `json:"category" validate:"max=60"`
	Price           float64 `json:"price" validate:"gte=0"`
	IsAvailable     *bool   `json:"isAvailable"`
	Description     string  `json:"description" validate:"max=500"`
	PreparationTime int     `json:"preparationTime" validate:"gte=0"`
	ImageURL        string  `json:"imageUrl" validate:"omitempty,url"`
}

// MenuPage is the vendor menu page view model.
type MenuPage struct {
	Items      []entity.MenuItem    `json:"items"`
	Categories []string             `json:"categories"`
	Criteria   listing.MenuCriteria `json:"criteria"`
}

// VendorDashboardUsecase serves the pages of the signed-in vendor. Every
// operation acts on the vendor linked to the session.
type VendorDashboardUsecase interface {
	Menu(ctx context.Context, criteria listing.MenuCriteria) (*MenuPage, error)
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id entity.ID, patch entity.MenuItemPatch) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id entity.ID) error

	// UpdateStatus sets the operating state: AVAILABLE, BUSY or UNAVAILABLE.
	UpdateStatus(ctx context.Context, status entity.VendorStatus) (*entity.Vendor, error)

	UpdateLocation(ctx context.Context, location entity.VendorLocation) (*entity.Vendor, error)
}
