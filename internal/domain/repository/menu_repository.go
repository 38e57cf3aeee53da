package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// MenuRepository manages menu items of a vendor.
type MenuRepository interface {
	ListMenu(ctx context.Context, vendorID entity.ID) ([]entity.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id entity.ID, patch entity.MenuItemPatch) (*entity.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id entity.ID) error
}
