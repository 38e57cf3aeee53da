package api

import (
	"context"
	"net/http"
	"net/url"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
)

// menuRepository implements the repository.MenuRepository interface.
type menuRepository struct {
	client *Client
}

// NewMenuRepository is the constructor for menuRepository.
func NewMenuRepository(client *Client) repository.MenuRepository {
	return &menuRepository{client: client}
}

// ListMenu returns a vendor's menu items.
func (repo *menuRepository) ListMenu(ctx context.Context, vendorID entity.ID) ([]entity.MenuItem, error) {
	const path = "/menu"

	raw, err := repo.client.do(ctx, http.MethodGet, path, url.Values{"vendorId": {vendorID.String()}}, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[menuItemDTO](raw, "menuItems")
	if err != nil {
		return nil, undecodable(path, err)
	}

	items := make([]entity.MenuItem, 0, len(dtos))
	for _, d := range dtos {
		item := d.toEntity()
		if item.VendorID.IsZero() {
			item.VendorID = vendorID
		}
		items = append(items, item)
	}

	return items, nil
}

// CreateMenuItem adds an item and returns it with the backend id.
func (repo *menuRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) (*entity.MenuItem, error) {
	const path = "/menu"

	req := menuItemRequest{
		VendorID:        item.VendorID,
		Name:            item.Name,
		Category:        item.Category,
		Price:           item.Price,
		IsAvailable:     item.IsAvailable,
		Description:     item.Description,
		PreparationTime: item.PreparationTime,
		ImageURL:        item.ImageURL,
	}

	raw, err := repo.client.do(ctx, http.MethodPost, path, nil, req)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(raw, path)
}

// UpdateMenuItem applies a partial update.
func (repo *menuRepository) UpdateMenuItem(ctx context.Context, id entity.ID, patch entity.MenuItemPatch) (*entity.MenuItem, error) {
	path := "/menu/" + url.PathEscape(id.String())

	raw, err := repo.client.do(ctx, http.MethodPatch, path, nil, patch)
	if err != nil {
		return nil, err
	}

	return decodeMenuItem(raw, path)
}

// DeleteMenuItem removes an item.
func (repo *menuRepository) DeleteMenuItem(ctx context.Context, id entity.ID) error {
	_, err := repo.client.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id.String()), nil, nil)

	return err
}

func decodeMenuItem(raw []byte, path string) (*entity.MenuItem, error) {
	dto, err := decodeItem[menuItemDTO](raw, "menuItem")
	if err != nil {
		return nil, undecodable(path, err)
	}
	item := dto.toEntity()

	return &item, nil
}
