package api

import (
	"context"
	"net/http"
	"net/url"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	client *Client
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(client *Client) repository.VendorRepository {
	return &vendorRepository{client: client}
}

func vendorPath(id entity.ID, suffix string) string {
	return "/vendors/" + url.PathEscape(id.String()) + suffix
}

// ListVendors returns every vendor the backend knows, unfiltered.
func (repo *vendorRepository) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	const path = "/vendors"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[vendorDTO](raw, "vendors")
	if err != nil {
		return nil, undecodable(path, err)
	}

	return vendorsFromDTO(dtos), nil
}

// GetVendor retrieves one vendor.
func (repo *vendorRepository) GetVendor(ctx context.Context, id entity.ID) (*entity.Vendor, error) {
	path := vendorPath(id, "")

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, vendorNotFound(err, id)
	}

	return decodeVendor(raw, path)
}

// UpdateVendorStatus sets the moderation or operating status.
func (repo *vendorRepository) UpdateVendorStatus(ctx context.Context, id entity.ID, status entity.VendorStatus) (*entity.Vendor, error) {
	path := vendorPath(id, "/status")

	raw, err := repo.client.do(ctx, http.MethodPatch, path, nil, map[string]string{"status": string(status)})
	if err != nil {
		return nil, vendorNotFound(err, id)
	}

	return decodeVendor(raw, path)
}

// UpdateVendorLocation records the vendor's current stall position.
func (repo *vendorRepository) UpdateVendorLocation(ctx context.Context, id entity.ID, location entity.VendorLocation) (*entity.Vendor, error) {
	path := vendorPath(id, "/location")

	raw, err := repo.client.do(ctx, http.MethodPatch, path, nil, location)
	if err != nil {
		return nil, vendorNotFound(err, id)
	}

	return decodeVendor(raw, path)
}

// DeleteVendor removes a vendor listing.
func (repo *vendorRepository) DeleteVendor(ctx context.Context, id entity.ID) error {
	_, err := repo.client.do(ctx, http.MethodDelete, vendorPath(id, ""), nil, nil)

	return vendorNotFound(err, id)
}

func decodeVendor(raw []byte, path string) (*entity.Vendor, error) {
	dto, err := decodeItem[vendorDTO](raw, "vendor")
	if err != nil {
		return nil, undecodable(path, err)
	}
	v := dto.toEntity()

	return &v, nil
}

func vendorNotFound(err error, id entity.ID) error {
	if err != nil && errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.ErrVendorNotFound.WithDetails("vendor " + id.String())
	}

	return err
}

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	client *Client
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(client *Client) repository.FavoriteRepository {
	return &favoriteRepository{client: client}
}

// ListFavorites returns the signed-in user's saved vendors.
func (repo *favoriteRepository) ListFavorites(ctx context.Context) ([]entity.Vendor, error) {
	const path = "/favorites"

	raw, err := repo.client.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeList[favoriteDTO](raw, "favorites")
	if err != nil {
		return nil, undecodable(path, err)
	}

	out := make([]entity.Vendor, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, d.vendor().toEntity())
	}

	return out, nil
}

// AddFavorite saves a vendor.
func (repo *favoriteRepository) AddFavorite(ctx context.Context, vendorID entity.ID) error {
	_, err := repo.client.do(ctx, http.MethodPost, "/favorites/"+url.PathEscape(vendorID.String()), nil, nil)

	return vendorNotFound(err, vendorID)
}

// RemoveFavorite drops a saved vendor.
func (repo *favoriteRepository) RemoveFavorite(ctx context.Context, vendorID entity.ID) error {
	_, err := repo.client.do(ctx, http.MethodDelete, "/favorites/"+url.PathEscape(vendorID.String()), nil, nil)

	return vendorNotFound(err, vendorID)
}

// favoriteDTO is either a vendor or a favorite record wrapping one.
type favoriteDTO struct {
	vendorDTO
	Vendor *vendorDTO `json:"vendor"`
}

func (d favoriteDTO) vendor() vendorDTO {
	if d.Vendor != nil {
		return *d.Vendor
	}

	return d.vendorDTO
}
