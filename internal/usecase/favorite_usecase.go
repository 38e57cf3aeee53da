package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
)

// FavoriteUsecase manages the signed-in user's saved vendors.
type FavoriteUsecase interface {
	ListFavorites(ctx context.Context) ([]entity.Vendor, error)
	AddFavorite(ctx context.Context, vendorID entity.ID) error
	RemoveFavorite(ctx context.Context, vendorID entity.ID) error
}
