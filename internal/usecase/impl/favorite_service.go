package impl

import (
	"context"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	cell         usecase.SessionCell
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	Cell         usecase.SessionCell
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		cell:         params.Cell,
	}
}

// ListFavorites returns the saved vendors of the signed-in user.
func (s *favoriteService) ListFavorites(ctx context.Context) ([]entity.Vendor, error) {
	if _, err := signedIn(s.cell); err != nil {
		return nil, err
	}

	vendors, err := s.favoriteRepo.ListFavorites(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return vendors, nil
}

// AddFavorite saves a vendor.
func (s *favoriteService) AddFavorite(ctx context.Context, vendorID entity.ID) error {
	if err := s.check(vendorID); err != nil {
		return err
	}

	return errors.Wrap(s.favoriteRepo.AddFavorite(ctx, vendorID), "failed to add favorite")
}

// RemoveFavorite drops a saved vendor.
func (s *favoriteService) RemoveFavorite(ctx context.Context, vendorID entity.ID) error {
	if err := s.check(vendorID); err != nil {
		return err
	}

	return errors.Wrap(s.favoriteRepo.RemoveFavorite(ctx, vendorID), "failed to remove favorite")
}

func (s *favoriteService) check(vendorID entity.ID) error {
	if _, err := signedIn(s.cell); err != nil {
		return err
	}
	if vendorID.IsZero() {
		return domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"vendorId": "is required"})
	}

	return nil
}
