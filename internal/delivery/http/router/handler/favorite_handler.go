package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler serves the saved vendors of the signed-in user.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// ListFavorites handles GET /favorites.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	vendors, err := h.favoriteUC.ListFavorites(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, vendors)
}

// AddFavorite handles POST /favorites/:vendorId.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	vendorID, err := pathID(c, "vendorId")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.AddFavorite(c.Request().Context(), vendorID); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, "Added to favorites")
}

// RemoveFavorite handles DELETE /favorites/:vendorId.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	vendorID, err := pathID(c, "vendorId")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), vendorID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Removed from favorites")
}
