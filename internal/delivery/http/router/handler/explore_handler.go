package handler

import (
	"streetbite/internal/delivery/http/response"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ExploreHandlerParams holds dependencies for ExploreHandler, injected by Fx.
type ExploreHandlerParams struct {
	fx.In

	ExploreUC usecase.ExploreUsecase
}

// ExploreHandler serves the public vendor pages.
type ExploreHandler struct {
	exploreUC usecase.ExploreUsecase
}

// NewExploreHandler is the constructor for ExploreHandler
func NewExploreHandler(params ExploreHandlerParams) *ExploreHandler {
	return &ExploreHandler{exploreUC: params.ExploreUC}
}

// Explore handles GET /explore?lat=&lng=&q=&cuisine=.
func (h *ExploreHandler) Explore(c echo.Context) error {
	criteria, err := exploreCriteria(c)
	if err != nil {
		return err
	}

	page, err := h.exploreUC.Explore(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

// GetVendor handles GET /vendors/:id.
func (h *ExploreHandler) GetVendor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.exploreUC.GetVendor(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, detail)
}

// exploreCriteria reads the explore filters. Coordinates are parsed by hand
// so that a missing value stays distinct from zero.
func exploreCriteria(c echo.Context) (usecase.ExploreCriteria, error) {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		return usecase.ExploreCriteria{}, err
	}
	lng, err := queryFloat(c, "lng")
	if err != nil {
		return usecase.ExploreCriteria{}, err
	}

	criteria := usecase.ExploreCriteria{
		VendorCriteria: listing.VendorCriteria{
			Query:   c.QueryParam("q"),
			Cuisine: c.QueryParam("cuisine"),
		},
		Latitude:  lat,
		Longitude: lng,
	}
	if err := c.Validate(&criteria); err != nil {
		return usecase.ExploreCriteria{}, err
	}

	return criteria, nil
}
