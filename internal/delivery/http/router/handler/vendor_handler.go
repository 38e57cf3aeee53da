package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	DashboardUC usecase.VendorDashboardUsecase
}

// VendorHandler serves the dashboard of the signed-in vendor.
type VendorHandler struct {
	dashboardUC usecase.VendorDashboardUsecase
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{dashboardUC: params.DashboardUC}
}

// StatusRequest carries a vendor status.
type StatusRequest struct {
	Status entity.VendorStatus `json:"status" validate:"required"`
}

// Menu handles GET /vendor/menu?q=&category=.
func (h *VendorHandler) Menu(c echo.Context) error {
	var criteria listing.MenuCriteria
	if ok, err := bindAndValidate(c, &criteria); !ok {
		return err
	}

	page, err := h.dashboardUC.Menu(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

// CreateMenuItem handles POST /vendor/menu.
func (h *VendorHandler) CreateMenuItem(c echo.Context) error {
	var req usecase.CreateMenuItemInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	item, err := h.dashboardUC.CreateMenuItem(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, item, "Menu item created")
}

// UpdateMenuItem handles PATCH /vendor/menu/:id.
func (h *VendorHandler) UpdateMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var patch entity.MenuItemPatch
	if ok, err := bindAndValidate(c, &patch); !ok {
		return err
	}

	item, err := h.dashboardUC.UpdateMenuItem(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, item, "Menu item updated")
}

// DeleteMenuItem handles DELETE /vendor/menu/:id.
func (h *VendorHandler) DeleteMenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.dashboardUC.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Menu item deleted")
}

// UpdateStatus handles PATCH /vendor/status.
func (h *VendorHandler) UpdateStatus(c echo.Context) error {
	var req StatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	vendor, err := h.dashboardUC.UpdateStatus(c.Request().Context(), req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, vendor, "Status updated")
}

// UpdateLocation handles PATCH /vendor/location.
func (h *VendorHandler) UpdateLocation(c echo.Context) error {
	var req entity.VendorLocation
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	vendor, err := h.dashboardUC.UpdateLocation(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, vendor, "Location updated")
}
