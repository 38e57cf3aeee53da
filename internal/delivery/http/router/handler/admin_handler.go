package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC    usecase.AdminUsecase
	HotTopicUC usecase.HotTopicUsecase
}

// AdminHandler serves the admin console.
type AdminHandler struct {
	adminUC    usecase.AdminUsecase
	hotTopicUC usecase.HotTopicUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC:    params.AdminUC,
		hotTopicUC: params.HotTopicUC,
	}
}

// ListVendors handles GET /admin/vendors?status=&q=.
func (h *AdminHandler) ListVendors(c echo.Context) error {
	var criteria listing.AdminVendorCriteria
	if ok, err := bindAndValidate(c, &criteria); !ok {
		return err
	}

	page, err := h.adminUC.ListVendors(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

// ChangeVendorStatus handles PATCH /admin/vendors/:id/status.
func (h *AdminHandler) ChangeVendorStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	vendor, err := h.adminUC.ChangeVendorStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor status changed")
}

// DeleteVendor handles DELETE /admin/vendors/:id.
func (h *AdminHandler) DeleteVendor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteVendor(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Vendor deleted")
}

// PlatformAnalytics handles GET /admin/analytics.
func (h *AdminHandler) PlatformAnalytics(c echo.Context) error {
	stats, err := h.adminUC.PlatformAnalytics(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, stats)
}

// ListHotTopics handles GET /admin/hot-topics.
func (h *AdminHandler) ListHotTopics(c echo.Context) error {
	topics, err := h.hotTopicUC.ListHotTopics(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, topics)
}

// CreateHotTopic handles POST /admin/hot-topics.
func (h *AdminHandler) CreateHotTopic(c echo.Context) error {
	var req usecase.CreateHotTopicInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	topic, err := h.hotTopicUC.CreateHotTopic(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, topic, "Announcement published")
}

// DeleteHotTopic handles DELETE /admin/hot-topics/:id.
func (h *AdminHandler) DeleteHotTopic(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.hotTopicUC.DeleteHotTopic(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Announcement deleted")
}
