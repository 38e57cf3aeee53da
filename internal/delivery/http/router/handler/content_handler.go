package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContentHandlerParams holds dependencies for ContentHandler, injected by Fx.
type ContentHandlerParams struct {
	fx.In

	HotTopicUC usecase.HotTopicUsecase
	ReportUC   usecase.ReportUsecase
	DeviceUC   usecase.DeviceUsecase
}

// ContentHandler serves the community feed, reports and device registration.
type ContentHandler struct {
	hotTopicUC usecase.HotTopicUsecase
	reportUC   usecase.ReportUsecase
	deviceUC   usecase.DeviceUsecase
}

// NewContentHandler is the constructor for ContentHandler
func NewContentHandler(params ContentHandlerParams) *ContentHandler {
	return &ContentHandler{
		hotTopicUC: params.HotTopicUC,
		reportUC:   params.ReportUC,
		deviceUC:   params.DeviceUC,
	}
}

// HotTopics handles GET /hot-topics?q=&activeOnly=.
func (h *ContentHandler) HotTopics(c echo.Context) error {
	activeOnly, err := queryBool(c, "activeOnly", true)
	if err != nil {
		return err
	}

	topics, err := h.hotTopicUC.Feed(c.Request().Context(), listing.HotTopicCriteria{
		Query:      c.QueryParam("q"),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return err
	}

	return response.OK(c, topics)
}

// CreateReport handles POST /reports.
func (h *ContentHandler) CreateReport(c echo.Context) error {
	var req usecase.CreateReportInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	id, err := h.reportUC.CreateReport(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": id.String()}, "Report submitted")
}

// RegisterDevice handles POST /devices.
func (h *ContentHandler) RegisterDevice(c echo.Context) error {
	var req usecase.DeviceInfo
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.deviceUC.RegisterDevice(c.Request().Context(), req); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil, "Device registered")
}
