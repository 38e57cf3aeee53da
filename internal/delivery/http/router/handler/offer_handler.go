package handler

import (
	"net/http"

	"streetbite/config"
	"streetbite/internal/delivery/http/response"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	minQRCodeSize = 64
	maxQRCodeSize = 1024
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Config  *config.Config
}

// OfferHandler serves the offers page and promo code images.
type OfferHandler struct {
	offerUC     usecase.OfferUsecase
	defaultSize int
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	size := 256
	if params.Config.QRCode != nil && params.Config.QRCode.Size > 0 {
		size = params.Config.QRCode.Size
	}

	return &OfferHandler{
		offerUC:     params.OfferUC,
		defaultSize: size,
	}
}

// ListOffers handles GET /offers?q=&cuisine=&type=&sort=.
func (h *OfferHandler) ListOffers(c echo.Context) error {
	var criteria listing.PromotionCriteria
	if ok, err := bindAndValidate(c, &criteria); !ok {
		return err
	}

	page, err := h.offerUC.ListOffers(c.Request().Context(), criteria)
	if err != nil {
		return err
	}

	return response.OK(c, page)
}

// PromoQRCode handles GET /offers/:id/qrcode?size= and answers with a PNG.
func (h *OfferHandler) PromoQRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", h.defaultSize)
	if err != nil {
		return err
	}
	if size < minQRCodeSize || size > maxQRCodeSize {
		return domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"size": "must be between 64 and 1024",
		})
	}

	png, err := h.offerUC.PromoQRCode(c.Request().Context(), id, size)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
