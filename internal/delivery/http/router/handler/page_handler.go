package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"streetbite/config"
	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/delivery/http/ws"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"
	"streetbite/internal/view"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageCommand is a browser message on a page session. Criteria replaces the
// filter state; fields it omits keep their current value.
type PageCommand struct {
	Type     string          `json:"type"`
	Criteria json.RawMessage `json:"criteria,omitempty"`
}

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	PageUC usecase.PageUsecase
	Config *config.Config
	Logger *slog.Logger
}

// PageHandler serves list pages as WebSocket sessions backed by a list state
// container.
type PageHandler struct {
	pageUC   usecase.PageUsecase
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		pageUC:   params.PageUC,
		upgrader: ws.NewUpgrader(params.Config.HTTP.AllowedOrigins),
		logger:   params.Logger,
	}
}

// Serve handles GET /ws/pages/:page. The query string sets the initial
// criteria.
func (h *PageHandler) Serve(c echo.Context) error {
	switch page := c.Param("page"); page {
	case usecase.PageOffers:
		var criteria listing.PromotionCriteria
		if ok, err := bindAndValidate(c, &criteria); !ok {
			return err
		}

		return servePage(c, h, h.pageUC.OffersPage(criteria))
	case usecase.PageExplore:
		criteria, err := exploreCriteria(c)
		if err != nil {
			return err
		}

		return servePage(c, h, h.pageUC.ExplorePage(criteria))
	case usecase.PageAdminVendors:
		var criteria listing.AdminVendorCriteria
		if ok, err := bindAndValidate(c, &criteria); !ok {
			return err
		}

		return servePage(c, h, h.pageUC.AdminVendorsPage(criteria))
	case usecase.PageHotTopics:
		criteria := listing.HotTopicCriteria{Query: c.QueryParam("q")}
		activeOnly, err := queryBool(c, "activeOnly", true)
		if err != nil {
			return err
		}
		criteria.ActiveOnly = activeOnly

		return servePage(c, h, h.pageUC.HotTopicsPage(criteria))
	default:
		return domainerrors.ErrNotFound.WithDetails("unknown page " + page)
	}
}

// servePage streams container snapshots until the browser disconnects. The
// container is closed on return, which discards any load still in flight.
func servePage[T, C any](c echo.Context, h *PageHandler, container *view.Container[T, C]) error {
	defer container.Close()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	logger := deliverycontext.Logger(ctx, h.logger).With(slog.String("page", c.Param("page")))
	client := ws.NewClient(conn, logger)
	defer client.Close()

	unsubscribe := container.OnChange(func(snap view.Snapshot[T, C]) {
		client.Send(ws.Message{Type: ws.TypeSnapshot, Data: snap})
	})
	defer unsubscribe()

	client.Send(ws.Message{Type: ws.TypeSnapshot, Data: container.Snapshot()})
	go load(ctx, logger, container)

	client.ReadPump(func(payload []byte) {
		var cmd PageCommand
		if err := json.Unmarshal(payload, &cmd); err != nil {
			sendError(client, domainerrors.ErrValidationFailed.WithDetails("malformed command"))

			return
		}

		switch cmd.Type {
		case ws.CommandRefresh:
			go load(ctx, logger, container)
		case ws.CommandCriteria:
			criteria := container.Criteria()
			if err := json.Unmarshal(cmd.Criteria, &criteria); err != nil {
				sendError(client, domainerrors.ErrValidationFailed.WithDetails("malformed criteria"))

				return
			}
			if err := c.Validate(&criteria); err != nil {
				sendError(client, err)

				return
			}
			container.SetCriteria(criteria)
		default:
			sendError(client, domainerrors.ErrValidationFailed.WithDetails("unknown command "+cmd.Type))
		}
	})

	return nil
}

func load[T, C any](ctx context.Context, logger *slog.Logger, container *view.Container[T, C]) {
	applied, err := container.Load(ctx)
	if err != nil && ctx.Err() == nil {
		logger.Debug("Page load failed", slog.Bool("applied", applied), slog.Any("error", err))
	}
}

func sendError(client *ws.Client, err error) {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.ErrInternalError
	}
	client.Send(ws.Message{Type: ws.TypeError, Data: domainerrors.NewErrorInfo(appErr)})
}
