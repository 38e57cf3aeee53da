package handler

import (
	"encoding/json"
	"log/slog"
	"sync"

	"streetbite/config"
	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/delivery/http/ws"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/live"
	"streetbite/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LiveCommand rebinds a live session to another document. Available is the
// availability already known for a menu item and defaults to true.
type LiveCommand struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Available *bool  `json:"available,omitempty"`
}

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	LiveUC usecase.LiveUsecase
	Config *config.Config
	Logger *slog.Logger
}

// LiveHandler pushes live entity fields over WebSocket.
type LiveHandler struct {
	liveUC   usecase.LiveUsecase
	upgrader *websocket.Upgrader
	logger   *slog.Logger
}

// NewLiveHandler is the constructor for LiveHandler
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	return &LiveHandler{
		liveUC:   params.LiveUC,
		upgrader: ws.NewUpgrader(params.Config.HTTP.AllowedOrigins),
		logger:   params.Logger,
	}
}

// MenuItem handles GET /ws/live/menu-items/:id?available=.
func (h *LiveHandler) MenuItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	available, err := queryBool(c, "available", true)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	slot := live.NewSlot(func(id string, initial entity.MenuItemLive) (*live.Subscription[entity.MenuItemLive], error) {
		return h.liveUC.WatchMenuItem(ctx, entity.ID(id), initial.IsAvailable)
	})
	if _, err := slot.Bind(id.String(), entity.MenuItemLive{IsAvailable: available}); err != nil {
		return err
	}

	return serveSlot(c, h, slot, func(cmd LiveCommand) entity.MenuItemLive {
		return entity.MenuItemLive{IsAvailable: cmd.Available == nil || *cmd.Available}
	})
}

// Vendor handles GET /ws/live/vendors/:id.
func (h *LiveHandler) Vendor(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	slot := live.NewSlot(func(id string, _ entity.VendorLive) (*live.Subscription[entity.VendorLive], error) {
		return h.liveUC.WatchVendor(ctx, entity.ID(id))
	})
	if _, err := slot.Bind(id.String(), entity.VendorLive{}); err != nil {
		return err
	}

	return serveSlot(c, h, slot, func(LiveCommand) entity.VendorLive { return entity.VendorLive{} })
}

// serveSlot pushes the value of the bound document and every later change
// until the browser disconnects. A bind command moves the slot to another
// document. The slot is closed on return.
func serveSlot[T any](c echo.Context, h *LiveHandler, slot *live.Slot[T], initialFor func(LiveCommand) T) error {
	defer slot.Close()

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		return nil
	}

	logger := deliverycontext.Logger(c.Request().Context(), h.logger).
		With(slog.String("path", c.Path()))
	client := ws.NewClient(conn, logger)
	defer client.Close()

	// sendMu orders value messages against rebinding: once a bind has sent
	// the new document's value, nothing of the previous document follows.
	var sendMu sync.Mutex
	send := func(sub *live.Subscription[T], v T) bool {
		sendMu.Lock()
		defer sendMu.Unlock()

		if slot.Current() != sub {
			return false
		}

		return client.Send(ws.Message{Type: ws.TypeValue, ID: sub.ID(), Data: v})
	}

	forward := func(sub *live.Subscription[T]) {
		client.Send(ws.Message{Type: ws.TypeValue, ID: sub.ID(), Data: sub.Value()})

		go func() {
			for {
				select {
				case v, ok := <-sub.Updates():
					if !ok || !send(sub, v) {
						return
					}
				case <-client.Done():
					return
				}
			}
		}()
	}
	forward(slot.Current())

	logger.Debug("Live session opened", slog.String("doc_id", slot.Current().ID()))
	client.ReadPump(func(payload []byte) {
		var cmd LiveCommand
		if err := json.Unmarshal(payload, &cmd); err != nil {
			sendError(client, domainerrors.ErrValidationFailed.WithDetails("malformed command"))

			return
		}
		if cmd.Type != ws.CommandBind {
			sendError(client, domainerrors.ErrValidationFailed.WithDetails("unknown command "+cmd.Type))

			return
		}
		if cmd.ID == "" {
			sendError(client, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"id": "is required"}))

			return
		}

		sendMu.Lock()
		defer sendMu.Unlock()

		prev := slot.Current()
		sub, err := slot.Bind(cmd.ID, initialFor(cmd))
		if err != nil {
			sendError(client, err)

			return
		}
		if sub != prev {
			forward(sub)
		}
	})
	logger.Debug("Live session closed")

	return nil
}
