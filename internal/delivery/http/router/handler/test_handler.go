package handler

import (
	"net/http"

	"streetbite/internal/delivery/http/middleware"
	"streetbite/internal/delivery/http/response"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	LiveUC usecase.LiveUsecase
}

// TestHandler serves development endpoints. Routes are only registered when
// test routes are enabled.
type TestHandler struct {
	liveUC usecase.LiveUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{liveUC: params.LiveUC}
}

// PublishLive handles POST /test/live/:collection/:id. The body is the field
// map written into the live document.
func (h *TestHandler) PublishLive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	// Path parameters must not leak into the field map.
	var fields map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return response.BindingError(c, "Invalid request input")
	}

	if err := h.liveUC.Publish(c.Request().Context(), c.Param("collection"), id, fields); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, fields, "Live fields published")
}

// WhoAmI reports the session seen by the auth middleware.
func (h *TestHandler) WhoAmI(c echo.Context) error {
	sess, _ := middleware.GetSession(c)

	return response.OK(c, map[string]any{
		"userID": sess.User.ID,
		"role":   sess.User.Role,
		"status": "authenticated",
	})
}
