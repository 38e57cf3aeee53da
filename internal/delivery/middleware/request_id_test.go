package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "streetbite/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "reuses caller id", incoming: "req-123"},
		{name: "generates id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()

			var seen string
			var hasLogger bool
			e.GET("/", m.Process(func(c echo.Context) error {
				seen = deliverycontext.RequestID(c.Request().Context())
				hasLogger = deliverycontext.Logger(c.Request().Context(), nil) != nil

				return c.NoContent(http.StatusNoContent)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.True(t, hasLogger)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}
