package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCell struct {
	sess entity.Session
}

func (c staticCell) Current() (entity.Session, bool) { return c.sess, !c.sess.IsZero() }

func (c staticCell) Set(context.Context, entity.Session) error { return nil }

func (c staticCell) Clear(context.Context) error { return nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func serve(t *testing.T, e *echo.Echo, path string) (int, response.Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sess     entity.Session
		wantCode int
		wantErr  string
	}{
		{name: "signed out", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "wrong role", sess: entity.Session{Token: "t", User: entity.User{Role: entity.RoleUser}}, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "admin", sess: entity.Session{Token: "t", User: entity.User{Role: entity.RoleAdmin}}, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auth := NewAuthMiddleware(staticCell{sess: tt.sess})
			e := newTestEcho()
			g := e.Group("/admin", auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
			g.GET("/ping", func(c echo.Context) error {
				sess, ok := GetSession(c)
				require.True(t, ok)

				return response.OK(c, string(sess.User.Role))
			})

			code, body := serve(t, e, "/admin/ping")
			assert.Equal(t, tt.wantCode, code)
			if tt.wantErr == "" {
				assert.True(t, body.Success)

				return
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
			assert.Equal(t, domainerrors.KindUnauthorized, body.Error.Kind)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantCode      int
		wantErrorCode string
		wantRetryable bool
		wantDetails   string
	}{
		{
			name:          "validation keeps details",
			err:           errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("bad option"), "vote"),
			wantCode:      http.StatusBadRequest,
			wantErrorCode: "VALIDATION_FAILED",
			wantDetails:   "bad option",
		},
		{
			name:          "backend failure hides details",
			err:           domainerrors.ErrServer.WithDetails("stack trace"),
			wantCode:      http.StatusBadGateway,
			wantErrorCode: "SERVER_ERROR",
			wantRetryable: true,
		},
		{
			name:          "echo error",
			err:           echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantCode:      http.StatusMethodNotAllowed,
			wantErrorCode: "HTTP_ERROR",
		},
		{
			name:          "unknown error",
			err:           errors.New("boom"),
			wantCode:      http.StatusInternalServerError,
			wantErrorCode: "INTERNAL_ERROR",
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := newTestEcho()
			e.GET("/fail", func(echo.Context) error { return tt.err })

			code, body := serve(t, e, "/fail")
			assert.Equal(t, tt.wantCode, code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErrorCode, body.Error.Code)
			assert.Equal(t, tt.wantRetryable, body.Error.Retryable)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}
