package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"streetbite/config"
	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/delivery/http/middleware"
	"streetbite/internal/delivery/http/response"
	"streetbite/internal/delivery/http/router"
	"streetbite/internal/delivery/http/router/handler"
	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
	mockUC "streetbite/internal/mocks/usecase"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type staticCell struct {
	sess entity.Session
}

func (c staticCell) Current() (entity.Session, bool) { return c.sess, !c.sess.IsZero() }

func (c staticCell) Set(context.Context, entity.Session) error { return nil }

func (c staticCell) Clear(context.Context) error { return nil }

type testDeps struct {
	dashboard *mockUC.MockVendorDashboardUsecase
	live      *mockUC.MockLiveUsecase
}

func newTestServer(t *testing.T, cfg *config.Config, sess entity.Session) (*echo.Echo, testDeps) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := testDeps{
		dashboard: mockUC.NewMockVendorDashboardUsecase(t),
		live:      mockUC.NewMockLiveUsecase(t),
	}

	e := NewEcho(cfg, logger)
	r := router.NewRouter(router.RouterParams{
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: mockUC.NewMockSessionUsecase(t)}),
		ExploreHandler:    handler.NewExploreHandler(handler.ExploreHandlerParams{ExploreUC: mockUC.NewMockExploreUsecase(t)}),
		OfferHandler:      handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: mockUC.NewMockOfferUsecase(t), Config: cfg}),
		FavoriteHandler:   handler.NewFavoriteHandler(handler.FavoriteHandlerParams{}),
		ContentHandler:    handler.NewContentHandler(handler.ContentHandlerParams{}),
		EngagementHandler: handler.NewEngagementHandler(handler.EngagementHandlerParams{}),
		VendorHandler:     handler.NewVendorHandler(handler.VendorHandlerParams{DashboardUC: deps.dashboard}),
		AdminHandler:      handler.NewAdminHandler(handler.AdminHandlerParams{}),
		LiveHandler:       handler.NewLiveHandler(handler.LiveHandlerParams{LiveUC: deps.live, Config: cfg, Logger: logger}),
		PageHandler:       handler.NewPageHandler(handler.PageHandlerParams{Config: cfg, Logger: logger}),
		TestHandler:       handler.NewTestHandler(handler.TestHandlerParams{LiveUC: deps.live}),
		AuthMiddleware:    middleware.NewAuthMiddleware(staticCell{sess: sess}),
		Config:            cfg,
	})
	r.RegisterRoutes(e)
	r.RegisterTestRoutes(e)

	return e, deps
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return cfg
}

func vendorSession() entity.Session {
	return entity.Session{Token: "t", User: entity.User{ID: "u1", Role: entity.RoleVendor, VendorID: "v1"}}
}

func call(t *testing.T, e *echo.Echo, req *http.Request) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t, testConfig(), entity.Session{})

	rec, body := call(t, e, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec, _ = call(t, e, req)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RoleGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sess     entity.Session
		path     string
		wantCode int
		wantErr  string
	}{
		{name: "vendor page signed out", path: "/vendor/menu", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{
			name:     "vendor page as customer",
			sess:     entity.Session{Token: "t", User: entity.User{ID: "u2", Role: entity.RoleUser}},
			path:     "/vendor/menu",
			wantCode: http.StatusForbidden,
			wantErr:  "FORBIDDEN",
		},
		{name: "admin page as vendor", sess: vendorSession(), path: "/admin/analytics", wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
		{name: "favorites signed out", path: "/favorites", wantCode: http.StatusUnauthorized, wantErr: "UNAUTHORIZED"},
		{name: "unknown route", path: "/nope", wantCode: http.StatusNotFound, wantErr: "HTTP_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestServer(t, testConfig(), tt.sess)

			rec, body := call(t, e, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestServer_VendorMenu(t *testing.T) {
	t.Parallel()

	e, deps := newTestServer(t, testConfig(), vendorSession())
	deps.dashboard.EXPECT().Menu(mock.Anything, listing.MenuCriteria{}).
		Return(&usecase.MenuPage{Items: []entity.MenuItem{}, Categories: []string{}}, nil).Once()

	rec, body := call(t, e, httptest.NewRequest(http.MethodGet, "/vendor/menu", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
}

func TestServer_TestRoutes(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()

		e, _ := newTestServer(t, testConfig(), entity.Session{})

		rec, _ := call(t, e, httptest.NewRequest(http.MethodPost, "/test/live/live_vendors/v1", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig()
		cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
		e, deps := newTestServer(t, cfg, entity.Session{})
		deps.live.EXPECT().
			Publish(mock.Anything, entity.LiveVendorsCollection, entity.ID("v1"), map[string]any{"status": "BUSY"}).
			Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/test/live/live_vendors/v1", strings.NewReader(`{"status":"BUSY"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec, body := call(t, e, req)

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.True(t, body.Success)
	})
}

func TestServer_BodyLimit(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.HTTP.MaxRequestBodySize = "1KB"
	e, _ := newTestServer(t, cfg, entity.Session{})

	big := `{"email":"` + string(make([]byte, 4096)) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(big))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
