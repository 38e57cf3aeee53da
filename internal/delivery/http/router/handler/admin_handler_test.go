package handler

import (
	"net/http"
	"testing"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/listing"
	mockUC "streetbite/internal/mocks/usecase"
	"streetbite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_ListVendors(t *testing.T) {
	t.Parallel()

	adminUC := mockUC.NewMockAdminUsecase(t)
	adminUC.EXPECT().
		ListVendors(mock.Anything, listing.AdminVendorCriteria{Status: "PENDING", Query: "kim"}).
		Return(&usecase.AdminVendorPage{
			Vendors:      []entity.Vendor{{ID: "v1", Name: "Kimchi Cart", Status: entity.VendorStatusPending}},
			Total:        1,
			PendingCount: 1,
		}, nil).
		Once()

	h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, HotTopicUC: mockUC.NewMockHotTopicUsecase(t)})
	e := newTestEcho()
	e.GET("/admin/vendors", h.ListVendors)

	rec, env := doRequest(t, e, http.MethodGet, "/admin/vendors?status=PENDING&q=kim", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"pendingCount":1`)
}

func TestAdminHandler_ChangeVendorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantError string
	}{
		{name: "approved", wantCode: http.StatusOK},
		{
			name:      "transition not allowed",
			err:       domainerrors.ErrInvalidStatusTransition.WithDetails("REJECTED -> APPROVED"),
			wantCode:  http.StatusConflict,
			wantError: "INVALID_STATUS_TRANSITION",
		},
		{
			name:      "backend down",
			err:       domainerrors.ErrNetwork,
			wantCode:  http.StatusBadGateway,
			wantError: "NETWORK_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			adminUC := mockUC.NewMockAdminUsecase(t)
			call := adminUC.EXPECT().ChangeVendorStatus(mock.Anything, entity.ID("v1"), entity.VendorStatusApproved).Once()
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&entity.Vendor{ID: "v1", Status: entity.VendorStatusApproved}, nil)
			}

			h := NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, HotTopicUC: mockUC.NewMockHotTopicUsecase(t)})
			e := newTestEcho()
			e.PATCH("/admin/vendors/:id/status", h.ChangeVendorStatus)

			rec, env := doRequest(t, e, http.MethodPatch, "/admin/vendors/v1/status", `{"status":"APPROVED"}`)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError == "" {
				assert.True(t, env.Success)

				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantError, env.Error.Code)
			assert.Equal(t, tt.wantCode == http.StatusBadGateway, env.Error.Retryable)
		})
	}
}

func TestAdminHandler_CreateHotTopic(t *testing.T) {
	t.Parallel()

	topicUC := mockUC.NewMockHotTopicUsecase(t)
	topicUC.EXPECT().
		CreateHotTopic(mock.Anything, usecase.CreateHotTopicInput{Title: "Night market", Content: "Friday 6pm"}).
		Return(&entity.HotTopic{ID: "h1", Title: "Night market"}, nil).
		Once()

	h := NewAdminHandler(AdminHandlerParams{AdminUC: mockUC.NewMockAdminUsecase(t), HotTopicUC: topicUC})
	e := newTestEcho()
	e.POST("/admin/hot-topics", h.CreateHotTopic)

	rec, _ := doRequest(t, e, http.MethodPost, "/admin/hot-topics", `{"title":"Night market","content":"Friday 6pm"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, e, http.MethodPost, "/admin/hot-topics", `{"title":"","content":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Fields, "title")
}
