package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"streetbite/config"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"
	"streetbite/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePages struct {
	topics  []entity.HotTopic
	fetches atomic.Int32
}

func (f *fakePages) OffersPage(criteria listing.PromotionCriteria) *view.Container[usecase.OfferView, listing.PromotionCriteria] {
	return view.New[usecase.OfferView](func(context.Context) ([]usecase.OfferView, error) { return nil, nil }, nil, criteria)
}

func (f *fakePages) ExplorePage(criteria usecase.ExploreCriteria) *view.Container[usecase.RankedVendor, usecase.ExploreCriteria] {
	return view.New[usecase.RankedVendor](func(context.Context) ([]usecase.RankedVendor, error) {
		return nil, domainerrors.ErrNetwork
	}, nil, criteria)
}

func (f *fakePages) AdminVendorsPage(criteria listing.AdminVendorCriteria) *view.Container[entity.Vendor, listing.AdminVendorCriteria] {
	return view.New(func(context.Context) ([]entity.Vendor, error) { return nil, nil }, listing.FilterAdminVendors, criteria)
}

func (f *fakePages) HotTopicsPage(criteria listing.HotTopicCriteria) *view.Container[entity.HotTopic, listing.HotTopicCriteria] {
	return view.New(func(context.Context) ([]entity.HotTopic, error) {
		f.fetches.Add(1)

		return f.topics, nil
	}, listing.ApplyHotTopics, criteria)
}

type topicSnapshot = view.Snapshot[entity.HotTopic, listing.HotTopicCriteria]

func newTestPageEcho(pages usecase.PageUsecase) *PageHandler {
	return NewPageHandler(PageHandlerParams{PageUC: pages, Config: &config.Config{}, Logger: discardLogger()})
}

func snapshotMatching(t *testing.T, match func(topicSnapshot) bool) func(wsMessage) bool {
	t.Helper()

	return func(m wsMessage) bool {
		if m.Type != "snapshot" {
			return false
		}
		var snap topicSnapshot
		require.NoError(t, json.Unmarshal(m.Data, &snap))

		return match(snap)
	}
}

func TestPageHandler_HotTopics(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pages := &fakePages{topics: []entity.HotTopic{
		{ID: "1", Title: "Night market", Content: "Friday", IsActive: true, CreatedAt: now},
		{ID: "2", Title: "Taco week", Content: "All week", IsActive: true, CreatedAt: now.Add(time.Hour)},
		{ID: "3", Title: "Old news", Content: "Gone", IsActive: false, CreatedAt: now},
	}}

	e := newTestEcho()
	e.GET("/ws/pages/:page", newTestPageEcho(pages).Serve)

	conn := dialWS(t, e, "/ws/pages/hot-topics")

	readUntil(t, conn, snapshotMatching(t, func(s topicSnapshot) bool {
		return s.State == view.StatePopulated && s.Total == 2 && s.Items[0].ID == "2"
	}))

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "criteria", "criteria": map[string]any{"q": "market"}}))
	readUntil(t, conn, snapshotMatching(t, func(s topicSnapshot) bool {
		return s.Criteria.Query == "market" && s.Criteria.ActiveOnly && s.Total == 1 && s.Items[0].ID == "1"
	}))

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "criteria", "criteria": map[string]any{"q": "zzz"}}))
	readUntil(t, conn, snapshotMatching(t, func(s topicSnapshot) bool {
		return s.State == view.StateEmpty
	}))

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "refresh"}))
	require.Eventually(t, func() bool { return pages.fetches.Load() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]any{"type": "dance"}))
	msg := readUntil(t, conn, func(m wsMessage) bool { return m.Type == "error" })

	var info domainerrors.ErrorInfo
	require.NoError(t, json.Unmarshal(msg.Data, &info))
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
}

func TestPageHandler_ExploreError(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	e.GET("/ws/pages/:page", newTestPageEcho(&fakePages{}).Serve)

	conn := dialWS(t, e, "/ws/pages/explore")

	msg := readUntil(t, conn, func(m wsMessage) bool {
		var snap view.Snapshot[usecase.RankedVendor, usecase.ExploreCriteria]
		_ = json.Unmarshal(m.Data, &snap)

		return snap.State == view.StateError
	})

	var snap view.Snapshot[usecase.RankedVendor, usecase.ExploreCriteria]
	require.NoError(t, json.Unmarshal(msg.Data, &snap))
	require.NotNil(t, snap.Error)
	assert.Equal(t, domainerrors.KindNetwork, snap.Error.Kind)
	assert.True(t, snap.Error.Retryable)
}

func TestPageHandler_UnknownPage(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	e.GET("/ws/pages/:page", newTestPageEcho(&fakePages{}).Serve)

	rec, env := doRequest(t, e, http.MethodGet, "/ws/pages/checkout", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
