package live

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitOpened(t *testing.T, src *fakeSource) string {
	t.Helper()

	select {
	case key := <-src.opened:
		return key
	case <-time.After(time.Second):
		t.Fatal("listener was not opened")

		return ""
	}
}

func nextUpdate[T any](t *testing.T, sub *Subscription[T]) T {
	t.Helper()

	select {
	case v := <-sub.Updates():
		return v
	case <-time.After(time.Second):
		t.Fatal("no update received")

		var zero T

		return zero
	}
}

func TestMenuAvailability_AppliesMessagesInOrder(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	sub := MenuAvailability(context.Background(), src, discardLogger(), "42", true)
	defer sub.Close()

	assert.Equal(t, entity.LiveMenuItemsCollection+"/42", waitOpened(t, src))
	assert.True(t, sub.Value().IsAvailable)

	stream := src.stream("live_menu_items/42")
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"isAvailable": false, "lastUpdated": int64(1700)}}
	got := nextUpdate(t, sub)
	assert.False(t, got.IsAvailable)
	assert.Equal(t, int64(1700), got.LastUpdated)

	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"isAvailable": true}}
	got = nextUpdate(t, sub)
	assert.True(t, got.IsAvailable)
	assert.Equal(t, int64(1700), got.LastUpdated, "absent field keeps its value")
}

func TestSubscription_MissingDocumentKeepsValue(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	sub := MenuAvailability(context.Background(), src, discardLogger(), "7", false)
	defer sub.Close()
	waitOpened(t, src)

	stream := src.stream("live_menu_items/7")
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"isAvailable": true}}
	assert.True(t, nextUpdate(t, sub).IsAvailable)

	stream.updates <- service.FieldUpdate{Exists: false}
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"isAvailable": "yes"}}
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"lastUpdated": int64(5)}}

	require.Eventually(t, func() bool {
		return sub.Value().LastUpdated == 5
	}, time.Second, time.Millisecond)
	assert.True(t, sub.Value().IsAvailable)
}

func TestSubscription_StreamErrorKeepsLastValue(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	sub := VendorPresence(context.Background(), src, discardLogger(), "3", entity.VendorLive{Status: entity.VendorStatusApproved})
	defer sub.Close()
	waitOpened(t, src)

	src.stream("live_vendors/3").errs <- errors.New("permission denied")

	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Equal(t, entity.VendorStatusApproved, sub.Value().Status)
}

func TestSubscription_OpenErrorKeepsInitial(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.openErr = errors.New("unavailable")
	sub := MenuAvailability(context.Background(), src, discardLogger(), "1", true)
	defer sub.Close()

	<-sub.Done()
	assert.True(t, sub.Value().IsAvailable)
}

func TestSubscription_NoUpdateAfterClose(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	sub := MenuAvailability(context.Background(), src, discardLogger(), "9", true)
	waitOpened(t, src)
	stream := src.stream("live_menu_items/9")

	sub.Close()
	sub.Close()

	_, open := <-sub.Updates()
	assert.False(t, open)

	select {
	case stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"isAvailable": false}}:
	case <-sub.Done():
	}
	<-sub.Done()
	assert.True(t, sub.Value().IsAvailable)
}

func TestSubscription_UpdatesCoalesce(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	sub := VendorPresence(context.Background(), src, discardLogger(), "5", entity.VendorLive{})
	defer sub.Close()
	waitOpened(t, src)

	stream := src.stream("live_vendors/5")
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"status": "BUSY"}}
	stream.updates <- service.FieldUpdate{Exists: true, Fields: map[string]any{"status": "AVAILABLE", "latitude": 18.52, "longitude": 73.85}}

	require.Eventually(t, func() bool {
		return sub.Value().Status == entity.VendorStatusAvailable
	}, time.Second, time.Millisecond)

	got := nextUpdate(t, sub)
	assert.Equal(t, entity.VendorStatusAvailable, got.Status)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 18.52, *got.Latitude, 1e-9)
}

func TestMergeVendorLive(t *testing.T) {
	t.Parallel()

	lat := 10.0
	prev := entity.VendorLive{Status: entity.VendorStatusBusy, Latitude: &lat, Address: "Camp"}

	next := MergeVendorLive(prev, map[string]any{
		"status":      "NOT_A_STATUS",
		"latitude":    int64(200),
		"longitude":   72.5,
		"address":     "Deccan",
		"lastUpdated": time.UnixMilli(1234),
	})

	assert.Equal(t, entity.VendorStatusBusy, next.Status)
	require.NotNil(t, next.Latitude)
	assert.InDelta(t, 10.0, *next.Latitude, 1e-9)
	require.NotNil(t, next.Longitude)
	assert.InDelta(t, 72.5, *next.Longitude, 1e-9)
	assert.Equal(t, "Deccan", next.Address)
	assert.Equal(t, int64(1234), next.LastUpdated)
	assert.Equal(t, "Camp", prev.Address)
}
