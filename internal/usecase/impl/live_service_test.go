package impl

import (
	"context"
	"testing"
	"time"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	livesource "streetbite/internal/infra/live"
	mockRepo "streetbite/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLiveService(t *testing.T) (*liveService, *livesource.MemorySource, *mockRepo.MockVendorRepository) {
	t.Helper()

	src := livesource.NewMemorySource()
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	svc := NewLiveService(LiveServiceParams{
		Source:     src,
		Publisher:  src,
		VendorRepo: vendorRepo,
		Logger:     discardLogger(),
	}).(*liveService)

	return svc, src, vendorRepo
}

func TestLiveService_WatchMenuItem(t *testing.T) {
	t.Parallel()

	svc, src, _ := newTestLiveService(t)
	ctx := context.Background()

	sub, err := svc.WatchMenuItem(ctx, "10", true)
	require.NoError(t, err)
	defer sub.Close()

	assert.True(t, sub.Value().IsAvailable)
	require.Eventually(t, func() bool {
		return src.Listeners(entity.LiveMenuItemsCollection, "10") == 1
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, svc.Publish(ctx, entity.LiveMenuItemsCollection, "10", map[string]any{"isAvailable": false}))

	select {
	case v := <-sub.Updates():
		assert.False(t, v.IsAvailable)
	case <-time.After(time.Second):
		t.Fatal("no availability update")
	}
}

func TestLiveService_WatchVendorStartsFromRecord(t *testing.T) {
	t.Parallel()

	svc, _, vendorRepo := newTestLiveService(t)
	vendorRepo.EXPECT().GetVendor(mock.Anything, entity.ID("4")).Return(&entity.Vendor{
		ID:        "4",
		Status:    entity.VendorStatusAvailable,
		Latitude:  floatPtr(12.9),
		Longitude: floatPtr(77.6),
		Address:   "MG Road",
	}, nil)

	sub, err := svc.WatchVendor(context.Background(), "4")
	require.NoError(t, err)
	defer sub.Close()

	got := sub.Value()
	assert.Equal(t, entity.VendorStatusAvailable, got.Status)
	assert.Equal(t, "MG Road", got.Address)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, 12.9, *got.Latitude, 1e-9)
}

func TestLiveService_PublishValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestLiveService(t)

	err := svc.Publish(context.Background(), "orders", "1", map[string]any{"x": 1})
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))

	err = svc.Publish(context.Background(), entity.LiveVendorsCollection, "1", nil)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))

	_, err = svc.WatchMenuItem(context.Background(), "", true)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))
}
