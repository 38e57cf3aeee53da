package live

import (
	"context"
	"testing"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_RebindClosesPrevious(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	slot := NewSlot(func(id string, initial entity.MenuItemLive) (*Subscription[entity.MenuItemLive], error) {
		return MenuAvailability(context.Background(), src, discardLogger(), id, initial.IsAvailable), nil
	})

	first, err := slot.Bind("1", entity.MenuItemLive{IsAvailable: true})
	require.NoError(t, err)
	waitOpened(t, src)

	again, err := slot.Bind("1", entity.MenuItemLive{})
	require.NoError(t, err)
	assert.Same(t, first, again)

	second, err := slot.Bind("2", entity.MenuItemLive{})
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "live_menu_items/2", waitOpened(t, src))

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("previous subscription still running")
	}
	assert.True(t, first.isClosed())
	assert.Same(t, second, slot.Current())

	slot.Close()
	assert.Nil(t, slot.Current())
	assert.True(t, second.isClosed())
}

func TestSlot_FailedOpenLeavesSlotUnbound(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	slot := NewSlot(func(id string, initial entity.MenuItemLive) (*Subscription[entity.MenuItemLive], error) {
		if id == "" {
			return nil, errors.New("empty id")
		}

		return MenuAvailability(context.Background(), src, discardLogger(), id, initial.IsAvailable), nil
	})

	first, err := slot.Bind("1", entity.MenuItemLive{})
	require.NoError(t, err)
	waitOpened(t, src)

	_, err = slot.Bind("", entity.MenuItemLive{})
	require.Error(t, err)
	assert.True(t, first.isClosed())
	assert.Nil(t, slot.Current())
}

func TestSlot_RebindDropsUnreadValueOfPrevious(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	slot := NewSlot(func(id string, initial entity.MenuItemLive) (*Subscription[entity.MenuItemLive], error) {
		return MenuAvailability(context.Background(), src, discardLogger(), id, initial.IsAvailable), nil
	})
	defer slot.Close()

	old, err := slot.Bind("m1", entity.MenuItemLive{IsAvailable: true})
	require.NoError(t, err)
	waitOpened(t, src)

	src.stream("live_menu_items/m1").updates <- service.FieldUpdate{
		Exists: true,
		Fields: map[string]any{"isAvailable": false},
	}
	require.Eventually(t, func() bool {
		return !old.Value().IsAvailable
	}, time.Second, time.Millisecond)

	_, err = slot.Bind("m2", entity.MenuItemLive{IsAvailable: true})
	require.NoError(t, err)

	select {
	case v, ok := <-old.Updates():
		assert.False(t, ok, "received %+v from the previous document", v)
	case <-time.After(time.Second):
		t.Fatal("updates channel of the previous document is still open")
	}
}
