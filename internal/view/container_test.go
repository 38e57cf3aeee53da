package view

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixFilter(items []string, prefix string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if strings.HasPrefix(it, prefix) {
			out = append(out, it)
		}
	}

	return out
}

func TestContainer_LoadPopulatesAndFilters(t *testing.T) {
	t.Parallel()

	c := New(func(context.Context) ([]string, error) {
		return []string{"apple", "avocado", "banana"}, nil
	}, prefixFilter, "")

	assert.Equal(t, StateLoading, c.Snapshot().State)

	applied, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)

	snap := c.Snapshot()
	assert.Equal(t, StatePopulated, snap.State)
	assert.Equal(t, []string{"apple", "avocado", "banana"}, snap.Items)

	snap = c.SetCriteria("a")
	assert.Equal(t, StatePopulated, snap.State)
	assert.Equal(t, []string{"apple", "avocado"}, snap.Items)
	assert.Equal(t, 3, snap.Total)

	snap = c.SetCriteria("z")
	assert.Equal(t, StateEmpty, snap.State)
	assert.Empty(t, snap.Items)
}

func TestContainer_EmptyIsNotLoading(t *testing.T) {
	t.Parallel()

	c := New[string, string](func(context.Context) ([]string, error) {
		return nil, nil
	}, nil, "")

	_, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, c.Snapshot().State)
}

func TestContainer_ErrorState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		kind      domainerrors.Kind
		retryable bool
	}{
		{"network", domainerrors.ErrNetwork, domainerrors.KindNetwork, true},
		{"server", domainerrors.ErrServer, domainerrors.KindServer, true},
		{"not found", errors.Wrap(domainerrors.ErrVendorNotFound, "get vendor"), domainerrors.KindNotFound, false},
		{"unclassified", errors.New("boom"), domainerrors.KindServer, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New[string, string](func(context.Context) ([]string, error) {
				return nil, tt.err
			}, nil, "")

			applied, err := c.Load(context.Background())
			assert.True(t, applied)
			require.Error(t, err)

			snap := c.Snapshot()
			assert.Equal(t, StateError, snap.State)
			require.NotNil(t, snap.Error)
			assert.Equal(t, tt.kind, snap.Error.Kind)
			assert.Equal(t, tt.retryable, snap.Error.Retryable)
		})
	}
}

func TestContainer_NewestStartedLoadWins(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	c := New[string, string](func(ctx context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			<-release

			return []string{"stale"}, nil
		}

		return []string{"fresh"}, nil
	}, nil, "")

	firstDone := make(chan bool)
	go func() {
		applied, _ := c.Load(context.Background())
		firstDone <- applied
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return calls == 1
	}, time.Second, time.Millisecond)

	applied, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, applied)

	close(release)
	assert.False(t, <-firstDone)
	assert.Equal(t, []string{"fresh"}, c.Snapshot().Items)
}

func TestContainer_NothingAppliesAfterClose(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	c := New[string, string](func(context.Context) ([]string, error) {
		close(started)
		<-release

		return []string{"late"}, nil
	}, nil, "")

	var notified int
	var mu sync.Mutex
	c.OnChange(func(Snapshot[string, string]) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	done := make(chan bool)
	go func() {
		applied, _ := c.Load(context.Background())
		done <- applied
	}()

	<-started
	mu.Lock()
	before := notified
	mu.Unlock()

	c.Close()
	close(release)

	assert.False(t, <-done)
	assert.Empty(t, c.Snapshot().Items)

	mu.Lock()
	assert.Equal(t, before, notified)
	mu.Unlock()

	applied, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestContainer_OnChange(t *testing.T) {
	t.Parallel()

	c := New[string, string](func(context.Context) ([]string, error) {
		return []string{"a"}, nil
	}, nil, "")

	var states []State
	cancel := c.OnChange(func(s Snapshot[string, string]) {
		states = append(states, s.State)
	})

	_, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []State{StateLoading, StatePopulated}, states)

	cancel()
	c.SetCriteria("x")
	assert.Len(t, states, 2)
}

func TestContainer_ListenersEndOnLatestState(t *testing.T) {
	t.Parallel()

	c := New(func(context.Context) ([]string, error) {
		return []string{"apple", "banana", "cherry"}, nil
	}, prefixFilter, "")

	entered := make(chan struct{})
	release := make(chan struct{})
	var (
		mu        sync.Mutex
		delivered []Snapshot[string, string]
		held      bool
	)
	c.OnChange(func(s Snapshot[string, string]) {
		mu.Lock()
		delivered = append(delivered, s)
		hold := s.State == StatePopulated && !held
		if hold {
			held = true
		}
		mu.Unlock()

		if hold {
			close(entered)
			<-release
		}
	})

	loaded := make(chan struct{})
	go func() {
		defer close(loaded)
		_, _ = c.Load(context.Background())
	}()

	<-entered
	snap := c.SetCriteria("b")
	assert.Equal(t, []string{"banana"}, snap.Items)
	close(release)
	<-loaded

	mu.Lock()
	defer mu.Unlock()

	last := delivered[len(delivered)-1]
	assert.Equal(t, "b", last.Criteria)
	assert.Equal(t, []string{"banana"}, last.Items)
	for i := 1; i < len(delivered); i++ {
		assert.Greater(t, delivered[i].Revision, delivered[i-1].Revision)
	}
}
