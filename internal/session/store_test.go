package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubInspector map[string]time.Time

func (s stubInspector) Inspect(token string) (*service.TokenClaims, error) {
	exp, ok := s[token]
	if !ok {
		return nil, errors.New("opaque token")
	}

	return &service.TokenClaims{ExpiresAt: exp}, nil
}

func newTestStore(t *testing.T, tokens service.TokenInspector) (*Store, *time.Time) {
	t.Helper()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewStore(memory.NewLocalStateRepository(), tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }

	return s, &now
}

func TestStore_SetCurrentClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestStore(t, stubInspector{"valid": time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)})

	_, ok := s.Current()
	assert.False(t, ok)
	assert.Empty(t, s.Token())

	sess := entity.Session{Token: "valid", User: entity.User{ID: "1", Role: entity.RoleAdmin}}
	require.NoError(t, s.Set(ctx, sess))

	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, sess, got)
	assert.Equal(t, "valid", s.Token())

	require.NoError(t, s.Clear(ctx))
	_, ok = s.Current()
	assert.False(t, ok)

	stored, err := s.repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestStore_SetRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t, nil)
	assert.Error(t, s.Set(context.Background(), entity.Session{}))
}

func TestStore_ExpiredTokenIsNotCurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exp := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	s, now := newTestStore(t, stubInspector{"short": exp})

	require.NoError(t, s.Set(ctx, entity.Session{Token: "short"}))
	assert.Equal(t, "short", s.Token())

	*now = exp
	assert.Empty(t, s.Token())
}

func TestStore_OpaqueTokenNeverExpires(t *testing.T) {
	t.Parallel()

	s, now := newTestStore(t, stubInspector{})

	require.NoError(t, s.Set(context.Background(), entity.Session{Token: "opaque"}))
	*now = now.AddDate(5, 0, 0)
	assert.Equal(t, "opaque", s.Token())
}

func TestStore_Restore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	exp := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	s, _ := newTestStore(t, stubInspector{"valid": exp, "stale": exp.Add(-2 * time.Hour)})
	require.NoError(t, s.repo.SaveSession(ctx, &entity.Session{Token: "valid", User: entity.User{ID: "7"}}))
	require.NoError(t, s.Restore(ctx))
	got, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, entity.ID("7"), got.User.ID)

	stale, _ := newTestStore(t, stubInspector{"stale": exp.Add(-2 * time.Hour)})
	require.NoError(t, stale.repo.SaveSession(ctx, &entity.Session{Token: "stale"}))
	require.NoError(t, stale.Restore(ctx))
	_, ok = stale.Current()
	assert.False(t, ok)

	persisted, err := stale.repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestStore_Subscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newTestStore(t, nil)

	var mu sync.Mutex
	var seen []string
	cancel := s.Subscribe(func(sess entity.Session) {
		mu.Lock()
		seen = append(seen, sess.Token)
		mu.Unlock()
	})

	require.NoError(t, s.Set(ctx, entity.Session{Token: "a"}))
	require.NoError(t, s.Set(ctx, entity.Session{Token: "b"}))
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	cancel()
	require.NoError(t, s.Set(ctx, entity.Session{Token: "c"}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"a", "b", ""}, seen)
}
