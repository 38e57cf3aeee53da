// Package session is the single accessor of the signed-in session. There is
// exactly one session slot per gateway; the last writer wins.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
)

// Store holds the current session in memory and mirrors it to local state.
type Store struct {
	repo   repository.LocalStateRepository
	tokens service.TokenInspector
	logger *slog.Logger
	now    func() time.Time

	mu        sync.RWMutex
	current   entity.Session
	expiresAt time.Time

	subMu  sync.Mutex
	subs   map[int]func(entity.Session)
	nextID int
}

// NewStore creates an empty store. Call Restore to load the persisted record.
func NewStore(repo repository.LocalStateRepository, tokens service.TokenInspector, logger *slog.Logger) *Store {
	return &Store{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		subs:   make(map[int]func(entity.Session)),
	}
}

// Restore loads the persisted session. An expired or unreadable token is
// discarded.
func (s *Store) Restore(ctx context.Context) error {
	stored, err := s.repo.LoadSession(ctx)
	if err != nil {
		return errors.Wrap(err, "load session")
	}
	if stored == nil || stored.IsZero() {
		return nil
	}

	expiresAt := s.expiry(stored.Token)
	if !expiresAt.IsZero() && !s.now().Before(expiresAt) {
		s.logger.Info("Discarding stored session", slog.String("user_id", stored.User.ID.String()))

		return errors.Wrap(s.repo.ClearSession(ctx), "clear stale session")
	}

	s.mu.Lock()
	s.current = *stored
	s.expiresAt = expiresAt
	s.mu.Unlock()

	s.notify(*stored)

	return nil
}

// Current returns the active session. ok is false when no one is signed in or
// the token has expired.
func (s *Store) Current() (entity.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current.IsZero() || s.expiredLocked() {
		return entity.Session{}, false
	}

	return s.current, true
}

// Token returns the bearer token of the active session, or "".
func (s *Store) Token() string {
	sess, ok := s.Current()
	if !ok {
		return ""
	}

	return sess.Token
}

// Set replaces the session and persists it.
func (s *Store) Set(ctx context.Context, sess entity.Session) error {
	if sess.IsZero() {
		return domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"token": "required"})
	}

	expiresAt := s.expiry(sess.Token)

	if err := s.repo.SaveSession(ctx, &sess); err != nil {
		return errors.Wrap(err, "save session")
	}

	s.mu.Lock()
	s.current = sess
	s.expiresAt = expiresAt
	s.mu.Unlock()

	s.notify(sess)

	return nil
}

// Clear signs out. Clearing an empty store is a no-op apart from the
// persisted record.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	had := !s.current.IsZero()
	s.current = entity.Session{}
	s.expiresAt = time.Time{}
	s.mu.Unlock()

	if err := s.repo.ClearSession(ctx); err != nil {
		return errors.Wrap(err, "clear session")
	}

	if had {
		s.notify(entity.Session{})
	}

	return nil
}

// Subscribe registers fn for every session change. A cleared session is
// delivered as the zero Session. The returned function unregisters fn.
func (s *Store) Subscribe(fn func(entity.Session)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(sess entity.Session) {
	s.subMu.Lock()
	fns := make([]func(entity.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(sess)
	}
}

// expiry returns the token expiry, or the zero time for opaque tokens.
func (s *Store) expiry(token string) time.Time {
	if s.tokens == nil {
		return time.Time{}
	}

	claims, err := s.tokens.Inspect(token)
	if err != nil {
		s.logger.Debug("Access token is not a readable JWT", slog.Any("error", err))

		return time.Time{}
	}

	return claims.ExpiresAt
}

func (s *Store) expiredLocked() bool {
	return !s.expiresAt.IsZero() && !s.now().Before(s.expiresAt)
}
