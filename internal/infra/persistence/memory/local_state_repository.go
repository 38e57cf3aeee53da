// Package memory keeps device-local state in process memory. It backs the
// gateway when no Redis is configured; state is lost on restart.
package memory

import (
	"context"
	"sync"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
)

type localStateRepository struct {
	mu      sync.RWMutex
	session *entity.Session
	prefs   entity.Preferences
}

// NewLocalStateRepository returns an empty in-memory store.
func NewLocalStateRepository() repository.LocalStateRepository {
	return &localStateRepository{}
}

func (r *localStateRepository) LoadSession(context.Context) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.session == nil {
		return nil, nil
	}
	sess := *r.session

	return &sess, nil
}

func (r *localStateRepository) SaveSession(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess := *session
	r.session = &sess

	return nil
}

func (r *localStateRepository) ClearSession(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session = nil

	return nil
}

func (r *localStateRepository) LoadPreferences(context.Context) (*entity.Preferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	prefs := r.prefs
	if r.prefs.PollVote != nil {
		vote := *r.prefs.PollVote
		prefs.PollVote = &vote
	}

	return &prefs, nil
}

func (r *localStateRepository) SaveArchetype(_ context.Context, archetype entity.Archetype) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.Archetype = archetype

	return nil
}

func (r *localStateRepository) ClearArchetype(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.Archetype = ""

	return nil
}

func (r *localStateRepository) RecordPollVote(_ context.Context, vote entity.PollVote) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.prefs.PollVote != nil && r.prefs.PollVote.Date == vote.Date {
		return false, nil
	}
	r.prefs.PollVote = &vote

	return true, nil
}

func (r *localStateRepository) SaveDisplayName(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs.DisplayName = name

	return nil
}
