package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// LocalStateRepository persists the session record and the client-only
// preference flags on the device.
type LocalStateRepository interface {
	// LoadSession returns nil and no error when no one is signed in.
	LoadSession(ctx context.Context) (*entity.Session, error)
	SaveSession(ctx context.Context, session *entity.Session) error
	ClearSession(ctx context.Context) error

	LoadPreferences(ctx context.Context) (*entity.Preferences, error)
	SaveArchetype(ctx context.Context, archetype entity.Archetype) error
	ClearArchetype(ctx context.Context) error
	// RecordPollVote stores vote unless a vote for the same date is already
	// stored. recorded is false when an earlier vote won.
	RecordPollVote(ctx context.Context, vote entity.PollVote) (recorded bool, err error)
	SaveDisplayName(ctx context.Context, name string) error
}
