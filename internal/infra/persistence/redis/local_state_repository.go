package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"

	"github.com/redis/go-redis/v9"
)

var (
	sessionKey     = buildKey("session")
	archetypeKey   = buildKey("pref", "archetype")
	pollVoteKey    = buildKey("pref", "poll_vote")
	displayNameKey = buildKey("pref", "display_name")
)

// pollClaimTTL outlives the day a claim is for in every time zone.
const pollClaimTTL = 48 * time.Hour

func pollClaimKey(date string) string {
	return buildKey("pref", "poll_vote", date)
}

type localStateRepository struct {
	store  cmdable
	logger *slog.Logger
}

// NewLocalStateRepository stores local state in Redis. Keys never expire,
// except the per-day poll claims; a session is dropped by ClearSession or by
// the store on token expiry.
func NewLocalStateRepository(client *redis.Client, logger *slog.Logger) repository.LocalStateRepository {
	return &localStateRepository{store: client, logger: logger}
}

func (r *localStateRepository) LoadSession(ctx context.Context) (*entity.Session, error) {
	raw, err := r.store.Get(ctx, sessionKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "get session")
	}

	var sess entity.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// A corrupt record is treated as signed out and removed.
		r.logger.WarnContext(ctx, "Dropping unreadable session record",
			slog.String("key", sessionKey),
			slog.Any("error", err),
		)
		if delErr := r.store.Del(ctx, sessionKey).Err(); delErr != nil {
			return nil, errors.Wrap(delErr, "del corrupt session")
		}

		return nil, nil
	}

	return &sess, nil
}

func (r *localStateRepository) SaveSession(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	return errors.Wrap(r.store.Set(ctx, sessionKey, raw, 0).Err(), "set session")
}

func (r *localStateRepository) ClearSession(ctx context.Context) error {
	return errors.Wrap(r.store.Del(ctx, sessionKey).Err(), "del session")
}

func (r *localStateRepository) LoadPreferences(ctx context.Context) (*entity.Preferences, error) {
	values, err := r.store.MGet(ctx, archetypeKey, pollVoteKey, displayNameKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "mget preferences")
	}

	prefs := &entity.Preferences{}
	if s, ok := stringAt(values, 0); ok {
		if a := entity.Archetype(s); a.IsValid() {
			prefs.Archetype = a
		}
	}
	if s, ok := stringAt(values, 1); ok {
		var vote entity.PollVote
		if json.Unmarshal([]byte(s), &vote) == nil && vote.Date != "" {
			prefs.PollVote = &vote
		}
	}
	if s, ok := stringAt(values, 2); ok {
		prefs.DisplayName = s
	}

	return prefs, nil
}

func (r *localStateRepository) SaveArchetype(ctx context.Context, archetype entity.Archetype) error {
	return errors.Wrap(r.store.Set(ctx, archetypeKey, string(archetype), 0).Err(), "set archetype")
}

func (r *localStateRepository) ClearArchetype(ctx context.Context) error {
	return errors.Wrap(r.store.Del(ctx, archetypeKey).Err(), "del archetype")
}

// RecordPollVote claims the vote's date with SETNX; only the claim winner
// writes the vote read back by LoadPreferences.
func (r *localStateRepository) RecordPollVote(ctx context.Context, vote entity.PollVote) (bool, error) {
	raw, err := json.Marshal(vote)
	if err != nil {
		return false, errors.Wrap(err, "encode poll vote")
	}

	claimed, err := r.store.SetNX(ctx, pollClaimKey(vote.Date), raw, pollClaimTTL).Result()
	if err != nil {
		return false, errors.Wrap(err, "claim poll vote")
	}
	if !claimed {
		return false, nil
	}

	if err := r.store.Set(ctx, pollVoteKey, raw, 0).Err(); err != nil {
		return false, errors.Wrap(err, "set poll vote")
	}

	return true, nil
}

func (r *localStateRepository) SaveDisplayName(ctx context.Context, name string) error {
	return errors.Wrap(r.store.Set(ctx, displayNameKey, name, 0).Err(), "set display name")
}

func stringAt(values []any, i int) (string, bool) {
	if i >= len(values) {
		return "", false
	}
	s, ok := values[i].(string)

	return s, ok && s != ""
}
