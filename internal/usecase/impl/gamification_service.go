package impl

import (
	"context"
	"log/slog"
	"time"

	"streetbite/internal/daily"
	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/progression"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type gamificationService struct {
	gamificationRepo repository.GamificationRepository
	localState       repository.LocalStateRepository
	cell             usecase.SessionCell
	logger           *slog.Logger
	now              func() time.Time
}

// GamificationServiceParams holds dependencies for GamificationService, injected by Fx.
type GamificationServiceParams struct {
	fx.In

	GamificationRepo repository.GamificationRepository
	LocalState       repository.LocalStateRepository
	Cell             usecase.SessionCell
	Logger           *slog.Logger
}

// NewGamificationService creates a new gamification service instance
func NewGamificationService(params GamificationServiceParams) usecase.GamificationUsecase {
	return &gamificationService{
		gamificationRepo: params.GamificationRepo,
		localState:       params.LocalState,
		cell:             params.Cell,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// Leaderboard returns the standings ranked locally.
func (s *gamificationService) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	entries, err := s.gamificationRepo.Leaderboard(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	return progression.RankLeaderboard(entries), nil
}

// Profile derives the signed-in user's progress. The display name is cached
// on the device so the widget keeps it when the backend omits it.
func (s *gamificationService) Profile(ctx context.Context) (*entity.GamificationProfile, error) {
	sess, err := signedIn(s.cell)
	if err != nil {
		return nil, err
	}

	stats, err := s.gamificationRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load stats")
	}

	s.resolveDisplayName(ctx, stats, sess.User)

	profile := progression.Profile(*stats, daily.DateKey(s.now()))

	return &profile, nil
}

func (s *gamificationService) resolveDisplayName(ctx context.Context, stats *entity.GamificationStats, user entity.User) {
	logger := deliverycontext.Logger(ctx, s.logger)

	if stats.DisplayName != "" {
		if err := s.localState.SaveDisplayName(ctx, stats.DisplayName); err != nil {
			logger.Warn("Failed to cache display name", slog.Any("error", err))
		}

		return
	}

	prefs, err := s.localState.LoadPreferences(ctx)
	if err != nil {
		logger.Warn("Failed to load preferences", slog.Any("error", err))
	}
	switch {
	case prefs != nil && prefs.DisplayName != "":
		stats.DisplayName = prefs.DisplayName
	case user.DisplayName != "":
		stats.DisplayName = user.DisplayName
	}
}
