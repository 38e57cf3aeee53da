package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
)

// GamificationUsecase serves the XP pages.
type GamificationUsecase interface {
	// Leaderboard returns the ranked standings.
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)

	// Profile returns the signed-in user's derived progress.
	Profile(ctx context.Context) (*entity.GamificationProfile, error)
}
