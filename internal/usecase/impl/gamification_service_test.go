package impl

import (
	"context"
	"testing"
	"time"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/infra/persistence/memory"
	mockRepo "streetbite/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGamificationService_Profile(t *testing.T) {
	t.Parallel()

	gamificationRepo := mockRepo.NewMockGamificationRepository(t)
	localState := memory.NewLocalStateRepository()
	svc := NewGamificationService(GamificationServiceParams{
		GamificationRepo: gamificationRepo,
		LocalState:       localState,
		Cell:             signedInAs(entity.User{ID: "1", DisplayName: "Login Name"}),
		Logger:           discardLogger(),
	}).(*gamificationService)
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	gamificationRepo.EXPECT().Stats(mock.Anything).
		Return(&entity.GamificationStats{DisplayName: "Foodie", XP: 250, Streak: 3, LastCheckIn: "2026-06-01"}, nil).Once()

	profile, err := svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Foodie", profile.DisplayName)
	assert.Equal(t, 250, profile.XP)
	assert.True(t, profile.CheckedInToday)

	gamificationRepo.EXPECT().Stats(mock.Anything).
		Return(&entity.GamificationStats{XP: 250}, nil).Once()

	profile, err = svc.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Foodie", profile.DisplayName)
	assert.False(t, profile.CheckedInToday)
}

func TestGamificationService_ProfileFallsBackToAccountName(t *testing.T) {
	t.Parallel()

	gamificationRepo := mockRepo.NewMockGamificationRepository(t)
	svc := NewGamificationService(GamificationServiceParams{
		GamificationRepo: gamificationRepo,
		LocalState:       memory.NewLocalStateRepository(),
		Cell:             signedInAs(entity.User{ID: "1", DisplayName: "Login Name"}),
		Logger:           discardLogger(),
	})

	gamificationRepo.EXPECT().Stats(mock.Anything).Return(&entity.GamificationStats{XP: 10}, nil)

	profile, err := svc.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Login Name", profile.DisplayName)
}

func TestGamificationService_ProfileRequiresSignIn(t *testing.T) {
	t.Parallel()

	svc := NewGamificationService(GamificationServiceParams{
		GamificationRepo: mockRepo.NewMockGamificationRepository(t),
		LocalState:       memory.NewLocalStateRepository(),
		Cell:             &fakeCell{},
		Logger:           discardLogger(),
	})

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestGamificationService_Leaderboard(t *testing.T) {
	t.Parallel()

	gamificationRepo := mockRepo.NewMockGamificationRepository(t)
	svc := NewGamificationService(GamificationServiceParams{
		GamificationRepo: gamificationRepo,
		LocalState:       memory.NewLocalStateRepository(),
		Cell:             &fakeCell{},
		Logger:           discardLogger(),
	})

	gamificationRepo.EXPECT().Leaderboard(mock.Anything).Return([]entity.LeaderboardEntry{
		{UserID: "1", DisplayName: "Low", XP: 10},
		{UserID: "2", DisplayName: "High", XP: 900},
	}, nil)

	entries, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.ID("2"), entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
}
