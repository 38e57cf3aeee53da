package progression

import (
	"testing"

	"streetbite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLeaderboard(t *testing.T) {
	t.Parallel()

	in := []entity.LeaderboardEntry{
		{UserID: "3", DisplayName: "carol", XP: 1500},
		{UserID: "1", DisplayName: "Bob", XP: 2500, Level: 99},
		{UserID: "4", DisplayName: "alice", XP: 1500},
		{UserID: "2", DisplayName: "Alice", XP: 1500},
		{UserID: "5", DisplayName: "dan", XP: 0},
	}

	got := RankLeaderboard(in)
	require.Len(t, got, 5)

	ids := make([]entity.ID, 0, len(got))
	for i, e := range got {
		ids = append(ids, e.UserID)
		assert.Equal(t, i+1, e.Rank)
		assert.Equal(t, LevelFromXP(e.XP), e.Level)
	}
	assert.Equal(t, []entity.ID{"1", "2", "4", "3", "5"}, ids)

	// input untouched
	assert.Equal(t, entity.ID("3"), in[0].UserID)
	assert.Zero(t, in[0].Rank)
	assert.Equal(t, 99, in[1].Level)

	assert.Equal(t, 3, RankOf(got, "4"))
	assert.Zero(t, RankOf(got, "missing"))
}

func TestRankLeaderboard_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RankLeaderboard(nil))
}
