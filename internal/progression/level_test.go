package progression

import (
	"testing"

	"streetbite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromXP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		xp   int
		want int
	}{
		{"zero", 0, 1},
		{"negative", -250, 1},
		{"just below threshold", 999, 1},
		{"at threshold", 1000, 2},
		{"mid level", 2500, 3},
		{"large", 12345, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LevelFromXP(tt.xp))
		})
	}
}

func TestLevelFromXP_MonotonicOneStepPerThreshold(t *testing.T) {
	t.Parallel()

	prev := LevelFromXP(0)
	for xp := 1; xp <= 10*XPPerLevel; xp++ {
		level := LevelFromXP(xp)
		assert.GreaterOrEqual(t, level, prev)
		if xp%XPPerLevel == 0 {
			assert.Equal(t, prev+1, level, "xp %d", xp)
		} else {
			assert.Equal(t, prev, level, "xp %d", xp)
		}
		prev = level
	}
}

func TestXPRequiredForLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, XPRequiredForLevel(1))
	assert.Equal(t, 0, XPRequiredForLevel(0))
	assert.Equal(t, 1000, XPRequiredForLevel(2))
	assert.Equal(t, 4000, XPRequiredForLevel(5))

	for level := 1; level < 20; level++ {
		assert.Equal(t, level, LevelFromXP(XPRequiredForLevel(level)))
	}
}

func TestXPProgressWithinLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		xp    int
		level int
		want  int
	}{
		{"at floor", 1000, 2, 0},
		{"quarter", 1250, 2, 25},
		{"floors fraction", 1999, 2, 99},
		{"at next threshold", 2000, 2, 100},
		{"past next threshold", 5000, 2, 100},
		{"below floor", 500, 2, 0},
		{"level zero treated as one", 300, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := XPProgressWithinLevel(tt.xp, tt.level)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestXPToNextLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1000, XPToNextLevel(0))
	assert.Equal(t, 1, XPToNextLevel(999))
	assert.Equal(t, 1000, XPToNextLevel(1000))
	assert.Equal(t, 1000, XPToNextLevel(-5))
}

func TestProfile(t *testing.T) {
	t.Parallel()

	p := Profile(entity.GamificationStats{
		DisplayName: "Asha",
		XP:          2350,
		Streak:      4,
		Rank:        7,
		LastCheckIn: "2026-03-10",
	}, "2026-03-10")

	assert.Equal(t, "Asha", p.DisplayName)
	assert.Equal(t, 2350, p.XP)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 35, p.ProgressPercent)
	assert.Equal(t, 650, p.XPToNextLevel)
	assert.Equal(t, 3000, p.NextLevelXP)
	assert.Equal(t, 4, p.Streak)
	assert.Equal(t, 7, p.Rank)
	assert.True(t, p.CheckedInToday)

	stale := Profile(entity.GamificationStats{XP: -10, LastCheckIn: "2026-03-09"}, "2026-03-10")
	assert.Equal(t, 0, stale.XP)
	assert.Equal(t, 1, stale.Level)
	assert.False(t, stale.CheckedInToday)
}

func TestRewards(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50, RewardFor(ActionDailyLogin))
	assert.Equal(t, 100, RewardFor(ActionWinGame))
	assert.Equal(t, 5, RewardFor(ActionPollVote))
	assert.Equal(t, 10, RewardFor(ActionZodiacChallenge))
	assert.Zero(t, RewardFor("unknown"))

	assert.Equal(t, 1, LevelUps(990, 990+RewardFor(ActionDailyLogin)))
	assert.Equal(t, 0, LevelUps(100, 150))
	assert.Equal(t, 0, LevelUps(2000, 1000))
}
