package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOfYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{name: "new year midnight", at: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "new year late evening", at: time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC), want: 0},
		{name: "first of february", at: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC), want: 31},
		{name: "leap day", at: time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC), want: 59},
		{name: "last day of leap year", at: time.Date(2024, 12, 31, 18, 0, 0, 0, time.UTC), want: 365},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, DayOfYear(tt.at))
		})
	}
}

func TestDayOfYear_IgnoresTimeOfDayInLocalZone(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("IST", 5*3600+1800)
	morning := time.Date(2026, 10, 15, 0, 5, 0, 0, loc)
	night := time.Date(2026, 10, 15, 23, 55, 0, 0, loc)

	assert.Equal(t, DayOfYear(morning), DayOfYear(night))
}

func TestIndexFor_StaysInRange(t *testing.T) {
	t.Parallel()

	for _, day := range []int{0, 1, 2, 3, 364, 365, 366, 367, -1} {
		idx := IndexFor(day, 3)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}
	assert.Equal(t, 0, IndexFor(366, 3))
	assert.Equal(t, 1, IndexFor(367, 3))
}

func TestPick(t *testing.T) {
	t.Parallel()

	pool := []string{"a", "b", "c"}

	sameDayA := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	sameDayB := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	a, ok := Pick(pool, sameDayA)
	require.True(t, ok)
	b, _ := Pick(pool, sameDayB)
	assert.Equal(t, a, b)

	next, _ := Pick(pool, sameDayA.AddDate(0, 0, 1))
	assert.NotEqual(t, a, next)

	_, ok = Pick([]string{}, sameDayA)
	assert.False(t, ok)
}

func TestTodaysPoll_RotatesThroughPool(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := range 3 {
		seen[TodaysPoll(start.AddDate(0, 0, i)).Question] = true
	}

	assert.Len(t, seen, len(Polls()))
	assert.Equal(t, TodaysPoll(start).Question, TodaysPoll(start.AddDate(0, 0, 3)).Question)
}

func TestPoll_WithVoteDoesNotMutatePool(t *testing.T) {
	t.Parallel()

	poll := Polls()[0]
	before := poll.TotalVotes()
	voted := poll.WithVote(2)

	assert.Equal(t, before+1, voted.TotalVotes())
	assert.Equal(t, before, Polls()[0].TotalVotes())
	assert.Equal(t, before, poll.WithVote(9).TotalVotes())
}
