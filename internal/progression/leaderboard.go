package progression

import (
	"cmp"
	"slices"
	"strings"

	"streetbite/internal/domain/entity"
)

// RankLeaderboard orders entries by XP descending, then display name
// ascending (case-insensitive), then user id. Ranks are 1-based positions and
// levels are re-derived from XP. The input is not modified.
func RankLeaderboard(entries []entity.LeaderboardEntry) []entity.LeaderboardEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b entity.LeaderboardEntry) int {
		if c := cmp.Compare(b.XP, a.XP); c != 0 {
			return c
		}
		if c := cmp.Compare(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)); c != 0 {
			return c
		}

		return cmp.Compare(a.UserID, b.UserID)
	})

	for i := range out {
		out[i].Rank = i + 1
		out[i].Level = LevelFromXP(out[i].XP)
	}

	return out
}

// RankOf returns the 1-based rank of userID in a ranked board, or 0.
func RankOf(ranked []entity.LeaderboardEntry, userID entity.ID) int {
	for _, e := range ranked {
		if e.UserID == userID {
			return e.Rank
		}
	}

	return 0
}
