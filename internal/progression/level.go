// Package progression is the only place XP turns into levels. Views must call
// through it instead of deriving levels themselves.
package progression

import "streetbite/internal/domain/entity"

// XPPerLevel is the width of every level on the linear curve.
const XPPerLevel = 1000

// MinLevel is the level of a user with no XP.
const MinLevel = 1

// LevelFromXP returns the level reached with xp. Negative xp counts as zero.
func LevelFromXP(xp int) int {
	if xp < 0 {
		xp = 0
	}

	return xp/XPPerLevel + MinLevel
}

// XPRequiredForLevel returns the XP threshold at which level starts.
func XPRequiredForLevel(level int) int {
	if level < MinLevel {
		level = MinLevel
	}

	return (level - MinLevel) * XPPerLevel
}

// XPProgressWithinLevel returns how far xp is between level's threshold and
// the next one, as a percentage clamped to [0, 100].
func XPProgressWithinLevel(xp, level int) int {
	if level < MinLevel {
		level = MinLevel
	}

	floor := XPRequiredForLevel(level)
	ceiling := XPRequiredForLevel(level + 1)
	if xp >= ceiling {
		return 100
	}
	if xp <= floor {
		return 0
	}

	return (xp - floor) * 100 / (ceiling - floor)
}

// XPToNextLevel returns the XP still missing to reach the next level.
func XPToNextLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}

	return XPRequiredForLevel(LevelFromXP(xp)+1) - xp
}

// Profile derives a complete gamification profile from raw stats.
func Profile(stats entity.GamificationStats, today string) entity.GamificationProfile {
	xp := max(stats.XP, 0)
	level := LevelFromXP(xp)

	return entity.GamificationProfile{
		DisplayName:     stats.DisplayName,
		XP:              xp,
		Level:           level,
		ProgressPercent: XPProgressWithinLevel(xp, level),
		XPToNextLevel:   XPToNextLevel(xp),
		NextLevelXP:     XPRequiredForLevel(level + 1),
		Streak:          max(stats.Streak, 0),
		Rank:            stats.Rank,
		CheckedInToday:  stats.LastCheckIn != "" && stats.LastCheckIn == today,
		LastCheckInDate: stats.LastCheckIn,
	}
}
