package entity

// GamificationProfile is the signed-in user's progress. Level is always derived
// from XP by the progression package and never set on its own.
type GamificationProfile struct {
	DisplayName     string `json:"displayName"`
	XP              int    `json:"xp"`
	Level           int    `json:"level"`
	ProgressPercent int    `json:"progressPercent"`
	XPToNextLevel   int    `json:"xpToNextLevel"`
	NextLevelXP     int    `json:"nextLevelXp"`
	Streak          int    `json:"streak"`
	Rank            int    `json:"rank"`
	CheckedInToday  bool   `json:"checkedInToday"`
	LastCheckInDate string `json:"lastCheckIn,omitempty"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	UserID      ID     `json:"userId"`
	DisplayName string `json:"displayName"`
	XP          int    `json:"xp"`
	Level       int    `json:"level"`
	Rank        int    `json:"rank"`
}

// GamificationStats is the raw stats payload before derivation.
type GamificationStats struct {
	DisplayName string `json:"displayName"`
	XP          int    `json:"xp"`
	Streak      int    `json:"streak"`
	Rank        int    `json:"rank"`
	LastCheckIn string `json:"lastCheckIn,omitempty"`
}
