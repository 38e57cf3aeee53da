package progression

// Action is a user action that earns XP.
type Action string

const (
	ActionDailyLogin        Action = "daily_login"
	ActionCompleteChallenge Action = "complete_challenge"
	ActionWinGame           Action = "win_game"
	ActionPollVote          Action = "poll_vote"
	ActionZodiacChallenge   Action = "zodiac_challenge"
)

var rewards = map[Action]int{
	ActionDailyLogin:        50,
	ActionCompleteChallenge: 50,
	ActionWinGame:           100,
	ActionPollVote:          5,
	ActionZodiacChallenge:   10,
}

// RewardFor returns the XP granted for action; unknown actions earn nothing.
func RewardFor(action Action) int {
	return rewards[action]
}

// LevelUps returns how many level thresholds are crossed going from before to
// after.
func LevelUps(before, after int) int {
	if after <= before {
		return 0
	}

	return LevelFromXP(after) - LevelFromXP(before)
}
