package usecase

import (
	"context"

	"streetbite/internal/daily"
)

// PollView is today's poll with the device's vote, if any.
type PollView struct {
	Date        string     `json:"date"`
	Poll        daily.Poll `json:"poll"`
	TotalVotes  int        `json:"totalVotes"`
	VotedOption *int       `json:"votedOption"`
	XPReward    int        `json:"xpReward"`
}

// ZodiacView is the sign for a birth date and the challenge reward.
type ZodiacView struct {
	Sign     daily.Sign    `json:"sign"`
	Element  daily.Element `json:"element"`
	XPReward int           `json:"xpReward"`
}

// DailyUsecase serves the daily engagement widgets.
type DailyUsecase interface {
	TodaysPoll(ctx context.Context) (*PollView, error)

	// Vote records the device's answer to today's poll. One vote per day.
	Vote(ctx context.Context, option int) (*PollView, error)

	Zodiac(ctx context.Context, day, month int) (*ZodiacView, error)
}
