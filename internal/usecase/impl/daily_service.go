package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"streetbite/internal/daily"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/progression"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type dailyService struct {
	localState repository.LocalStateRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// DailyServiceParams holds dependencies for DailyService, injected by Fx.
type DailyServiceParams struct {
	fx.In

	LocalState repository.LocalStateRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewDailyService creates a new daily service instance
func NewDailyService(params DailyServiceParams) usecase.DailyUsecase {
	return &dailyService{
		localState: params.LocalState,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// TodaysPoll returns today's poll. A vote stored for an earlier day is
// ignored.
func (s *dailyService) TodaysPoll(ctx context.Context) (*usecase.PollView, error) {
	now := s.now()
	today := daily.DateKey(now)

	prefs, err := s.localState.LoadPreferences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	poll := daily.TodaysPoll(now)
	var voted *int
	if prefs.PollVote != nil && prefs.PollVote.Date == today {
		option := prefs.PollVote.Option
		voted = &option
		poll = poll.WithVote(option)
	}

	return pollView(today, poll, voted), nil
}

// Vote records the device's answer. option is the 0-based option index.
func (s *dailyService) Vote(ctx context.Context, option int) (*usecase.PollView, error) {
	now := s.now()
	today := daily.DateKey(now)
	poll := daily.TodaysPoll(now)

	if option < 0 || option >= len(poll.Options) {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"option": "must be between 0 and " + strconv.Itoa(len(poll.Options)-1),
		})
	}

	recorded, err := s.localState.RecordPollVote(ctx, entity.PollVote{Date: today, Option: option})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save poll vote")
	}
	if !recorded {
		return nil, domainerrors.ErrValidationFailed.WithDetails("already voted today")
	}

	emitEvent(ctx, s.publisher, s.logger, &entity.UIEvent{
		Type: entity.UIEventPollVote,
		Attributes: map[string]string{
			"date":   today,
			"option": strconv.Itoa(poll.Options[option].ID),
		},
	})

	return pollView(today, poll.WithVote(option), &option), nil
}

// Zodiac looks up the sign of a birth date.
func (s *dailyService) Zodiac(_ context.Context, day, month int) (*usecase.ZodiacView, error) {
	sign, err := daily.ZodiacSign(day, month)
	if err != nil {
		return nil, err
	}

	return &usecase.ZodiacView{
		Sign:     sign,
		Element:  sign.Element(),
		XPReward: progression.RewardFor(progression.ActionZodiacChallenge),
	}, nil
}

func pollView(date string, poll daily.Poll, voted *int) *usecase.PollView {
	return &usecase.PollView{
		Date:        date,
		Poll:        poll,
		TotalVotes:  poll.TotalVotes(),
		VotedOption: voted,
		XPReward:    progression.RewardFor(progression.ActionPollVote),
	}
}
