package impl

import (
	"context"
	"log/slog"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
	"streetbite/internal/progression"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type quizService struct {
	localState repository.LocalStateRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// QuizServiceParams holds dependencies for QuizService, injected by Fx.
type QuizServiceParams struct {
	fx.In

	LocalState repository.LocalStateRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewQuizService creates a new quiz service instance
func NewQuizService(params QuizServiceParams) usecase.QuizUsecase {
	return &quizService{
		localState: params.LocalState,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// Result returns the stored archetype. A stored value that is no longer a
// known archetype reads as not taken.
func (s *quizService) Result(ctx context.Context) (*usecase.QuizResult, error) {
	prefs, err := s.localState.LoadPreferences(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}
	if !prefs.Archetype.IsValid() {
		return &usecase.QuizResult{}, nil
	}

	return &usecase.QuizResult{Archetype: prefs.Archetype}, nil
}

// Submit scores the answers and stores the archetype.
func (s *quizService) Submit(ctx context.Context, answers []entity.Archetype) (*usecase.QuizResult, error) {
	archetype, err := progression.ScoreQuiz(answers)
	if err != nil {
		return nil, err
	}

	if err := s.localState.SaveArchetype(ctx, archetype); err != nil {
		return nil, errors.Wrap(err, "failed to save archetype")
	}

	emitEvent(ctx, s.publisher, s.logger, &entity.UIEvent{
		Type:       entity.UIEventQuizCompleted,
		Attributes: map[string]string{"archetype": string(archetype)},
	})

	return &usecase.QuizResult{Archetype: archetype}, nil
}

// Reset forgets the stored archetype so the quiz can be retaken.
func (s *quizService) Reset(ctx context.Context) error {
	return errors.Wrap(s.localState.ClearArchetype(ctx), "failed to clear archetype")
}
