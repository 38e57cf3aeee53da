package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
)

// QuizResult is the stored taste archetype; Archetype is empty when the
// quiz has not been taken.
type QuizResult struct {
	Archetype entity.Archetype `json:"archetype"`
}

// QuizUsecase scores and remembers the food personality quiz.
type QuizUsecase interface {
	Result(ctx context.Context) (*QuizResult, error)
	Submit(ctx context.Context, answers []entity.Archetype) (*QuizResult, error)
	Reset(ctx context.Context) error
}
