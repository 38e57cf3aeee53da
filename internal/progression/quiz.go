package progression

import (
	"fmt"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
)

// QuizQuestionCount is the number of answers a completed quiz carries.
const QuizQuestionCount = 3

// ScoreQuiz returns the most frequent archetype among answers. On a tie the
// archetype that first appeared latest wins.
func ScoreQuiz(answers []entity.Archetype) (entity.Archetype, error) {
	if len(answers) != QuizQuestionCount {
		return "", domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
			"answers": fmt.Sprintf("expected %d answers, got %d", QuizQuestionCount, len(answers)),
		})
	}

	counts := make(map[entity.Archetype]int, len(answers))
	order := make([]entity.Archetype, 0, len(answers))
	for i, a := range answers {
		if !a.IsValid() {
			return "", domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{
				fmt.Sprintf("answers[%d]", i): fmt.Sprintf("unknown archetype %q", a),
			})
		}
		if counts[a] == 0 {
			order = append(order, a)
		}
		counts[a]++
	}

	winner := order[0]
	for _, a := range order[1:] {
		if counts[winner] <= counts[a] {
			winner = a
		}
	}

	return winner, nil
}
