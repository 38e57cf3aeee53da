package progression

import (
	"testing"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQuiz(t *testing.T) {
	t.Parallel()

	const (
		spicy  = entity.ArchetypeSpicy
		sweet  = entity.ArchetypeSweet
		cheesy = entity.ArchetypeCheesy
	)

	tests := []struct {
		name    string
		answers []entity.Archetype
		want    entity.Archetype
	}{
		{"majority", []entity.Archetype{sweet, spicy, sweet}, sweet},
		{"unanimous", []entity.Archetype{cheesy, cheesy, cheesy}, cheesy},
		{"three way tie picks latest first appearance", []entity.Archetype{spicy, sweet, cheesy}, cheesy},
		{"tie order reversed", []entity.Archetype{cheesy, sweet, spicy}, spicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ScoreQuiz(tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreQuiz_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ScoreQuiz([]entity.Archetype{entity.ArchetypeSpicy})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidationFailed))

	_, err = ScoreQuiz([]entity.Archetype{"umami", entity.ArchetypeSweet, entity.ArchetypeSweet})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
