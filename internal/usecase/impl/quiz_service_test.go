package impl

import (
	"context"
	"testing"

	"streetbite/internal/domain/entity"
	"streetbite/internal/infra/persistence/memory"
	mockSvc "streetbite/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService_SubmitAndReset(t *testing.T) {
	t.Parallel()

	publisher := mockSvc.NewMockEventPublisher(t)
	svc := NewQuizService(QuizServiceParams{
		LocalState: memory.NewLocalStateRepository(),
		Publisher:  publisher,
		Logger:     discardLogger(),
	})
	ctx := context.Background()

	result, err := svc.Result(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Archetype)

	publisher.EXPECT().PublishUIEvent(mock.Anything, mock.MatchedBy(func(e *entity.UIEvent) bool {
		return e.Type == entity.UIEventQuizCompleted && e.Attributes["archetype"] == "sweet"
	})).Return(nil)

	result, err = svc.Submit(ctx, []entity.Archetype{
		entity.ArchetypeSweet, entity.ArchetypeSpicy, entity.ArchetypeSweet,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ArchetypeSweet, result.Archetype)

	result, err = svc.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ArchetypeSweet, result.Archetype)

	require.NoError(t, svc.Reset(ctx))

	result, err = svc.Result(ctx)
	require.NoError(t, err)
	assert.Empty(t, result.Archetype)
}

func TestQuizService_SubmitRejectsEmptyAnswers(t *testing.T) {
	t.Parallel()

	svc := NewQuizService(QuizServiceParams{
		LocalState: memory.NewLocalStateRepository(),
		Publisher:  mockSvc.NewMockEventPublisher(t),
		Logger:     discardLogger(),
	})

	_, err := svc.Submit(context.Background(), nil)
	assert.Error(t, err)
}
