package impl

import (
	"context"
	"strings"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/listing"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type hotTopicService struct {
	hotTopicRepo repository.HotTopicRepository
}

// HotTopicServiceParams holds dependencies for HotTopicService, injected by Fx.
type HotTopicServiceParams struct {
	fx.In

	HotTopicRepo repository.HotTopicRepository
}

// NewHotTopicService creates a new hot topic service instance
func NewHotTopicService(params HotTopicServiceParams) usecase.HotTopicUsecase {
	return &hotTopicService{hotTopicRepo: params.HotTopicRepo}
}

// ListHotTopics returns every announcement, newest first.
func (s *hotTopicService) ListHotTopics(ctx context.Context) ([]entity.HotTopic, error) {
	topics, err := s.hotTopicRepo.ListHotTopics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hot topics")
	}

	return listing.ApplyHotTopics(topics, listing.HotTopicCriteria{}), nil
}

// Feed returns the announcements matching criteria.
func (s *hotTopicService) Feed(ctx context.Context, criteria listing.HotTopicCriteria) ([]entity.HotTopic, error) {
	topics, err := s.hotTopicRepo.ListHotTopics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hot topics")
	}

	return listing.ApplyHotTopics(topics, criteria), nil
}

// CreateHotTopic publishes an announcement.
func (s *hotTopicService) CreateHotTopic(ctx context.Context, input usecase.CreateHotTopicInput) (*entity.HotTopic, error) {
	topic := &entity.HotTopic{
		Title:    strings.TrimSpace(input.Title),
		Content:  strings.TrimSpace(input.Content),
		ImageURL: strings.TrimSpace(input.ImageURL),
		IsActive: !input.Inactive,
	}

	created, err := s.hotTopicRepo.CreateHotTopic(ctx, topic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create hot topic")
	}

	return created, nil
}

// DeleteHotTopic removes an announcement.
func (s *hotTopicService) DeleteHotTopic(ctx context.Context, id entity.ID) error {
	return errors.Wrap(s.hotTopicRepo.DeleteHotTopic(ctx, id), "failed to delete hot topic")
}
