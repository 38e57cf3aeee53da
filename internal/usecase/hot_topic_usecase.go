package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
	"streetbite/internal/listing"
)

// CreateHotTopicInput carries the admin announcement form.
type CreateHotTopicInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required,max=5000"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	Inactive bool   `json:"inactive"`
}

// HotTopicUsecase serves the community feed and its admin page.
type HotTopicUsecase interface {
	// ListHotTopics returns every announcement, newest first.
	ListHotTopics(ctx context.Context) ([]entity.HotTopic, error)

	// Feed returns the announcements matching criteria.
	Feed(ctx context.Context, criteria listing.HotTopicCriteria) ([]entity.HotTopic, error)

	CreateHotTopic(ctx context.Context, input CreateHotTopicInput) (*entity.HotTopic, error)
	DeleteHotTopic(ctx context.Context, id entity.ID) error
}
