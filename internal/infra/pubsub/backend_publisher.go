package pubsub

import (
	"context"
	"log/slog"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/domain/service"
)

// backendPublisher forwards UI events to the backend analytics endpoint.
type backendPublisher struct {
	analytics repository.AnalyticsRepository
	logger    *slog.Logger
}

// NewBackendPublisher creates a publisher on top of the analytics repository.
func NewBackendPublisher(analytics repository.AnalyticsRepository, logger *slog.Logger) service.EventPublisher {
	return &backendPublisher{analytics: analytics, logger: logger}
}

func (p *backendPublisher) PublishUIEvent(ctx context.Context, event *entity.UIEvent) error {
	if err := p.analytics.LogEvent(ctx, event); err != nil {
		return err
	}

	p.logger.Debug("[BackendPubSub] UI event forwarded",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *backendPublisher) Close() error {
	return nil
}
