package service

import (
	"context"

	"streetbite/internal/domain/entity"
)

// EventPublisher forwards UI analytics events.
type EventPublisher interface {
	// PublishUIEvent delivers one event. Failures must not block the caller's
	// page flow; callers log and continue.
	PublishUIEvent(ctx context.Context, event *entity.UIEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
