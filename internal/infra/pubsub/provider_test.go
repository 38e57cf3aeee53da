package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"streetbite/config"
	"streetbite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingAnalytics struct {
	events []*entity.UIEvent
	err    error
}

func (r *recordingAnalytics) PlatformAnalytics(context.Context) (*entity.PlatformAnalytics, error) {
	return &entity.PlatformAnalytics{}, nil
}

func (r *recordingAnalytics) LogEvent(_ context.Context, event *entity.UIEvent) error {
	r.events = append(r.events, event)

	return r.err
}

func newParams(t *testing.T, cfg *config.PubSubConfig, analytics *recordingAnalytics) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:        fxtest.NewLifecycle(t),
		Ctx:       context.Background(),
		Config:    &config.Config{PubSub: cfg},
		Logger:    slog.New(slog.DiscardHandler),
		Analytics: analytics,
	}
}

func TestNewEventPublisher(t *testing.T) {
	t.Parallel()

	t.Run("unconfigured is a no-op", func(t *testing.T) {
		t.Parallel()

		analytics := &recordingAnalytics{}
		pub, err := NewEventPublisher(newParams(t, nil, analytics))
		require.NoError(t, err)

		require.NoError(t, pub.PublishUIEvent(context.Background(), &entity.UIEvent{Type: entity.UIEventPollVote}))
		assert.Empty(t, analytics.events)
	})

	t.Run("backend forwards to analytics", func(t *testing.T) {
		t.Parallel()

		analytics := &recordingAnalytics{}
		pub, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: config.PubSubProviderBackend}, analytics))
		require.NoError(t, err)

		event := &entity.UIEvent{ID: "e1", Type: entity.UIEventQuizCompleted}
		require.NoError(t, pub.PublishUIEvent(context.Background(), event))
		require.Len(t, analytics.events, 1)
		assert.Same(t, event, analytics.events[0])
	})

	t.Run("google requires project and topic", func(t *testing.T) {
		t.Parallel()

		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: config.PubSubProviderGoogle}, nil))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Parallel()

		_, err := NewEventPublisher(newParams(t, &config.PubSubConfig{Provider: "kafka"}, nil))
		assert.Error(t, err)
	})
}

func TestEventAttributes(t *testing.T) {
	t.Parallel()

	attrs := eventAttributes(&entity.UIEvent{ID: "e1", Type: "VENDOR_VIEWED", VendorID: "7", RequestID: "r1"})
	assert.Equal(t, map[string]string{
		"event_id":   "e1",
		"event_type": "VENDOR_VIEWED",
		"vendor_id":  "7",
		"request_id": "r1",
	}, attrs)
}
