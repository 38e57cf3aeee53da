// Package live bridges real-time document listeners to typed values. A
// Subscription holds the last merged value of one document and pushes every
// change to a single consumer.
package live

import (
	"context"
	"log/slog"
	"sync"

	"streetbite/internal/domain/service"
	"streetbite/internal/errors"
)

// MergeFunc folds the fields of one message into the previous value. Fields
// missing from the message keep their previous value.
type MergeFunc[T any] func(prev T, fields map[string]any) T

// Subscription is the live view of one document.
type Subscription[T any] struct {
	collection string
	id         string
	merge      MergeFunc[T]
	logger     *slog.Logger
	cancel     context.CancelFunc
	done       chan struct{}

	mu      sync.Mutex
	value   T
	updates chan T
	closed  bool
}

// Subscribe opens a listener on collection/id and returns immediately. The
// subscription starts with initial and keeps its last value on any error.
func Subscribe[T any](
	ctx context.Context,
	src service.LiveFieldSource,
	logger *slog.Logger,
	collection, id string,
	initial T,
	merge MergeFunc[T],
) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription[T]{
		collection: collection,
		id:         id,
		merge:      merge,
		logger:     logger.With(slog.String("collection", collection), slog.String("doc_id", id)),
		cancel:     cancel,
		done:       make(chan struct{}),
		value:      initial,
		updates:    make(chan T, 1),
	}

	go s.run(ctx, src)

	return s
}

// ID returns the watched document id.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Value returns the last known value.
func (s *Subscription[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Updates delivers the latest value after each change. Only the newest value
// is buffered; a slow reader skips intermediate ones. The channel is closed by
// Close.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Done is closed once the listener goroutine has exited.
func (s *Subscription[T]) Done() <-chan struct{} {
	return s.done
}

// Close stops the listener. No update is applied after Close returns and a
// value buffered but not yet received is dropped.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	s.closed = true
	select {
	case <-s.updates:
	default:
	}
	close(s.updates)
	s.mu.Unlock()

	s.cancel()
}

func (s *Subscription[T]) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *Subscription[T]) run(ctx context.Context, src service.LiveFieldSource) {
	defer close(s.done)

	stream, err := src.Watch(ctx, s.collection, s.id)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("Failed to open live listener", slog.Any("error", err))
		}

		return
	}
	defer stream.Stop()

	for {
		update, err := stream.Next(ctx)
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, service.ErrStreamDone) {
				s.logger.Warn("Live listener failed, keeping last value", slog.Any("error", err))
			}

			return
		}

		if !update.Exists {
			s.logger.Debug("Live document missing, keeping last value")

			continue
		}

		s.apply(update.Fields)
	}
}

func (s *Subscription[T]) apply(fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.value = s.merge(s.value, fields)

	select {
	case s.updates <- s.value:
	default:
		select {
		case <-s.updates:
		default:
		}
		s.updates <- s.value
	}
}
