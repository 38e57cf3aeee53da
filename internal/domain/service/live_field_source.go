package service

import (
	"context"
	"time"

	"streetbite/internal/errors"
)

// ErrStreamDone is returned by FieldStream.Next once the stream has stopped.
var ErrStreamDone = errors.New("live field stream done")

// FieldUpdate is one message of a live document listener.
type FieldUpdate struct {
	// Exists is false when the document is missing or was deleted.
	Exists bool
	Fields map[string]any
	ReadAt time.Time
}

// FieldStream delivers the successive states of one document.
type FieldStream interface {
	// Next blocks until the next update, ctx is done or the stream stops.
	Next(ctx context.Context) (FieldUpdate, error)

	// Stop releases the listener. It is safe to call more than once.
	Stop()
}

// LiveFieldSource opens listeners on documents of the real-time store.
type LiveFieldSource interface {
	Watch(ctx context.Context, collection, id string) (FieldStream, error)
}

// LivePublisher writes documents of the real-time store. Publish merges the
// given fields into the document.
type LivePublisher interface {
	Publish(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}
