// Package live provides the real-time document sources behind the live
// subscriptions: Firestore listeners and an in-process broadcaster.
package live

import (
	"context"
	"sync"

	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreSource listens to documents through Firestore snapshot listeners.
type FirestoreSource struct {
	client *firestore.Client
}

// NewFirestoreSource wraps an open Firestore client.
func NewFirestoreSource(client *firestore.Client) *FirestoreSource {
	return &FirestoreSource{client: client}
}

func (s *FirestoreSource) doc(collection, id string) (*firestore.DocumentRef, error) {
	if collection == "" || id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("collection and document id are required")
	}

	return s.client.Collection(collection).Doc(id), nil
}

// Watch opens a snapshot listener. The listener lives until ctx is done or
// the stream is stopped; Next on the returned stream honors ctx.
func (s *FirestoreSource) Watch(ctx context.Context, collection, id string) (service.FieldStream, error) {
	ref, err := s.doc(collection, id)
	if err != nil {
		return nil, err
	}

	return &firestoreStream{it: ref.Snapshots(ctx)}, nil
}

// Publish merges fields into the document, creating it when missing.
func (s *FirestoreSource) Publish(ctx context.Context, collection, id string, fields map[string]any) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}

	if _, err := ref.Set(ctx, fields, firestore.MergeAll); err != nil {
		return errors.Wrapf(err, "write %s/%s", collection, id)
	}

	return nil
}

// Delete removes the document.
func (s *FirestoreSource) Delete(ctx context.Context, collection, id string) error {
	ref, err := s.doc(collection, id)
	if err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete %s/%s", collection, id)
	}

	return nil
}

type firestoreStream struct {
	it   *firestore.DocumentSnapshotIterator
	once sync.Once
}

func (s *firestoreStream) Next(ctx context.Context) (service.FieldUpdate, error) {
	if err := ctx.Err(); err != nil {
		return service.FieldUpdate{}, err
	}

	snap, err := s.it.Next()
	if err != nil {
		switch {
		case errors.Is(err, iterator.Done), status.Code(err) == codes.Canceled:
			return service.FieldUpdate{}, service.ErrStreamDone
		case status.Code(err) == codes.NotFound:
			return service.FieldUpdate{}, domainerrors.ErrNotFound.WithDetails("live collection").WithCause(err)
		default:
			return service.FieldUpdate{}, errors.Wrap(err, "live snapshot")
		}
	}

	if !snap.Exists() {
		return service.FieldUpdate{ReadAt: snap.ReadTime}, nil
	}

	return service.FieldUpdate{Exists: true, Fields: snap.Data(), ReadAt: snap.ReadTime}, nil
}

func (s *firestoreStream) Stop() {
	s.once.Do(s.it.Stop)
}
