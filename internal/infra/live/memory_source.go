package live

import (
	"context"
	"maps"
	"sync"
	"time"

	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/service"
)

// MemorySource keeps documents in process and fans every write out to the
// open listeners. Like a snapshot listener, a new stream first receives the
// current state of its document.
type MemorySource struct {
	mu       sync.Mutex
	docs     map[string]map[string]any
	watchers map[string]map[*memoryStream]struct{}
	now      func() time.Time
}

// NewMemorySource returns an empty source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		docs:     make(map[string]map[string]any),
		watchers: make(map[string]map[*memoryStream]struct{}),
		now:      time.Now,
	}
}

func docKey(collection, id string) string {
	return collection + "/" + id
}

// Watch opens a listener on collection/id.
func (s *MemorySource) Watch(_ context.Context, collection, id string) (service.FieldStream, error) {
	if collection == "" || id == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("collection and document id are required")
	}

	key := docKey(collection, id)
	stream := &memoryStream{
		source: s,
		key:    key,
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watchers[key] == nil {
		s.watchers[key] = make(map[*memoryStream]struct{})
	}
	s.watchers[key][stream] = struct{}{}
	stream.push(s.snapshotLocked(key))

	return stream, nil
}

// Publish merges fields into the document and notifies its listeners.
func (s *MemorySource) Publish(_ context.Context, collection, id string, fields map[string]any) error {
	if collection == "" || id == "" {
		return domainerrors.ErrValidationFailed.WithDetails("collection and document id are required")
	}

	key := docKey(collection, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.docs[key]
	if doc == nil {
		doc = make(map[string]any, len(fields))
		s.docs[key] = doc
	}
	maps.Copy(doc, fields)

	s.broadcastLocked(key)

	return nil
}

// Delete removes the document; listeners receive a missing-document update.
func (s *MemorySource) Delete(_ context.Context, collection, id string) error {
	key := docKey(collection, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	s.broadcastLocked(key)

	return nil
}

// Listeners returns the number of open listeners on collection/id.
func (s *MemorySource) Listeners(collection, id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.watchers[docKey(collection, id)])
}

func (s *MemorySource) snapshotLocked(key string) service.FieldUpdate {
	doc, ok := s.docs[key]
	if !ok {
		return service.FieldUpdate{ReadAt: s.now()}
	}

	return service.FieldUpdate{Exists: true, Fields: maps.Clone(doc), ReadAt: s.now()}
}

func (s *MemorySource) broadcastLocked(key string) {
	for stream := range s.watchers[key] {
		stream.push(s.snapshotLocked(key))
	}
}

func (s *MemorySource) remove(stream *memoryStream) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.watchers[stream.key], stream)
	if len(s.watchers[stream.key]) == 0 {
		delete(s.watchers, stream.key)
	}
}

// memoryStream queues updates so a slow reader never blocks a writer.
type memoryStream struct {
	source *MemorySource
	key    string
	signal chan struct{}
	done   chan struct{}
	once   sync.Once

	mu      sync.Mutex
	pending []service.FieldUpdate
}

func (m *memoryStream) push(u service.FieldUpdate) {
	m.mu.Lock()
	m.pending = append(m.pending, u)
	m.mu.Unlock()

	select {
	case m.signal <- struct{}{}:
	default:
	}
}

func (m *memoryStream) pop() (service.FieldUpdate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.pending) == 0 {
		return service.FieldUpdate{}, false
	}
	u := m.pending[0]
	m.pending = m.pending[1:]

	return u, true
}

func (m *memoryStream) Next(ctx context.Context) (service.FieldUpdate, error) {
	for {
		select {
		case <-m.done:
			return service.FieldUpdate{}, service.ErrStreamDone
		default:
		}

		if u, ok := m.pop(); ok {
			return u, nil
		}

		select {
		case <-ctx.Done():
			return service.FieldUpdate{}, ctx.Err()
		case <-m.done:
			return service.FieldUpdate{}, service.ErrStreamDone
		case <-m.signal:
		}
	}
}

func (m *memoryStream) Stop() {
	m.once.Do(func() {
		close(m.done)
		m.source.remove(m)
	})
}
