package live

import "sync"

// OpenFunc opens a subscription for one document id.
type OpenFunc[T any] func(id string, initial T) (*Subscription[T], error)

// Slot is one place on a page bound to at most one document at a time.
type Slot[T any] struct {
	open OpenFunc[T]

	mu  sync.Mutex
	sub *Subscription[T]
}

// NewSlot returns an unbound slot.
func NewSlot[T any](open OpenFunc[T]) *Slot[T] {
	return &Slot[T]{open: open}
}

// Bind points the slot at id. The previous subscription is closed before the
// new one is opened. Binding the current id again is a no-op. When open
// fails the slot is left unbound.
func (s *Slot[T]) Bind(id string, initial T) (*Subscription[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		if s.sub.ID() == id && !s.sub.isClosed() {
			return s.sub, nil
		}
		s.sub.Close()
		s.sub = nil
	}

	sub, err := s.open(id, initial)
	if err != nil {
		return nil, err
	}
	s.sub = sub

	return s.sub, nil
}

// Current returns the bound subscription or nil.
func (s *Slot[T]) Current() *Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sub
}

// Close unbinds the slot.
func (s *Slot[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sub != nil {
		s.sub.Close()
		s.sub = nil
	}
}
