// Package view holds list state containers. A container owns one fetched list
// together with its filter criteria and a terminal view state, and guarantees
// that only the most recently started fetch can ever apply its result.
package view

import (
	"context"
	"sync"

	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/errors"
)

// State is the render state of a list page.
type State string

const (
	StateLoading   State = "loading"
	StateError     State = "error"
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
)

// FetchFunc loads the full list from its source.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ApplyFunc derives the visible list from the fetched list. It must be pure.
type ApplyFunc[T, C any] func(items []T, criteria C) []T

// ErrorView is the classified failure shown by an error state.
type ErrorView struct {
	Kind      domainerrors.Kind `json:"kind"`
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Retryable bool              `json:"retryable"`
}

// Snapshot is an immutable copy of the container state.
type Snapshot[T, C any] struct {
	State      State      `json:"state"`
	Items      []T        `json:"items"`
	Total      int        `json:"total"`
	Criteria   C          `json:"criteria"`
	Error      *ErrorView `json:"error,omitempty"`
	Generation uint64     `json:"generation"`
	// Revision increases with every state change, including criteria changes.
	Revision uint64 `json:"revision"`
}

// Container is safe for concurrent use.
type Container[T, C any] struct {
	fetch FetchFunc[T]
	apply ApplyFunc[T, C]

	mu         sync.Mutex
	items      []T
	visible    []T
	criteria   C
	state      State
	err        *ErrorView
	generation uint64
	revision   uint64
	closed     bool
	listeners  map[int]func(Snapshot[T, C])
	nextID     int

	// Delivery runs on one goroutine at a time, in revision order. A change
	// made while another goroutine is delivering is handed over as pending.
	deliverMu  sync.Mutex
	pending    *Snapshot[T, C]
	delivering bool
	delivered  uint64
}

// New creates a container in the loading state. apply may be nil, in which
// case the fetched list is shown as is.
func New[T, C any](fetch FetchFunc[T], apply ApplyFunc[T, C], criteria C) *Container[T, C] {
	if apply == nil {
		apply = func(items []T, _ C) []T { return items }
	}

	return &Container[T, C]{
		fetch:     fetch,
		apply:     apply,
		criteria:  criteria,
		state:     StateLoading,
		listeners: make(map[int]func(Snapshot[T, C])),
	}
}

// Load fetches the list and applies it unless a newer Load started meanwhile
// or the container was closed. It reports whether the result was applied;
// the fetch error is returned either way.
func (c *Container[T, C]) Load(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return false, nil
	}
	c.generation++
	gen := c.generation
	c.state = StateLoading
	snap := c.changedLocked()
	c.mu.Unlock()
	c.notify(snap)

	items, err := c.fetch(ctx)

	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()

		return false, err
	}
	if err != nil {
		c.state = StateError
		c.err = newErrorView(err)
	} else {
		c.items = items
		c.err = nil
		c.recomputeLocked()
	}
	snap = c.changedLocked()
	c.mu.Unlock()
	c.notify(snap)

	return true, err
}

// SetCriteria replaces the criteria and recomputes the visible list
// synchronously. A pending fetch is not affected.
func (c *Container[T, C]) SetCriteria(criteria C) Snapshot[T, C] {
	c.mu.Lock()
	if c.closed {
		snap := c.snapshotLocked()
		c.mu.Unlock()

		return snap
	}
	c.criteria = criteria
	if c.state == StateEmpty || c.state == StatePopulated {
		c.recomputeLocked()
	}
	snap := c.changedLocked()
	c.mu.Unlock()
	c.notify(snap)

	return snap
}

// Criteria returns the current criteria.
func (c *Container[T, C]) Criteria() C {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.criteria
}

// Snapshot returns the current state.
func (c *Container[T, C]) Snapshot() Snapshot[T, C] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

// OnChange registers fn to receive every state change. The returned function
// unregisters it.
func (c *Container[T, C]) OnChange(fn func(Snapshot[T, C])) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close detaches the container. In-flight loads are discarded and listeners
// are dropped.
func (c *Container[T, C]) Close() {
	c.mu.Lock()
	c.closed = true
	clear(c.listeners)
	c.mu.Unlock()
}

func (c *Container[T, C]) recomputeLocked() {
	c.visible = c.apply(c.items, c.criteria)
	if len(c.visible) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StatePopulated
	}
}

func (c *Container[T, C]) changedLocked() Snapshot[T, C] {
	c.revision++

	return c.snapshotLocked()
}

func (c *Container[T, C]) snapshotLocked() Snapshot[T, C] {
	items := make([]T, len(c.visible))
	copy(items, c.visible)

	var errView *ErrorView
	if c.state == StateError && c.err != nil {
		e := *c.err
		errView = &e
	}

	return Snapshot[T, C]{
		State:      c.state,
		Items:      items,
		Total:      len(c.items),
		Criteria:   c.criteria,
		Error:      errView,
		Generation: c.generation,
		Revision:   c.revision,
	}
}

// notify hands snap to the listeners unless a newer snapshot was already
// handed over. Listeners never see revisions out of order, and the last
// snapshot they see is the latest state.
func (c *Container[T, C]) notify(snap Snapshot[T, C]) {
	c.deliverMu.Lock()
	if snap.Revision <= c.delivered || (c.pending != nil && snap.Revision <= c.pending.Revision) {
		c.deliverMu.Unlock()

		return
	}
	c.pending = &snap
	if c.delivering {
		c.deliverMu.Unlock()

		return
	}
	c.delivering = true

	for c.pending != nil {
		next := *c.pending
		c.pending = nil
		c.delivered = next.Revision
		c.deliverMu.Unlock()

		for _, fn := range c.listenerFuncs() {
			fn(next)
		}

		c.deliverMu.Lock()
	}
	c.delivering = false
	c.deliverMu.Unlock()
}

func (c *Container[T, C]) listenerFuncs() []func(Snapshot[T, C]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	fns := make([]func(Snapshot[T, C]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}

	return fns
}

func newErrorView(err error) *ErrorView {
	kind := domainerrors.KindOf(err)
	view := &ErrorView{
		Kind:      kind,
		Code:      string(kind),
		Message:   err.Error(),
		Retryable: kind.Retryable(),
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		view.Code = appErr.ErrorCode()
		view.Message = appErr.Message()
	}

	return view
}
