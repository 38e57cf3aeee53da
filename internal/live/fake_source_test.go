package live

import (
	"context"
	"sync"

	"streetbite/internal/domain/service"
)

type fakeStream struct {
	updates chan service.FieldUpdate
	errs    chan error
	once    sync.Once
	stopped chan struct{}
}

func (f *fakeStream) Next(ctx context.Context) (service.FieldUpdate, error) {
	select {
	case <-ctx.Done():
		return service.FieldUpdate{}, ctx.Err()
	case <-f.stopped:
		return service.FieldUpdate{}, service.ErrStreamDone
	case err := <-f.errs:
		return service.FieldUpdate{}, err
	case u := <-f.updates:
		return u, nil
	}
}

func (f *fakeStream) Stop() {
	f.once.Do(func() { close(f.stopped) })
}

type fakeSource struct {
	mu      sync.Mutex
	streams map[string]*fakeStream
	opened  chan string
	openErr error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		streams: make(map[string]*fakeStream),
		opened:  make(chan string, 16),
	}
}

func (f *fakeSource) Watch(_ context.Context, collection, id string) (service.FieldStream, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}

	s := &fakeStream{
		updates: make(chan service.FieldUpdate),
		errs:    make(chan error, 1),
		stopped: make(chan struct{}),
	}
	f.mu.Lock()
	f.streams[collection+"/"+id] = s
	f.mu.Unlock()
	f.opened <- collection + "/" + id

	return s, nil
}

func (f *fakeSource) stream(key string) *fakeStream {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.streams[key]
}
