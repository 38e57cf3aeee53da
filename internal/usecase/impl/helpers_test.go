package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"streetbite/internal/domain/entity"
)

type fakeCell struct {
	mu   sync.Mutex
	sess entity.Session
}

func signedInAs(user entity.User) *fakeCell {
	return &fakeCell{sess: entity.Session{Token: "token", User: user}}
}

func (c *fakeCell) Current() (entity.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sess, !c.sess.IsZero()
}

func (c *fakeCell) Set(_ context.Context, sess entity.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = sess

	return nil
}

func (c *fakeCell) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = entity.Session{}

	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func floatPtr(f float64) *float64 {
	return &f
}

func strPtr(s string) *string {
	return &s
}
