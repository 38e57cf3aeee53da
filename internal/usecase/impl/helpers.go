// Package impl implements the page-level use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/service"
	"streetbite/internal/usecase"

	"github.com/google/uuid"
)

// emitEvent publishes a UI event. Failures are logged and never reach the
// caller's page flow.
func emitEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.UIEvent) {
	if publisher == nil {
		return
	}

	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.RequestID(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	if err := publisher.PublishUIEvent(ctx, event); err != nil {
		deliverycontext.Logger(ctx, logger).Warn("Failed to publish UI event",
			slog.String("event_type", event.Type),
			slog.Any("error", err),
		)
	}
}

// signedIn returns the current session or ErrUnauthorized.
func signedIn(cell usecase.SessionCell) (entity.Session, error) {
	sess, ok := cell.Current()
	if !ok {
		return entity.Session{}, domainerrors.ErrUnauthorized
	}

	return sess, nil
}

// linkedVendor returns the vendor of the signed-in vendor account.
func linkedVendor(cell usecase.SessionCell) (entity.ID, error) {
	sess, err := signedIn(cell)
	if err != nil {
		return "", err
	}
	if sess.User.Role != entity.RoleVendor || sess.User.VendorID.IsZero() {
		return "", domainerrors.ErrForbidden.WithDetails("no vendor linked to this account")
	}

	return sess.User.VendorID, nil
}

func vendorNotFound(id entity.ID) error {
	return domainerrors.ErrVendorNotFound.WithDetails("vendor " + id.String())
}
