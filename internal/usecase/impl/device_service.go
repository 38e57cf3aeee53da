package impl

import (
	"context"
	"log/slog"

	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type deviceService struct {
	notificationRepo repository.NotificationRepository
	cell             usecase.SessionCell
	logger           *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Cell             usecase.SessionCell
	Logger           *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		notificationRepo: params.NotificationRepo,
		cell:             params.Cell,
		logger:           params.Logger,
	}
}

// RegisterDevice registers the push token for the signed-in user.
func (s *deviceService) RegisterDevice(ctx context.Context, info usecase.DeviceInfo) error {
	sess, err := signedIn(s.cell)
	if err != nil {
		return err
	}

	if err := s.notificationRepo.RegisterDeviceToken(ctx, info.Token, info.Platform); err != nil {
		return errors.Wrap(err, "failed to register device token")
	}

	deliverycontext.Logger(ctx, s.logger).Info("Device registered",
		slog.String("user_id", sess.User.ID.String()),
		slog.String("platform", info.Platform),
	)

	return nil
}
