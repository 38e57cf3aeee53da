package usecase

import "context"

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=web android ios"`
}

// DeviceUsecase registers this device for push delivery.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, info DeviceInfo) error
}
