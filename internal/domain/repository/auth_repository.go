package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// AuthRepository talks to the backend sign-in endpoints.
type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
