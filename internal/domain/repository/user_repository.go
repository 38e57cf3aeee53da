package repository

import (
	"context"

	"streetbite/internal/domain/entity"
)

// UserRepository edits the signed-in account on the backend.
type UserRepository interface {
	// UpdateProfile sends the changed fields and returns the saved account.
	UpdateProfile(ctx context.Context, id entity.ID, update entity.ProfileUpdate) (*entity.User, error)
}
