// Package usecase contains the page-level operations of the gateway.
package usecase

import (
	"context"

	"streetbite/internal/domain/entity"
)

// SessionCell is the single-slot session record shared by every use case.
type SessionCell interface {
	Current() (entity.Session, bool)
	Set(ctx context.Context, sess entity.Session) error
	Clear(ctx context.Context) error
}

// LoginInput carries the sign-in form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordInput carries the password reset form.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ProfileInput carries the profile form. Omitted fields are not changed.
type ProfileInput struct {
	DisplayName    *string `json:"displayName" validate:"omitempty,min=1,max=80"`
	PhoneNumber    *string `json:"phoneNumber" validate:"omitempty,max=32"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// SessionUsecase defines sign-in and sign-out of the device.
type SessionUsecase interface {
	// Login signs in against the backend and stores the session.
	Login(ctx context.Context, input LoginInput) (*entity.Session, error)

	// Logout clears the stored session. It succeeds when no one is signed in.
	Logout(ctx context.Context) error

	// Current returns the signed-in session or ErrUnauthorized.
	Current(ctx context.Context) (*entity.Session, error)

	// UpdateProfile saves the profile on the backend and refreshes the
	// stored session and the cached display name.
	UpdateProfile(ctx context.Context, input ProfileInput) (*entity.Session, error)

	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
