package api

import (
	"context"
	"net/http"

	"streetbite/internal/domain/entity"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
)

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	client *Client
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &authRepository{client: client}
}

// Login exchanges credentials for a session. The session is returned, not
// stored; the caller owns the session cell.
func (repo *authRepository) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	const path = "/auth/login"

	raw, err := repo.client.do(ctx, http.MethodPost, path, nil,
		map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, err
	}

	dto, err := decodeItem[loginDTO](raw, "")
	if err != nil {
		return nil, undecodable(path, err)
	}
	sess, ok := dto.toEntity()
	if !ok {
		return nil, undecodable(path, errors.New("login response carries no token"))
	}

	return sess, nil
}

// ForgotPassword asks the backend to mail a reset link.
func (repo *authRepository) ForgotPassword(ctx context.Context, email string) error {
	_, err := repo.client.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email})

	return err
}

// ResetPassword sets a new password using the mailed token.
func (repo *authRepository) ResetPassword(ctx context.Context, token, newPassword string) error {
	_, err := repo.client.do(ctx, http.MethodPost, "/auth/reset-password", nil,
		map[string]string{"token": token, "newPassword": newPassword})

	return err
}
