package api

import (
	"context"
	"net/http"
	"net/url"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	client *Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *Client) repository.UserRepository {
	return &userRepository{client: client}
}

// UpdateProfile calls PUT /users/:id. The backend only touches fields that
// are present in the body.
func (repo *userRepository) UpdateProfile(ctx context.Context, id entity.ID, update entity.ProfileUpdate) (*entity.User, error) {
	path := "/users/" + url.PathEscape(id.String())

	raw, err := repo.client.do(ctx, http.MethodPut, path, nil, update)
	if err != nil {
		if domainerrors.IsKind(err, domainerrors.KindNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("user " + id.String()).WithCause(err)
		}

		return nil, err
	}

	dto, err := decodeItem[userDTO](raw, "user")
	if err != nil {
		return nil, undecodable(path, err)
	}
	user := dto.toUser()

	return &user, nil
}
