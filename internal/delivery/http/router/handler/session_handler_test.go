package handler

import (
	"net/http"
	"testing"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	mockUC "streetbite/internal/mocks/usecase"
	"streetbite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		setup     func(uc *mockUC.MockSessionUsecase)
		wantCode  int
		wantError string
		wantField string
	}{
		{
			name: "success",
			body: `{"email":"ana@example.com","password":"secret"}`,
			setup: func(uc *mockUC.MockSessionUsecase) {
				uc.EXPECT().
					Login(mock.Anything, usecase.LoginInput{Email: "ana@example.com", Password: "secret"}).
					Return(&entity.Session{Token: "t", User: entity.User{ID: "7", Role: entity.RoleUser}}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid email",
			body:      `{"email":"nope","password":"secret"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_FAILED",
			wantField: "email",
		},
		{
			name:      "malformed body",
			body:      `{"email":`,
			wantCode:  http.StatusBadRequest,
			wantError: "INVALID_INPUT",
		},
		{
			name: "rejected credentials",
			body: `{"email":"ana@example.com","password":"wrong"}`,
			setup: func(uc *mockUC.MockSessionUsecase) {
				uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "UNAUTHORIZED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mockUC.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewSessionHandler(SessionHandlerParams{SessionUC: uc})

			e := newTestEcho()
			e.POST("/session/login", h.Login)

			rec, env := doRequest(t, e, http.MethodPost, "/session/login", tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError == "" {
				assert.True(t, env.Success)
				assert.Contains(t, string(env.Data), `"id":"7"`)
				assert.NotContains(t, string(env.Data), `"token"`)

				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantError, env.Error.Code)
			if tt.wantField != "" {
				assert.Contains(t, env.Error.Fields, tt.wantField)
			}
		})
	}
}

func TestSessionHandler_Current(t *testing.T) {
	t.Parallel()

	uc := mockUC.NewMockSessionUsecase(t)
	uc.EXPECT().Current(mock.Anything).Return(nil, domainerrors.ErrSessionExpired).Once()
	h := NewSessionHandler(SessionHandlerParams{SessionUC: uc})

	e := newTestEcho()
	e.GET("/session", h.Current)

	rec, env := doRequest(t, e, http.MethodGet, "/session", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.KindUnauthorized, env.Error.Kind)
	assert.False(t, env.Error.Retryable)
}

func TestSessionHandler_UpdateProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		setup     func(uc *mockUC.MockSessionUsecase)
		wantCode  int
		wantError string
		wantField string
	}{
		{
			name: "success",
			body: `{"displayName":"Ana P"}`,
			setup: func(uc *mockUC.MockSessionUsecase) {
				uc.EXPECT().
					UpdateProfile(mock.Anything, mock.MatchedBy(func(in usecase.ProfileInput) bool {
						return in.DisplayName != nil && *in.DisplayName == "Ana P" && in.PhoneNumber == nil && in.ProfilePicture == nil
					})).
					Return(&entity.Session{Token: "t", User: entity.User{ID: "4", DisplayName: "Ana P", Role: entity.RoleUser}}, nil).
					Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "picture is not a url",
			body:      `{"profilePicture":"not a url"}`,
			wantCode:  http.StatusBadRequest,
			wantError: "VALIDATION_FAILED",
			wantField: "profilePicture",
		},
		{
			name: "signed out",
			body: `{"phoneNumber":"0912"}`,
			setup: func(uc *mockUC.MockSessionUsecase) {
				uc.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUnauthorized).Once()
			},
			wantCode:  http.StatusUnauthorized,
			wantError: "UNAUTHORIZED",
		},
		{
			name: "backend lost the user",
			body: `{"phoneNumber":"0912"}`,
			setup: func(uc *mockUC.MockSessionUsecase) {
				uc.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNotFound.WithDetails("user 4")).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := mockUC.NewMockSessionUsecase(t)
			if tt.setup != nil {
				tt.setup(uc)
			}
			h := NewSessionHandler(SessionHandlerParams{SessionUC: uc})

			e := newTestEcho()
			e.PATCH("/session/profile", h.UpdateProfile)

			rec, env := doRequest(t, e, http.MethodPatch, "/session/profile", tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantError == "" {
				assert.True(t, env.Success)
				assert.Contains(t, string(env.Data), `"displayName":"Ana P"`)
				assert.NotContains(t, string(env.Data), `"token"`)

				return
			}
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantError, env.Error.Code)
			if tt.wantField != "" {
				assert.Contains(t, env.Error.Fields, tt.wantField)
			}
		})
	}
}
