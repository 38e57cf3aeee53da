package handler

import (
	"log/slog"
	"net/http"

	"streetbite/internal/delivery/http/response"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler serves sign-in and sign-out of the device.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// ForgotPasswordRequest carries the account email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	sess, err := h.sessionUC.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sess.User, "Login successful")
}

// Logout handles POST /session/logout.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Current handles GET /session. The token stays inside the gateway.
func (h *SessionHandler) Current(c echo.Context) error {
	sess, err := h.sessionUC.Current(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, sess.User)
}

// UpdateProfile handles PATCH /session/profile.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var req usecase.ProfileInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	sess, err := h.sessionUC.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, sess.User, "Profile updated")
}

// ForgotPassword handles POST /session/forgot-password.
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.sessionUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, nil, "Password reset email requested")
}

// ResetPassword handles POST /session/reset-password.
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var req usecase.ResetPasswordInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.sessionUC.ResetPassword(c.Request().Context(), req); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "Password updated")
}
