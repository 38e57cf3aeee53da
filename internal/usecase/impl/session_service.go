package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "streetbite/internal/delivery/context"
	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/domain/repository"
	"streetbite/internal/errors"
	"streetbite/internal/usecase"

	"go.uber.org/fx"
)

type sessionService struct {
	authRepo   repository.AuthRepository
	userRepo   repository.UserRepository
	localState repository.LocalStateRepository
	cell       usecase.SessionCell
	logger     *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthRepo   repository.AuthRepository
	UserRepo   repository.UserRepository
	LocalState repository.LocalStateRepository
	Cell       usecase.SessionCell
	Logger     *slog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		authRepo:   params.AuthRepo,
		userRepo:   params.UserRepo,
		localState: params.LocalState,
		cell:       params.Cell,
		logger:     params.Logger,
	}
}

// Login signs in and replaces whatever session was stored before.
func (s *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*entity.Session, error) {
	email := strings.TrimSpace(input.Email)

	sess, err := s.authRepo.Login(ctx, email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	if err := s.cell.Set(ctx, *sess); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}

	deliverycontext.Logger(ctx, s.logger).Info("Signed in",
		slog.String("user_id", sess.User.ID.String()),
		slog.String("role", string(sess.User.Role)),
	)

	return sess, nil
}

// Logout clears the session.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.cell.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// Current returns the signed-in session.
func (s *sessionService) Current(_ context.Context) (*entity.Session, error) {
	sess, err := signedIn(s.cell)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

// UpdateProfile changes the signed-in user's profile. Token, role and vendor
// link of the session are kept; profile fields the backend echoes back win
// over the submitted ones.
func (s *sessionService) UpdateProfile(ctx context.Context, input usecase.ProfileInput) (*entity.Session, error) {
	sess, err := signedIn(s.cell)
	if err != nil {
		return nil, err
	}

	update := entity.ProfileUpdate{
		DisplayName:    trimmedPtr(input.DisplayName),
		PhoneNumber:    trimmedPtr(input.PhoneNumber),
		ProfilePicture: trimmedPtr(input.ProfilePicture),
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no profile field to change")
	}
	if update.DisplayName != nil && *update.DisplayName == "" {
		return nil, domainerrors.ErrValidationFailed.WithFields(domainerrors.FieldErrors{"displayName": "must not be blank"})
	}

	saved, err := s.userRepo.UpdateProfile(ctx, sess.User.ID, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	user := update.Apply(sess.User)
	if saved.DisplayName != "" {
		user.DisplayName = saved.DisplayName
	}
	if saved.PhoneNumber != "" {
		user.PhoneNumber = saved.PhoneNumber
	}
	if saved.ProfilePicture != "" {
		user.ProfilePicture = saved.ProfilePicture
	}
	sess.User = user

	if err := s.cell.Set(ctx, sess); err != nil {
		return nil, errors.Wrap(err, "failed to store session")
	}
	if update.DisplayName != nil {
		if err := s.localState.SaveDisplayName(ctx, user.DisplayName); err != nil {
			return nil, errors.Wrap(err, "failed to cache display name")
		}
	}

	deliverycontext.Logger(ctx, s.logger).Info("Profile updated", slog.String("user_id", user.ID.String()))

	return &sess, nil
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)

	return &trimmed
}

// ForgotPassword asks the backend to mail a reset link.
func (s *sessionService) ForgotPassword(ctx context.Context, email string) error {
	if err := s.authRepo.ForgotPassword(ctx, strings.TrimSpace(email)); err != nil {
		return errors.Wrap(err, "failed to request password reset")
	}

	return nil
}

// ResetPassword sets a new password with the mailed token.
func (s *sessionService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if err := s.authRepo.ResetPassword(ctx, input.Token, input.NewPassword); err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	return nil
}
