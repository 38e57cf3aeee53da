package middleware

import (
	"slices"
	"strings"

	"streetbite/internal/domain/entity"
	domainerrors "streetbite/internal/domain/errors"
	"streetbite/internal/usecase"

	"github.com/labstack/echo/v4"
)

const keySession = "session"

// AuthMiddleware gates routes on the gateway's signed-in session.
type AuthMiddleware struct {
	cell usecase.SessionCell
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cell usecase.SessionCell) *AuthMiddleware {
	return &AuthMiddleware{cell: cell}
}

// Authenticate rejects the request unless someone is signed in.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := m.cell.Current()
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		c.Set(keySession, sess)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the signed-in role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := GetSession(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !slices.Contains(roles, sess.User.Role) {
				return domainerrors.ErrForbidden.WithDetails("requires role " + rolesString(roles))
			}

			return next(c)
		}
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(c echo.Context) (entity.Session, bool) {
	sess, ok := c.Get(keySession).(entity.Session)

	return sess, ok
}

func rolesString(roles []entity.Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}

	return strings.Join(names, " or ")
}
