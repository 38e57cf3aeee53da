// Package auth reads the backend's access tokens on the client side.
package auth

import (
	"time"

	"streetbite/internal/domain/service"
	"streetbite/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector decodes JWT claims without a key. The gateway never holds the
// backend signing secret.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect parses the token and extracts subject, role and timing claims.
func (s *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := s.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	out := &service.TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read exp claim")
	}
	if exp != nil {
		out.ExpiresAt = exp.Time.Truncate(time.Second)
	}

	return out, nil
}
