package service

import "time"

// TokenClaims are the claims the client reads from an access token. The
// signature is verified by the backend only.
type TokenClaims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time // zero when the token carries no exp claim
}

// Expired reports whether the claims are past their expiry at now.
func (c *TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// TokenInspector reads access token claims without verifying them.
type TokenInspector interface {
	Inspect(token string) (*TokenClaims, error)
}
