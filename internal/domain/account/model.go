package account

import (
	"net/mail"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrInvalidToken   = errors.New("invalid session token")
	ErrSessionExpired = errors.New("session expired")
	ErrSessionRevoked = errors.New("session revoked")
)

// Account holds login credentials for a player.
type Account struct {
	ID           int64
	PlayerID     int64
	Email        string
	Phone        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}

// NormalizeEmail lowercases and trims an address and checks its syntax.
func NormalizeEmail(v string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(v))
	if email == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errors.Wrapf(ErrInvalidEmail, "%q", v)
	}
	return email, nil
}

// Session is a server-side login session referenced by a token.
type Session struct {
	ID        string
	AccountID int64
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Check reports why a session cannot be used at now, if at all.
func (s Session) Check(now time.Time) error {
	if s.RevokedAt != nil {
		return ErrSessionRevoked
	}
	if !now.Before(s.ExpiresAt) {
		return ErrSessionExpired
	}
	return nil
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	AccountID int64
	PlayerID  int64
	SessionID string
	IsAdmin   bool
}

// Claims are the values carried inside a session token.
type Claims struct {
	SessionID string
	AccountID int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Issue(claims Claims) (string, error)
	Parse(token string) (Claims, error)
}
