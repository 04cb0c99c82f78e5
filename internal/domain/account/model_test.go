package account

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	got, err := NormalizeEmail("  Lea.Dupont@Example.org ")
	if err != nil || got != "lea.dupont@example.org" {
		t.Fatalf("NormalizeEmail() = %q, %v", got, err)
	}
	for _, in := range []string{"", "nope", "Lea <lea@example.org>"} {
		if _, err := NormalizeEmail(in); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("NormalizeEmail(%q) error = %v", in, err)
		}
	}
}

func TestSessionCheck(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ID: "sess_1", IssuedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Hour)}
	if err := s.Check(now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Check(now.Add(time.Hour)); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected expired, got %v", err)
	}
	revoked := now
	s.RevokedAt = &revoked
	if err := s.Check(now); !errors.Is(err, ErrSessionRevoked) {
		t.Fatalf("expected revoked, got %v", err)
	}
}
