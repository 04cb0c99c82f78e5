package auth

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(testSecret, "club-manager")
	require.NoError(t, err)

	now := time.Now().Truncate(time.Second)
	token, err := codec.Issue(account.Claims{
		SessionID: "sess_abc",
		AccountID: 42,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	claims, err := codec.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "sess_abc", claims.SessionID)
	require.Equal(t, int64(42), claims.AccountID)
	require.True(t, claims.ExpiresAt.Equal(now.Add(time.Hour)))
}

func TestJWTCodec_Rejects(t *testing.T) {
	t.Parallel()

	codec, err := NewJWTCodec(testSecret, "club-manager")
	require.NoError(t, err)
	other, err := NewJWTCodec("ffffffffffffffffffffffffffffffff", "club-manager")
	require.NoError(t, err)

	now := time.Now()
	foreign, err := other.Issue(account.Claims{SessionID: "sess_1", AccountID: 1, IssuedAt: now, ExpiresAt: now.Add(time.Hour)})
	require.NoError(t, err)
	expired, err := codec.Issue(account.Claims{SessionID: "sess_1", AccountID: 1, IssuedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)})
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID: "sess_1", Subject: "1", Issuer: "club-manager", ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"expired":      expired,
		"unsigned":     none,
	} {
		_, err := codec.Parse(token)
		require.Truef(t, errors.Is(err, account.ErrInvalidToken), "%s: got %v", name, err)
	}
}

func TestNewJWTCodec_ShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTCodec("short", "club-manager")
	require.Error(t, err)
}
