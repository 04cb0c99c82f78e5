package auth

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/club-manager/internal/domain/account"
)

const minSecretLength = 32

// JWTCodec signs session tokens with HMAC-SHA256. The token id carries the
// session id and the subject carries the account id; the session row stays
// the source of truth for revocation.
type JWTCodec struct {
	secret []byte
	issuer string
}

func NewJWTCodec(secret, issuer string) (*JWTCodec, error) {
	if len(secret) < minSecretLength {
		return nil, errors.Newf("token secret must be at least %d bytes", minSecretLength)
	}
	return &JWTCodec{secret: []byte(secret), issuer: issuer}, nil
}

func (c *JWTCodec) Issue(claims account.Claims) (string, error) {
	if claims.SessionID == "" || claims.AccountID <= 0 {
		return "", errors.New("session id and account id are required")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        claims.SessionID,
		Subject:   strconv.FormatInt(claims.AccountID, 10),
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (c *JWTCodec) Parse(raw string) (account.Claims, error) {
	if raw == "" {
		return account.Claims{}, account.ErrInvalidToken
	}

	var registered jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &registered, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return account.Claims{}, errors.Mark(errors.Wrap(err, "parse token"), account.ErrInvalidToken)
	}

	accountID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil || registered.ID == "" {
		return account.Claims{}, errors.Wrap(account.ErrInvalidToken, "missing subject or token id")
	}

	out := account.Claims{
		SessionID: registered.ID,
		AccountID: accountID,
	}
	if registered.IssuedAt != nil {
		out.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		out.ExpiresAt = registered.ExpiresAt.Time
	}
	return out, nil
}

var _ account.TokenCodec = (*JWTCodec)(nil)
