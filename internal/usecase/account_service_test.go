package usecase

import (
	"context"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/riskibarqy/club-manager/internal/platform/password"
	"github.com/stretchr/testify/require"
)

// fakeTokenCodec encodes claims as "sessionID|accountID|expiresUnix".
type fakeTokenCodec struct{}

func (fakeTokenCodec) Issue(c account.Claims) (string, error) {
	return strings.Join([]string{c.SessionID, strconv.FormatInt(c.AccountID, 10), strconv.FormatInt(c.ExpiresAt.Unix(), 10)}, "|"), nil
}

func (fakeTokenCodec) Parse(token string) (account.Claims, error) {
	parts := strings.Split(token, "|")
	if len(parts) != 3 {
		return account.Claims{}, account.ErrInvalidToken
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return account.Claims{}, account.ErrInvalidToken
	}
	exp, _ := strconv.ParseInt(parts[2], 10, 64)
	return account.Claims{SessionID: parts[0], AccountID: id, ExpiresAt: time.Unix(exp, 0)}, nil
}

type sequenceIDs struct{ n atomic.Int64 }

func (s *sequenceIDs) NewID() (string, error) {
	return "sess_" + strconv.FormatInt(s.n.Add(1), 10), nil
}

func newTestAccountService(repos testRepos) *AccountService {
	svc := NewAccountService(
		repos.accounts,
		repos.categories,
		password.NewBcryptHasher(4),
		fakeTokenCodec{},
		&sequenceIDs{},
		time.Hour,
		logging.NewNop(),
	)
	svc.now = fixedClock
	return svc
}

func validSignup(genreID int64) SignupInput {
	return SignupInput{
		Surname:              "Durand",
		GivenName:            "Léa",
		BirthDate:            time.Date(2008, time.May, 10, 0, 0, 0, 0, time.UTC),
		GenreID:              genreID,
		Email:                "Lea.Durand@example.org",
		Phone:                "0600000000",
		Password:             "s3cret-pass",
		PasswordConfirmation: "s3cret-pass",
	}
}

func TestAccountService_Signup(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	women := repos.genre(t, category.GenreFemale)
	u18 := repos.ageCategory(t, "U18")

	got, err := svc.Signup(context.Background(), validSignup(women.ID))
	require.NoError(t, err)
	require.Equal(t, "lea.durand@example.org", got.Account.Email)
	require.Equal(t, got.Player.ID, got.Account.PlayerID)
	require.NotNil(t, got.Player.AgeCategoryID)
	require.Equal(t, u18.ID, *got.Player.AgeCategoryID)
	require.NotEqual(t, "s3cret-pass", got.Account.PasswordHash)
}

func TestAccountService_Signup_ValidationCreatesNothing(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	women := repos.genre(t, category.GenreFemale)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup(women.ID))
	require.NoError(t, err)
	before, err := repos.players.List(ctx, playerFilterAll())
	require.NoError(t, err)

	cases := map[string]func(*SignupInput){
		"missing phone":     func(in *SignupInput) { in.Phone = " " },
		"password mismatch": func(in *SignupInput) { in.PasswordConfirmation = "other" },
		"duplicate email":   func(in *SignupInput) { in.Email = "LEA.DURAND@example.org" },
		"unknown genre":     func(in *SignupInput) { in.GenreID = 9999; in.Email = "x@example.org" },
		"future birth date": func(in *SignupInput) { in.BirthDate = testNow.AddDate(0, 0, 1); in.Email = "y@example.org" },
		"bad email":         func(in *SignupInput) { in.Email = "not-an-email" },
	}
	for name, mutate := range cases {
		in := validSignup(women.ID)
		mutate(&in)
		_, err := svc.Signup(ctx, in)
		require.Truef(t, errors.Is(err, ErrInvalidInput), "%s: got %v", name, err)
	}

	after, err := repos.players.List(ctx, playerFilterAll())
	require.NoError(t, err)
	require.Len(t, after, len(before))
}

func TestAccountService_LoginVerifyLogout(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	women := repos.genre(t, category.GenreFemale)
	ctx := context.Background()

	signed, err := svc.Signup(ctx, validSignup(women.ID))
	require.NoError(t, err)

	_, err = svc.Login(ctx, "lea.durand@example.org", "wrong")
	require.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)
	_, err = svc.Login(ctx, "nobody@example.org", "s3cret-pass")
	require.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)

	login, err := svc.Login(ctx, " LEA.DURAND@example.org ", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, testNow.Add(time.Hour), login.ExpiresAt)

	principal, err := svc.VerifyAccessToken(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, signed.Account.ID, principal.AccountID)
	require.Equal(t, signed.Player.ID, principal.PlayerID)
	require.False(t, principal.IsAdmin)

	svc.Logout(ctx, login.Token)
	_, err = svc.VerifyAccessToken(ctx, login.Token)
	require.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)

	// Logging out twice or with junk never fails.
	svc.Logout(ctx, login.Token)
	svc.Logout(ctx, "junk")
}

func TestAccountService_VerifyAccessToken_Expired(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	women := repos.genre(t, category.GenreFemale)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup(women.ID))
	require.NoError(t, err)
	login, err := svc.Login(ctx, "lea.durand@example.org", "s3cret-pass")
	require.NoError(t, err)

	svc.now = func() time.Time { return testNow.Add(2 * time.Hour) }
	_, err = svc.VerifyAccessToken(ctx, login.Token)
	require.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)
}

func TestAccountService_EnsureAdmin(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, AdminSeed{Email: "Admin@Club.example.org", Password: "admin-pass"})
	require.NoError(t, err)
	require.True(t, created.IsAdmin)
	require.Equal(t, "admin@club.example.org", created.Email)

	login, err := svc.Login(ctx, "admin@club.example.org", "admin-pass")
	require.NoError(t, err)
	require.True(t, login.Principal.IsAdmin)

	// A second run finds the account and leaves the password alone.
	again, err := svc.EnsureAdmin(ctx, AdminSeed{Email: "admin@club.example.org", Password: "other-pass"})
	require.NoError(t, err)
	require.Equal(t, created.ID, again.ID)
	_, err = svc.Login(ctx, "admin@club.example.org", "admin-pass")
	require.NoError(t, err)
}

func TestAccountService_EnsureAdmin_PromotesExistingMember(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestAccountService(repos)
	women := repos.genre(t, category.GenreFemale)
	ctx := context.Background()

	member, err := svc.Signup(ctx, validSignup(women.ID))
	require.NoError(t, err)
	require.False(t, member.Account.IsAdmin)

	got, err := svc.EnsureAdmin(ctx, AdminSeed{Email: "lea.durand@example.org"})
	require.NoError(t, err)
	require.Equal(t, member.Account.ID, got.ID)
	require.True(t, got.IsAdmin)

	_, err = svc.EnsureAdmin(ctx, AdminSeed{Email: "not-an-email"})
	require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}
