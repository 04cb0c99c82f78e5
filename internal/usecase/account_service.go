package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
)

const defaultSessionTTL = 24 * time.Hour

var errInvalidCredentials = errors.Newf("%w: invalid credentials", ErrUnauthorized)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type IDGenerator interface {
	NewID() (string, error)
}

type SignupInput struct {
	Surname              string
	GivenName            string
	BirthDate            time.Time
	GenreID              int64
	Email                string
	Phone                string
	Password             string
	PasswordConfirmation string
}

type SignupResult struct {
	Player  player.Player
	Account account.Account
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal account.Principal
}

type AccountService struct {
	repo         account.Repository
	categoryRepo category.Repository
	hasher       PasswordHasher
	tokens       account.TokenCodec
	sessionIDs   IDGenerator
	sessionTTL   time.Duration
	logger       *logging.Logger
	now          func() time.Time
}

func NewAccountService(
	repo account.Repository,
	categoryRepo category.Repository,
	hasher PasswordHasher,
	tokens account.TokenCodec,
	sessionIDs IDGenerator,
	sessionTTL time.Duration,
	logger *logging.Logger,
) *AccountService {
	if logger == nil {
		logger = logging.Default()
	}
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &AccountService{
		repo:         repo,
		categoryRepo: categoryRepo,
		hasher:       hasher,
		tokens:       tokens,
		sessionIDs:   sessionIDs,
		sessionTTL:   sessionTTL,
		logger:       logger,
		now:          time.Now,
	}
}

// Signup registers a player with login credentials. Nothing is stored unless
// every check passes. No session is opened; the caller logs in afterwards.
func (s *AccountService) Signup(ctx context.Context, input SignupInput) (SignupResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Signup")
	defer span.End()

	missing := make([]string, 0, 8)
	for _, field := range []struct {
		name  string
		empty bool
	}{
		{"surname", strings.TrimSpace(input.Surname) == ""},
		{"given_name", strings.TrimSpace(input.GivenName) == ""},
		{"birth_date", input.BirthDate.IsZero()},
		{"genre_id", input.GenreID <= 0},
		{"email", strings.TrimSpace(input.Email) == ""},
		{"phone", strings.TrimSpace(input.Phone) == ""},
		{"password", input.Password == ""},
		{"password_confirmation", input.PasswordConfirmation == ""},
	} {
		if field.empty {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return SignupResult{}, errors.Newf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if input.Password != input.PasswordConfirmation {
		return SignupResult{}, errors.Newf("%w: passwords do not match", ErrInvalidInput)
	}

	email, err := account.NormalizeEmail(input.Email)
	if err != nil {
		return SignupResult{}, invalid(err)
	}

	today := s.now().UTC()
	p := player.Player{
		Surname:   input.Surname,
		GivenName: input.GivenName,
		BirthDate: input.BirthDate,
		GenreID:   input.GenreID,
	}
	if err := p.Normalize(today); err != nil {
		return SignupResult{}, invalid(err)
	}
	if err := checkCategoryRefs(ctx, s.categoryRepo, &p.GenreID, nil); err != nil {
		return SignupResult{}, err
	}

	_, taken, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return SignupResult{}, errors.Wrap(err, "get account by email")
	}
	if taken {
		return SignupResult{}, invalid(account.ErrEmailTaken)
	}

	categories, err := s.categoryRepo.ListAgeCategories(ctx)
	if err != nil {
		return SignupResult{}, errors.Wrap(err, "list age categories")
	}
	p.Categorize(today, categories)

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return SignupResult{}, errors.Wrap(err, "hash password")
	}

	createdPlayer, createdAccount, err := s.repo.CreateWithPlayer(ctx, p, account.Account{
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hash,
		CreatedAt:    today,
	})
	if errors.Is(err, account.ErrEmailTaken) {
		return SignupResult{}, invalid(err)
	}
	if err != nil {
		return SignupResult{}, errors.Wrap(err, "create account")
	}

	s.logger.InfoContext(ctx, "account created", "account_id", createdAccount.ID, "player_id", createdPlayer.ID)
	return SignupResult{Player: createdPlayer, Account: createdAccount}, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Login")
	defer span.End()

	normalized, err := account.NormalizeEmail(email)
	if err != nil || password == "" {
		return LoginResult{}, errInvalidCredentials
	}

	acc, ok, err := s.repo.GetByEmail(ctx, normalized)
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "get account by email")
	}
	if !ok {
		return LoginResult{}, errInvalidCredentials
	}
	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		return LoginResult{}, errInvalidCredentials
	}

	sessionID, err := s.sessionIDs.NewID()
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "generate session id")
	}
	now := s.now().UTC()
	session := account.Session{
		ID:        sessionID,
		AccountID: acc.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return LoginResult{}, errors.Wrap(err, "create session")
	}

	token, err := s.tokens.Issue(account.Claims{
		SessionID: session.ID,
		AccountID: acc.ID,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return LoginResult{}, errors.Wrap(err, "issue token")
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Principal: principalOf(acc, session.ID),
	}, nil
}

// Logout revokes the session behind token when it can be identified and
// otherwise does nothing.
func (s *AccountService) Logout(ctx context.Context, token string) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.Logout")
	defer span.End()

	claims, err := s.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return
	}
	if err := s.repo.RevokeSession(ctx, claims.SessionID, s.now().UTC()); err != nil {
		s.logger.WarnContext(ctx, "revoke session failed", "session_id", claims.SessionID, "error", err)
	}
}

func (s *AccountService) VerifyAccessToken(ctx context.Context, token string) (account.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.VerifyAccessToken")
	defer span.End()

	claims, err := s.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return account.Principal{}, errors.Newf("%w: %v", ErrUnauthorized, err)
	}

	session, ok, err := s.repo.GetSession(ctx, claims.SessionID)
	if err != nil {
		return account.Principal{}, errors.Wrap(err, "get session")
	}
	if !ok || session.AccountID != claims.AccountID {
		return account.Principal{}, errors.Newf("%w: unknown session", ErrUnauthorized)
	}
	if err := session.Check(s.now().UTC()); err != nil {
		return account.Principal{}, errors.Newf("%w: %v", ErrUnauthorized, err)
	}

	acc, ok, err := s.repo.GetByID(ctx, session.AccountID)
	if err != nil {
		return account.Principal{}, errors.Wrap(err, "get account")
	}
	if !ok {
		return account.Principal{}, errors.Newf("%w: unknown account", ErrUnauthorized)
	}
	return principalOf(acc, session.ID), nil
}

// AdminSeed describes the bootstrap administrator created at startup.
type AdminSeed struct {
	Email    string
	Password string
}

var adminSeedBirthDate = time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)

// EnsureAdmin grants administrator rights to the account registered under
// seed.Email, signing it up first when it does not exist yet. An existing
// account keeps its password.
func (s *AccountService) EnsureAdmin(ctx context.Context, seed AdminSeed) (account.Account, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccountService.EnsureAdmin")
	defer span.End()

	email, err := account.NormalizeEmail(seed.Email)
	if err != nil {
		return account.Account{}, invalid(err)
	}

	acc, ok, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "get account by email")
	}
	if !ok {
		genres, err := s.categoryRepo.ListGenres(ctx)
		if err != nil {
			return account.Account{}, errors.Wrap(err, "list genres")
		}
		if len(genres) == 0 {
			return account.Account{}, errors.Newf("%w: no genre to attach the admin player to", ErrInvalidInput)
		}
		created, err := s.Signup(ctx, SignupInput{
			Surname:              "Admin",
			GivenName:            "Club",
			BirthDate:            adminSeedBirthDate,
			GenreID:              genres[0].ID,
			Email:                email,
			Phone:                "-",
			Password:             seed.Password,
			PasswordConfirmation: seed.Password,
		})
		if err != nil {
			return account.Account{}, err
		}
		acc = created.Account
	}
	if acc.IsAdmin {
		return acc, nil
	}

	found, err := s.repo.SetAdmin(ctx, acc.ID, true)
	if err != nil {
		return account.Account{}, errors.Wrap(err, "set admin")
	}
	if !found {
		return account.Account{}, errors.Newf("%w: account %d", ErrNotFound, acc.ID)
	}
	acc.IsAdmin = true
	s.logger.InfoContext(ctx, "admin account ensured", "account_id", acc.ID)
	return acc, nil
}

func principalOf(acc account.Account, sessionID string) account.Principal {
	return account.Principal{
		AccountID: acc.ID,
		PlayerID:  acc.PlayerID,
		SessionID: sessionID,
		IsAdmin:   acc.IsAdmin,
	}
}
