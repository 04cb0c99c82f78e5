package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

const accountEmailKey = "accounts_email_key"

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) CreateWithPlayer(ctx context.Context, p player.Player, a account.Account) (player.Player, account.Account, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return player.Player{}, account.Account{}, errors.Wrap(err, "begin tx create account")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	createdPlayer, err := insertPlayer(ctx, tx, p)
	if err != nil {
		return player.Player{}, account.Account{}, err
	}

	a.PlayerID = createdPlayer.ID
	insertModel := accountInsertModel{
		PlayerID:     sql.NullInt64{Int64: a.PlayerID, Valid: true},
		Email:        a.Email,
		Phone:        a.Phone,
		PasswordHash: a.PasswordHash,
		IsAdmin:      a.IsAdmin,
		CreatedAt:    a.CreatedAt,
	}
	query, args, err := qb.InsertModel("accounts", insertModel, "RETURNING id")
	if err != nil {
		return player.Player{}, account.Account{}, errors.Wrap(err, "build create account query")
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&a.ID); err != nil {
		if isUniqueViolation(err, accountEmailKey) {
			return player.Player{}, account.Account{}, account.ErrEmailTaken
		}
		return player.Player{}, account.Account{}, errors.Wrap(err, "create account")
	}

	if err := tx.Commit(); err != nil {
		return player.Player{}, account.Account{}, errors.Wrap(err, "commit create account tx")
	}
	return createdPlayer, a, nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, bool, error) {
	return r.getAccount(ctx, qb.Eq("email", email))
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (account.Account, bool, error) {
	return r.getAccount(ctx, qb.Eq("id", id))
}

func (r *AccountRepository) getAccount(ctx context.Context, cond qb.Condition) (account.Account, bool, error) {
	query, args, err := qb.Select("*").From("accounts").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return account.Account{}, false, errors.Wrap(err, "build get account query")
	}

	var row accountTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Account{}, false, nil
		}
		return account.Account{}, false, errors.Wrap(err, "get account")
	}
	return row.toDomain(), true, nil
}

// SetAdmin flags an existing account as administrator.
func (r *AccountRepository) SetAdmin(ctx context.Context, id int64, admin bool) (bool, error) {
	query, args, err := qb.Update("accounts").
		Set("is_admin", admin).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build set account admin query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "set account admin")
	}
	return rowsAffected(result, "set account admin")
}

func (r *AccountRepository) CreateSession(ctx context.Context, s account.Session) error {
	query, args, err := qb.InsertModel("sessions", sessionTableModel{
		ID:        s.ID,
		AccountID: s.AccountID,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
		RevokedAt: s.RevokedAt,
	}, "")
	if err != nil {
		return errors.Wrap(err, "build create session query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "create session")
	}
	return nil
}

func (r *AccountRepository) GetSession(ctx context.Context, id string) (account.Session, bool, error) {
	query, args, err := qb.Select("*").From("sessions").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return account.Session{}, false, errors.Wrap(err, "build get session query")
	}

	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return account.Session{}, false, nil
		}
		return account.Session{}, false, errors.Wrap(err, "get session")
	}
	return row.toDomain(), true, nil
}

// RevokeSession keeps the first revocation time.
func (r *AccountRepository) RevokeSession(ctx context.Context, id string, at time.Time) error {
	query, args, err := qb.Update("sessions").
		Set("revoked_at", at).
		Where(qb.Eq("id", id), qb.IsNull("revoked_at")).
		ToSQL()
	if err != nil {
		return errors.Wrap(err, "build revoke session query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "revoke session")
	}
	return nil
}
