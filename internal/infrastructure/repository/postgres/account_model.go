package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/account"
)

type accountTableModel struct {
	ID           int64         `db:"id"`
	PlayerID     sql.NullInt64 `db:"player_id"`
	Email        string        `db:"email"`
	Phone        string        `db:"phone"`
	PasswordHash string        `db:"password_hash"`
	IsAdmin      bool          `db:"is_admin"`
	CreatedAt    time.Time     `db:"created_at"`
}

type accountInsertModel struct {
	PlayerID     sql.NullInt64 `db:"player_id"`
	Email        string        `db:"email"`
	Phone        string        `db:"phone"`
	PasswordHash string        `db:"password_hash"`
	IsAdmin      bool          `db:"is_admin"`
	CreatedAt    time.Time     `db:"created_at"`
}

func (m accountTableModel) toDomain() account.Account {
	return account.Account{
		ID:           m.ID,
		PlayerID:     m.PlayerID.Int64,
		Email:        m.Email,
		Phone:        m.Phone,
		PasswordHash: m.PasswordHash,
		IsAdmin:      m.IsAdmin,
		CreatedAt:    m.CreatedAt,
	}
}

type sessionTableModel struct {
	ID        string     `db:"id"`
	AccountID int64      `db:"account_id"`
	IssuedAt  time.Time  `db:"issued_at"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

func (m sessionTableModel) toDomain() account.Session {
	return account.Session{
		ID:        m.ID,
		AccountID: m.AccountID,
		IssuedAt:  m.IssuedAt,
		ExpiresAt: m.ExpiresAt,
		RevokedAt: m.RevokedAt,
	}
}
