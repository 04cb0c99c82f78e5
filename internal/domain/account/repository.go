package account

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/player"
)

// Repository describes account and session persistence needs from use cases.
type Repository interface {
	// CreateWithPlayer stores the player and the account in one transaction
	// and returns both with their assigned ids.
	CreateWithPlayer(ctx context.Context, p player.Player, a Account) (player.Player, Account, error)
	GetByEmail(ctx context.Context, email string) (Account, bool, error)
	GetByID(ctx context.Context, id int64) (Account, bool, error)
	// SetAdmin reports false when no account has the id.
	SetAdmin(ctx context.Context, id int64, admin bool) (bool, error)

	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, id string) (Session, bool, error)
	RevokeSession(ctx context.Context, id string, at time.Time) error
}
