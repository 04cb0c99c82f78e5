package memory

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/player"
)

type AccountRepository struct {
	store *Store
}

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) CreateWithPlayer(_ context.Context, p player.Player, a account.Account) (player.Player, account.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.accounts {
		if existing.Email == a.Email {
			return player.Player{}, account.Account{}, account.ErrEmailTaken
		}
	}

	p.ID = r.store.nextID()
	r.store.players[p.ID] = p

	a.ID = r.store.nextID()
	a.PlayerID = p.ID
	r.store.accounts[a.ID] = a
	return p, a, nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (account.Account, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.accounts {
		if item.Email == email {
			return item, true, nil
		}
	}
	return account.Account{}, false, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id int64) (account.Account, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.accounts[id]
	return item, ok, nil
}

func (r *AccountRepository) CreateSession(_ context.Context, s account.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[s.ID] = s
	return nil
}

func (r *AccountRepository) GetSession(_ context.Context, id string) (account.Session, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.sessions[id]
	return item, ok, nil
}

func (r *AccountRepository) RevokeSession(_ context.Context, id string, at time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.sessions[id]
	if !ok || item.RevokedAt != nil {
		return nil
	}
	item.RevokedAt = &at
	r.store.sessions[id] = item
	return nil
}

// SetAdmin flags an existing account as administrator.
func (r *AccountRepository) SetAdmin(_ context.Context, id int64, admin bool) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.accounts[id]
	if !ok {
		return false, nil
	}
	item.IsAdmin = admin
	r.store.accounts[id] = item
	return true, nil
}
