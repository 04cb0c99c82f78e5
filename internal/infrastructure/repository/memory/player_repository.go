package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context, filter player.Filter) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(r.store.players))
	for _, item := range r.store.players {
		if filter.GenreID != 0 && item.GenreID != filter.GenreID {
			continue
		}
		if !idMatches(filter.AgeCategoryID, item.AgeCategoryID) {
			continue
		}
		if !containsFold(item.Surname, filter.Search) && !containsFold(item.GivenName, filter.Search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Surname != out[j].Surname {
			return out[i].Surname < out[j].Surname
		}
		if out[i].GivenName != out[j].GivenName {
			return out[i].GivenName < out[j].GivenName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	r.store.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; !ok {
		return false, nil
	}
	r.store.players[item.ID] = item
	return true, nil
}

func (r *PlayerRepository) UpdateAgeCategory(_ context.Context, id int64, ageCategoryID *int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.players[id]
	if !ok {
		return nil
	}
	item.AgeCategoryID = copyInt64Ptr(ageCategoryID)
	r.store.players[id] = item
	return nil
}

// Delete removes the player. Accounts pointing at it lose their player link.
func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[id]; !ok {
		return false, nil
	}
	delete(r.store.players, id)
	for key, acc := range r.store.accounts {
		if acc.PlayerID == id {
			acc.PlayerID = 0
			r.store.accounts[key] = acc
		}
	}
	return true, nil
}
