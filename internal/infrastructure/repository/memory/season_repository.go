package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0, len(r.store.seasons))
	for _, item := range r.store.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period > out[j].Period })
	return out, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.seasons[id]
	return item, ok, nil
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.periodTaken(item.Period, 0) {
		return season.Season{}, season.ErrDuplicatePeriod
	}
	item.ID = r.store.nextID()
	r.store.seasons[item.ID] = item
	return item, nil
}

func (r *SeasonRepository) Update(_ context.Context, item season.Season) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.seasons[item.ID]; !ok {
		return false, nil
	}
	if r.periodTaken(item.Period, item.ID) {
		return false, season.ErrDuplicatePeriod
	}
	r.store.seasons[item.ID] = item
	return true, nil
}

func (r *SeasonRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.seasons[id]; !ok {
		return false, nil
	}
	delete(r.store.seasons, id)
	for key, m := range r.store.matches {
		if m.SeasonID == id {
			delete(r.store.matches, key)
		}
	}
	return true, nil
}

func (r *SeasonRepository) periodTaken(period string, exceptID int64) bool {
	for _, item := range r.store.seasons {
		if item.Period == period && item.ID != exceptID {
			return true
		}
	}
	return false
}
