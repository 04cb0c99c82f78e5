package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/honors"
)

type HonorsRepository struct {
	store *Store
}

func NewHonorsRepository(store *Store) *HonorsRepository {
	return &HonorsRepository{store: store}
}

func (r *HonorsRepository) List(_ context.Context, filter honors.Filter, limit, offset int) ([]honors.Record, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.filterLocked(filter)
	if offset > 0 {
		if offset >= len(items) {
			return []honors.Record{}, nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *HonorsRepository) Count(_ context.Context, filter honors.Filter) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.filterLocked(filter)), nil
}

func (r *HonorsRepository) GetByID(_ context.Context, id int64) (honors.Record, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.honors[id]
	return item, ok, nil
}

func (r *HonorsRepository) Create(_ context.Context, item honors.Record) (honors.Record, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	r.store.honors[item.ID] = item
	return item, nil
}

func (r *HonorsRepository) Update(_ context.Context, item honors.Record) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.honors[item.ID]; !ok {
		return false, nil
	}
	r.store.honors[item.ID] = item
	return true, nil
}

func (r *HonorsRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.honors[id]; !ok {
		return false, nil
	}
	delete(r.store.honors, id)
	return true, nil
}

func (r *HonorsRepository) filterLocked(filter honors.Filter) []honors.Record {
	out := make([]honors.Record, 0, len(r.store.honors))
	for _, item := range r.store.honors {
		if filter.Year != 0 && item.Year != filter.Year {
			continue
		}
		if filter.GenreID != 0 && item.GenreID != filter.GenreID {
			continue
		}
		if !containsFold(item.Title, filter.Search) && !containsFold(item.Competition, filter.Search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].ID < out[j].ID
	})
	return out
}
