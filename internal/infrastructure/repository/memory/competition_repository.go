package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/competition"
)

type CompetitionRepository struct {
	store *Store
}

func NewCompetitionRepository(store *Store) *CompetitionRepository {
	return &CompetitionRepository{store: store}
}

func (r *CompetitionRepository) List(_ context.Context, filter competition.Filter) ([]competition.Competition, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.store.competitions))
	for _, item := range r.store.competitions {
		if !idMatches(filter.GenreID, item.GenreID) || !idMatches(filter.AgeCategoryID, item.AgeCategoryID) {
			continue
		}
		if !containsFold(item.Name, filter.Search) && !containsFold(item.Venue, filter.Search) {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id int64) (competition.Competition, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.competitions[id]
	return item, ok, nil
}

func (r *CompetitionRepository) Create(_ context.Context, item competition.Competition) (competition.Competition, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	r.store.competitions[item.ID] = item
	return item, nil
}

func (r *CompetitionRepository) Update(_ context.Context, item competition.Competition) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.competitions[item.ID]; !ok {
		return false, nil
	}
	r.store.competitions[item.ID] = item
	return true, nil
}

func (r *CompetitionRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.competitions[id]; !ok {
		return false, nil
	}
	delete(r.store.competitions, id)
	for key, m := range r.store.matches {
		if m.CompetitionID == id {
			delete(r.store.matches, key)
		}
	}
	return true, nil
}
