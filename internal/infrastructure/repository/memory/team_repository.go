package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/team"
)

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) List(_ context.Context, filter team.Filter) ([]team.OpposingTeam, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.OpposingTeam, 0, len(r.store.teams))
	for _, item := range r.store.teams {
		if !idMatches(filter.GenreID, item.GenreID) || !idMatches(filter.AgeCategoryID, item.AgeCategoryID) {
			continue
		}
		if !containsFold(item.Name, filter.Search) {
			continue
		}
		out = append(out, item)
	}
	sortTeams(out)
	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.OpposingTeam, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[id]
	return item, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, ids []int64) ([]team.OpposingTeam, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]team.OpposingTeam, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.store.teams[id]; ok {
			out = append(out, item)
		}
	}
	sortTeams(out)
	return out, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.OpposingTeam) (team.OpposingTeam, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	r.store.teams[item.ID] = item
	return item, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.OpposingTeam) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[item.ID]; !ok {
		return false, nil
	}
	r.store.teams[item.ID] = item
	return true, nil
}

func (r *TeamRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.teams[id]; !ok {
		return false, nil
	}
	delete(r.store.teams, id)
	for key, m := range r.store.matches {
		if idx := slices.Index(m.OpposingTeamIDs, id); idx >= 0 {
			m = cloneMatch(m)
			m.OpposingTeamIDs = slices.Delete(m.OpposingTeamIDs, idx, idx+1)
			r.store.matches[key] = m
		}
	}
	return true, nil
}

func sortTeams(items []team.OpposingTeam) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
