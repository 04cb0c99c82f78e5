package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/match"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func (r *MatchRepository) List(_ context.Context, filter match.Filter, limit, offset int) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := r.filterLocked(filter)
	if offset > 0 {
		if offset >= len(items) {
			return []match.Match{}, nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (r *MatchRepository) Count(_ context.Context, filter match.Filter) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.filterLocked(filter)), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matches[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return cloneMatch(item), true, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkLinksLocked(item); err != nil {
		return match.Match{}, err
	}
	item.ID = r.store.nextID()
	r.store.matches[item.ID] = cloneMatch(item)
	return cloneMatch(item), nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[item.ID]; !ok {
		return false, nil
	}
	if err := r.checkLinksLocked(item); err != nil {
		return false, err
	}
	r.store.matches[item.ID] = cloneMatch(item)
	return true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matches[id]; !ok {
		return false, nil
	}
	delete(r.store.matches, id)
	return true, nil
}

func (r *MatchRepository) checkLinksLocked(item match.Match) error {
	seen := make(map[int64]struct{}, len(item.OpposingTeamIDs))
	for _, id := range item.OpposingTeamIDs {
		if _, dup := seen[id]; dup {
			return match.ErrDuplicateOpposingTeam
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (r *MatchRepository) filterLocked(filter match.Filter) []match.Match {
	out := make([]match.Match, 0, len(r.store.matches))
	for _, m := range r.store.matches {
		if filter.SeasonID != 0 && m.SeasonID != filter.SeasonID {
			continue
		}
		if filter.CompetitionID != 0 && m.CompetitionID != filter.CompetitionID {
			continue
		}
		if filter.Before != nil && !m.PlayedAt.Before(*filter.Before) {
			continue
		}
		if filter.From != nil && m.PlayedAt.Before(*filter.From) {
			continue
		}
		if filter.GenreID != 0 || filter.AgeCategoryID != 0 || filter.AgeCategoryUnset {
			c, ok := r.store.competitions[m.CompetitionID]
			if !ok || !idMatches(filter.GenreID, c.GenreID) {
				continue
			}
			if filter.AgeCategoryUnset {
				if c.AgeCategoryID != nil {
					continue
				}
			} else if !idMatches(filter.AgeCategoryID, c.AgeCategoryID) {
				continue
			}
		}
		out = append(out, cloneMatch(m))
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlayedAt.Equal(out[j].PlayedAt) {
			if filter.Ascending {
				return out[i].PlayedAt.Before(out[j].PlayedAt)
			}
			return out[i].PlayedAt.After(out[j].PlayedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
