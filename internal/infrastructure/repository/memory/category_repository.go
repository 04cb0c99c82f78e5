package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/club-manager/internal/domain/category"
)

type CategoryRepository struct {
	store *Store
}

func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) ListGenres(_ context.Context) ([]category.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]category.Genre, 0, len(r.store.genres))
	for _, item := range r.store.genres {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CategoryRepository) GetGenreByID(_ context.Context, id int64) (category.Genre, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.genres[id]
	return item, ok, nil
}

func (r *CategoryRepository) GetGenreByCode(_ context.Context, code category.GenreCode) (category.Genre, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.genres {
		if item.Code == code {
			return item, true, nil
		}
	}
	return category.Genre{}, false, nil
}

func (r *CategoryRepository) CreateGenre(_ context.Context, genre category.Genre) (category.Genre, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.genres {
		if item.Code == genre.Code {
			return category.Genre{}, category.ErrDuplicateGenre
		}
	}
	genre.ID = r.store.nextID()
	r.store.genres[genre.ID] = genre
	return genre, nil
}

func (r *CategoryRepository) DeleteGenre(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.genres[id]; !ok {
		return false, nil
	}
	for _, p := range r.store.players {
		if p.GenreID == id {
			return false, category.ErrGenreInUse
		}
	}
	for _, h := range r.store.honors {
		if h.GenreID == id {
			return false, category.ErrGenreInUse
		}
	}

	delete(r.store.genres, id)
	for key, c := range r.store.competitions {
		if c.GenreID != nil && *c.GenreID == id {
			c.GenreID = nil
			r.store.competitions[key] = c
		}
	}
	for key, t := range r.store.teams {
		if t.GenreID != nil && *t.GenreID == id {
			t.GenreID = nil
			r.store.teams[key] = t
		}
	}
	return true, nil
}

func (r *CategoryRepository) ListAgeCategories(_ context.Context) ([]category.AgeCategory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]category.AgeCategory, 0, len(r.store.ageCategories))
	for _, item := range r.store.ageCategories {
		out = append(out, item)
	}
	category.SortAgeCategories(out)
	return out, nil
}

func (r *CategoryRepository) GetAgeCategoryByID(_ context.Context, id int64) (category.AgeCategory, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.ageCategories[id]
	return item, ok, nil
}

func (r *CategoryRepository) CreateAgeCategory(_ context.Context, item category.AgeCategory) (category.AgeCategory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item.ID = r.store.nextID()
	r.store.ageCategories[item.ID] = item
	return item, nil
}

func (r *CategoryRepository) UpdateAgeCategory(_ context.Context, item category.AgeCategory) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.ageCategories[item.ID]; !ok {
		return false, nil
	}
	r.store.ageCategories[item.ID] = item
	return true, nil
}

func (r *CategoryRepository) DeleteAgeCategory(_ context.Context, id int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.ageCategories[id]; !ok {
		return false, nil
	}
	delete(r.store.ageCategories, id)
	for key, c := range r.store.competitions {
		if c.AgeCategoryID != nil && *c.AgeCategoryID == id {
			c.AgeCategoryID = nil
			r.store.competitions[key] = c
		}
	}
	for key, t := range r.store.teams {
		if t.AgeCategoryID != nil && *t.AgeCategoryID == id {
			t.AgeCategoryID = nil
			r.store.teams[key] = t
		}
	}
	for key, p := range r.store.players {
		if p.AgeCategoryID != nil && *p.AgeCategoryID == id {
			p.AgeCategoryID = nil
			r.store.players[key] = p
		}
	}
	return true, nil
}
