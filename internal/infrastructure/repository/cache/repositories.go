package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	basecache "github.com/riskibarqy/club-manager/internal/platform/cache"
)

// Every catalog entry lives under this prefix. Catalog writes cascade across
// tables (a deleted genre clears competition and team links), so any write
// drops the whole catalog rather than tracking individual keys.
const catalogPrefix = "catalog:"

func catalogKey(parts ...string) string {
	return catalogPrefix + basecache.Key(parts...)
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func invalidateCatalog(ctx context.Context, store *basecache.Store) {
	store.DeletePrefix(ctx, catalogPrefix)
}

type cachedLookup[T any] struct {
	value  T
	exists bool
}

func getOrLoadLookup[T any](
	ctx context.Context,
	store *basecache.Store,
	key string,
	load func(context.Context) (T, bool, error),
) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedLookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedLookup[T])
	return cached.value, cached.exists, nil
}

func getOrLoadList[T any](
	ctx context.Context,
	store *basecache.Store,
	key string,
	load func(context.Context) ([]T, error),
) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

type CategoryRepository struct {
	next  category.Repository
	cache *basecache.Store
}

func NewCategoryRepository(next category.Repository, cache *basecache.Store) *CategoryRepository {
	return &CategoryRepository{next: next, cache: cache}
}

func (r *CategoryRepository) ListGenres(ctx context.Context) ([]category.Genre, error) {
	return getOrLoadList(ctx, r.cache, catalogKey("genre", "list"), r.next.ListGenres)
}

func (r *CategoryRepository) GetGenreByID(ctx context.Context, id int64) (category.Genre, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("genre", "id", idKey(id)), func(ctx context.Context) (category.Genre, bool, error) {
		return r.next.GetGenreByID(ctx, id)
	})
}

func (r *CategoryRepository) GetGenreByCode(ctx context.Context, code category.GenreCode) (category.Genre, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("genre", "code", string(code)), func(ctx context.Context) (category.Genre, bool, error) {
		return r.next.GetGenreByCode(ctx, code)
	})
}

func (r *CategoryRepository) CreateGenre(ctx context.Context, genre category.Genre) (category.Genre, error) {
	created, err := r.next.CreateGenre(ctx, genre)
	if err != nil {
		return category.Genre{}, err
	}
	invalidateCatalog(ctx, r.cache)
	return created, nil
}

func (r *CategoryRepository) DeleteGenre(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.DeleteGenre(ctx, id)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return deleted, nil
}

func (r *CategoryRepository) ListAgeCategories(ctx context.Context) ([]category.AgeCategory, error) {
	return getOrLoadList(ctx, r.cache, catalogKey("age", "list"), r.next.ListAgeCategories)
}

func (r *CategoryRepository) GetAgeCategoryByID(ctx context.Context, id int64) (category.AgeCategory, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("age", "id", idKey(id)), func(ctx context.Context) (category.AgeCategory, bool, error) {
		return r.next.GetAgeCategoryByID(ctx, id)
	})
}

func (r *CategoryRepository) CreateAgeCategory(ctx context.Context, item category.AgeCategory) (category.AgeCategory, error) {
	created, err := r.next.CreateAgeCategory(ctx, item)
	if err != nil {
		return category.AgeCategory{}, err
	}
	invalidateCatalog(ctx, r.cache)
	return created, nil
}

func (r *CategoryRepository) UpdateAgeCategory(ctx context.Context, item category.AgeCategory) (bool, error) {
	updated, err := r.next.UpdateAgeCategory(ctx, item)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return updated, nil
}

func (r *CategoryRepository) DeleteAgeCategory(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.DeleteAgeCategory(ctx, id)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return deleted, nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	return getOrLoadList(ctx, r.cache, catalogKey("season", "list"), r.next.List)
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("season", "id", idKey(id)), func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return season.Season{}, err
	}
	invalidateCatalog(ctx, r.cache)
	return created, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) (bool, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return updated, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return deleted, nil
}

type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	key := catalogKey("competition", "list", idKey(filter.GenreID), idKey(filter.AgeCategoryID), strings.ToLower(filter.Search))
	return getOrLoadList(ctx, r.cache, key, func(ctx context.Context) ([]competition.Competition, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("competition", "id", idKey(id)), func(ctx context.Context) (competition.Competition, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *CompetitionRepository) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return competition.Competition{}, err
	}
	invalidateCatalog(ctx, r.cache)
	return created, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, item competition.Competition) (bool, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return updated, nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return deleted, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.OpposingTeam, error) {
	key := catalogKey("team", "list", idKey(filter.GenreID), idKey(filter.AgeCategoryID), strings.ToLower(filter.Search))
	return getOrLoadList(ctx, r.cache, key, func(ctx context.Context) ([]team.OpposingTeam, error) {
		return r.next.List(ctx, filter)
	})
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.OpposingTeam, bool, error) {
	return getOrLoadLookup(ctx, r.cache, catalogKey("team", "id", idKey(id)), func(ctx context.Context) (team.OpposingTeam, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []int64) ([]team.OpposingTeam, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, idKey(id))
	}

	key := catalogKey("team", "ids", strings.Join(parts, ","))
	return getOrLoadList(ctx, r.cache, key, func(ctx context.Context) ([]team.OpposingTeam, error) {
		return r.next.GetByIDs(ctx, sorted)
	})
}

func (r *TeamRepository) Create(ctx context.Context, item team.OpposingTeam) (team.OpposingTeam, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.OpposingTeam{}, err
	}
	invalidateCatalog(ctx, r.cache)
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.OpposingTeam) (bool, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return updated, nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	invalidateCatalog(ctx, r.cache)
	return deleted, nil
}
