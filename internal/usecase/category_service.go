package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
)

type CategoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListGenres(ctx context.Context) ([]category.Genre, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.ListGenres")
	defer span.End()

	items, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list genres")
	}
	return items, nil
}

func (s *CategoryService) GetGenre(ctx context.Context, id int64) (category.Genre, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.GetGenre")
	defer span.End()

	item, ok, err := s.repo.GetGenreByID(ctx, id)
	if err != nil {
		return category.Genre{}, errors.Wrap(err, "get genre")
	}
	if !ok {
		return category.Genre{}, errors.Newf("%w: genre=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CategoryService) CreateGenre(ctx context.Context, code string) (category.Genre, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.CreateGenre")
	defer span.End()

	parsed, err := category.ParseGenreCode(code)
	if err != nil {
		return category.Genre{}, invalid(err)
	}

	created, err := s.repo.CreateGenre(ctx, category.Genre{Code: parsed})
	if errors.Is(err, category.ErrDuplicateGenre) {
		return category.Genre{}, conflict(err)
	}
	if err != nil {
		return category.Genre{}, errors.Wrap(err, "create genre")
	}
	return created, nil
}

func (s *CategoryService) DeleteGenre(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.DeleteGenre")
	defer span.End()

	deleted, err := s.repo.DeleteGenre(ctx, id)
	if errors.Is(err, category.ErrGenreInUse) {
		return conflict(err)
	}
	if err != nil {
		return errors.Wrap(err, "delete genre")
	}
	if !deleted {
		return errors.Newf("%w: genre=%d", ErrNotFound, id)
	}
	return nil
}

// ListAgeCategories returns categories in bucketing order.
func (s *CategoryService) ListAgeCategories(ctx context.Context) ([]category.AgeCategory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.ListAgeCategories")
	defer span.End()

	items, err := s.repo.ListAgeCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list age categories")
	}
	return sortedAgeCategories(items), nil
}

func (s *CategoryService) GetAgeCategory(ctx context.Context, id int64) (category.AgeCategory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.GetAgeCategory")
	defer span.End()

	item, ok, err := s.repo.GetAgeCategoryByID(ctx, id)
	if err != nil {
		return category.AgeCategory{}, errors.Wrap(err, "get age category")
	}
	if !ok {
		return category.AgeCategory{}, errors.Newf("%w: age_category=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CategoryService) CreateAgeCategory(ctx context.Context, item category.AgeCategory) (category.AgeCategory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.CreateAgeCategory")
	defer span.End()

	if err := item.Validate(); err != nil {
		return category.AgeCategory{}, invalid(err)
	}
	item.ID = 0
	created, err := s.repo.CreateAgeCategory(ctx, item)
	if err != nil {
		return category.AgeCategory{}, errors.Wrap(err, "create age category")
	}
	return created, nil
}

func (s *CategoryService) UpdateAgeCategory(ctx context.Context, item category.AgeCategory) (category.AgeCategory, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.UpdateAgeCategory")
	defer span.End()

	if err := item.Validate(); err != nil {
		return category.AgeCategory{}, invalid(err)
	}
	updated, err := s.repo.UpdateAgeCategory(ctx, item)
	if err != nil {
		return category.AgeCategory{}, errors.Wrap(err, "update age category")
	}
	if !updated {
		return category.AgeCategory{}, errors.Newf("%w: age_category=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

func (s *CategoryService) DeleteAgeCategory(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CategoryService.DeleteAgeCategory")
	defer span.End()

	deleted, err := s.repo.DeleteAgeCategory(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete age category")
	}
	if !deleted {
		return errors.Newf("%w: age_category=%d", ErrNotFound, id)
	}
	return nil
}

// checkCategoryRefs verifies optional genre and age category links point at
// existing rows.
func checkCategoryRefs(ctx context.Context, repo category.Repository, genreID, ageCategoryID *int64) error {
	if genreID != nil {
		_, ok, err := repo.GetGenreByID(ctx, *genreID)
		if err != nil {
			return errors.Wrap(err, "get genre")
		}
		if !ok {
			return errors.Newf("%w: unknown genre=%d", ErrInvalidInput, *genreID)
		}
	}
	if ageCategoryID != nil {
		_, ok, err := repo.GetAgeCategoryByID(ctx, *ageCategoryID)
		if err != nil {
			return errors.Wrap(err, "get age category")
		}
		if !ok {
			return errors.Newf("%w: unknown age_category=%d", ErrInvalidInput, *ageCategoryID)
		}
	}
	return nil
}
