package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/platform/pagination"
)

type HonorsPage struct {
	Items []honors.Record
	Page  pagination.Page
}

type HonorsService struct {
	repo         honors.Repository
	categoryRepo category.Repository
	pageSize     int
	now          func() time.Time
}

func NewHonorsService(repo honors.Repository, categoryRepo category.Repository, pageSize int) *HonorsService {
	return &HonorsService{
		repo:         repo,
		categoryRepo: categoryRepo,
		pageSize:     pageSize,
		now:          time.Now,
	}
}

func (s *HonorsService) List(ctx context.Context, filter honors.Filter, page int) (HonorsPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HonorsService.List")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	return listHonorsPage(ctx, s.repo, filter, page, s.pageSize)
}

func (s *HonorsService) Get(ctx context.Context, id int64) (honors.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HonorsService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return honors.Record{}, errors.Wrap(err, "get honors record")
	}
	if !ok {
		return honors.Record{}, errors.Newf("%w: honors=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *HonorsService) Create(ctx context.Context, item honors.Record) (honors.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HonorsService.Create")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return honors.Record{}, err
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return honors.Record{}, errors.Wrap(err, "create honors record")
	}
	return created, nil
}

func (s *HonorsService) Update(ctx context.Context, item honors.Record) (honors.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HonorsService.Update")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return honors.Record{}, err
	}
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return honors.Record{}, errors.Wrap(err, "update honors record")
	}
	if !updated {
		return honors.Record{}, errors.Newf("%w: honors=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

func (s *HonorsService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.HonorsService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete honors record")
	}
	if !deleted {
		return errors.Newf("%w: honors=%d", ErrNotFound, id)
	}
	return nil
}

func (s *HonorsService) prepare(ctx context.Context, item *honors.Record) error {
	if err := item.Normalize(s.now().UTC()); err != nil {
		return invalid(err)
	}
	genreID := item.GenreID
	return checkCategoryRefs(ctx, s.categoryRepo, &genreID, nil)
}

func listHonorsPage(ctx context.Context, repo honors.Repository, filter honors.Filter, requested, size int) (HonorsPage, error) {
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return HonorsPage{}, errors.Wrap(err, "count honors")
	}
	page := pagination.Clamp(requested, size, total)

	items, err := repo.List(ctx, filter, page.Size, page.Offset())
	if err != nil {
		return HonorsPage{}, errors.Wrap(err, "list honors")
	}
	return HonorsPage{Items: items, Page: page}, nil
}
