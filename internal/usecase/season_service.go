package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/season"
)

type SeasonService struct {
	repo season.Repository
}

func NewSeasonService(repo season.Repository) *SeasonService {
	return &SeasonService{repo: repo}
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list seasons")
	}
	return items, nil
}

func (s *SeasonService) Get(ctx context.Context, id int64) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return season.Season{}, errors.Wrap(err, "get season")
	}
	if !ok {
		return season.Season{}, errors.Newf("%w: season=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *SeasonService) Create(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	if err := item.Normalize(); err != nil {
		return season.Season{}, invalid(err)
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if errors.Is(err, season.ErrDuplicatePeriod) {
		return season.Season{}, conflict(err)
	}
	if err != nil {
		return season.Season{}, errors.Wrap(err, "create season")
	}
	return created, nil
}

func (s *SeasonService) Update(ctx context.Context, item season.Season) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	if err := item.Normalize(); err != nil {
		return season.Season{}, invalid(err)
	}
	updated, err := s.repo.Update(ctx, item)
	if errors.Is(err, season.ErrDuplicatePeriod) {
		return season.Season{}, conflict(err)
	}
	if err != nil {
		return season.Season{}, errors.Wrap(err, "update season")
	}
	if !updated {
		return season.Season{}, errors.Newf("%w: season=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

func (s *SeasonService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete season")
	}
	if !deleted {
		return errors.Newf("%w: season=%d", ErrNotFound, id)
	}
	return nil
}
