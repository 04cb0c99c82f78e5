package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
)

type CompetitionService struct {
	repo         competition.Repository
	categoryRepo category.Repository
}

func NewCompetitionService(repo competition.Repository, categoryRepo category.Repository) *CompetitionService {
	return &CompetitionService{repo: repo, categoryRepo: categoryRepo}
}

func (s *CompetitionService) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list competitions")
	}
	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, id int64) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return competition.Competition{}, errors.Wrap(err, "get competition")
	}
	if !ok {
		return competition.Competition{}, errors.Newf("%w: competition=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *CompetitionService) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Create")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return competition.Competition{}, err
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return competition.Competition{}, errors.Wrap(err, "create competition")
	}
	return created, nil
}

func (s *CompetitionService) Update(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Update")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return competition.Competition{}, err
	}
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return competition.Competition{}, errors.Wrap(err, "update competition")
	}
	if !updated {
		return competition.Competition{}, errors.Newf("%w: competition=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

// Delete removes the competition together with its matches.
func (s *CompetitionService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete competition")
	}
	if !deleted {
		return errors.Newf("%w: competition=%d", ErrNotFound, id)
	}
	return nil
}

func (s *CompetitionService) prepare(ctx context.Context, item *competition.Competition) error {
	if err := item.Normalize(); err != nil {
		return invalid(err)
	}
	return checkCategoryRefs(ctx, s.categoryRepo, item.GenreID, item.AgeCategoryID)
}
