package usecase

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/team"
)

type TeamService struct {
	repo         team.Repository
	categoryRepo category.Repository
}

func NewTeamService(repo team.Repository, categoryRepo category.Repository) *TeamService {
	return &TeamService{repo: repo, categoryRepo: categoryRepo}
}

func (s *TeamService) List(ctx context.Context, filter team.Filter) ([]team.OpposingTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	filter.Search = strings.TrimSpace(filter.Search)
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "list teams")
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, id int64) (team.OpposingTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return team.OpposingTeam{}, errors.Wrap(err, "get team")
	}
	if !ok {
		return team.OpposingTeam{}, errors.Newf("%w: team=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *TeamService) Create(ctx context.Context, item team.OpposingTeam) (team.OpposingTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	if err := item.Normalize(); err != nil {
		return team.OpposingTeam{}, invalid(err)
	}
	if err := checkCategoryRefs(ctx, s.categoryRepo, item.GenreID, item.AgeCategoryID); err != nil {
		return team.OpposingTeam{}, err
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return team.OpposingTeam{}, errors.Wrap(err, "create team")
	}
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, item team.OpposingTeam) (team.OpposingTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	if err := item.Normalize(); err != nil {
		return team.OpposingTeam{}, invalid(err)
	}
	if err := checkCategoryRefs(ctx, s.categoryRepo, item.GenreID, item.AgeCategoryID); err != nil {
		return team.OpposingTeam{}, err
	}
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return team.OpposingTeam{}, errors.Wrap(err, "update team")
	}
	if !updated {
		return team.OpposingTeam{}, errors.Newf("%w: team=%d", ErrNotFound, item.ID)
	}
	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete team")
	}
	if !deleted {
		return errors.Newf("%w: team=%d", ErrNotFound, id)
	}
	return nil
}
