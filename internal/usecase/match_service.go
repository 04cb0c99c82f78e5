package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/platform/pagination"
)

// MatchService manages match days and their opposing team links.
type MatchService struct {
	repo            match.Repository
	competitionRepo competition.Repository
	seasonRepo      season.Repository
	teamRepo        team.Repository
	resolver        *matchResolver
	pageSize        int
}

func NewMatchService(
	repo match.Repository,
	competitionRepo competition.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
	pageSize int,
) *MatchService {
	return &MatchService{
		repo:            repo,
		competitionRepo: competitionRepo,
		seasonRepo:      seasonRepo,
		teamRepo:        teamRepo,
		resolver:        newMatchResolver(competitionRepo, seasonRepo, teamRepo),
		pageSize:        pageSize,
	}
}

func (s *MatchService) List(ctx context.Context, filter match.Filter, page int) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	return listMatchPage(ctx, s.repo, s.resolver, filter, page, s.pageSize)
}

func (s *MatchService) Get(ctx context.Context, id int64) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	item, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MatchView{}, errors.Wrap(err, "get match")
	}
	if !ok {
		return MatchView{}, errors.Newf("%w: match=%d", ErrNotFound, id)
	}
	views, err := s.resolver.resolve(ctx, []match.Match{item})
	if err != nil {
		return MatchView{}, err
	}
	return views[0], nil
}

func (s *MatchService) Create(ctx context.Context, item match.Match) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return MatchView{}, err
	}
	item.ID = 0
	created, err := s.repo.Create(ctx, item)
	if errors.Is(err, match.ErrDuplicateOpposingTeam) || errors.Is(err, match.ErrInvalidMatch) {
		return MatchView{}, invalid(err)
	}
	if err != nil {
		return MatchView{}, errors.Wrap(err, "create match")
	}
	views, err := s.resolver.resolve(ctx, []match.Match{created})
	if err != nil {
		return MatchView{}, err
	}
	return views[0], nil
}

func (s *MatchService) Update(ctx context.Context, item match.Match) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	if err := s.prepare(ctx, &item); err != nil {
		return MatchView{}, err
	}
	updated, err := s.repo.Update(ctx, item)
	if errors.Is(err, match.ErrDuplicateOpposingTeam) || errors.Is(err, match.ErrInvalidMatch) {
		return MatchView{}, invalid(err)
	}
	if err != nil {
		return MatchView{}, errors.Wrap(err, "update match")
	}
	if !updated {
		return MatchView{}, errors.Newf("%w: match=%d", ErrNotFound, item.ID)
	}
	views, err := s.resolver.resolve(ctx, []match.Match{item})
	if err != nil {
		return MatchView{}, err
	}
	return views[0], nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "delete match")
	}
	if !deleted {
		return errors.Newf("%w: match=%d", ErrNotFound, id)
	}
	return nil
}

func (s *MatchService) prepare(ctx context.Context, item *match.Match) error {
	if err := item.Normalize(); err != nil {
		return invalid(err)
	}

	if _, ok, err := s.competitionRepo.GetByID(ctx, item.CompetitionID); err != nil {
		return errors.Wrap(err, "get competition")
	} else if !ok {
		return errors.Newf("%w: unknown competition=%d", ErrInvalidInput, item.CompetitionID)
	}
	if _, ok, err := s.seasonRepo.GetByID(ctx, item.SeasonID); err != nil {
		return errors.Wrap(err, "get season")
	} else if !ok {
		return errors.Newf("%w: unknown season=%d", ErrInvalidInput, item.SeasonID)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, item.OpposingTeamIDs)
	if err != nil {
		return errors.Wrap(err, "get teams")
	}
	if len(teams) != len(item.OpposingTeamIDs) {
		return errors.Newf("%w: unknown opposing team in %v", ErrInvalidInput, item.OpposingTeamIDs)
	}
	return nil
}

// listMatchPage counts, clamps and loads one page of matches.
func listMatchPage(
	ctx context.Context,
	repo match.Repository,
	resolver *matchResolver,
	filter match.Filter,
	requested, size int,
) (MatchPage, error) {
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return MatchPage{}, errors.Wrap(err, "count matches")
	}
	page := pagination.Clamp(requested, size, total)

	items, err := repo.List(ctx, filter, page.Size, page.Offset())
	if err != nil {
		return MatchPage{}, errors.Wrap(err, "list matches")
	}
	views, err := resolver.resolve(ctx, items)
	if err != nil {
		return MatchPage{}, err
	}
	return MatchPage{Items: views, Page: page}, nil
}
