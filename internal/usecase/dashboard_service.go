package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

const dashboardMatchLimit = 5

// ErrPlayerNotLinked is returned when an authenticated account has no player
// record behind it.
var ErrPlayerNotLinked = errors.New("no player linked to this account")

type Dashboard struct {
	Player      player.Player
	Age         int
	Genre       category.Genre
	AgeCategory *category.AgeCategory
	Stats       match.Stats
	Upcoming    []MatchView
	Recent      []MatchView
}

type DashboardService struct {
	playerRepo   player.Repository
	categoryRepo category.Repository
	matchRepo    match.Repository
	resolver     *matchResolver
	now          func() time.Time
}

func NewDashboardService(
	playerRepo player.Repository,
	categoryRepo category.Repository,
	matchRepo match.Repository,
	competitionRepo competition.Repository,
	seasonRepo season.Repository,
	teamRepo team.Repository,
) *DashboardService {
	return &DashboardService{
		playerRepo:   playerRepo,
		categoryRepo: categoryRepo,
		matchRepo:    matchRepo,
		resolver:     newMatchResolver(competitionRepo, seasonRepo, teamRepo),
		now:          time.Now,
	}
}

// Get builds the member dashboard for the principal's player. Statistics and
// match lists are scoped to the player's genre and age category.
func (s *DashboardService) Get(ctx context.Context, principal account.Principal) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	if principal.AccountID <= 0 {
		return Dashboard{}, errors.Newf("%w: no active session", ErrUnauthorized)
	}
	if principal.PlayerID <= 0 {
		return Dashboard{}, ErrPlayerNotLinked
	}
	p, ok, err := s.playerRepo.GetByID(ctx, principal.PlayerID)
	if err != nil {
		return Dashboard{}, errors.Wrap(err, "get player")
	}
	if !ok {
		return Dashboard{}, errors.Wrapf(ErrPlayerNotLinked, "player=%d", principal.PlayerID)
	}

	now := s.now().UTC()
	out := Dashboard{Player: p, Age: p.Age(now)}
	filter := match.Filter{GenreID: p.GenreID}
	if p.AgeCategoryID != nil {
		filter.AgeCategoryID = *p.AgeCategoryID
	} else {
		filter.AgeCategoryUnset = true
	}

	var upcoming, recent []match.Match
	tasks := pool.New().WithContext(ctx).WithCancelOnError()
	tasks.Go(func(ctx context.Context) error {
		genre, ok, err := s.categoryRepo.GetGenreByID(ctx, p.GenreID)
		if err != nil {
			return errors.Wrap(err, "get genre")
		}
		if ok {
			out.Genre = genre
		}
		return nil
	})
	if p.AgeCategoryID != nil {
		tasks.Go(func(ctx context.Context) error {
			ageCategory, ok, err := s.categoryRepo.GetAgeCategoryByID(ctx, *p.AgeCategoryID)
			if err != nil {
				return errors.Wrap(err, "get age category")
			}
			if ok {
				out.AgeCategory = &ageCategory
			}
			return nil
		})
	}
	tasks.Go(func(ctx context.Context) error {
		all, err := s.matchRepo.List(ctx, filter, 0, 0)
		if err != nil {
			return errors.Wrap(err, "list category matches")
		}
		out.Stats = match.ComputeStats(all, now)
		return nil
	})
	tasks.Go(func(ctx context.Context) error {
		f := filter
		f.From = &now
		f.Ascending = true
		items, err := s.matchRepo.List(ctx, f, dashboardMatchLimit, 0)
		if err != nil {
			return errors.Wrap(err, "list upcoming matches")
		}
		upcoming = items
		return nil
	})
	tasks.Go(func(ctx context.Context) error {
		f := filter
		f.Before = &now
		items, err := s.matchRepo.List(ctx, f, dashboardMatchLimit, 0)
		if err != nil {
			return errors.Wrap(err, "list recent matches")
		}
		recent = items
		return nil
	})
	if err := tasks.Wait(); err != nil {
		return Dashboard{}, err
	}

	if out.Upcoming, err = s.resolver.resolve(ctx, upcoming); err != nil {
		return Dashboard{}, err
	}
	if out.Recent, err = s.resolver.resolve(ctx, recent); err != nil {
		return Dashboard{}, err
	}
	return out, nil
}
