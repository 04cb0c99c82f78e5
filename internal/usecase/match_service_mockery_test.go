package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	matchmock "github.com/riskibarqy/club-manager/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMatchService_Create_UsingMockery(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	matchRepo := matchmock.NewRepository(t)
	svc := NewMatchService(matchRepo, repos.competitions, repos.seasons, repos.teams, 10)
	ctx := context.Background()

	comps, err := repos.competitions.List(ctx, competition.Filter{})
	require.NoError(t, err)
	seasons, err := repos.seasons.List(ctx)
	require.NoError(t, err)
	teams, err := repos.teams.List(ctx, teamFilterAll())
	require.NoError(t, err)

	input := match.Match{
		PlayedAt:        time.Date(2025, 4, 2, 20, 0, 0, 0, time.UTC),
		Venue:           "Gym",
		CompetitionID:   comps[0].ID,
		SeasonID:        seasons[0].ID,
		OpposingTeamIDs: []int64{teams[0].ID},
		SetsClub:        intPtr(3),
		SetsOpponent:    intPtr(2),
	}
	input.Sets[0] = match.SetScore{Club: intPtr(25), Opponent: intPtr(23)}

	matchRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(m match.Match) bool { return m.ID == 0 && m.Venue == "Gym" })).
		Return(func(_ context.Context, m match.Match) (match.Match, error) {
			m.ID = 77
			return m, nil
		}).
		Once()

	view, err := svc.Create(ctx, input)
	require.NoError(t, err)
	require.Equal(t, int64(77), view.Match.ID)
	require.Equal(t, match.ResultWin, view.Result)
	require.Equal(t, "25-23", view.Score)
	require.Equal(t, comps[0].Name, view.Competition.Name)
	require.Len(t, view.OpposingTeams, 1)
}

func TestMatchService_Create_RejectsBeforeStoringUsingMockery(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	matchRepo := matchmock.NewRepository(t)
	svc := NewMatchService(matchRepo, repos.competitions, repos.seasons, repos.teams, 10)
	ctx := context.Background()

	comps, _ := repos.competitions.List(ctx, competition.Filter{})
	seasons, _ := repos.seasons.List(ctx)
	teams, _ := repos.teams.List(ctx, teamFilterAll())
	base := func() match.Match {
		return match.Match{
			PlayedAt:        testNow,
			Venue:           "Gym",
			CompetitionID:   comps[0].ID,
			SeasonID:        seasons[0].ID,
			OpposingTeamIDs: []int64{teams[0].ID},
		}
	}

	cases := map[string]func(*match.Match){
		"half set":          func(m *match.Match) { m.Sets[1] = match.SetScore{Club: intPtr(25)} },
		"duplicate team":    func(m *match.Match) { m.OpposingTeamIDs = []int64{teams[0].ID, teams[0].ID} },
		"unknown team":      func(m *match.Match) { m.OpposingTeamIDs = []int64{9999} },
		"unknown season":    func(m *match.Match) { m.SeasonID = 9999 },
		"unknown contest":   func(m *match.Match) { m.CompetitionID = 9999 },
		"total above three": func(m *match.Match) { m.SetsOpponent = intPtr(4) },
	}
	for name, mutate := range cases {
		in := base()
		mutate(&in)
		_, err := svc.Create(ctx, in)
		require.Truef(t, errors.Is(err, ErrInvalidInput), "%s: got %v", name, err)
	}
}

func TestMatchService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	matchRepo := matchmock.NewRepository(t)
	svc := NewMatchService(matchRepo, repos.competitions, repos.seasons, repos.teams, 10)

	matchRepo.On("GetByID", mock.Anything, int64(5)).Return(match.Match{}, false, nil).Once()

	_, err := svc.Get(context.Background(), 5)
	require.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
