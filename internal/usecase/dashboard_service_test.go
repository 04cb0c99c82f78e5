package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/stretchr/testify/require"
)

func newTestDashboardService(repos testRepos) *DashboardService {
	svc := NewDashboardService(repos.players, repos.categories, repos.matches, repos.competitions, repos.seasons, repos.teams)
	svc.now = fixedClock
	return svc
}

func seededPlayer(t *testing.T, repos testRepos, surname string) player.Player {
	t.Helper()

	items, err := repos.players.List(context.Background(), player.Filter{Search: surname})
	require.NoError(t, err)
	require.Len(t, items, 1)
	return items[0]
}

func TestDashboardService_Get(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestDashboardService(repos)
	martin := seededPlayer(t, repos, "Martin")

	got, err := svc.Get(context.Background(), account.Principal{AccountID: 1, PlayerID: martin.ID})
	require.NoError(t, err)
	require.Equal(t, 24, got.Age)
	require.NotNil(t, got.AgeCategory)
	require.Equal(t, "Seniors", got.AgeCategory.Name)
	require.Equal(t, "Men", got.Genre.Label())

	require.Equal(t, match.Stats{Played: 2, Wins: 1, Losses: 1, WinPercentage: 50}, got.Stats)
	require.Len(t, got.Upcoming, 1)
	require.Len(t, got.Recent, 2)
	require.True(t, got.Recent[0].Match.PlayedAt.After(got.Recent[1].Match.PlayedAt))
	require.Len(t, got.Upcoming[0].OpposingTeams, 2)
}

func TestDashboardService_Get_UnassignedCategory(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestDashboardService(repos)
	ctx := context.Background()
	martin := seededPlayer(t, repos, "Martin")
	require.NoError(t, repos.players.UpdateAgeCategory(ctx, martin.ID, nil))

	got, err := svc.Get(ctx, account.Principal{AccountID: 1, PlayerID: martin.ID})
	require.NoError(t, err)
	require.Nil(t, got.AgeCategory)
	require.Equal(t, match.Stats{}, got.Stats)
	require.Empty(t, got.Upcoming)
	require.Empty(t, got.Recent)
}

func TestDashboardService_Get_Errors(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := newTestDashboardService(repos)
	ctx := context.Background()

	_, err := svc.Get(ctx, account.Principal{})
	require.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)

	_, err = svc.Get(ctx, account.Principal{AccountID: 1})
	require.True(t, errors.Is(err, ErrPlayerNotLinked), "got %v", err)

	_, err = svc.Get(ctx, account.Principal{AccountID: 1, PlayerID: 9999})
	require.True(t, errors.Is(err, ErrPlayerNotLinked), "got %v", err)
}
