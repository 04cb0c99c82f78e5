package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	playermock "github.com/riskibarqy/club-manager/internal/mocks/domain/player"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_Recategorize(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	ctx := context.Background()
	svc := NewPlayerService(repos.players, repos.categories, 2, logging.NewNop())

	// Three years on, the U15 player moves to U18 and the U18 player to seniors.
	svc.now = func() time.Time { return testNow.AddDate(3, 0, 0) }

	result, err := svc.Recategorize(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, result.Scanned)
	require.Equal(t, 2, result.Updated)
	require.Zero(t, result.Failed)
	require.Equal(t, 2, result.WorkerCount)

	u18 := repos.ageCategory(t, "U18")
	items, err := repos.players.List(ctx, player.Filter{Search: "Durand"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, u18.ID, *items[0].AgeCategoryID)

	again, err := svc.Recategorize(ctx)
	require.NoError(t, err)
	require.Zero(t, again.Updated)
}

func TestPlayerService_Recategorize_CountsFailuresUsingMockery(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	playerRepo := playermock.NewRepository(t)
	svc := NewPlayerService(playerRepo, repos.categories, 4, logging.NewNop())
	svc.now = fixedClock

	women := repos.genre(t, category.GenreFemale)
	players := []player.Player{
		{ID: 1, Surname: "A", GivenName: "A", BirthDate: testNow.AddDate(-14, 0, 0), GenreID: women.ID},
		{ID: 2, Surname: "B", GivenName: "B", BirthDate: testNow.AddDate(-30, 0, 0), GenreID: women.ID},
	}
	playerRepo.On("List", mock.Anything, player.Filter{}).Return(players, nil).Once()
	playerRepo.On("UpdateAgeCategory", mock.Anything, int64(1), mock.Anything).Return(nil).Once()
	playerRepo.On("UpdateAgeCategory", mock.Anything, int64(2), mock.Anything).Return(errors.New("db down")).Once()

	result, err := svc.Recategorize(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, result.Updated)
	require.Equal(t, 1, result.Failed)
}

func TestPlayerService_Create_Validation(t *testing.T) {
	t.Parallel()

	repos := newSeededRepos(t)
	svc := NewPlayerService(repos.players, repos.categories, 1, logging.NewNop())
	svc.now = fixedClock
	ctx := context.Background()
	men := repos.genre(t, category.GenreMale)

	created, err := svc.Create(ctx, player.Player{Surname: "Roux", GivenName: "Paul", BirthDate: testNow.AddDate(-20, 0, 0), GenreID: men.ID})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Nil(t, created.AgeCategoryID)

	_, err = svc.Create(ctx, player.Player{Surname: "Roux", GivenName: "Paul", BirthDate: testNow.AddDate(-20, 0, 0), GenreID: men.ID, AgeCategoryID: int64Ptr(9999)})
	require.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	err = svc.Delete(ctx, 9999)
	require.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
