package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/infrastructure/repository/memory"
)

var testNow = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type testRepos struct {
	store        *memory.Store
	categories   *memory.CategoryRepository
	seasons      *memory.SeasonRepository
	competitions *memory.CompetitionRepository
	teams        *memory.TeamRepository
	players      *memory.PlayerRepository
	matches      *memory.MatchRepository
	honors       *memory.HonorsRepository
	accounts     *memory.AccountRepository
}

func newSeededRepos(t *testing.T) testRepos {
	t.Helper()

	store := memory.NewStore()
	memory.Seed(store, testNow)
	return testRepos{
		store:        store,
		categories:   memory.NewCategoryRepository(store),
		seasons:      memory.NewSeasonRepository(store),
		competitions: memory.NewCompetitionRepository(store),
		teams:        memory.NewTeamRepository(store),
		players:      memory.NewPlayerRepository(store),
		matches:      memory.NewMatchRepository(store),
		honors:       memory.NewHonorsRepository(store),
		accounts:     memory.NewAccountRepository(store),
	}
}

func (r testRepos) genre(t *testing.T, code category.GenreCode) category.Genre {
	t.Helper()

	g, ok, err := r.categories.GetGenreByCode(context.Background(), code)
	if err != nil || !ok {
		t.Fatalf("genre %s not seeded: %v", code, err)
	}
	return g
}

func (r testRepos) ageCategory(t *testing.T, name string) category.AgeCategory {
	t.Helper()

	items, err := r.categories.ListAgeCategories(context.Background())
	if err != nil {
		t.Fatalf("list age categories: %v", err)
	}
	for _, item := range items {
		if item.Name == name {
			return item
		}
	}
	t.Fatalf("age category %s not seeded", name)
	return category.AgeCategory{}
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func playerFilterAll() player.Filter { return player.Filter{} }

func teamFilterAll() team.Filter { return team.Filter{} }
