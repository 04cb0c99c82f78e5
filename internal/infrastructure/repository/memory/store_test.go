package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
)

type fixtureIDs struct {
	genre, ageCategory, season, competition, team, player, match int64
}

func seedFixture(t *testing.T, store *Store) fixtureIDs {
	t.Helper()
	ctx := context.Background()

	categories := NewCategoryRepository(store)
	g, err := categories.CreateGenre(ctx, category.Genre{Code: category.GenreFemale})
	if err != nil {
		t.Fatalf("create genre: %v", err)
	}
	ac, _ := categories.CreateAgeCategory(ctx, category.AgeCategory{Name: "U18", AgeMin: intPtr(16), AgeMax: intPtr(18)})
	s, _ := NewSeasonRepository(store).Create(ctx, season.Season{Period: "2024-2025"})
	c, _ := NewCompetitionRepository(store).Create(ctx, competition.Competition{
		Name: "Cup", Venue: "Gym", Date: time.Now(), GenreID: int64Ptr(g.ID), AgeCategoryID: int64Ptr(ac.ID),
	})
	tm, _ := NewTeamRepository(store).Create(ctx, team.OpposingTeam{Name: "Comets", AgeCategoryID: int64Ptr(ac.ID)})
	p, _ := NewPlayerRepository(store).Create(ctx, player.Player{Surname: "Petit", GivenName: "Chloé", GenreID: g.ID, AgeCategoryID: int64Ptr(ac.ID)})
	m, err := NewMatchRepository(store).Create(ctx, match.Match{
		PlayedAt: time.Now(), Venue: "Gym", CompetitionID: c.ID, SeasonID: s.ID, OpposingTeamIDs: []int64{tm.ID},
	})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return fixtureIDs{genre: g.ID, ageCategory: ac.ID, season: s.ID, competition: c.ID, team: tm.ID, player: p.ID, match: m.ID}
}

func TestDeleteGenre_RefusedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ids := seedFixture(t, store)
	categories := NewCategoryRepository(store)

	if _, err := categories.DeleteGenre(ctx, ids.genre); !errors.Is(err, category.ErrGenreInUse) {
		t.Fatalf("expected ErrGenreInUse, got %v", err)
	}

	if _, err := NewPlayerRepository(store).Delete(ctx, ids.player); err != nil {
		t.Fatalf("delete player: %v", err)
	}
	deleted, err := categories.DeleteGenre(ctx, ids.genre)
	if err != nil || !deleted {
		t.Fatalf("DeleteGenre() = %v, %v", deleted, err)
	}
	c, _, _ := NewCompetitionRepository(store).GetByID(ctx, ids.competition)
	if c.GenreID != nil {
		t.Fatalf("expected competition genre to be cleared")
	}
}

func TestDeleteGenre_RefusedWhileHonorsReference(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	categories := NewCategoryRepository(store)
	g, _ := categories.CreateGenre(ctx, category.Genre{Code: category.GenreMale})
	if _, err := NewHonorsRepository(store).Create(ctx, honors.Record{Title: "Champion", Competition: "Cup", Year: 2020, GenreID: g.ID}); err != nil {
		t.Fatalf("create honors: %v", err)
	}
	if _, err := categories.DeleteGenre(ctx, g.ID); !errors.Is(err, category.ErrGenreInUse) {
		t.Fatalf("expected ErrGenreInUse, got %v", err)
	}
}

func TestDeleteAgeCategory_NullsReferences(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ids := seedFixture(t, store)

	deleted, err := NewCategoryRepository(store).DeleteAgeCategory(ctx, ids.ageCategory)
	if err != nil || !deleted {
		t.Fatalf("DeleteAgeCategory() = %v, %v", deleted, err)
	}

	p, _, _ := NewPlayerRepository(store).GetByID(ctx, ids.player)
	tm, _, _ := NewTeamRepository(store).GetByID(ctx, ids.team)
	c, _, _ := NewCompetitionRepository(store).GetByID(ctx, ids.competition)
	if p.AgeCategoryID != nil || tm.AgeCategoryID != nil || c.AgeCategoryID != nil {
		t.Fatalf("expected every age category link to be cleared")
	}
}

func TestDeleteSeasonAndCompetition_CascadeToMatches(t *testing.T) {
	ctx := context.Background()

	t.Run("season", func(t *testing.T) {
		store := NewStore()
		ids := seedFixture(t, store)
		if _, err := NewSeasonRepository(store).Delete(ctx, ids.season); err != nil {
			t.Fatalf("delete season: %v", err)
		}
		if _, ok, _ := NewMatchRepository(store).GetByID(ctx, ids.match); ok {
			t.Fatalf("expected match to be deleted with its season")
		}
	})

	t.Run("competition", func(t *testing.T) {
		store := NewStore()
		ids := seedFixture(t, store)
		if _, err := NewCompetitionRepository(store).Delete(ctx, ids.competition); err != nil {
			t.Fatalf("delete competition: %v", err)
		}
		if _, ok, _ := NewMatchRepository(store).GetByID(ctx, ids.match); ok {
			t.Fatalf("expected match to be deleted with its competition")
		}
	})
}

func TestDeleteTeam_RemovesLinks(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ids := seedFixture(t, store)

	if _, err := NewTeamRepository(store).Delete(ctx, ids.team); err != nil {
		t.Fatalf("delete team: %v", err)
	}
	m, ok, _ := NewMatchRepository(store).GetByID(ctx, ids.match)
	if !ok || len(m.OpposingTeamIDs) != 0 {
		t.Fatalf("expected match to survive without links, got %+v", m)
	}
}

func TestMatchRepository_FilterAndPaging(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	Seed(store, now)
	repo := NewMatchRepository(store)

	all, err := repo.List(ctx, match.Filter{}, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("expected 5 seeded matches, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].PlayedAt.After(all[i-1].PlayedAt) {
			t.Fatalf("expected date descending order")
		}
	}

	past, _ := repo.List(ctx, match.Filter{Before: &now}, 0, 0)
	upcoming, _ := repo.List(ctx, match.Filter{From: &now, Ascending: true}, 0, 0)
	if len(past) != 3 || len(upcoming) != 2 {
		t.Fatalf("past=%d upcoming=%d", len(past), len(upcoming))
	}
	if upcoming[0].PlayedAt.After(upcoming[1].PlayedAt) {
		t.Fatalf("expected ascending order for upcoming")
	}

	page, _ := repo.List(ctx, match.Filter{}, 2, 4)
	if len(page) != 1 || page[0].ID != all[4].ID {
		t.Fatalf("unexpected last page %+v", page)
	}

	women, _, _ := NewCategoryRepository(store).GetGenreByCode(ctx, category.GenreFemale)
	count, _ := repo.Count(ctx, match.Filter{GenreID: women.ID})
	if count != 2 {
		t.Fatalf("expected 2 women matches, got %d", count)
	}
	unset, _ := repo.Count(ctx, match.Filter{GenreID: women.ID, AgeCategoryUnset: true})
	if unset != 0 {
		t.Fatalf("expected no matches without age category, got %d", unset)
	}
}

func TestMatchRepository_RejectsDuplicateLinks(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	ids := seedFixture(t, store)
	repo := NewMatchRepository(store)

	m, _, _ := repo.GetByID(ctx, ids.match)
	m.OpposingTeamIDs = []int64{ids.team, ids.team}
	if _, err := repo.Update(ctx, m); !errors.Is(err, match.ErrDuplicateOpposingTeam) {
		t.Fatalf("expected duplicate link error, got %v", err)
	}
	stored, _, _ := repo.GetByID(ctx, ids.match)
	if len(stored.OpposingTeamIDs) != 1 {
		t.Fatalf("rejected update must leave links untouched")
	}
}

func TestAccountRepository_CreateWithPlayer(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repo := NewAccountRepository(store)

	p, a, err := repo.CreateWithPlayer(ctx, player.Player{Surname: "Martin", GivenName: "Hugo", GenreID: 1}, account.Account{Email: "hugo@example.org"})
	if err != nil {
		t.Fatalf("CreateWithPlayer() error: %v", err)
	}
	if a.PlayerID != p.ID {
		t.Fatalf("account not linked to player")
	}

	before := len(store.players)
	if _, _, err := repo.CreateWithPlayer(ctx, player.Player{Surname: "Other"}, account.Account{Email: "hugo@example.org"}); !errors.Is(err, account.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(store.players) != before {
		t.Fatalf("failed signup must not leave a player behind")
	}

	now := time.Now()
	_ = repo.CreateSession(ctx, account.Session{ID: "sess_1", AccountID: a.ID, IssuedAt: now, ExpiresAt: now.Add(time.Hour)})
	_ = repo.RevokeSession(ctx, "sess_1", now)
	s, ok, _ := repo.GetSession(ctx, "sess_1")
	if !ok || s.RevokedAt == nil {
		t.Fatalf("expected revoked session, got %+v", s)
	}
}
