package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func setScore(club, opponent int) match.SetScore {
	return match.SetScore{Club: intPtr(club), Opponent: intPtr(opponent)}
}

// Seed fills an empty store with demo club data. Match dates are placed
// around now so that both past results and upcoming fixtures exist.
func Seed(store *Store, now time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()

	add := func() int64 { return store.nextID() }

	men := category.Genre{ID: add(), Code: category.GenreMale}
	women := category.Genre{ID: add(), Code: category.GenreFemale}
	for _, g := range []category.Genre{men, women} {
		store.genres[g.ID] = g
	}

	u15 := category.AgeCategory{ID: add(), Name: "U15", AgeMin: intPtr(13), AgeMax: intPtr(15)}
	u18 := category.AgeCategory{ID: add(), Name: "U18", AgeMin: intPtr(16), AgeMax: intPtr(18)}
	seniors := category.AgeCategory{ID: add(), Name: "Seniors", AgeMin: intPtr(19)}
	for _, c := range []category.AgeCategory{u15, u18, seniors} {
		store.ageCategories[c.ID] = c
	}

	year := now.Year()
	previous := season.Season{ID: add(), Period: periodOf(year - 1)}
	current := season.Season{ID: add(), Period: periodOf(year)}
	for _, s := range []season.Season{previous, current} {
		store.seasons[s.ID] = s
	}

	regional := competition.Competition{
		ID:            add(),
		Name:          "Regional Championship",
		Date:          now.AddDate(0, -3, 0).Truncate(24 * time.Hour),
		Venue:         "Salle Omnisports",
		AgeCategoryID: int64Ptr(seniors.ID),
		GenreID:       int64Ptr(men.ID),
	}
	cup := competition.Competition{
		ID:            add(),
		Name:          "Departmental Cup",
		Date:          now.AddDate(0, -2, 0).Truncate(24 * time.Hour),
		Venue:         "Gymnase Jean Moulin",
		AgeCategoryID: int64Ptr(u18.ID),
		GenreID:       int64Ptr(women.ID),
	}
	for _, c := range []competition.Competition{regional, cup} {
		store.competitions[c.ID] = c
	}

	lions := team.OpposingTeam{ID: add(), Name: "AS Lions", GenreID: int64Ptr(men.ID), AgeCategoryID: int64Ptr(seniors.ID)}
	spikers := team.OpposingTeam{ID: add(), Name: "Spikers VB", GenreID: int64Ptr(men.ID), AgeCategoryID: int64Ptr(seniors.ID)}
	comets := team.OpposingTeam{ID: add(), Name: "Les Comètes", GenreID: int64Ptr(women.ID), AgeCategoryID: int64Ptr(u18.ID)}
	for _, t := range []team.OpposingTeam{lions, spikers, comets} {
		store.teams[t.ID] = t
	}

	players := []player.Player{
		{Surname: "Martin", GivenName: "Hugo", BirthDate: now.AddDate(-24, -2, 0), GenreID: men.ID},
		{Surname: "Bernard", GivenName: "Lucas", BirthDate: now.AddDate(-31, 0, -10), GenreID: men.ID},
		{Surname: "Petit", GivenName: "Chloé", BirthDate: now.AddDate(-17, -1, 0), GenreID: women.ID},
		{Surname: "Durand", GivenName: "Emma", BirthDate: now.AddDate(-14, -4, 0), GenreID: women.ID},
	}
	categories := []category.AgeCategory{u15, u18, seniors}
	for _, p := range players {
		p.ID = add()
		p.Categorize(now, categories)
		store.players[p.ID] = p
	}

	matches := []match.Match{
		{
			PlayedAt:        now.AddDate(0, 0, -21),
			Venue:           regional.Venue,
			CompetitionID:   regional.ID,
			SeasonID:        current.ID,
			OpposingTeamIDs: []int64{lions.ID},
			SetsClub:        intPtr(3),
			SetsOpponent:    intPtr(1),
			Sets:            [match.SetCount]match.SetScore{setScore(25, 21), setScore(22, 25), setScore(25, 18), setScore(25, 23)},
		},
		{
			PlayedAt:        now.AddDate(0, 0, -14),
			Venue:           "Palais des Sports",
			CompetitionID:   regional.ID,
			SeasonID:        current.ID,
			OpposingTeamIDs: []int64{spikers.ID},
			SetsClub:        intPtr(2),
			SetsOpponent:    intPtr(3),
			Sets:            [match.SetCount]match.SetScore{setScore(25, 20), setScore(19, 25), setScore(25, 22), setScore(21, 25), setScore(12, 15)},
		},
		{
			PlayedAt:        now.AddDate(0, 0, -7),
			Venue:           cup.Venue,
			CompetitionID:   cup.ID,
			SeasonID:        current.ID,
			OpposingTeamIDs: []int64{comets.ID},
			SetsClub:        intPtr(3),
			SetsOpponent:    intPtr(0),
			Sets:            [match.SetCount]match.SetScore{setScore(25, 15), setScore(25, 17), setScore(25, 19)},
		},
		{
			PlayedAt:        now.AddDate(0, 0, 7),
			Venue:           regional.Venue,
			CompetitionID:   regional.ID,
			SeasonID:        current.ID,
			OpposingTeamIDs: []int64{lions.ID, spikers.ID},
		},
		{
			PlayedAt:        now.AddDate(0, 0, 14),
			Venue:           cup.Venue,
			CompetitionID:   cup.ID,
			SeasonID:        current.ID,
			OpposingTeamIDs: []int64{comets.ID},
		},
	}
	for _, m := range matches {
		m.ID = add()
		store.matches[m.ID] = m
	}

	records := []honors.Record{
		{Title: "Champion", Competition: "Regional Championship", Year: year - 1, GenreID: men.ID},
		{Title: "Runner-up", Competition: "Departmental Cup", Year: year - 1, GenreID: women.ID},
		{Title: "Champion", Competition: "Departmental Cup", Year: year - 3, GenreID: women.ID},
		{Title: "Promotion", Competition: "National 3", Year: year - 5, GenreID: men.ID},
	}
	for _, h := range records {
		h.ID = add()
		store.honors[h.ID] = h
	}
}

func periodOf(startYear int) string {
	return fmt.Sprintf("%d-%d", startYear, startYear+1)
}
