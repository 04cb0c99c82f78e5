package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/stretchr/testify/require"
)

func TestUpdateQueries(t *testing.T) {
	day := time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC)
	birth := time.Date(2010, 2, 3, 0, 0, 0, 0, time.UTC)
	ageMin, ageMax := 12, 14
	categoryID, genreID := int64(3), int64(2)
	three, one, won, lost := 3, 1, 25, 20

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "age category",
			build: func() (string, []any, error) {
				return updateAgeCategoryQuery(category.AgeCategory{ID: 4, Name: "M13", AgeMin: &ageMin, AgeMax: &ageMax})
			},
			wantQuery: "UPDATE age_categories SET name = $1, age_min = $2, age_max = $3, updated_at = NOW() WHERE id = $4",
			wantArgs: []any{
				"M13",
				sql.NullInt32{Int32: 12, Valid: true},
				sql.NullInt32{Int32: 14, Valid: true},
				int64(4),
			},
		},
		{
			name: "competition with open category",
			build: func() (string, []any, error) {
				return updateCompetitionQuery(competition.Competition{ID: 7, Name: "Coupe de France", Date: day, Venue: "Gymnase Nord", GenreID: &genreID})
			},
			wantQuery: "UPDATE competitions SET name = $1, date = $2, venue = $3, age_category_id = $4, genre_id = $5, updated_at = NOW() WHERE id = $6",
			wantArgs: []any{
				"Coupe de France",
				day,
				"Gymnase Nord",
				sql.NullInt64{},
				sql.NullInt64{Int64: 2, Valid: true},
				int64(7),
			},
		},
		{
			name: "honors",
			build: func() (string, []any, error) {
				return updateHonorsQuery(honors.Record{ID: 11, Title: "Champion", Competition: "Regional league", Year: 2024, GenreID: 1})
			},
			wantQuery: "UPDATE honors SET title = $1, competition = $2, year = $3, genre_id = $4, updated_at = NOW() WHERE id = $5",
			wantArgs:  []any{"Champion", "Regional league", 2024, int64(1), int64(11)},
		},
		{
			name: "player",
			build: func() (string, []any, error) {
				return updatePlayerQuery(player.Player{ID: 9, Surname: "Durand", GivenName: "Lea", BirthDate: birth, GenreID: 2, AgeCategoryID: &categoryID})
			},
			wantQuery: "UPDATE players SET surname = $1, given_name = $2, birth_date = $3, genre_id = $4, age_category_id = $5, updated_at = NOW() WHERE id = $6",
			wantArgs: []any{
				"Durand",
				"Lea",
				birth,
				int64(2),
				sql.NullInt64{Int64: 3, Valid: true},
				int64(9),
			},
		},
		{
			name: "player age category cleared",
			build: func() (string, []any, error) {
				return updatePlayerAgeCategoryQuery(9, nil)
			},
			wantQuery: "UPDATE players SET age_category_id = $1, updated_at = NOW() WHERE id = $2",
			wantArgs:  []any{sql.NullInt64{}, int64(9)},
		},
		{
			name: "season",
			build: func() (string, []any, error) {
				return updateSeasonQuery(season.Season{ID: 2, Period: "2025-2026"})
			},
			wantQuery: "UPDATE seasons SET period = $1, updated_at = NOW() WHERE id = $2",
			wantArgs:  []any{"2025-2026", int64(2)},
		},
		{
			name: "opposing team",
			build: func() (string, []any, error) {
				return updateTeamQuery(team.OpposingTeam{ID: 5, Name: "VB Lyon", AgeCategoryID: &categoryID})
			},
			wantQuery: "UPDATE opposing_teams SET name = $1, genre_id = $2, age_category_id = $3, updated_at = NOW() WHERE id = $4",
			wantArgs: []any{
				"VB Lyon",
				sql.NullInt64{},
				sql.NullInt64{Int64: 3, Valid: true},
				int64(5),
			},
		},
		{
			name: "match",
			build: func() (string, []any, error) {
				item := match.Match{
					ID:            21,
					PlayedAt:      day,
					Venue:         "Home",
					CompetitionID: 7,
					SeasonID:      2,
					SetsClub:      &three,
					SetsOpponent:  &one,
				}
				item.Sets[0] = match.SetScore{Club: &won, Opponent: &lost}
				return updateMatchQuery(item)
			},
			wantQuery: "UPDATE matches SET played_at = $1, venue = $2, competition_id = $3, season_id = $4, " +
				"sets_club = $5, sets_opponent = $6, " +
				"set1_club = $7, set1_opponent = $8, set2_club = $9, set2_opponent = $10, " +
				"set3_club = $11, set3_opponent = $12, set4_club = $13, set4_opponent = $14, " +
				"set5_club = $15, set5_opponent = $16, updated_at = NOW() WHERE id = $17",
			wantArgs: []any{
				day,
				"Home",
				int64(7),
				int64(2),
				sql.NullInt32{Int32: 3, Valid: true},
				sql.NullInt32{Int32: 1, Valid: true},
				sql.NullInt32{Int32: 25, Valid: true},
				sql.NullInt32{Int32: 20, Valid: true},
				sql.NullInt32{}, sql.NullInt32{},
				sql.NullInt32{}, sql.NullInt32{},
				sql.NullInt32{}, sql.NullInt32{},
				sql.NullInt32{}, sql.NullInt32{},
				int64(21),
			},
		},
		{
			name: "match links cleared",
			build: func() (string, []any, error) {
				return deleteMatchLinksQuery(21)
			},
			wantQuery: "DELETE FROM match_opposing_teams WHERE match_id = $1",
			wantArgs:  []any{int64(21)},
		},
		{
			name: "match links reinserted in submitted order",
			build: func() (string, []any, error) {
				return insertMatchLinksQuery(21, []int64{8, 5})
			},
			wantQuery: "INSERT INTO match_opposing_teams (match_id, opposing_team_id, position) VALUES ($1, $2, $3), ($4, $5, $6)",
			wantArgs:  []any{int64(21), int64(8), 0, int64(21), int64(5), 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			require.Equal(t, tt.wantQuery, query)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
