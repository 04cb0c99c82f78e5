package postgres

import (
	"testing"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/match"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

func TestMatchConditions(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    match.Filter
		wantQuery string
		wantArgs  int
	}{
		{
			name:      "empty filter selects everything",
			filter:    match.Filter{},
			wantQuery: "SELECT m.* FROM " + matchFromClause,
		},
		{
			name:      "season and genre",
			filter:    match.Filter{SeasonID: 4, GenreID: 1},
			wantQuery: "SELECT m.* FROM " + matchFromClause + " WHERE m.season_id = $1 AND c.genre_id = $2",
			wantArgs:  2,
		},
		{
			name:      "unset age category wins over id",
			filter:    match.Filter{AgeCategoryID: 7, AgeCategoryUnset: true},
			wantQuery: "SELECT m.* FROM " + matchFromClause + " WHERE c.age_category_id IS NULL",
		},
		{
			name:      "time window",
			filter:    match.Filter{Before: &now, From: &now},
			wantQuery: "SELECT m.* FROM " + matchFromClause + " WHERE m.played_at < $1 AND m.played_at >= $2",
			wantArgs:  2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := qb.Select("m.*").From(matchFromClause).Where(matchConditions(tc.filter)...).ToSQL()
			if err != nil {
				t.Fatalf("build query: %v", err)
			}
			if query != tc.wantQuery {
				t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", tc.wantQuery, query)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("expected %d args, got %d", tc.wantArgs, len(args))
			}
		})
	}
}

func TestMatchModelRoundTrip(t *testing.T) {
	club, opponent := 25, 21
	sets := 3
	item := match.Match{
		ID:            9,
		PlayedAt:      time.Date(2025, 2, 8, 18, 0, 0, 0, time.UTC),
		Venue:         "Gymnase Jean Moulin",
		CompetitionID: 2,
		SeasonID:      1,
		SetsClub:      &sets,
	}
	item.Sets[0] = match.SetScore{Club: &club, Opponent: &opponent}

	insert := newMatchInsertModel(item)
	row := matchTableModel{
		ID:            item.ID,
		PlayedAt:      insert.PlayedAt,
		Venue:         insert.Venue,
		CompetitionID: insert.CompetitionID,
		SeasonID:      insert.SeasonID,
		SetsClub:      insert.SetsClub,
		SetsOpponent:  insert.SetsOpponent,
		Set1Club:      insert.Set1Club,
		Set1Opponent:  insert.Set1Opponent,
	}
	got := row.toDomain([]int64{5, 3})

	if got.Result() != match.ResultPending {
		t.Fatalf("expected pending result without opponent total, got %s", got.Result())
	}
	if got.ScoreString() != "25-21" {
		t.Fatalf("unexpected score string %q", got.ScoreString())
	}
	if len(got.OpposingTeamIDs) != 2 || got.OpposingTeamIDs[0] != 5 {
		t.Fatalf("unexpected team ids %v", got.OpposingTeamIDs)
	}
	if got.Sets[1].Played() {
		t.Fatalf("expected second set to be empty")
	}
}
