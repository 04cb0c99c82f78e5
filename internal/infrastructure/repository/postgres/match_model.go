package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/match"
)

type matchTableModel struct {
	ID            int64         `db:"id"`
	PlayedAt      time.Time     `db:"played_at"`
	Venue         string        `db:"venue"`
	CompetitionID int64         `db:"competition_id"`
	SeasonID      int64         `db:"season_id"`
	SetsClub      sql.NullInt32 `db:"sets_club"`
	SetsOpponent  sql.NullInt32 `db:"sets_opponent"`
	Set1Club      sql.NullInt32 `db:"set1_club"`
	Set1Opponent  sql.NullInt32 `db:"set1_opponent"`
	Set2Club      sql.NullInt32 `db:"set2_club"`
	Set2Opponent  sql.NullInt32 `db:"set2_opponent"`
	Set3Club      sql.NullInt32 `db:"set3_club"`
	Set3Opponent  sql.NullInt32 `db:"set3_opponent"`
	Set4Club      sql.NullInt32 `db:"set4_club"`
	Set4Opponent  sql.NullInt32 `db:"set4_opponent"`
	Set5Club      sql.NullInt32 `db:"set5_club"`
	Set5Opponent  sql.NullInt32 `db:"set5_opponent"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type matchInsertModel struct {
	PlayedAt      time.Time     `db:"played_at"`
	Venue         string        `db:"venue"`
	CompetitionID int64         `db:"competition_id"`
	SeasonID      int64         `db:"season_id"`
	SetsClub      sql.NullInt32 `db:"sets_club"`
	SetsOpponent  sql.NullInt32 `db:"sets_opponent"`
	Set1Club      sql.NullInt32 `db:"set1_club"`
	Set1Opponent  sql.NullInt32 `db:"set1_opponent"`
	Set2Club      sql.NullInt32 `db:"set2_club"`
	Set2Opponent  sql.NullInt32 `db:"set2_opponent"`
	Set3Club      sql.NullInt32 `db:"set3_club"`
	Set3Opponent  sql.NullInt32 `db:"set3_opponent"`
	Set4Club      sql.NullInt32 `db:"set4_club"`
	Set4Opponent  sql.NullInt32 `db:"set4_opponent"`
	Set5Club      sql.NullInt32 `db:"set5_club"`
	Set5Opponent  sql.NullInt32 `db:"set5_opponent"`
}

type matchOpposingTeamModel struct {
	MatchID        int64 `db:"match_id"`
	OpposingTeamID int64 `db:"opposing_team_id"`
	Position       int   `db:"position"`
}

func newMatchInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		PlayedAt:      item.PlayedAt,
		Venue:         item.Venue,
		CompetitionID: item.CompetitionID,
		SeasonID:      item.SeasonID,
		SetsClub:      nullInt32(item.SetsClub),
		SetsOpponent:  nullInt32(item.SetsOpponent),
		Set1Club:      nullInt32(item.Sets[0].Club),
		Set1Opponent:  nullInt32(item.Sets[0].Opponent),
		Set2Club:      nullInt32(item.Sets[1].Club),
		Set2Opponent:  nullInt32(item.Sets[1].Opponent),
		Set3Club:      nullInt32(item.Sets[2].Club),
		Set3Opponent:  nullInt32(item.Sets[2].Opponent),
		Set4Club:      nullInt32(item.Sets[3].Club),
		Set4Opponent:  nullInt32(item.Sets[3].Opponent),
		Set5Club:      nullInt32(item.Sets[4].Club),
		Set5Opponent:  nullInt32(item.Sets[4].Opponent),
	}
}

func (m matchTableModel) toDomain(teamIDs []int64) match.Match {
	return match.Match{
		ID:              m.ID,
		PlayedAt:        m.PlayedAt,
		Venue:           m.Venue,
		CompetitionID:   m.CompetitionID,
		SeasonID:        m.SeasonID,
		OpposingTeamIDs: teamIDs,
		SetsClub:        intPtr(m.SetsClub),
		SetsOpponent:    intPtr(m.SetsOpponent),
		Sets: [match.SetCount]match.SetScore{
			{Club: intPtr(m.Set1Club), Opponent: intPtr(m.Set1Opponent)},
			{Club: intPtr(m.Set2Club), Opponent: intPtr(m.Set2Opponent)},
			{Club: intPtr(m.Set3Club), Opponent: intPtr(m.Set3Opponent)},
			{Club: intPtr(m.Set4Club), Opponent: intPtr(m.Set4Opponent)},
			{Club: intPtr(m.Set5Club), Opponent: intPtr(m.Set5Opponent)},
		},
	}
}
