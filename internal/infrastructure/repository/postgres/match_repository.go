package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

const (
	matchFromClause           = "matches m JOIN competitions c ON c.id = m.competition_id"
	matchOpposingTeamsPkey    = "match_opposing_teams_pkey"
	matchOpposingTeamsTeamKey = "match_opposing_teams_opposing_team_id_fkey"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func matchConditions(filter match.Filter) []qb.Condition {
	conds := make([]qb.Condition, 0, 6)
	if filter.SeasonID != 0 {
		conds = append(conds, qb.Eq("m.season_id", filter.SeasonID))
	}
	if filter.CompetitionID != 0 {
		conds = append(conds, qb.Eq("m.competition_id", filter.CompetitionID))
	}
	if filter.GenreID != 0 {
		conds = append(conds, qb.Eq("c.genre_id", filter.GenreID))
	}
	switch {
	case filter.AgeCategoryUnset:
		conds = append(conds, qb.IsNull("c.age_category_id"))
	case filter.AgeCategoryID != 0:
		conds = append(conds, qb.Eq("c.age_category_id", filter.AgeCategoryID))
	}
	if filter.Before != nil {
		conds = append(conds, qb.Expr("m.played_at < ?", *filter.Before))
	}
	if filter.From != nil {
		conds = append(conds, qb.Expr("m.played_at >= ?", *filter.From))
	}
	return conds
}

func (r *MatchRepository) List(ctx context.Context, filter match.Filter, limit, offset int) ([]match.Match, error) {
	order := "m.played_at DESC"
	if filter.Ascending {
		order = "m.played_at ASC"
	}
	query, args, err := qb.Select("m.*").From(matchFromClause).
		Where(matchConditions(filter)...).
		OrderBy(order, "m.id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches")
	}
	if len(rows) == 0 {
		return []match.Match{}, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	links, err := r.linksByMatch(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain(links[row.ID]))
	}
	return out, nil
}

func (r *MatchRepository) Count(ctx context.Context, filter match.Filter) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From(matchFromClause).
		Where(matchConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count matches query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count matches")
	}
	return count, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, errors.Wrap(err, "get match")
	}

	links, err := r.linksByMatch(ctx, []int64{id})
	if err != nil {
		return match.Match{}, false, err
	}
	return row.toDomain(links[id]), true, nil
}

func (r *MatchRepository) linksByMatch(ctx context.Context, matchIDs []int64) (map[int64][]int64, error) {
	query, args, err := qb.Select("match_id", "opposing_team_id", "position").From("match_opposing_teams").
		Where(qb.Expr("match_id = ANY(?)", pq.Array(matchIDs))).
		OrderBy("match_id", "position", "opposing_team_id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select match links query")
	}

	var rows []matchOpposingTeamModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select match links")
	}

	out := make(map[int64][]int64, len(matchIDs))
	for _, row := range rows {
		out[row.MatchID] = append(out[row.MatchID], row.OpposingTeamID)
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return match.Match{}, errors.Wrap(err, "begin tx create match")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("matches", newMatchInsertModel(item), "RETURNING id")
	if err != nil {
		return match.Match{}, errors.Wrap(err, "build create match query")
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return match.Match{}, errors.Wrap(err, "create match")
	}
	if err := insertMatchLinks(ctx, tx, item.ID, item.OpposingTeamIDs); err != nil {
		return match.Match{}, err
	}

	if err := tx.Commit(); err != nil {
		return match.Match{}, errors.Wrap(err, "commit create match tx")
	}
	return item, nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, errors.Wrap(err, "begin tx update match")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := updateMatchQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update match query")
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update match")
	}
	updated, err := rowsAffected(result, "update match")
	if err != nil || !updated {
		return false, err
	}

	deleteQuery, deleteArgs, err := deleteMatchLinksQuery(item.ID)
	if err != nil {
		return false, errors.Wrap(err, "build delete match links query")
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return false, errors.Wrap(err, "delete match links")
	}
	if err := insertMatchLinks(ctx, tx, item.ID, item.OpposingTeamIDs); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, errors.Wrap(err, "commit update match tx")
	}
	return true, nil
}

func insertMatchLinks(ctx context.Context, tx *sqlx.Tx, matchID int64, teamIDs []int64) error {
	if len(teamIDs) == 0 {
		return nil
	}

	query, args, err := insertMatchLinksQuery(matchID, teamIDs)
	if err != nil {
		return errors.Wrap(err, "build insert match links query")
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, matchOpposingTeamsPkey) {
			return match.ErrDuplicateOpposingTeam
		}
		if isForeignKeyViolation(err, matchOpposingTeamsTeamKey) {
			return errors.Wrap(match.ErrInvalidMatch, "unknown opposing team")
		}
		return errors.Wrap(err, "insert match links")
	}
	return nil
}

func updateMatchQuery(item match.Match) (string, []any, error) {
	row := newMatchInsertModel(item)
	return qb.Update("matches").
		Set("played_at", row.PlayedAt).
		Set("venue", row.Venue).
		Set("competition_id", row.CompetitionID).
		Set("season_id", row.SeasonID).
		Set("sets_club", row.SetsClub).
		Set("sets_opponent", row.SetsOpponent).
		Set("set1_club", row.Set1Club).
		Set("set1_opponent", row.Set1Opponent).
		Set("set2_club", row.Set2Club).
		Set("set2_opponent", row.Set2Opponent).
		Set("set3_club", row.Set3Club).
		Set("set3_opponent", row.Set3Opponent).
		Set("set4_club", row.Set4Club).
		Set("set4_opponent", row.Set4Opponent).
		Set("set5_club", row.Set5Club).
		Set("set5_opponent", row.Set5Opponent).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}

func deleteMatchLinksQuery(matchID int64) (string, []any, error) {
	return qb.DeleteFrom("match_opposing_teams").Where(qb.Eq("match_id", matchID)).ToSQL()
}

// insertMatchLinksQuery keeps the submitted order in the position column.
func insertMatchLinksQuery(matchID int64, teamIDs []int64) (string, []any, error) {
	builder := qb.InsertInto("match_opposing_teams").Columns("match_id", "opposing_team_id", "position")
	for i, teamID := range teamIDs {
		builder = builder.Values(matchID, teamID, i)
	}
	return builder.ToSQL()
}

// Delete drops the match links through ON DELETE CASCADE.
func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete match query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete match")
	}
	return rowsAffected(result, "delete match")
}
