package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, filter team.Filter) ([]team.OpposingTeam, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.GenreID != 0 {
		conds = append(conds, qb.Eq("genre_id", filter.GenreID))
	}
	if filter.AgeCategoryID != 0 {
		conds = append(conds, qb.Eq("age_category_id", filter.AgeCategoryID))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		conds = append(conds, qb.ILike("name", term))
	}

	query, args, err := qb.Select("*").From("opposing_teams").
		Where(conds...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select opposing teams query")
	}
	return r.selectTeams(ctx, query, args...)
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.OpposingTeam, bool, error) {
	query, args, err := qb.Select("*").From("opposing_teams").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return team.OpposingTeam{}, false, errors.Wrap(err, "build get opposing team query")
	}

	var row opposingTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.OpposingTeam{}, false, nil
		}
		return team.OpposingTeam{}, false, errors.Wrap(err, "get opposing team")
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []int64) ([]team.OpposingTeam, error) {
	if len(ids) == 0 {
		return []team.OpposingTeam{}, nil
	}

	query, args, err := qb.Select("*").From("opposing_teams").
		Where(qb.Expr("id = ANY(?)", pq.Array(ids))).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select opposing teams by ids query")
	}
	return r.selectTeams(ctx, query, args...)
}

func (r *TeamRepository) selectTeams(ctx context.Context, query string, args ...any) ([]team.OpposingTeam, error) {
	var rows []opposingTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select opposing teams")
	}

	out := make([]team.OpposingTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.OpposingTeam) (team.OpposingTeam, error) {
	insertModel := opposingTeamInsertModel{
		Name:          item.Name,
		GenreID:       nullInt64(item.GenreID),
		AgeCategoryID: nullInt64(item.AgeCategoryID),
	}
	query, args, err := qb.InsertModel("opposing_teams", insertModel, "RETURNING id")
	if err != nil {
		return team.OpposingTeam{}, errors.Wrap(err, "build create opposing team query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return team.OpposingTeam{}, errors.Wrap(err, "create opposing team")
	}
	return item, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.OpposingTeam) (bool, error) {
	query, args, err := updateTeamQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update opposing team query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update opposing team")
	}
	return rowsAffected(result, "update opposing team")
}

// Delete drops match links through ON DELETE CASCADE on match_opposing_teams.
func (r *TeamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("opposing_teams").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete opposing team query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete opposing team")
	}
	return rowsAffected(result, "delete opposing team")
}

func updateTeamQuery(item team.OpposingTeam) (string, []any, error) {
	return qb.Update("opposing_teams").
		Set("name", item.Name).
		Set("genre_id", nullInt64(item.GenreID)).
		Set("age_category_id", nullInt64(item.AgeCategoryID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
