package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.GenreID != 0 {
		conds = append(conds, qb.Eq("genre_id", filter.GenreID))
	}
	if filter.AgeCategoryID != 0 {
		conds = append(conds, qb.Eq("age_category_id", filter.AgeCategoryID))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		conds = append(conds, qb.Any(qb.ILike("name", term), qb.ILike("venue", term)))
	}

	query, args, err := qb.Select("*").From("competitions").
		Where(conds...).
		OrderBy("date DESC", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select competitions query")
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select competitions")
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id int64) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return competition.Competition{}, false, errors.Wrap(err, "build get competition query")
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, errors.Wrap(err, "get competition")
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, item competition.Competition) (competition.Competition, error) {
	insertModel := competitionInsertModel{
		Name:          item.Name,
		Date:          item.Date,
		Venue:         item.Venue,
		AgeCategoryID: nullInt64(item.AgeCategoryID),
		GenreID:       nullInt64(item.GenreID),
	}
	query, args, err := qb.InsertModel("competitions", insertModel, "RETURNING id")
	if err != nil {
		return competition.Competition{}, errors.Wrap(err, "build create competition query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return competition.Competition{}, errors.Wrap(err, "create competition")
	}
	return item, nil
}

func (r *CompetitionRepository) Update(ctx context.Context, item competition.Competition) (bool, error) {
	query, args, err := updateCompetitionQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update competition query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update competition")
	}
	return rowsAffected(result, "update competition")
}

// Delete cascades to matches through the matches.competition_id foreign key.
func (r *CompetitionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("competitions").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete competition query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete competition")
	}
	return rowsAffected(result, "delete competition")
}

func updateCompetitionQuery(item competition.Competition) (string, []any, error) {
	return qb.Update("competitions").
		Set("name", item.Name).
		Set("date", item.Date).
		Set("venue", item.Venue).
		Set("age_category_id", nullInt64(item.AgeCategoryID)).
		Set("genre_id", nullInt64(item.GenreID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
