package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

const seasonPeriodKey = "seasons_period_key"

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	query, args, err := qb.Select("*").From("seasons").OrderBy("period DESC", "id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select seasons query")
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select seasons")
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return season.Season{}, false, errors.Wrap(err, "build get season query")
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, errors.Wrap(err, "get season")
	}
	return row.toDomain(), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	query, args, err := qb.InsertModel("seasons", seasonInsertModel{Period: item.Period}, "RETURNING id")
	if err != nil {
		return season.Season{}, errors.Wrap(err, "build create season query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		if isUniqueViolation(err, seasonPeriodKey) {
			return season.Season{}, season.ErrDuplicatePeriod
		}
		return season.Season{}, errors.Wrap(err, "create season")
	}
	return item, nil
}

func (r *SeasonRepository) Update(ctx context.Context, item season.Season) (bool, error) {
	query, args, err := updateSeasonQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update season query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, seasonPeriodKey) {
			return false, season.ErrDuplicatePeriod
		}
		return false, errors.Wrap(err, "update season")
	}
	return rowsAffected(result, "update season")
}

// Delete cascades to matches through the matches.season_id foreign key.
func (r *SeasonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("seasons").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete season query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete season")
	}
	return rowsAffected(result, "delete season")
}

func updateSeasonQuery(item season.Season) (string, []any, error) {
	return qb.Update("seasons").
		Set("period", item.Period).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
