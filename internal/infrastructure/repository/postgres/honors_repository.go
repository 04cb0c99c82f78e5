package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type HonorsRepository struct {
	db *sqlx.DB
}

func NewHonorsRepository(db *sqlx.DB) *HonorsRepository {
	return &HonorsRepository{db: db}
}

func honorsConditions(filter honors.Filter) []qb.Condition {
	conds := make([]qb.Condition, 0, 3)
	if filter.Year != 0 {
		conds = append(conds, qb.Eq("year", filter.Year))
	}
	if filter.GenreID != 0 {
		conds = append(conds, qb.Eq("genre_id", filter.GenreID))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		conds = append(conds, qb.Any(qb.ILike("title", term), qb.ILike("competition", term)))
	}
	return conds
}

func (r *HonorsRepository) List(ctx context.Context, filter honors.Filter, limit, offset int) ([]honors.Record, error) {
	query, args, err := qb.Select("*").From("honors").
		Where(honorsConditions(filter)...).
		OrderBy("year DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select honors query")
	}

	var rows []honorsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select honors")
	}

	out := make([]honors.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *HonorsRepository) Count(ctx context.Context, filter honors.Filter) (int, error) {
	query, args, err := qb.Select("COUNT(1)").From("honors").
		Where(honorsConditions(filter)...).
		ToSQL()
	if err != nil {
		return 0, errors.Wrap(err, "build count honors query")
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, errors.Wrap(err, "count honors")
	}
	return count, nil
}

func (r *HonorsRepository) GetByID(ctx context.Context, id int64) (honors.Record, bool, error) {
	query, args, err := qb.Select("*").From("honors").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return honors.Record{}, false, errors.Wrap(err, "build get honors query")
	}

	var row honorsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return honors.Record{}, false, nil
		}
		return honors.Record{}, false, errors.Wrap(err, "get honors")
	}
	return row.toDomain(), true, nil
}

func (r *HonorsRepository) Create(ctx context.Context, item honors.Record) (honors.Record, error) {
	insertModel := honorsInsertModel{
		Title:       item.Title,
		Competition: item.Competition,
		Year:        item.Year,
		GenreID:     item.GenreID,
	}
	query, args, err := qb.InsertModel("honors", insertModel, "RETURNING id")
	if err != nil {
		return honors.Record{}, errors.Wrap(err, "build create honors query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return honors.Record{}, errors.Wrap(err, "create honors")
	}
	return item, nil
}

func (r *HonorsRepository) Update(ctx context.Context, item honors.Record) (bool, error) {
	query, args, err := updateHonorsQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update honors query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update honors")
	}
	return rowsAffected(result, "update honors")
}

func (r *HonorsRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("honors").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete honors query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete honors")
	}
	return rowsAffected(result, "delete honors")
}

func updateHonorsQuery(item honors.Record) (string, []any, error) {
	return qb.Update("honors").
		Set("title", item.Title).
		Set("competition", item.Competition).
		Set("year", item.Year).
		Set("genre_id", item.GenreID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
