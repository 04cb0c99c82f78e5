package postgres

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	conds := make([]qb.Condition, 0, 3)
	if filter.GenreID != 0 {
		conds = append(conds, qb.Eq("genre_id", filter.GenreID))
	}
	if filter.AgeCategoryID != 0 {
		conds = append(conds, qb.Eq("age_category_id", filter.AgeCategoryID))
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		conds = append(conds, qb.Any(qb.ILike("surname", term), qb.ILike("given_name", term)))
	}

	query, args, err := qb.Select("*").From("players").
		Where(conds...).
		OrderBy("surname", "given_name", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select players query")
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build get player query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "get player")
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	return insertPlayer(ctx, r.db, item)
}

func insertPlayer(ctx context.Context, q sqlx.QueryerContext, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", newPlayerInsertModel(item), "RETURNING id")
	if err != nil {
		return player.Player{}, errors.Wrap(err, "build create player query")
	}
	if err := q.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return player.Player{}, errors.Wrap(err, "create player")
	}
	return item, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (bool, error) {
	query, args, err := updatePlayerQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update player query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update player")
	}
	return rowsAffected(result, "update player")
}

func (r *PlayerRepository) UpdateAgeCategory(ctx context.Context, id int64, ageCategoryID *int64) error {
	query, args, err := updatePlayerAgeCategoryQuery(id, ageCategoryID)
	if err != nil {
		return errors.Wrap(err, "build update player age category query")
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "update player %d age category", id)
	}
	return nil
}

// Delete unlinks the owning account through ON DELETE SET NULL.
func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("players").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete player query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete player")
	}
	return rowsAffected(result, "delete player")
}

func updatePlayerQuery(item player.Player) (string, []any, error) {
	return qb.Update("players").
		Set("surname", item.Surname).
		Set("given_name", item.GivenName).
		Set("birth_date", item.BirthDate).
		Set("genre_id", item.GenreID).
		Set("age_category_id", nullInt64(item.AgeCategoryID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}

func updatePlayerAgeCategoryQuery(id int64, ageCategoryID *int64) (string, []any, error) {
	return qb.Update("players").
		Set("age_category_id", nullInt64(ageCategoryID)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
}
