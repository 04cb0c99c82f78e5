package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	qb "github.com/riskibarqy/club-manager/internal/platform/querybuilder"
)

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListGenres(ctx context.Context) ([]category.Genre, error) {
	query, args, err := qb.Select("*").From("genres").OrderBy("id").ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select genres query")
	}

	var rows []genreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select genres")
	}

	out := make([]category.Genre, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CategoryRepository) GetGenreByID(ctx context.Context, id int64) (category.Genre, bool, error) {
	return r.getGenre(ctx, qb.Eq("id", id))
}

func (r *CategoryRepository) GetGenreByCode(ctx context.Context, code category.GenreCode) (category.Genre, bool, error) {
	return r.getGenre(ctx, qb.Eq("code", string(code)))
}

func (r *CategoryRepository) getGenre(ctx context.Context, cond qb.Condition) (category.Genre, bool, error) {
	query, args, err := qb.Select("*").From("genres").Where(cond).Limit(1).ToSQL()
	if err != nil {
		return category.Genre{}, false, errors.Wrap(err, "build get genre query")
	}

	var row genreTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return category.Genre{}, false, nil
		}
		return category.Genre{}, false, errors.Wrap(err, "get genre")
	}
	return row.toDomain(), true, nil
}

func (r *CategoryRepository) CreateGenre(ctx context.Context, genre category.Genre) (category.Genre, error) {
	query, args, err := qb.InsertModel("genres", genreInsertModel{Code: string(genre.Code)}, "RETURNING id")
	if err != nil {
		return category.Genre{}, errors.Wrap(err, "build create genre query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&genre.ID); err != nil {
		if isUniqueViolation(err, "genres_code_key") {
			return category.Genre{}, category.ErrDuplicateGenre
		}
		return category.Genre{}, errors.Wrap(err, "create genre")
	}
	return genre, nil
}

// DeleteGenre relies on the RESTRICT foreign keys from players and honors;
// competition and team links are cleared by ON DELETE SET NULL.
func (r *CategoryRepository) DeleteGenre(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("genres").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete genre query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isForeignKeyViolation(err, "players_genre_id_fkey") || isForeignKeyViolation(err, "honors_genre_id_fkey") {
			return false, category.ErrGenreInUse
		}
		return false, errors.Wrap(err, "delete genre")
	}
	return rowsAffected(result, "delete genre")
}

func (r *CategoryRepository) ListAgeCategories(ctx context.Context) ([]category.AgeCategory, error) {
	query, args, err := qb.Select("*").From("age_categories").
		OrderBy("age_min ASC NULLS LAST", "id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select age categories query")
	}

	var rows []ageCategoryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select age categories")
	}

	out := make([]category.AgeCategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CategoryRepository) GetAgeCategoryByID(ctx context.Context, id int64) (category.AgeCategory, bool, error) {
	query, args, err := qb.Select("*").From("age_categories").Where(qb.Eq("id", id)).Limit(1).ToSQL()
	if err != nil {
		return category.AgeCategory{}, false, errors.Wrap(err, "build get age category query")
	}

	var row ageCategoryTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return category.AgeCategory{}, false, nil
		}
		return category.AgeCategory{}, false, errors.Wrap(err, "get age category")
	}
	return row.toDomain(), true, nil
}

func (r *CategoryRepository) CreateAgeCategory(ctx context.Context, item category.AgeCategory) (category.AgeCategory, error) {
	insertModel := ageCategoryInsertModel{
		Name:   item.Name,
		AgeMin: nullInt32(item.AgeMin),
		AgeMax: nullInt32(item.AgeMax),
	}
	query, args, err := qb.InsertModel("age_categories", insertModel, "RETURNING id")
	if err != nil {
		return category.AgeCategory{}, errors.Wrap(err, "build create age category query")
	}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return category.AgeCategory{}, errors.Wrap(err, "create age category")
	}
	return item, nil
}

func (r *CategoryRepository) UpdateAgeCategory(ctx context.Context, item category.AgeCategory) (bool, error) {
	query, args, err := updateAgeCategoryQuery(item)
	if err != nil {
		return false, errors.Wrap(err, "build update age category query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "update age category")
	}
	return rowsAffected(result, "update age category")
}

// DeleteAgeCategory leaves the nulling of competition, team and player links
// to ON DELETE SET NULL.
func (r *CategoryRepository) DeleteAgeCategory(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.DeleteFrom("age_categories").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return false, errors.Wrap(err, "build delete age category query")
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "delete age category")
	}
	return rowsAffected(result, "delete age category")
}

func updateAgeCategoryQuery(item category.AgeCategory) (string, []any, error) {
	return qb.Update("age_categories").
		Set("name", item.Name).
		Set("age_min", nullInt32(item.AgeMin)).
		Set("age_max", nullInt32(item.AgeMax)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
}
