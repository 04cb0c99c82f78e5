package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/category"
)

type genreTableModel struct {
	ID        int64     `db:"id"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}

type genreInsertModel struct {
	Code string `db:"code"`
}

func (m genreTableModel) toDomain() category.Genre {
	return category.Genre{ID: m.ID, Code: category.GenreCode(m.Code)}
}

type ageCategoryTableModel struct {
	ID        int64         `db:"id"`
	Name      string        `db:"name"`
	AgeMin    sql.NullInt32 `db:"age_min"`
	AgeMax    sql.NullInt32 `db:"age_max"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type ageCategoryInsertModel struct {
	Name   string        `db:"name"`
	AgeMin sql.NullInt32 `db:"age_min"`
	AgeMax sql.NullInt32 `db:"age_max"`
}

func (m ageCategoryTableModel) toDomain() category.AgeCategory {
	return category.AgeCategory{
		ID:     m.ID,
		Name:   m.Name,
		AgeMin: intPtr(m.AgeMin),
		AgeMax: intPtr(m.AgeMax),
	}
}
