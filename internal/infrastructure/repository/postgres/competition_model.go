package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/competition"
)

type competitionTableModel struct {
	ID            int64         `db:"id"`
	Name          string        `db:"name"`
	Date          time.Time     `db:"date"`
	Venue         string        `db:"venue"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
	GenreID       sql.NullInt64 `db:"genre_id"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type competitionInsertModel struct {
	Name          string        `db:"name"`
	Date          time.Time     `db:"date"`
	Venue         string        `db:"venue"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
	GenreID       sql.NullInt64 `db:"genre_id"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:            m.ID,
		Name:          m.Name,
		Date:          m.Date,
		Venue:         m.Venue,
		AgeCategoryID: int64Ptr(m.AgeCategoryID),
		GenreID:       int64Ptr(m.GenreID),
	}
}
