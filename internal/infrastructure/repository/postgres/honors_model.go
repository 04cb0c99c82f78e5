package postgres

import (
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/honors"
)

type honorsTableModel struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Competition string    `db:"competition"`
	Year        int       `db:"year"`
	GenreID     int64     `db:"genre_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type honorsInsertModel struct {
	Title       string `db:"title"`
	Competition string `db:"competition"`
	Year        int    `db:"year"`
	GenreID     int64  `db:"genre_id"`
}

func (m honorsTableModel) toDomain() honors.Record {
	return honors.Record{
		ID:          m.ID,
		Title:       m.Title,
		Competition: m.Competition,
		Year:        m.Year,
		GenreID:     m.GenreID,
	}
}
