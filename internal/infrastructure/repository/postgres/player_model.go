package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/player"
)

type playerTableModel struct {
	ID            int64         `db:"id"`
	Surname       string        `db:"surname"`
	GivenName     string        `db:"given_name"`
	BirthDate     time.Time     `db:"birth_date"`
	GenreID       int64         `db:"genre_id"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type playerInsertModel struct {
	Surname       string        `db:"surname"`
	GivenName     string        `db:"given_name"`
	BirthDate     time.Time     `db:"birth_date"`
	GenreID       int64         `db:"genre_id"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
}

func newPlayerInsertModel(item player.Player) playerInsertModel {
	return playerInsertModel{
		Surname:       item.Surname,
		GivenName:     item.GivenName,
		BirthDate:     item.BirthDate,
		GenreID:       item.GenreID,
		AgeCategoryID: nullInt64(item.AgeCategoryID),
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		Surname:       m.Surname,
		GivenName:     m.GivenName,
		BirthDate:     m.BirthDate,
		GenreID:       m.GenreID,
		AgeCategoryID: int64Ptr(m.AgeCategoryID),
	}
}
