package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/team"
)

type opposingTeamTableModel struct {
	ID            int64         `db:"id"`
	Name          string        `db:"name"`
	GenreID       sql.NullInt64 `db:"genre_id"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

type opposingTeamInsertModel struct {
	Name          string        `db:"name"`
	GenreID       sql.NullInt64 `db:"genre_id"`
	AgeCategoryID sql.NullInt64 `db:"age_category_id"`
}

func (m opposingTeamTableModel) toDomain() team.OpposingTeam {
	return team.OpposingTeam{
		ID:            m.ID,
		Name:          m.Name,
		GenreID:       int64Ptr(m.GenreID),
		AgeCategoryID: int64Ptr(m.AgeCategoryID),
	}
}
