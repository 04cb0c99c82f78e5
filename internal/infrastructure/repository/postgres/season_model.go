package postgres

import (
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/season"
)

type seasonTableModel struct {
	ID        int64     `db:"id"`
	Period    string    `db:"period"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type seasonInsertModel struct {
	Period string `db:"period"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{ID: m.ID, Period: m.Period}
}
