package team

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrNameRequired = errors.New("team name is required")

// OpposingTeam is a club the home club plays against.
type OpposingTeam struct {
	ID            int64
	Name          string
	GenreID       *int64
	AgeCategoryID *int64
}

func (t *OpposingTeam) Normalize() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// Filter narrows listings. Zero values are ignored.
type Filter struct {
	GenreID       int64
	AgeCategoryID int64
	Search        string
}
