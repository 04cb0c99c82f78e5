package honors

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const MinYear = 1900

var ErrInvalidRecord = errors.New("invalid honors record")

// Record is one entry of the club's honors list.
type Record struct {
	ID          int64
	Title       string
	Competition string
	Year        int
	GenreID     int64
}

func (r *Record) Normalize(now time.Time) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Competition = strings.TrimSpace(r.Competition)
	if r.Title == "" {
		return errors.Wrap(ErrInvalidRecord, "title is required")
	}
	if r.Competition == "" {
		return errors.Wrap(ErrInvalidRecord, "competition is required")
	}
	if maxYear := now.Year() + 1; r.Year < MinYear || r.Year > maxYear {
		return errors.Wrapf(ErrInvalidRecord, "year must be between %d and %d", MinYear, maxYear)
	}
	if r.GenreID <= 0 {
		return errors.Wrap(ErrInvalidRecord, "genre is required")
	}
	return nil
}

// Filter narrows listings. Zero values are ignored.
type Filter struct {
	Year    int
	GenreID int64
	Search  string
}
