package competition

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var ErrInvalidCompetition = errors.New("invalid competition")

// Competition is a championship or tournament matches belong to.
type Competition struct {
	ID            int64
	Name          string
	Date          time.Time
	Venue         string
	AgeCategoryID *int64
	GenreID       *int64
}

func (c *Competition) Normalize() error {
	c.Name = strings.TrimSpace(c.Name)
	c.Venue = strings.TrimSpace(c.Venue)
	if c.Name == "" {
		return errors.Wrap(ErrInvalidCompetition, "name is required")
	}
	if c.Venue == "" {
		return errors.Wrap(ErrInvalidCompetition, "venue is required")
	}
	if c.Date.IsZero() {
		return errors.Wrap(ErrInvalidCompetition, "date is required")
	}
	return nil
}

// InCategory reports whether the competition targets exactly the given genre
// and age category. A nil age category matches only competitions without one.
func (c Competition) InCategory(genreID int64, ageCategoryID *int64) bool {
	if c.GenreID == nil || *c.GenreID != genreID {
		return false
	}
	if ageCategoryID == nil {
		return c.AgeCategoryID == nil
	}
	return c.AgeCategoryID != nil && *c.AgeCategoryID == *ageCategoryID
}

// Filter narrows listings. Zero values are ignored.
type Filter struct {
	GenreID       int64
	AgeCategoryID int64
	Search        string
}
