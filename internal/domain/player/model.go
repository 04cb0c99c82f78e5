package player

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
)

var (
	ErrInvalidPlayer = errors.New("invalid player")
	ErrBirthInFuture = errors.New("birth date is in the future")
	ErrGenreRequired = errors.New("player genre is required")
)

// Player is a club member.
type Player struct {
	ID            int64
	Surname       string
	GivenName     string
	BirthDate     time.Time
	GenreID       int64
	AgeCategoryID *int64
}

// Normalize trims names and checks the player against today's date.
func (p *Player) Normalize(today time.Time) error {
	p.Surname = strings.TrimSpace(p.Surname)
	p.GivenName = strings.TrimSpace(p.GivenName)
	if p.Surname == "" {
		return errors.Wrap(ErrInvalidPlayer, "surname is required")
	}
	if p.GivenName == "" {
		return errors.Wrap(ErrInvalidPlayer, "given name is required")
	}
	if p.BirthDate.IsZero() {
		return errors.Wrap(ErrInvalidPlayer, "birth date is required")
	}
	if p.BirthDate.After(today) {
		return ErrBirthInFuture
	}
	if p.GenreID <= 0 {
		return ErrGenreRequired
	}
	return nil
}

func (p Player) Age(at time.Time) int {
	return category.AgeAt(p.BirthDate, at)
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.GivenName + " " + p.Surname)
}

// Categorize sets AgeCategoryID from the player's age on day at and reports
// whether it changed.
func (p *Player) Categorize(at time.Time, categories []category.AgeCategory) bool {
	var next *int64
	if c, ok := category.Bucket(p.Age(at), categories); ok {
		id := c.ID
		next = &id
	}
	changed := (p.AgeCategoryID == nil) != (next == nil) ||
		(p.AgeCategoryID != nil && next != nil && *p.AgeCategoryID != *next)
	p.AgeCategoryID = next
	return changed
}

// Filter narrows listings. Zero values are ignored.
type Filter struct {
	GenreID       int64
	AgeCategoryID int64
	Search        string
}
