package category

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidGenre     = errors.New("genre must be M or F")
	ErrDuplicateGenre   = errors.New("genre already exists")
	ErrGenreInUse       = errors.New("genre is still referenced by players or honors")
	ErrInvalidAgeRange  = errors.New("age_min must not exceed age_max")
	ErrAgeCategoryName  = errors.New("age category name is required")
	ErrNegativeAgeBound = errors.New("age bounds must not be negative")
)

// GenreCode is the sex bucket applied to players, teams, competitions and honors.
type GenreCode string

const (
	GenreMale   GenreCode = "M"
	GenreFemale GenreCode = "F"
)

func ParseGenreCode(v string) (GenreCode, error) {
	switch GenreCode(strings.ToUpper(strings.TrimSpace(v))) {
	case GenreMale:
		return GenreMale, nil
	case GenreFemale:
		return GenreFemale, nil
	default:
		return "", errors.Wrapf(ErrInvalidGenre, "got %q", v)
	}
}

type Genre struct {
	ID   int64
	Code GenreCode
}

func (g Genre) Label() string {
	switch g.Code {
	case GenreMale:
		return "Men"
	case GenreFemale:
		return "Women"
	default:
		return string(g.Code)
	}
}

func (g Genre) Validate() error {
	if _, err := ParseGenreCode(string(g.Code)); err != nil {
		return err
	}
	return nil
}

// AgeCategory is a named age range. Either bound may be unset, in which case
// that side of the range is open.
type AgeCategory struct {
	ID     int64
	Name   string
	AgeMin *int
	AgeMax *int
}

func (c AgeCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrAgeCategoryName
	}
	if (c.AgeMin != nil && *c.AgeMin < 0) || (c.AgeMax != nil && *c.AgeMax < 0) {
		return ErrNegativeAgeBound
	}
	if c.AgeMin != nil && c.AgeMax != nil && *c.AgeMin > *c.AgeMax {
		return errors.Wrapf(ErrInvalidAgeRange, "%d > %d", *c.AgeMin, *c.AgeMax)
	}
	return nil
}

func (c AgeCategory) Label() string {
	if c.AgeMin != nil && c.AgeMax != nil {
		return fmt.Sprintf("%s (%d-%d yrs)", c.Name, *c.AgeMin, *c.AgeMax)
	}
	return c.Name
}

// Contains reports whether age falls inside the category range. A category
// without any bound describes no range and contains nothing.
func (c AgeCategory) Contains(age int) bool {
	if c.AgeMin == nil && c.AgeMax == nil {
		return false
	}
	if c.AgeMin != nil && age < *c.AgeMin {
		return false
	}
	if c.AgeMax != nil && age > *c.AgeMax {
		return false
	}
	return true
}

// AgeAt returns the whole-year age on day at of someone born on birth.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// SortAgeCategories orders categories by AgeMin ascending with unset
// minimums last, then by ID. This is the listing order and the order in
// which Bucket searches.
func SortAgeCategories(items []AgeCategory) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch {
		case a.AgeMin == nil && b.AgeMin == nil:
			return a.ID < b.ID
		case a.AgeMin == nil:
			return false
		case b.AgeMin == nil:
			return true
		case *a.AgeMin != *b.AgeMin:
			return *a.AgeMin < *b.AgeMin
		default:
			return a.ID < b.ID
		}
	})
}

// Bucket picks the first category containing age. Overlapping ranges resolve
// to the earliest category in SortAgeCategories order. ok is false when no
// category matches and the player stays unassigned.
func Bucket(age int, categories []AgeCategory) (AgeCategory, bool) {
	ordered := append([]AgeCategory(nil), categories...)
	SortAgeCategories(ordered)
	for _, c := range ordered {
		if c.Contains(age) {
			return c, true
		}
	}
	return AgeCategory{}, false
}
