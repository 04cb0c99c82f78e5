package season

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrPeriodRequired  = errors.New("season period is required")
	ErrDuplicatePeriod = errors.New("season period already exists")
)

// Season is a sporting year such as "2024-2025".
type Season struct {
	ID     int64
	Period string
}

// Normalize trims the period in place and validates the result.
func (s *Season) Normalize() error {
	s.Period = strings.TrimSpace(s.Period)
	if s.Period == "" {
		return ErrPeriodRequired
	}
	return nil
}
