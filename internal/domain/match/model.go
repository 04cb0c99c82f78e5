package match

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// SetCount is the number of sets a match can have.
const SetCount = 5

// WinningSets is the sets_club value that makes a match a win.
const WinningSets = 3

const NoScore = "No score"

var (
	ErrInvalidMatch          = errors.New("invalid match")
	ErrInvalidSetScore       = errors.New("set score must have both sides or neither")
	ErrInvalidSetTotal       = errors.New("sets won must be between 0 and 3")
	ErrDuplicateOpposingTeam = errors.New("opposing team linked twice to the same match")
)

type Result string

const (
	ResultPending Result = "pending"
	ResultWin     Result = "win"
	ResultLoss    Result = "loss"
)

// SetScore holds the points of one set. A set is played when both sides are set.
type SetScore struct {
	Club     *int
	Opponent *int
}

func (s SetScore) Played() bool {
	return s.Club != nil && s.Opponent != nil
}

// Match is a match day against one or more opposing teams.
type Match struct {
	ID              int64
	PlayedAt        time.Time
	Venue           string
	CompetitionID   int64
	SeasonID        int64
	OpposingTeamIDs []int64
	SetsClub        *int
	SetsOpponent    *int
	Sets            [SetCount]SetScore
}

func (m *Match) Normalize() error {
	m.Venue = strings.TrimSpace(m.Venue)
	if m.Venue == "" {
		return errors.Wrap(ErrInvalidMatch, "venue is required")
	}
	if m.PlayedAt.IsZero() {
		return errors.Wrap(ErrInvalidMatch, "date is required")
	}
	if m.CompetitionID <= 0 {
		return errors.Wrap(ErrInvalidMatch, "competition is required")
	}
	if m.SeasonID <= 0 {
		return errors.Wrap(ErrInvalidMatch, "season is required")
	}
	if len(m.OpposingTeamIDs) == 0 {
		return errors.Wrap(ErrInvalidMatch, "at least one opposing team is required")
	}
	seen := make(map[int64]struct{}, len(m.OpposingTeamIDs))
	for _, id := range m.OpposingTeamIDs {
		if id <= 0 {
			return errors.Wrapf(ErrInvalidMatch, "invalid opposing team id %d", id)
		}
		if _, ok := seen[id]; ok {
			return errors.Wrapf(ErrDuplicateOpposingTeam, "team %d", id)
		}
		seen[id] = struct{}{}
	}
	for _, total := range []*int{m.SetsClub, m.SetsOpponent} {
		if total != nil && (*total < 0 || *total > WinningSets) {
			return errors.Wrapf(ErrInvalidSetTotal, "got %d", *total)
		}
	}
	for i, set := range m.Sets {
		if (set.Club == nil) != (set.Opponent == nil) {
			return errors.Wrapf(ErrInvalidSetScore, "set %d", i+1)
		}
		if set.Played() && (*set.Club < 0 || *set.Opponent < 0) {
			return errors.Wrapf(ErrInvalidSetScore, "set %d has negative points", i+1)
		}
	}
	return nil
}

// Result is pending until both set totals are known. Only the club total
// decides the outcome; the per-set points are not reconciled with it.
func (m Match) Result() Result {
	if m.SetsClub == nil || m.SetsOpponent == nil {
		return ResultPending
	}
	if *m.SetsClub == WinningSets {
		return ResultWin
	}
	return ResultLoss
}

// ScoreString renders played sets as "25-20 / 18-25" in set order.
func (m Match) ScoreString() string {
	parts := make([]string, 0, SetCount)
	for _, set := range m.Sets {
		if !set.Played() {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d-%d", *set.Club, *set.Opponent))
	}
	if len(parts) == 0 {
		return NoScore
	}
	return strings.Join(parts, " / ")
}

func (m Match) Label() string {
	day := m.PlayedAt.Format("02/01/2006")
	if m.SetsClub != nil && m.SetsOpponent != nil {
		return fmt.Sprintf("Match on %s - %d:%d", day, *m.SetsClub, *m.SetsOpponent)
	}
	return fmt.Sprintf("Match on %s - %s", day, m.Venue)
}

func (m Match) IsWin() bool {
	return m.SetsClub != nil && *m.SetsClub == WinningSets
}

// Filter selects matches. All set criteria must hold.
type Filter struct {
	SeasonID      int64
	CompetitionID int64
	// AgeCategoryID and GenreID apply to the match's competition.
	AgeCategoryID int64
	// AgeCategoryUnset selects competitions without an age category and
	// takes precedence over AgeCategoryID.
	AgeCategoryUnset bool
	GenreID          int64
	// Before keeps matches played strictly before the instant.
	Before *time.Time
	// From keeps matches played at or after the instant.
	From *time.Time
	// Ascending orders by date ascending instead of the default descending.
	Ascending bool
}

type Stats struct {
	Played        int
	Wins          int
	Losses        int
	WinPercentage int
}

// ComputeStats derives player statistics from the matches of a category.
// Played counts past matches only while wins count every match with a
// winning total, so the percentage can exceed 100 when a future match
// already carries a result.
func ComputeStats(matches []Match, now time.Time) Stats {
	var s Stats
	for _, m := range matches {
		if m.PlayedAt.Before(now) {
			s.Played++
		}
		if m.IsWin() {
			s.Wins++
		}
	}
	s.Losses = max(s.Played-s.Wins, 0)
	s.WinPercentage = WinPercentage(s.Played, s.Wins)
	return s
}

func WinPercentage(played, wins int) int {
	if played <= 0 {
		return 0
	}
	return int(math.Round(float64(wins) / float64(played) * 100))
}
