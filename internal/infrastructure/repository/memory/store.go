package memory

import (
	"strings"
	"sync"

	"github.com/riskibarqy/club-manager/internal/domain/account"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
)

// Store holds every table behind a single lock so that cross-table rules
// (cascades, nulled links, restricted deletes) apply atomically, the same
// way the postgres foreign keys do.
type Store struct {
	mu  sync.RWMutex
	seq int64

	genres        map[int64]category.Genre
	ageCategories map[int64]category.AgeCategory
	seasons       map[int64]season.Season
	competitions  map[int64]competition.Competition
	teams         map[int64]team.OpposingTeam
	players       map[int64]player.Player
	matches       map[int64]match.Match
	honors        map[int64]honors.Record
	accounts      map[int64]account.Account
	sessions      map[string]account.Session
}

func NewStore() *Store {
	return &Store{
		genres:        make(map[int64]category.Genre),
		ageCategories: make(map[int64]category.AgeCategory),
		seasons:       make(map[int64]season.Season),
		competitions:  make(map[int64]competition.Competition),
		teams:         make(map[int64]team.OpposingTeam),
		players:       make(map[int64]player.Player),
		matches:       make(map[int64]match.Match),
		honors:        make(map[int64]honors.Record),
		accounts:      make(map[int64]account.Account),
		sessions:      make(map[string]account.Session),
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

func containsFold(value, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(term))
}

func idMatches(filterID int64, value *int64) bool {
	if filterID == 0 {
		return true
	}
	return value != nil && *value == filterID
}

func copyInt64Ptr(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneMatch(m match.Match) match.Match {
	m.OpposingTeamIDs = append([]int64(nil), m.OpposingTeamIDs...)
	return m
}
