package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/platform/pagination"
)

// MatchView is a match with its competition, season and opponents resolved.
type MatchView struct {
	Match         match.Match
	Competition   competition.Competition
	Season        season.Season
	OpposingTeams []team.OpposingTeam
	Result        match.Result
	Score         string
	Label         string
}

type MatchPage struct {
	Items []MatchView
	Page  pagination.Page
}

type matchResolver struct {
	competitionRepo competition.Repository
	seasonRepo      season.Repository
	teamRepo        team.Repository
}

func newMatchResolver(competitionRepo competition.Repository, seasonRepo season.Repository, teamRepo team.Repository) *matchResolver {
	return &matchResolver{
		competitionRepo: competitionRepo,
		seasonRepo:      seasonRepo,
		teamRepo:        teamRepo,
	}
}

func (r *matchResolver) resolve(ctx context.Context, items []match.Match) ([]MatchView, error) {
	if len(items) == 0 {
		return []MatchView{}, nil
	}

	competitions, err := r.competitionRepo.List(ctx, competition.Filter{})
	if err != nil {
		return nil, errors.Wrap(err, "list competitions")
	}
	competitionByID := make(map[int64]competition.Competition, len(competitions))
	for _, c := range competitions {
		competitionByID[c.ID] = c
	}

	seasons, err := r.seasonRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list seasons")
	}
	seasonByID := make(map[int64]season.Season, len(seasons))
	for _, s := range seasons {
		seasonByID[s.ID] = s
	}

	teamIDs := make([]int64, 0, len(items))
	seen := make(map[int64]struct{})
	for _, m := range items {
		for _, id := range m.OpposingTeamIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			teamIDs = append(teamIDs, id)
		}
	}
	teamByID := make(map[int64]team.OpposingTeam, len(teamIDs))
	if len(teamIDs) > 0 {
		teams, err := r.teamRepo.GetByIDs(ctx, teamIDs)
		if err != nil {
			return nil, errors.Wrap(err, "get teams")
		}
		for _, t := range teams {
			teamByID[t.ID] = t
		}
	}

	out := make([]MatchView, 0, len(items))
	for _, m := range items {
		view := MatchView{
			Match:         m,
			Competition:   competitionByID[m.CompetitionID],
			Season:        seasonByID[m.SeasonID],
			OpposingTeams: make([]team.OpposingTeam, 0, len(m.OpposingTeamIDs)),
			Result:        m.Result(),
			Score:         m.ScoreString(),
			Label:         m.Label(),
		}
		for _, id := range m.OpposingTeamIDs {
			if t, ok := teamByID[id]; ok {
				view.OpposingTeams = append(view.OpposingTeams, t)
			}
		}
		out = append(out, view)
	}
	return out, nil
}
