package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/platform/pagination"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

type paginationDTO struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type genreDTO struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

type ageCategoryDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	AgeMin *int   `json:"age_min"`
	AgeMax *int   `json:"age_max"`
	Label  string `json:"label"`
}

type seasonDTO struct {
	ID     int64  `json:"id"`
	Period string `json:"period"`
}

type competitionDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Venue         string `json:"venue"`
	AgeCategoryID *int64 `json:"age_category_id"`
	GenreID       *int64 `json:"genre_id"`
}

type opposingTeamDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	GenreID       *int64 `json:"genre_id"`
	AgeCategoryID *int64 `json:"age_category_id"`
}

type playerDTO struct {
	ID            int64  `json:"id"`
	Surname       string `json:"surname"`
	GivenName     string `json:"given_name"`
	FullName      string `json:"full_name"`
	BirthDate     string `json:"birth_date"`
	GenreID       int64  `json:"genre_id"`
	AgeCategoryID *int64 `json:"age_category_id"`
}

type setScoreDTO struct {
	Club     *int `json:"club"`
	Opponent *int `json:"opponent"`
}

type matchDTO struct {
	ID            int64             `json:"id"`
	PlayedAt      time.Time         `json:"played_at"`
	Venue         string            `json:"venue"`
	Competition   competitionDTO    `json:"competition"`
	Season        seasonDTO         `json:"season"`
	OpposingTeams []opposingTeamDTO `json:"opposing_teams"`
	SetsClub      *int              `json:"sets_club"`
	SetsOpponent  *int              `json:"sets_opponent"`
	Sets          []setScoreDTO     `json:"sets"`
	Result        string            `json:"result"`
	Score         string            `json:"score"`
	Label         string            `json:"label"`
}

type matchPageDTO struct {
	Items      []matchDTO    `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type honorsDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Competition string `json:"competition"`
	Year        int    `json:"year"`
	GenreID     int64  `json:"genre_id"`
}

type honorsPageDTO struct {
	Items      []honorsDTO   `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

type homeDTO struct {
	RecentMatches []matchDTO  `json:"recent_matches"`
	Honors        []honorsDTO `json:"honors"`
}

type calendarDTO struct {
	Matches       matchPageDTO     `json:"matches"`
	Seasons       []seasonDTO      `json:"seasons"`
	Competitions  []competitionDTO `json:"competitions"`
	Genres        []genreDTO       `json:"genres"`
	AgeCategories []ageCategoryDTO `json:"age_categories"`
}

type categoriesDTO struct {
	AgeCategories []ageCategoryDTO `json:"age_categories"`
	Genres        []genreDTO       `json:"genres"`
}

type categoryMatchesDTO struct {
	Genre       genreDTO       `json:"genre"`
	AgeCategory ageCategoryDTO `json:"age_category"`
	Matches     matchPageDTO   `json:"matches"`
}

type historyDTO struct {
	Honors        honorsPageDTO `json:"honors"`
	RecentMatches []matchDTO    `json:"recent_matches"`
	Genres        []genreDTO    `json:"genres"`
}

type statsDTO struct {
	Played        int `json:"played"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	WinPercentage int `json:"win_percentage"`
}

type dashboardDTO struct {
	Player      playerDTO       `json:"player"`
	Age         int             `json:"age"`
	Genre       genreDTO        `json:"genre"`
	AgeCategory *ageCategoryDTO `json:"age_category"`
	Stats       statsDTO        `json:"stats"`
	Upcoming    []matchDTO      `json:"upcoming"`
	Recent      []matchDTO      `json:"recent"`
}

type signupResponseDTO struct {
	Notice    string `json:"notice"`
	Location  string `json:"location"`
	AccountID int64  `json:"account_id"`
	PlayerID  int64  `json:"player_id"`
}

type loginResponseDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	AccountID   int64     `json:"account_id"`
	PlayerID    int64     `json:"player_id,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
}

func paginationToDTO(p pagination.Page) paginationDTO {
	return paginationDTO{
		Page:        p.Number,
		PageSize:    p.Size,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}

func genreToDTO(v category.Genre) genreDTO {
	return genreDTO{ID: v.ID, Code: string(v.Code), Label: v.Label()}
}

func genresToDTO(items []category.Genre) []genreDTO {
	out := make([]genreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, genreToDTO(item))
	}
	return out
}

func ageCategoryToDTO(v category.AgeCategory) ageCategoryDTO {
	return ageCategoryDTO{
		ID:     v.ID,
		Name:   v.Name,
		AgeMin: v.AgeMin,
		AgeMax: v.AgeMax,
		Label:  v.Label(),
	}
}

func ageCategoriesToDTO(items []category.AgeCategory) []ageCategoryDTO {
	out := make([]ageCategoryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ageCategoryToDTO(item))
	}
	return out
}

func seasonToDTO(v season.Season) seasonDTO {
	return seasonDTO{ID: v.ID, Period: v.Period}
}

func seasonsToDTO(items []season.Season) []seasonDTO {
	out := make([]seasonDTO, 0, len(items))
	for _, item := range items {
		out = append(out, seasonToDTO(item))
	}
	return out
}

func competitionToDTO(v competition.Competition) competitionDTO {
	date := ""
	if !v.Date.IsZero() {
		date = v.Date.Format(dateLayout)
	}
	return competitionDTO{
		ID:            v.ID,
		Name:          v.Name,
		Date:          date,
		Venue:         v.Venue,
		AgeCategoryID: v.AgeCategoryID,
		GenreID:       v.GenreID,
	}
}

func competitionsToDTO(items []competition.Competition) []competitionDTO {
	out := make([]competitionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, competitionToDTO(item))
	}
	return out
}

func opposingTeamToDTO(v team.OpposingTeam) opposingTeamDTO {
	return opposingTeamDTO{
		ID:            v.ID,
		Name:          v.Name,
		GenreID:       v.GenreID,
		AgeCategoryID: v.AgeCategoryID,
	}
}

func opposingTeamsToDTO(items []team.OpposingTeam) []opposingTeamDTO {
	out := make([]opposingTeamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, opposingTeamToDTO(item))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:            v.ID,
		Surname:       v.Surname,
		GivenName:     v.GivenName,
		FullName:      v.FullName(),
		BirthDate:     v.BirthDate.Format(dateLayout),
		GenreID:       v.GenreID,
		AgeCategoryID: v.AgeCategoryID,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func matchViewToDTO(ctx context.Context, v usecase.MatchView) matchDTO {
	_, span := startSpan(ctx, "httpapi.matchViewToDTO")
	defer span.End()

	sets := make([]setScoreDTO, 0, match.SetCount)
	for _, s := range v.Match.Sets {
		sets = append(sets, setScoreDTO{Club: s.Club, Opponent: s.Opponent})
	}
	return matchDTO{
		ID:            v.Match.ID,
		PlayedAt:      v.Match.PlayedAt,
		Venue:         v.Match.Venue,
		Competition:   competitionToDTO(v.Competition),
		Season:        seasonToDTO(v.Season),
		OpposingTeams: opposingTeamsToDTO(v.OpposingTeams),
		SetsClub:      v.Match.SetsClub,
		SetsOpponent:  v.Match.SetsOpponent,
		Sets:          sets,
		Result:        string(v.Result),
		Score:         v.Score,
		Label:         v.Label,
	}
}

func matchViewsToDTO(ctx context.Context, items []usecase.MatchView) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchViewToDTO(ctx, item))
	}
	return out
}

func matchPageToDTO(ctx context.Context, page usecase.MatchPage) matchPageDTO {
	return matchPageDTO{
		Items:      matchViewsToDTO(ctx, page.Items),
		Pagination: paginationToDTO(page.Page),
	}
}

func honorsToDTO(v honors.Record) honorsDTO {
	return honorsDTO{
		ID:          v.ID,
		Title:       v.Title,
		Competition: v.Competition,
		Year:        v.Year,
		GenreID:     v.GenreID,
	}
}

func honorsListToDTO(items []honors.Record) []honorsDTO {
	out := make([]honorsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, honorsToDTO(item))
	}
	return out
}

func honorsPageToDTO(page usecase.HonorsPage) honorsPageDTO {
	return honorsPageDTO{
		Items:      honorsListToDTO(page.Items),
		Pagination: paginationToDTO(page.Page),
	}
}

func dashboardToDTO(ctx context.Context, v usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		Player: playerToDTO(v.Player),
		Age:    v.Age,
		Genre:  genreToDTO(v.Genre),
		Stats: statsDTO{
			Played:        v.Stats.Played,
			Wins:          v.Stats.Wins,
			Losses:        v.Stats.Losses,
			WinPercentage: v.Stats.WinPercentage,
		},
		Upcoming: matchViewsToDTO(ctx, v.Upcoming),
		Recent:   matchViewsToDTO(ctx, v.Recent),
	}
	if v.AgeCategory != nil {
		ageCategory := ageCategoryToDTO(*v.AgeCategory)
		out.AgeCategory = &ageCategory
	}
	return out
}
