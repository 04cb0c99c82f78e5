package httpapi

import (
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

type signupRequest struct {
	Surname              string `json:"surname" validate:"required,max=100"`
	GivenName            string `json:"given_name" validate:"required,max=100"`
	BirthDate            string `json:"birth_date" validate:"required"`
	GenreID              int64  `json:"genre_id" validate:"required,gt=0"`
	Email                string `json:"email" validate:"required,email,max=254"`
	Phone                string `json:"phone" validate:"required,max=32"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func (req signupRequest) toInput() (usecase.SignupInput, error) {
	birthDate, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		return usecase.SignupInput{}, err
	}
	return usecase.SignupInput{
		Surname:              req.Surname,
		GivenName:            req.GivenName,
		BirthDate:            birthDate,
		GenreID:              req.GenreID,
		Email:                req.Email,
		Phone:                req.Phone,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

type genreRequest struct {
	Code string `json:"code" validate:"required,oneof=M F"`
}

type ageCategoryRequest struct {
	Name   string `json:"name" validate:"required,max=50"`
	AgeMin *int   `json:"age_min" validate:"omitempty,gte=0"`
	AgeMax *int   `json:"age_max" validate:"omitempty,gte=0"`
}

func (req ageCategoryRequest) toDomain(id int64) category.AgeCategory {
	return category.AgeCategory{ID: id, Name: req.Name, AgeMin: req.AgeMin, AgeMax: req.AgeMax}
}

type seasonRequest struct {
	Period string `json:"period" validate:"required,max=20"`
}

func (req seasonRequest) toDomain(id int64) season.Season {
	return season.Season{ID: id, Period: req.Period}
}

type competitionRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	Date          string `json:"date" validate:"required"`
	Venue         string `json:"venue" validate:"required,max=100"`
	AgeCategoryID *int64 `json:"age_category_id" validate:"omitempty,gt=0"`
	GenreID       *int64 `json:"genre_id" validate:"omitempty,gt=0"`
}

func (req competitionRequest) toDomain(id int64) (competition.Competition, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return competition.Competition{}, err
	}
	return competition.Competition{
		ID:            id,
		Name:          req.Name,
		Date:          date,
		Venue:         req.Venue,
		AgeCategoryID: req.AgeCategoryID,
		GenreID:       req.GenreID,
	}, nil
}

type opposingTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	GenreID       *int64 `json:"genre_id" validate:"omitempty,gt=0"`
	AgeCategoryID *int64 `json:"age_category_id" validate:"omitempty,gt=0"`
}

func (req opposingTeamRequest) toDomain(id int64) team.OpposingTeam {
	return team.OpposingTeam{ID: id, Name: req.Name, GenreID: req.GenreID, AgeCategoryID: req.AgeCategoryID}
}

type playerRequest struct {
	Surname       string `json:"surname" validate:"required,max=100"`
	GivenName     string `json:"given_name" validate:"required,max=100"`
	BirthDate     string `json:"birth_date" validate:"required"`
	GenreID       int64  `json:"genre_id" validate:"required,gt=0"`
	AgeCategoryID *int64 `json:"age_category_id" validate:"omitempty,gt=0"`
}

func (req playerRequest) toDomain(id int64) (player.Player, error) {
	birthDate, err := parseDate("birth_date", req.BirthDate)
	if err != nil {
		return player.Player{}, err
	}
	return player.Player{
		ID:            id,
		Surname:       req.Surname,
		GivenName:     req.GivenName,
		BirthDate:     birthDate,
		GenreID:       req.GenreID,
		AgeCategoryID: req.AgeCategoryID,
	}, nil
}

type setScoreRequest struct {
	Club     *int `json:"club" validate:"omitempty,gte=0"`
	Opponent *int `json:"opponent" validate:"omitempty,gte=0"`
}

type matchRequest struct {
	PlayedAt        string            `json:"played_at" validate:"required"`
	Venue           string            `json:"venue" validate:"required,max=100"`
	CompetitionID   int64             `json:"competition_id" validate:"required,gt=0"`
	SeasonID        int64             `json:"season_id" validate:"required,gt=0"`
	OpposingTeamIDs []int64           `json:"opposing_team_ids" validate:"required,min=1,dive,gt=0"`
	SetsClub        *int              `json:"sets_club" validate:"omitempty,gte=0,lte=3"`
	SetsOpponent    *int              `json:"sets_opponent" validate:"omitempty,gte=0,lte=3"`
	Sets            []setScoreRequest `json:"sets" validate:"max=5,dive"`
}

func (req matchRequest) toDomain(id int64) (match.Match, error) {
	playedAt, err := parseTimestamp("played_at", req.PlayedAt)
	if err != nil {
		return match.Match{}, err
	}
	item := match.Match{
		ID:              id,
		PlayedAt:        playedAt,
		Venue:           req.Venue,
		CompetitionID:   req.CompetitionID,
		SeasonID:        req.SeasonID,
		OpposingTeamIDs: req.OpposingTeamIDs,
		SetsClub:        req.SetsClub,
		SetsOpponent:    req.SetsOpponent,
	}
	for i, set := range req.Sets {
		item.Sets[i] = match.SetScore{Club: set.Club, Opponent: set.Opponent}
	}
	return item, nil
}

type honorsRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Competition string `json:"competition" validate:"required,max=200"`
	Year        int    `json:"year" validate:"required,gte=1900"`
	GenreID     int64  `json:"genre_id" validate:"required,gt=0"`
}

func (req honorsRequest) toDomain(id int64) honors.Record {
	return honors.Record{
		ID:          id,
		Title:       req.Title,
		Competition: req.Competition,
		Year:        req.Year,
		GenreID:     req.GenreID,
	}
}
