package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/domain/category"
	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/season"
	"github.com/riskibarqy/club-manager/internal/domain/team"
)

const (
	homeMatchLimit    = 3
	homeHonorsLimit   = 5
	historyMatchLimit = 5
)

type ReportConfig struct {
	MatchPageSize  int
	HonorsPageSize int
}

type HomeView struct {
	RecentMatches []MatchView
	Honors        []honors.Record
}

type CalendarQuery struct {
	SeasonID      int64
	CompetitionID int64
	AgeCategoryID int64
	GenreID       int64
	Page          int
}

type CalendarView struct {
	Matches       MatchPage
	Seasons       []season.Season
	Competitions  []competition.Competition
	Genres        []category.Genre
	AgeCategories []category.AgeCategory
}

type CategoriesView struct {
	AgeCategories []category.AgeCategory
	Genres        []category.Genre
}

type CategoryMatchesView struct {
	Genre       category.Genre
	AgeCategory category.AgeCategory
	Matches     MatchPage
}

type HistoryQuery struct {
	Year    int
	GenreID int64
	Page    int
}

type HistoryView struct {
	Honors        HonorsPage
	RecentMatches []MatchView
	Genres        []category.Genre
}

// ReportService builds the public read-only views.
type ReportService struct {
	matchRepo       match.Repository
	honorsRepo      honors.Repository
	categoryRepo    category.Repository
	seasonRepo      season.Repository
	competitionRepo competition.Repository
	resolver        *matchResolver
	cfg             ReportConfig
	now             func() time.Time
}

func NewReportService(
	matchRepo match.Repository,
	honorsRepo honors.Repository,
	categoryRepo category.Repository,
	seasonRepo season.Repository,
	competitionRepo competition.Repository,
	teamRepo team.Repository,
	cfg ReportConfig,
) *ReportService {
	return &ReportService{
		matchRepo:       matchRepo,
		honorsRepo:      honorsRepo,
		categoryRepo:    categoryRepo,
		seasonRepo:      seasonRepo,
		competitionRepo: competitionRepo,
		resolver:        newMatchResolver(competitionRepo, seasonRepo, teamRepo),
		cfg:             cfg,
		now:             time.Now,
	}
}

func (s *ReportService) Home(ctx context.Context) (HomeView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Home")
	defer span.End()

	matches, err := s.matchRepo.List(ctx, match.Filter{}, homeMatchLimit, 0)
	if err != nil {
		return HomeView{}, errors.Wrap(err, "list recent matches")
	}
	views, err := s.resolver.resolve(ctx, matches)
	if err != nil {
		return HomeView{}, err
	}

	records, err := s.honorsRepo.List(ctx, honors.Filter{}, homeHonorsLimit, 0)
	if err != nil {
		return HomeView{}, errors.Wrap(err, "list honors")
	}

	return HomeView{RecentMatches: views, Honors: records}, nil
}

// Calendar lists every match narrowed by the optional filters. Filter ids
// that do not exist are rejected rather than silently matching nothing.
func (s *ReportService) Calendar(ctx context.Context, query CalendarQuery) (CalendarView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Calendar")
	defer span.End()

	seasons, err := s.seasonRepo.List(ctx)
	if err != nil {
		return CalendarView{}, errors.Wrap(err, "list seasons")
	}
	competitions, err := s.competitionRepo.List(ctx, competition.Filter{})
	if err != nil {
		return CalendarView{}, errors.Wrap(err, "list competitions")
	}
	genres, err := s.categoryRepo.ListGenres(ctx)
	if err != nil {
		return CalendarView{}, errors.Wrap(err, "list genres")
	}
	ageCategories, err := s.categoryRepo.ListAgeCategories(ctx)
	if err != nil {
		return CalendarView{}, errors.Wrap(err, "list age categories")
	}
	ageCategories = sortedAgeCategories(ageCategories)

	if query.SeasonID != 0 && !containsID(seasons, query.SeasonID, func(v season.Season) int64 { return v.ID }) {
		return CalendarView{}, errors.Newf("%w: unknown season=%d", ErrInvalidInput, query.SeasonID)
	}
	if query.CompetitionID != 0 && !containsID(competitions, query.CompetitionID, func(v competition.Competition) int64 { return v.ID }) {
		return CalendarView{}, errors.Newf("%w: unknown competition=%d", ErrInvalidInput, query.CompetitionID)
	}
	if query.GenreID != 0 && !containsID(genres, query.GenreID, func(v category.Genre) int64 { return v.ID }) {
		return CalendarView{}, errors.Newf("%w: unknown genre=%d", ErrInvalidInput, query.GenreID)
	}
	if query.AgeCategoryID != 0 && !containsID(ageCategories, query.AgeCategoryID, func(v category.AgeCategory) int64 { return v.ID }) {
		return CalendarView{}, errors.Newf("%w: unknown age_category=%d", ErrInvalidInput, query.AgeCategoryID)
	}

	filter := match.Filter{
		SeasonID:      query.SeasonID,
		CompetitionID: query.CompetitionID,
		AgeCategoryID: query.AgeCategoryID,
		GenreID:       query.GenreID,
	}
	page, err := listMatchPage(ctx, s.matchRepo, s.resolver, filter, query.Page, s.cfg.MatchPageSize)
	if err != nil {
		return CalendarView{}, err
	}

	return CalendarView{
		Matches:       page,
		Seasons:       seasons,
		Competitions:  competitions,
		Genres:        genres,
		AgeCategories: ageCategories,
	}, nil
}

func (s *ReportService) Categories(ctx context.Context) (CategoriesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.Categories")
	defer span.End()

	ageCategories, err := s.categoryRepo.ListAgeCategories(ctx)
	if err != nil {
		return CategoriesView{}, errors.Wrap(err, "list age categories")
	}
	ageCategories = sortedAgeCategories(ageCategories)

	genres, err := s.categoryRepo.ListGenres(ctx)
	if err != nil {
		return CategoriesView{}, errors.Wrap(err, "list genres")
	}
	return CategoriesView{AgeCategories: ageCategories, Genres: genres}, nil
}

// CategoryMatches lists matches whose competition targets exactly the given
// genre and age category.
func (s *ReportService) CategoryMatches(ctx context.Context, genreCode string, ageCategoryID int64, page int) (CategoryMatchesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.CategoryMatches")
	defer span.End()

	ageCategory, ok, err := s.categoryRepo.GetAgeCategoryByID(ctx, ageCategoryID)
	if err != nil {
		return CategoryMatchesView{}, errors.Wrap(err, "get age category")
	}
	if !ok {
		return CategoryMatchesView{}, errors.Newf("%w: age_category=%d", ErrNotFound, ageCategoryID)
	}

	code, err := category.ParseGenreCode(genreCode)
	if err != nil {
		return CategoryMatchesView{}, errors.Newf("%w: genre=%s", ErrNotFound, genreCode)
	}
	genre, ok, err := s.categoryRepo.GetGenreByCode(ctx, code)
	if err != nil {
		return CategoryMatchesView{}, errors.Wrap(err, "get genre")
	}
	if !ok {
		return CategoryMatchesView{}, errors.Newf("%w: genre=%s", ErrNotFound, code)
	}

	filter := match.Filter{AgeCategoryID: ageCategory.ID, GenreID: genre.ID}
	matches, err := listMatchPage(ctx, s.matchRepo, s.resolver, filter, page, s.cfg.MatchPageSize)
	if err != nil {
		return CategoryMatchesView{}, err
	}

	return CategoryMatchesView{Genre: genre, AgeCategory: ageCategory, Matches: matches}, nil
}

func (s *ReportService) History(ctx context.Context, query HistoryQuery) (HistoryView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.History")
	defer span.End()

	genres, err := s.categoryRepo.ListGenres(ctx)
	if err != nil {
		return HistoryView{}, errors.Wrap(err, "list genres")
	}
	if query.GenreID != 0 && !containsID(genres, query.GenreID, func(v category.Genre) int64 { return v.ID }) {
		return HistoryView{}, errors.Newf("%w: unknown genre=%d", ErrInvalidInput, query.GenreID)
	}

	records, err := listHonorsPage(ctx, s.honorsRepo, honors.Filter{Year: query.Year, GenreID: query.GenreID}, query.Page, s.cfg.HonorsPageSize)
	if err != nil {
		return HistoryView{}, err
	}

	now := s.now().UTC()
	past, err := s.matchRepo.List(ctx, match.Filter{Before: &now}, historyMatchLimit, 0)
	if err != nil {
		return HistoryView{}, errors.Wrap(err, "list past matches")
	}
	views, err := s.resolver.resolve(ctx, past)
	if err != nil {
		return HistoryView{}, err
	}

	return HistoryView{Honors: records, RecentMatches: views, Genres: genres}, nil
}

func containsID[T any](items []T, id int64, key func(T) int64) bool {
	for _, item := range items {
		if key(item) == id {
			return true
		}
	}
	return false
}

// sortedAgeCategories returns a sorted copy; repository slices may be shared
// by the cache.
func sortedAgeCategories(items []category.AgeCategory) []category.AgeCategory {
	out := append([]category.AgeCategory(nil), items...)
	category.SortAgeCategories(out)
	return out
}
