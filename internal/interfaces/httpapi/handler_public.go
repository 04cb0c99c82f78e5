package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-manager/internal/domain/competition"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

func (h *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHome")
	defer span.End()

	view, err := h.reportService.Home(ctx)
	if err != nil {
		h.logFailure(ctx, "get home failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, homeDTO{
		RecentMatches: matchViewsToDTO(ctx, view.RecentMatches),
		Honors:        honorsListToDTO(view.Honors),
	})
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := usecase.CalendarQuery{Page: queryPage(r)}
	var err error
	if query.SeasonID, err = queryID(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.CompetitionID, err = queryID(r, "competition"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.AgeCategoryID, err = queryID(r, "age_category"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.reportService.Calendar(ctx, query)
	if err != nil {
		h.logFailure(ctx, "list matches failed", err, "page", query.Page)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, calendarDTO{
		Matches:       matchPageToDTO(ctx, view.Matches),
		Seasons:       seasonsToDTO(view.Seasons),
		Competitions:  competitionsToDTO(view.Competitions),
		Genres:        genresToDTO(view.Genres),
		AgeCategories: ageCategoriesToDTO(view.AgeCategories),
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.matchService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get match failed", err, "match_id", id)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(ctx, view))
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategories")
	defer span.End()

	view, err := h.reportService.Categories(ctx)
	if err != nil {
		h.logFailure(ctx, "list categories failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, categoriesDTO{
		AgeCategories: ageCategoriesToDTO(view.AgeCategories),
		Genres:        genresToDTO(view.Genres),
	})
}

func (h *Handler) ListCategoryMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCategoryMatches")
	defer span.End()

	genreCode := r.PathValue("genre")
	ageCategoryID, err := pathID(r, "ageCategoryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.reportService.CategoryMatches(ctx, genreCode, ageCategoryID, queryPage(r))
	if err != nil {
		h.logFailure(ctx, "list category matches failed", err, "genre", genreCode, "age_category_id", ageCategoryID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, categoryMatchesDTO{
		Genre:       genreToDTO(view.Genre),
		AgeCategory: ageCategoryToDTO(view.AgeCategory),
		Matches:     matchPageToDTO(ctx, view.Matches),
	})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHistory")
	defer span.End()

	query := usecase.HistoryQuery{Page: queryPage(r)}
	var err error
	if query.Year, err = queryYear(r); err != nil {
		writeError(ctx, w, err)
		return
	}
	if query.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.reportService.History(ctx, query)
	if err != nil {
		h.logFailure(ctx, "get history failed", err, "year", query.Year, "genre_id", query.GenreID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, historyDTO{
		Honors:        honorsPageToDTO(view.Honors),
		RecentMatches: matchViewsToDTO(ctx, view.RecentMatches),
		Genres:        genresToDTO(view.Genres),
	})
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	items, err := h.seasonService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(items))
}

func (h *Handler) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCompetitions")
	defer span.End()

	filter, err := competitionFilterFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.competitionService.List(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list competitions failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionsToDTO(items))
}

func competitionFilterFromQuery(r *http.Request) (competition.Filter, error) {
	filter := competition.Filter{Search: querySearch(r)}
	var err error
	if filter.GenreID, err = queryID(r, "genre"); err != nil {
		return competition.Filter{}, err
	}
	if filter.AgeCategoryID, err = queryID(r, "age_category"); err != nil {
		return competition.Filter{}, err
	}
	return filter, nil
}
