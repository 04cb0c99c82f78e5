package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-manager/internal/domain/team"
)

func (h *Handler) AdminListGenres(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListGenres")
	defer span.End()

	items, err := h.categoryService.ListGenres(ctx)
	if err != nil {
		h.logFailure(ctx, "list genres failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, genresToDTO(items))
}

func (h *Handler) AdminGetGenre(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetGenre")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.categoryService.GetGenre(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get genre failed", err, "genre_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, genreToDTO(item))
}

func (h *Handler) AdminCreateGenre(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateGenre")
	defer span.End()

	var req genreRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.categoryService.CreateGenre(ctx, req.Code)
	if err != nil {
		h.logFailure(ctx, "create genre failed", err, "code", req.Code)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, genreToDTO(item))
}

func (h *Handler) AdminDeleteGenre(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteGenre")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.categoryService.DeleteGenre(ctx, id); err != nil {
		h.logFailure(ctx, "delete genre failed", err, "genre_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminListAgeCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListAgeCategories")
	defer span.End()

	items, err := h.categoryService.ListAgeCategories(ctx)
	if err != nil {
		h.logFailure(ctx, "list age categories failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ageCategoriesToDTO(items))
}

func (h *Handler) AdminGetAgeCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetAgeCategory")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.categoryService.GetAgeCategory(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get age category failed", err, "age_category_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ageCategoryToDTO(item))
}

func (h *Handler) AdminCreateAgeCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateAgeCategory")
	defer span.End()

	var req ageCategoryRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.categoryService.CreateAgeCategory(ctx, req.toDomain(0))
	if err != nil {
		h.logFailure(ctx, "create age category failed", err, "name", req.Name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, ageCategoryToDTO(item))
}

func (h *Handler) AdminUpdateAgeCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateAgeCategory")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req ageCategoryRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.categoryService.UpdateAgeCategory(ctx, req.toDomain(id))
	if err != nil {
		h.logFailure(ctx, "update age category failed", err, "age_category_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, ageCategoryToDTO(item))
}

func (h *Handler) AdminDeleteAgeCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteAgeCategory")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.categoryService.DeleteAgeCategory(ctx, id); err != nil {
		h.logFailure(ctx, "delete age category failed", err, "age_category_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListSeasons")
	defer span.End()

	items, err := h.seasonService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list seasons failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonsToDTO(items))
}

func (h *Handler) AdminGetSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetSeason")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.seasonService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get season failed", err, "season_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) AdminCreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateSeason")
	defer span.End()

	var req seasonRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.seasonService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logFailure(ctx, "create season failed", err, "period", req.Period)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(item))
}

func (h *Handler) AdminUpdateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateSeason")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req seasonRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.seasonService.Update(ctx, req.toDomain(id))
	if err != nil {
		h.logFailure(ctx, "update season failed", err, "season_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seasonToDTO(item))
}

func (h *Handler) AdminDeleteSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteSeason")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.seasonService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete season failed", err, "season_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminGetCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetCompetition")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.competitionService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get competition failed", err, "competition_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) AdminCreateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateCompetition")
	defer span.End()

	var req competitionRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.competitionService.Create(ctx, input)
	if err != nil {
		h.logFailure(ctx, "create competition failed", err, "name", req.Name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, competitionToDTO(item))
}

func (h *Handler) AdminUpdateCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateCompetition")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req competitionRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.competitionService.Update(ctx, input)
	if err != nil {
		h.logFailure(ctx, "update competition failed", err, "competition_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, competitionToDTO(item))
}

func (h *Handler) AdminDeleteCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteCompetition")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.competitionService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete competition failed", err, "competition_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListTeams")
	defer span.End()

	filter := team.Filter{Search: querySearch(r)}
	var err error
	if filter.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.AgeCategoryID, err = queryID(r, "age_category"); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.teamService.List(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, opposingTeamsToDTO(items))
}

func (h *Handler) AdminGetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.teamService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get team failed", err, "team_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, opposingTeamToDTO(item))
}

func (h *Handler) AdminCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateTeam")
	defer span.End()

	var req opposingTeamRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.teamService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logFailure(ctx, "create team failed", err, "name", req.Name)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, opposingTeamToDTO(item))
}

func (h *Handler) AdminUpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req opposingTeamRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.teamService.Update(ctx, req.toDomain(id))
	if err != nil {
		h.logFailure(ctx, "update team failed", err, "team_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, opposingTeamToDTO(item))
}

func (h *Handler) AdminDeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteTeam")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.teamService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete team failed", err, "team_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
