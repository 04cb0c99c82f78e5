package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-manager/internal/domain/honors"
	"github.com/riskibarqy/club-manager/internal/domain/match"
	"github.com/riskibarqy/club-manager/internal/domain/player"
)

func (h *Handler) AdminListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListPlayers")
	defer span.End()

	filter := player.Filter{Search: querySearch(r)}
	var err error
	if filter.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.AgeCategoryID, err = queryID(r, "age_category"); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.List(ctx, filter)
	if err != nil {
		h.logFailure(ctx, "list players failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playersToDTO(items))
}

func (h *Handler) AdminGetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetPlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.playerService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get player failed", err, "player_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) AdminCreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreatePlayer")
	defer span.End()

	var req playerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.playerService.Create(ctx, input)
	if err != nil {
		h.logFailure(ctx, "create player failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) AdminUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdatePlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req playerRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.playerService.Update(ctx, input)
	if err != nil {
		h.logFailure(ctx, "update player failed", err, "player_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) AdminDeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeletePlayer")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.playerService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete player failed", err, "player_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminRecategorizePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminRecategorizePlayers")
	defer span.End()

	result, err := h.playerService.Recategorize(ctx)
	if err != nil {
		h.logFailure(ctx, "recategorize players failed", err)
		writeError(ctx, w, err)
		return
	}
	h.logger.InfoContext(ctx, "players recategorized",
		"scanned", result.Scanned,
		"updated", result.Updated,
		"failed", result.Failed,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) AdminListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListMatches")
	defer span.End()

	var filter match.Filter
	var err error
	if filter.SeasonID, err = queryID(r, "season"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.CompetitionID, err = queryID(r, "competition"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.AgeCategoryID, err = queryID(r, "age_category"); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.matchService.List(ctx, filter, queryPage(r))
	if err != nil {
		h.logFailure(ctx, "list matches failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchPageToDTO(ctx, page))
}

func (h *Handler) AdminGetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetMatch")
	defer span.End()

	id, err := pathID(r, "id")
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

func (h *Handler) AdminCreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateMatch")
	defer span.End()

	var req matchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	view, err := h.matchService.Create(ctx, input)
	if err != nil {
		h.logFailure(ctx, "create match failed", err, "competition_id", req.CompetitionID)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchViewToDTO(ctx, view))
}

func (h *Handler) AdminUpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req matchRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toDomain(id)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	view, err := h.matchService.Update(ctx, input)
	if err != nil {
		h.logFailure(ctx, "update match failed", err, "match_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchViewToDTO(ctx, view))
}

func (h *Handler) AdminDeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.matchService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete match failed", err, "match_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminListHonors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminListHonors")
	defer span.End()

	filter := honors.Filter{Search: querySearch(r)}
	var err error
	if filter.Year, err = queryYear(r); err != nil {
		writeError(ctx, w, err)
		return
	}
	if filter.GenreID, err = queryID(r, "genre"); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.honorsService.List(ctx, filter, queryPage(r))
	if err != nil {
		h.logFailure(ctx, "list honors failed", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, honorsPageToDTO(page))
}

func (h *Handler) AdminGetHonors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminGetHonors")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.honorsService.Get(ctx, id)
	if err != nil {
		h.logFailure(ctx, "get honors failed", err, "honors_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, honorsToDTO(item))
}

func (h *Handler) AdminCreateHonors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminCreateHonors")
	defer span.End()

	var req honorsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.honorsService.Create(ctx, req.toDomain(0))
	if err != nil {
		h.logFailure(ctx, "create honors failed", err, "title", req.Title)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, honorsToDTO(item))
}

func (h *Handler) AdminUpdateHonors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminUpdateHonors")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req honorsRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	item, err := h.honorsService.Update(ctx, req.toDomain(id))
	if err != nil {
		h.logFailure(ctx, "update honors failed", err, "honors_id", id)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, honorsToDTO(item))
}

func (h *Handler) AdminDeleteHonors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdminDeleteHonors")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.honorsService.Delete(ctx, id); err != nil {
		h.logFailure(ctx, "delete honors failed", err, "honors_id", id)
		writeError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
