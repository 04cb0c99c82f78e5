package httpapi

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/club-manager/internal/usecase"
)

const (
	signupNotice = "Account created. You can now log in."
	logoutNotice = "You have been logged out."
)

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Signup")
	defer span.End()

	var req signupRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.accountService.Signup(ctx, input)
	if err != nil {
		h.logFailure(ctx, "signup failed", err, "client_ip", resolveClientIP(r))
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Location", loginLocation)
	writeSuccess(ctx, w, http.StatusCreated, signupResponseDTO{
		Notice:    signupNotice,
		Location:  loginLocation,
		AccountID: result.Account.ID,
		PlayerID:  result.Player.ID,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.accountService.Login(ctx, req.Email, req.Password)
	if err != nil {
		h.logFailure(ctx, "login failed", err, "client_ip", resolveClientIP(r))
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, loginResponseDTO{
		AccessToken: result.Token,
		TokenType:   "Bearer",
		ExpiresAt:   result.ExpiresAt,
		AccountID:   result.Principal.AccountID,
		PlayerID:    result.Principal.PlayerID,
		IsAdmin:     result.Principal.IsAdmin,
	})
}

// Logout revokes the presented session when there is one. It always succeeds
// so that clients can drop their token unconditionally.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	if token, err := bearerToken(r); err == nil {
		h.accountService.Logout(ctx, token)
	}

	writeSuccess(ctx, w, http.StatusOK, noticeDTO{Notice: logoutNotice})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, errors.Newf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	view, err := h.dashboardService.Get(ctx, principal)
	if errors.Is(err, usecase.ErrPlayerNotLinked) {
		writeRedirect(ctx, w, loginLocation, "No player profile is linked to this account.")
		return
	}
	if err != nil {
		h.logFailure(ctx, "get dashboard failed", err, "account_id", principal.AccountID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(ctx, view))
}
