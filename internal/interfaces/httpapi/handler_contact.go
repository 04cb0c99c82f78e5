package httpapi

import (
	"net/http"

	"github.com/riskibarqy/club-manager/internal/usecase"
)

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitContact")
	defer span.End()

	var req contactRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err := h.contactService.Submit(ctx, usecase.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logFailure(ctx, "submit contact failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, noticeDTO{Notice: "Thanks for your message. We will get back to you soon."})
}
