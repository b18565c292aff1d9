package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/repository"
	"github.com/upliftapp/uplift/internal/service"
)

type AffirmationHandler struct {
	affirmationService *service.AffirmationService
	sessionService     *service.SessionService
}

func NewAffirmationHandler(affirmationService *service.AffirmationService, sessionService *service.SessionService) *AffirmationHandler {
	return &AffirmationHandler{
		affirmationService: affirmationService,
		sessionService:     sessionService,
	}
}

func (h *AffirmationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())
	affirmationID := r.PathValue("id")

	err := h.affirmationService.Delete(user.ID, affirmationID)
	if err != nil {
		if errors.Is(err, repository.ErrAffirmationNotFound) {
			flashErr := h.sessionService.Flash(session, "Affirmation not found or you do not have permission to delete it.")
			if flashErr != nil {
				slog.Error("failed to set flash", "error", flashErr, "user_id", user.ID)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		slog.Error("failed to delete affirmation", "error", err, "user_id", user.ID, "affirmation_id", affirmationID)
		http.Error(w, "Failed to delete affirmation", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
