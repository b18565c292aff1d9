package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/repository"
	"github.com/upliftapp/uplift/internal/service"
)

type AccomplishmentHandler struct {
	accomplishmentService *service.AccomplishmentService
	sessionService        *service.SessionService
}

func NewAccomplishmentHandler(accomplishmentService *service.AccomplishmentService, sessionService *service.SessionService) *AccomplishmentHandler {
	return &AccomplishmentHandler{
		accomplishmentService: accomplishmentService,
		sessionService:        sessionService,
	}
}

// Add shares an accomplishment to the global feed. Empty text is a silent
// no-op; either way the request redirects home.
func (h *AccomplishmentHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())

	text := r.PostFormValue("accomplishment")
	if text != "" {
		_, err := h.accomplishmentService.Create(user.ID, text)
		if err != nil {
			slog.Error("failed to create accomplishment", "error", err, "user_id", user.ID)
			http.Error(w, "Failed to create accomplishment", http.StatusInternalServerError)
			return
		}

		err = h.sessionService.Flash(session, "Your accomplishment has been shared!")
		if err != nil {
			slog.Error("failed to set flash", "error", err, "user_id", user.ID)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AccomplishmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())
	accomplishmentID := r.PathValue("id")

	err := h.accomplishmentService.Delete(user.ID, accomplishmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAccomplishmentNotFound) {
			flashErr := h.sessionService.Flash(session, "Accomplishment not found or you do not have permission to delete it.")
			if flashErr != nil {
				slog.Error("failed to set flash", "error", flashErr, "user_id", user.ID)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		slog.Error("failed to delete accomplishment", "error", err, "user_id", user.ID, "accomplishment_id", accomplishmentID)
		http.Error(w, "Failed to delete accomplishment", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
