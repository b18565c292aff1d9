package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/repository"
	"github.com/upliftapp/uplift/internal/service"
)

type GoalHandler struct {
	goalService    *service.GoalService
	sessionService *service.SessionService
}

func NewGoalHandler(goalService *service.GoalService, sessionService *service.SessionService) *GoalHandler {
	return &GoalHandler{
		goalService:    goalService,
		sessionService: sessionService,
	}
}

// Toggle sets the attainment flag from the path segment. Unlike the delete
// routes, an ownership failure here is a hard 404 with a plain-text body.
func (h *GoalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())
	goalID := r.PathValue("id")

	var attained bool
	switch r.PathValue("attained") {
	case "true":
		attained = true
	case "false":
		attained = false
	default:
		http.NotFound(w, r)
		return
	}

	_, err := h.goalService.SetAttained(user.ID, goalID, attained)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			http.Error(w, "Goal not found or you do not have permission to change it", http.StatusNotFound)
			return
		}
		slog.Error("failed to toggle goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		http.Error(w, "Failed to update goal", http.StatusInternalServerError)
		return
	}

	if attained {
		err = h.sessionService.Flash(session, "Congratulations! You just accomplished a new goal.")
		if err != nil {
			slog.Error("failed to set flash", "error", err, "user_id", user.ID)
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete flashes a notice instead of failing hard when the row is missing or
// owned by someone else.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			flashErr := h.sessionService.Flash(session, "Goal not found or you do not have permission to delete it.")
			if flashErr != nil {
				slog.Error("failed to set flash", "error", flashErr, "user_id", user.ID)
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		slog.Error("failed to delete goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		http.Error(w, "Failed to delete goal", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
