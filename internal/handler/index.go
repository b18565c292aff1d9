package handler

import (
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/config"
	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/service"
	"github.com/upliftapp/uplift/internal/ui"
)

type IndexHandler struct {
	goalService           *service.GoalService
	affirmationService    *service.AffirmationService
	accomplishmentService *service.AccomplishmentService
	sessionService        *service.SessionService
	cfg                   *config.Config
}

func NewIndexHandler(
	goalService *service.GoalService,
	affirmationService *service.AffirmationService,
	accomplishmentService *service.AccomplishmentService,
	sessionService *service.SessionService,
	cfg *config.Config,
) *IndexHandler {
	return &IndexHandler{
		goalService:           goalService,
		affirmationService:    affirmationService,
		accomplishmentService: accomplishmentService,
		sessionService:        sessionService,
		cfg:                   cfg,
	}
}

func (h *IndexHandler) IndexPage(w http.ResponseWriter, r *http.Request) {
	h.renderIndex(w, r)
}

// Submit dispatches on which form field is present: a goal form and an
// affirmation form both post to "/". Non-empty text inserts and redirects;
// empty text falls through and re-renders the index in the same request.
func (h *IndexHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := r.ParseForm()
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	if _, ok := r.PostForm["goal"]; ok {
		text := r.PostFormValue("goal")
		if text != "" {
			_, err := h.goalService.Create(user.ID, text)
			if err != nil {
				slog.Error("failed to create goal", "error", err, "user_id", user.ID)
				http.Error(w, "Failed to create goal", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	} else if _, ok := r.PostForm["affirmation"]; ok {
		text := r.PostFormValue("affirmation")
		if text != "" {
			_, err := h.affirmationService.Create(user.ID, text)
			if err != nil {
				slog.Error("failed to create affirmation", "error", err, "user_id", user.ID)
				http.Error(w, "Failed to create affirmation", http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
	}

	h.renderIndex(w, r)
}

func (h *IndexHandler) renderIndex(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	session := ctxkeys.Session(r.Context())

	goals, err := h.goalService.Goals(user.ID)
	if err != nil {
		slog.Error("failed to load goals", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load goals", http.StatusInternalServerError)
		return
	}

	affirmations, err := h.affirmationService.Affirmations(user.ID)
	if err != nil {
		slog.Error("failed to load affirmations", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load affirmations", http.StatusInternalServerError)
		return
	}

	// The accomplishment feed is shared across all users.
	accomplishments, err := h.accomplishmentService.All()
	if err != nil {
		slog.Error("failed to load accomplishments", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to load accomplishments", http.StatusInternalServerError)
		return
	}

	flashes, err := h.sessionService.PopFlashes(session)
	if err != nil {
		slog.Error("failed to pop flashes", "error", err, "user_id", user.ID)
	}

	ui.Render(w, "index.html", ui.IndexData{
		AppName:         h.cfg.AppName,
		Username:        user.Username,
		UserID:          user.ID,
		Goals:           goals,
		Affirmations:    affirmations,
		Accomplishments: accomplishments,
		Flashes:         flashes,
		CSRFToken:       ctxkeys.CSRFToken(r.Context()),
	})
}
