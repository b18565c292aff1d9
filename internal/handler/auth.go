package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/config"
	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/service"
	"github.com/upliftapp/uplift/internal/ui"
	"github.com/upliftapp/uplift/internal/validation"
)

type AuthHandler struct {
	authService    *service.AuthService
	sessionService *service.SessionService
	cfg            *config.Config
}

func NewAuthHandler(authService *service.AuthService, sessionService *service.SessionService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		sessionService: sessionService,
		cfg:            cfg,
	}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, "register.html", ui.AuthData{
		AppName:   h.cfg.AppName,
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	confirmation := r.FormValue("confirmation")

	err := validation.ValidateRegistration(username, password, confirmation)
	if err != nil {
		h.renderError(w, err.Error())
		return
	}

	user, err := h.authService.Register(username, password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			h.renderError(w, "Username already exists")
			return
		}
		slog.Error("failed to register user", "error", err, "username", username)
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	// Registration logs the new user straight in.
	session, err := h.sessionService.Renew(w, r, user.ID)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	err = h.sessionService.Flash(session, "Successfully registered "+user.Username)
	if err != nil {
		slog.Error("failed to set flash", "error", err, "user_id", user.ID)
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LoginPage drops any existing session before rendering, so reaching the
// login form always starts from a clean slate.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	err := h.sessionService.Clear(w, r)
	if err != nil {
		slog.Error("failed to clear session", "error", err)
	}

	ui.Render(w, "login.html", ui.AuthData{
		AppName:   h.cfg.AppName,
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Forget any prior session state before attempting the login.
	err := h.sessionService.Clear(w, r)
	if err != nil {
		slog.Error("failed to clear session", "error", err)
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	err = validation.ValidateLogin(username, password)
	if err != nil {
		h.renderError(w, err.Error())
		return
	}

	user, err := h.authService.Login(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// One generic message for unknown username and wrong password.
			h.renderError(w, "Invalid username and/or password")
			return
		}
		slog.Error("failed to log in", "error", err, "username", username)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	session, err := h.sessionService.Renew(w, r, user.ID)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	err = h.sessionService.Flash(session, "Welcome back, "+user.Username+"!")
	if err != nil {
		slog.Error("failed to set flash", "error", err, "user_id", user.ID)
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.sessionService.Clear(w, r)
	if err != nil {
		slog.Error("failed to clear session", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) renderError(w http.ResponseWriter, message string) {
	ui.Render(w, "error.html", ui.ErrorData{
		AppName: h.cfg.AppName,
		Message: message,
	})
}
