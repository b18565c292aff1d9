package routes

import (
	"net/http"

	"github.com/upliftapp/uplift/internal/app"
	"github.com/upliftapp/uplift/internal/handler"
	"github.com/upliftapp/uplift/internal/middleware"
)

func SetupRoutes(a *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(a.AuthService, a.SessionService, a.Cfg)
	index := handler.NewIndexHandler(a.GoalService, a.AffirmationService, a.AccomplishmentService, a.SessionService, a.Cfg)
	goal := handler.NewGoalHandler(a.GoalService, a.SessionService)
	affirmation := handler.NewAffirmationHandler(a.AffirmationService, a.SessionService)
	accomplishment := handler.NewAccomplishmentHandler(a.AccomplishmentService, a.SessionService)

	mux := http.NewServeMux()

	// Auth (rate limited on the credential-bearing posts)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("GET /register", auth.RegisterPage)
	mux.HandleFunc("POST /register", rateLimiter(auth.Register))
	mux.HandleFunc("GET /login", auth.LoginPage)
	mux.HandleFunc("POST /login", rateLimiter(auth.Login))
	mux.HandleFunc("GET /logout", auth.Logout)

	// Index: goal and affirmation forms both post here
	mux.HandleFunc("GET /{$}", middleware.RequireAuth(index.IndexPage))
	mux.HandleFunc("POST /{$}", middleware.RequireAuth(index.Submit))

	// Goals
	mux.HandleFunc("GET /toggle_goal/{id}/{attained}", middleware.RequireAuth(goal.Toggle))
	mux.HandleFunc("GET /delete_goal/{id}", middleware.RequireAuth(goal.Delete))

	// Affirmations
	mux.HandleFunc("GET /delete_affirmation/{id}", middleware.RequireAuth(affirmation.Delete))

	// Accomplishments (global feed, owner-only delete)
	mux.HandleFunc("POST /add_accomplishment", middleware.RequireAuth(accomplishment.Add))
	mux.HandleFunc("GET /delete_accomplishment/{id}", middleware.RequireAuth(accomplishment.Delete))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(a.Cfg), // Config must be first (CSRF reads it for the Secure flag)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.SessionAuth(a.SessionService, a.UserService),
	)

	return h
}
