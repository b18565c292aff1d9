package middleware

import (
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/ctxkeys"
	"github.com/upliftapp/uplift/internal/service"
)

// SessionAuth resolves the session cookie to its server-side session row and,
// when the session is bound to a user, loads that user into the request
// context. Requests without a valid session continue unauthenticated; the
// decision to reject belongs to RequireAuth.
func SessionAuth(sessionService *service.SessionService, userService *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessionService.Current(r)
			if err != nil {
				slog.Error("failed to resolve session", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxkeys.WithSession(r.Context(), session)

			if session.Authenticated() {
				user, err := userService.ByID(*session.UserID)
				if err != nil {
					// Session points at a user that no longer exists;
					// drop the session and continue unauthenticated.
					clearErr := sessionService.Clear(w, r)
					if clearErr != nil {
						slog.Error("failed to clear stale session", "error", clearErr)
					}
					next.ServeHTTP(w, r)
					return
				}
				ctx = ctxkeys.WithUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth short-circuits to the login page when no authenticated user is
// in the context; the wrapped handler never runs.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	}
}
