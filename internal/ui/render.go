package ui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/upliftapp/uplift/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// IndexData feeds the main page: the user's goals and affirmations plus the
// global accomplishment feed.
type IndexData struct {
	AppName         string
	Username        string
	UserID          string
	Goals           []*model.Goal
	Affirmations    []*model.Affirmation
	Accomplishments []*model.Accomplishment
	Flashes         []string
	CSRFToken       string
}

// AuthData feeds the login and register pages.
type AuthData struct {
	AppName   string
	Flashes   []string
	CSRFToken string
}

// ErrorData feeds the error page.
type ErrorData struct {
	AppName string
	Message string
}

func Render(w http.ResponseWriter, name string, data any) {
	err := templates.ExecuteTemplate(w, name, data)
	if err != nil {
		slog.Error("render failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
