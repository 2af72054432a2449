package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/flash"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/logger"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names.
const (
	PageIndex     = "index"
	PageEditor    = "editor"
	PageLogin     = "login"
	PageRegister  = "register"
	PageDashboard = "dashboard"
)

var pageTitles = map[string]string{
	PageIndex:     "Home",
	PageEditor:    "Editor",
	PageLogin:     "Login",
	PageRegister:  "Register",
	PageDashboard: "Dashboard",
}

var pages = parsePages()

func parsePages() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(pageTitles))
	for name := range pageTitles {
		parsed[name] = template.Must(
			template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return parsed
}

type pageData struct {
	Title    string
	Flash    string
	Projects []models.ProjectSummary
}

func renderPage(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	tmpl, ok := pages[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	data.Title = pageTitles[name]
	data.Flash = flash.Pop(w, r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Log.Errorw("failed to render page", "page", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// NewPageHandler returns an HTTP handler rendering a static page.
func NewPageHandler(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, name, pageData{})
	}
}

// NewDashboardHandler returns an HTTP handler rendering the caller's projects.
func NewDashboardHandler(svc ProjectLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		projects, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("failed to list projects", "err", err)
			flash.Set(w, "Could not load your projects.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		renderPage(w, r, PageDashboard, pageData{Projects: projects})
	}
}
