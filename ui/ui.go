package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"embed"

	"yatube-server/db"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageData holds the data to be passed to the layout template.
type PageData struct {
	Title     string      // Title of the HTML page
	ActiveNav string      // Identifier for the active navigation link
	User      *db.User    // Authenticated user, nil for anonymous visitors
	Content   interface{} // Data specific to the page content template
}

var funcMap = template.FuncMap{
	"trunc": Truncate,
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

// RenderPage executes the named page template (e.g. "index.html") within the
// base layout.
func RenderPage(w http.ResponseWriter, pageName string, data PageData) {
	RenderPageStatus(w, http.StatusOK, pageName, data)
}

// RenderPageStatus renders the page with an explicit HTTP status, used for
// error pages like 404.
func RenderPageStatus(w http.ResponseWriter, status int, pageName string, data PageData) {
	tmpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html", "templates/"+pageName)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error parsing templates: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	err = tmpl.ExecuteTemplate(w, "layout.html", data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error executing template: %v", err), http.StatusInternalServerError)
	}
}
