// Package web renders the server-side HTML pages. Templates and static
// assets are embedded so the binary is self-contained.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/rs/zerolog/log"

	"jobtrail/internal/models"
)

//go:embed templates static
var content embed.FS

// statusOptions populates the status <select> on job forms. Presentation
// only: the store accepts any non-empty status.
var statusOptions = []string{"Applied", "Interviewing", "Offer", "Rejected"}

// PageData carries everything a page template can reference.
type PageData struct {
	Username string
	Flash    string
	Jobs     []models.Job
	Job      models.Job
	Statuses []string
}

// Renderer holds the parsed page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// statusKnown reports whether a stored status is one of the conventional
// options. Free-form statuses get an extra <option> so the current value is
// never silently dropped from an edit form.
func statusKnown(s string) bool {
	for _, o := range statusOptions {
		if o == s {
			return true
		}
	}
	return false
}

// NewRenderer parses every page against the shared layout.
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{"statusKnown": statusKnown}
	names := []string{"login", "register", "index", "archived", "update_job"}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(content, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the named page. The page is executed into a buffer first so
// a template failure produces a clean 500 instead of a half-written body.
func (rd *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	data.Statuses = statusOptions

	tmpl, ok := rd.pages[name]
	if !ok {
		log.Error().Str("page", name).Msg("Unknown template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error().Err(err).Str("page", name).Msg("Failed to render template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

// StaticFS exposes the embedded static assets for the /static/* file server.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// Embedded tree is fixed at compile time; this cannot fail at runtime.
		panic(err)
	}
	return sub
}
