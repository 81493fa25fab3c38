package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"carebase/internal/middleware"
	"carebase/internal/store"
	"carebase/web"
)

// Renderer holds the parsed template set and the flash plumbing shared by
// every page handler.
type Renderer struct {
	templates *template.Template
	flashes   *store.FlashStore
	logger    *slog.Logger
}

func NewRenderer(flashes *store.FlashStore, logger *slog.Logger) *Renderer {
	tmpl := template.Must(template.ParseFS(web.Templates, "templates/*.html"))
	return &Renderer{
		templates: tmpl,
		flashes:   flashes,
		logger:    logger,
	}
}

// Index serves the static landing page.
func (rd *Renderer) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	rd.render(w, r, "index.html", map[string]any{"Title": "Carebase"})
}

// render executes a page template, injecting any status messages pending
// for the request's session. Popped messages render once and are gone.
func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if token := middleware.SessionToken(r); token != "" {
		flashes, err := rd.flashes.Pop(token)
		if err != nil {
			rd.logger.Error("pop flashes", "error", err)
		}
		data["Flashes"] = flashes
	}
	if err := rd.templates.ExecuteTemplate(w, name, data); err != nil {
		rd.logger.Error("render template", "template", name, "error", err)
	}
}

// flash queues a one-shot status message for the request's session.
func (rd *Renderer) flash(r *http.Request, category, message string) {
	token := middleware.SessionToken(r)
	if token == "" {
		return
	}
	if err := rd.flashes.Add(token, category, message); err != nil {
		rd.logger.Error("add flash", "error", err)
	}
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
