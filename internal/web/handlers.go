package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/justestif/go-spotify-genre-dashboard/internal/prediction"
	"github.com/justestif/go-spotify-genre-dashboard/internal/views"
)

// PageTitle is the dashboard page title.
const PageTitle = "Spotify Genre Dashboard by The Beat Seekers"

// ViewRouter resolves selector keys to views.
type ViewRouter interface {
	Route(key string) (views.View, bool)
}

// Predictor runs a title lookup and genre prediction.
type Predictor interface {
	Predict(title string) prediction.Result
}

// Handlers contains HTTP handlers for the dashboard.
type Handlers struct {
	templates *Templates
	views     ViewRouter
	predictor Predictor
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(templates *Templates, views ViewRouter, predictor Predictor) *Handlers {
	return &Handlers{
		templates: templates,
		views:     views,
		predictor: predictor,
	}
}

// Home handles the dashboard page (GET /). The default view is rendered
// into the page so the first paint needs no extra request.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	data := HomePageData{
		PageData: PageData{
			Title:       PageTitle,
			CurrentPath: r.URL.Path,
		},
		Options:  views.Options(),
		Selected: views.DefaultKey,
	}

	if v, ok := h.views.Route(string(views.DefaultKey)); ok {
		var buf bytes.Buffer
		if err := h.templates.RenderPartial(&buf, v.Partial, v.Data); err != nil {
			slog.Error("Rendering default view", "view", v.Key, "err", err)
			http.Error(w, "Failed to render template", http.StatusInternalServerError)
			return
		}
		data.Content = template.HTML(buf.String()) //nolint:gosec // output of our own templates
	}

	h.render(w, func(buf *bytes.Buffer) error {
		return h.templates.Render(buf, "home", data)
	})
}

// View returns the fragment for the selected view (GET /view?view=<key>).
// Unknown keys get an empty 200 response.
func (h *Handlers) View(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("view")
	v, ok := h.views.Route(key)
	if !ok {
		slog.Debug("Unknown view requested", "view", key)
		w.WriteHeader(http.StatusOK)
		return
	}

	slog.Debug("Rendering view", "view", v.Key, "label", views.Label(v.Key))
	h.render(w, func(buf *bytes.Buffer) error {
		return h.templates.RenderPartial(buf, v.Partial, v.Data)
	})
}

// Predict handles a prediction submission (POST /predict, form field "title").
func (h *Handlers) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	res := h.predictor.Predict(r.PostFormValue("title"))

	h.render(w, func(buf *bytes.Buffer) error {
		return h.templates.RenderPartial(buf, "prediction", res)
	})
}

// render buffers template output so a failure can still produce a 500.
func (h *Handlers) render(w http.ResponseWriter, exec func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := exec(&buf); err != nil {
		slog.Error("Rendering template", "err", err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
