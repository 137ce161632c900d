package web

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/justestif/go-spotify-genre-dashboard/internal/views"
)

// Templates manages HTML template rendering.
type Templates struct {
	templates map[string]*template.Template
	partials  map[string]*template.Template
	funcs     template.FuncMap
}

// NewTemplates loads templates from the given filesystem.
func NewTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{
		templates: make(map[string]*template.Template),
		partials:  make(map[string]*template.Template),
		funcs:     defaultFuncs(),
	}

	if err := t.load(templatesFS); err != nil {
		return nil, err
	}

	return t, nil
}

// Render renders a page template with the given data.
func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.templates[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}
	return tmpl.ExecuteTemplate(w, "base", data)
}

// RenderPartial renders a partial template (without base layout) with the given data.
func (t *Templates) RenderPartial(w io.Writer, partial string, data any) error {
	tmpl, ok := t.partials[partial]
	if !ok {
		return fmt.Errorf("partial %q not found", partial)
	}
	return tmpl.ExecuteTemplate(w, partial, data)
}

// load parses layouts/*.html and partials/*.html into every page of
// pages/*.html, and each partial on its own for HTMX fragments. Partials
// declare {{define "<file name>"}}.
func (t *Templates) load(templatesFS fs.FS) error {
	layouts, err := fs.Glob(templatesFS, "layouts/*.html")
	if err != nil {
		return fmt.Errorf("finding layouts: %w", err)
	}

	partials, err := fs.Glob(templatesFS, "partials/*.html")
	if err != nil {
		return fmt.Errorf("finding partials: %w", err)
	}

	pages, err := fs.Glob(templatesFS, "pages/*.html")
	if err != nil {
		return fmt.Errorf("finding pages: %w", err)
	}

	common := append(layouts, partials...)

	for _, page := range pages {
		name := templateName(page)
		files := append([]string{page}, common...)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, files...)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		t.templates[name] = tmpl
	}

	for _, partial := range partials {
		name := templateName(partial)

		tmpl, err := template.New(name).Funcs(t.funcs).ParseFS(templatesFS, partial)
		if err != nil {
			return fmt.Errorf("parsing partial %s: %w", name, err)
		}
		if tmpl.Lookup(name) == nil {
			return fmt.Errorf("partial %s does not define %q", partial, name)
		}
		t.partials[name] = tmpl
	}

	return nil
}

func templateName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".html")
}

func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		// moodColor returns an HSL color for [0,1] energy and valence.
		// Energy maps to hue (cool indigo to warm orange); valence raises
		// saturation and lightness.
		"moodColor": func(energy, valence float64) template.CSS {
			hue := 264 - (energy * 229)
			if hue < 0 {
				hue += 360
			}
			saturation := 60 + (valence * 40)
			lightness := 40 + (valence * 20)
			return template.CSS(fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hue, saturation, lightness)) //nolint:gosec // numeric only
		},

		// percent formats a [0,1] value as "69.4%"
		"percent": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},

		// seconds formats a duration in seconds with four decimals
		"seconds": func(v float64) string {
			return fmt.Sprintf("%.4fs", v)
		},

		// add adds two integers (for 1-based indexing in loops)
		"add": func(a, b int) int {
			return a + b
		},
	}
}

// PageData contains common data passed to all page templates.
type PageData struct {
	Title       string
	CurrentPath string
}

// HomePageData contains data for the home page template.
type HomePageData struct {
	PageData
	Options  []views.Option
	Selected views.Key
	Content  template.HTML // pre-rendered default view
}
