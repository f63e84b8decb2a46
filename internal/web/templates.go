package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StyleCSS returns the stylesheet shared by the server pages and the static
// site.
func StyleCSS() []byte {
	data, _ := staticFS.ReadFile("static/style.css")
	return data
}

func staticHandler() http.Handler {
	sub, _ := fs.Sub(staticFS, "static")
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

type pages struct {
	tmpl *template.Template
}

func parsePages() (*pages, error) {
	tmpl, err := template.New("pages").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &pages{tmpl: tmpl}, nil
}

// layout carries what every page needs.
type layout struct {
	Title string
	Theme theme.Mode
}

// Dark reports whether the page renders in dark mode.
func (l layout) Dark() bool { return l.Theme == theme.Dark }

type gridData struct {
	Cards []directory.Card
	Error string
}

type listPage struct {
	layout
	Filter  directory.Filter
	Regions []string
	Grid    gridData
}

type detailPage struct {
	layout
	Profile *directory.Profile
	Error   string
}

// render executes the named template into a buffer first so a template
// failure never leaves a half-written page.
func (p *pages) render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
