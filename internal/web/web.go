// Package web serves the country directory as HTML pages and a small JSON API.
package web

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/theme"
)

// Handler serves the list page, the detail page, the theme toggle and the
// JSON API.
type Handler struct {
	catalog  *directory.Catalog
	resolver *directory.Resolver
	themes   *theme.Controller
	logger   *zap.Logger
	pages    *pages
}

// New creates a Handler. A nil logger discards output.
func New(catalog *directory.Catalog, resolver *directory.Resolver, themes *theme.Controller, logger *zap.Logger) (*Handler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &Handler{
		catalog:  catalog,
		resolver: resolver,
		themes:   themes,
		logger:   logger,
		pages:    p,
	}, nil
}

// RegisterRoutes mounts all pages, the theme endpoint, the JSON API and the
// static assets onto r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.withVisitor)
		r.Get("/", h.handleList)
		r.Get("/country", h.handleDetail)
		r.Get("/country-detail.html", h.handleDetail)
		r.Post("/theme", h.handleToggleTheme)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(h.withVisitor).Get("/theme", h.handleGetTheme)
		r.Get("/countries", h.handleAPIList)
		r.Get("/countries/{name}", h.handleAPIDetail)
		r.Get("/regions", h.handleAPIRegions)
	})

	r.Handle("/static/*", staticHandler())
}
