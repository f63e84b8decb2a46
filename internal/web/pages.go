package web

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

const (
	noCountryMessage = "No country specified"
	appTitle         = "Where in the world?"
)

func filterFromRequest(r *http.Request) directory.Filter {
	q := r.URL.Query()
	return directory.Filter{
		Query:  q.Get("q"),
		Region: q.Get("region"),
	}
}

// grid recomputes the visible cards from the full collection.
func (h *Handler) grid(r *http.Request, f directory.Filter) (gridData, []string) {
	all, err := h.catalog.Ensure(r.Context())
	if err != nil {
		return gridData{Error: "Error loading countries: " + err.Error()}, directory.Regions(nil)
	}
	return gridData{Cards: directory.Cards(directory.Apply(all, f))}, directory.Regions(all)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)
	grid, regions := h.grid(r, f)

	status := http.StatusOK
	if grid.Error != "" {
		status = http.StatusBadGateway
	}

	if r.URL.Query().Get("fragment") == "grid" {
		if err := h.pages.render(w, status, "grid", grid); err != nil {
			h.logger.Error("render failed", zap.Error(err))
		}
		return
	}

	page := listPage{
		layout:  layout{Title: appTitle, Theme: h.currentTheme(w, r)},
		Filter:  f,
		Regions: regions,
		Grid:    grid,
	}
	if err := h.pages.render(w, status, "list.html", page); err != nil {
		h.logger.Error("render failed", zap.Error(err))
	}
}

func (h *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	page := detailPage{layout: layout{Title: appTitle, Theme: h.currentTheme(w, r)}}

	status := http.StatusOK
	profile, err := h.resolver.Resolve(r.Context(), name)
	switch {
	case errors.Is(err, directory.ErrNoCountry):
		status = http.StatusBadRequest
		page.Error = noCountryMessage
	case err != nil:
		status = lookupStatus(err)
		page.Error = "Error: " + err.Error()
	default:
		page.Profile = profile
		page.Title = profile.Name + " | " + appTitle
	}

	if err := h.pages.render(w, status, "detail.html", page); err != nil {
		h.logger.Error("render failed", zap.Error(err))
	}
}

// lookupStatus maps an upstream failure onto the status of our response.
func lookupStatus(err error) int {
	var se *restcountries.StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	if errors.Is(err, restcountries.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
