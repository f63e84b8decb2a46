package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/directory"
)

// listResponse is the JSON response for the filtered country list.
type listResponse struct {
	Filter    directory.Filter `json:"filter"`
	Count     int              `json:"count"`
	Countries []directory.Card `json:"countries"`
}

type themeResponse struct {
	Theme string `json:"theme"`
}

func (h *Handler) handleAPIList(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.Ensure(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	f := filterFromRequest(r)
	cards := directory.Cards(directory.Apply(all, f))
	writeJSON(w, http.StatusOK, listResponse{Filter: f, Count: len(cards), Countries: cards})
}

func (h *Handler) handleAPIDetail(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid country name"})
		return
	}

	profile, err := h.resolver.Resolve(r.Context(), name)
	switch {
	case errors.Is(err, directory.ErrNoCountry):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		writeJSON(w, lookupStatus(err), map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusOK, profile)
	}
}

func (h *Handler) handleAPIRegions(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.Ensure(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, directory.Regions(all))
}

func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: string(h.currentTheme(w, r))})
}

// handleToggleTheme flips the mode the visitor is seeing, as reported by the
// "current" form field, and saves it. Script callers asking for JSON
// get the new mode back; plain form posts are redirected to where they came from.
func (h *Handler) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	if h.themes == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "theme storage unavailable"})
		return
	}

	mode, err := h.themes.Toggle(r.Context(), visitorID(r), shownHint(r))
	if err != nil {
		h.logger.Error("toggling theme failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save theme"})
		return
	}
	setThemeCookie(w, mode)

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, themeResponse{Theme: string(mode)})
		return
	}
	http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
}

// backTarget returns the same-origin page that sent the request, or "/".
func backTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
