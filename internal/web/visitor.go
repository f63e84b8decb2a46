package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/theme"
)

const (
	visitorCookie = "countrydir_visitor"
	themeCookie   = "theme"
	cookieMaxAge  = 365 * 24 * 60 * 60 // 1 year
	hintHeader    = "Sec-CH-Prefers-Color-Scheme"
	currentField  = "current"
)

type visitorKey struct{}

// withVisitor makes sure every browser carries a visitor id cookie, which
// keys its theme preference, and asks for the colour-scheme client hint.
func (h *Handler) withVisitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(visitorCookie); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   cookieMaxAge,
				SameSite: http.SameSiteLaxMode,
				HttpOnly: true,
			})
		}

		// Critical-CH asks supporting browsers to retry the first request
		// with the hint attached.
		w.Header().Set("Accept-CH", hintHeader)
		w.Header().Set("Critical-CH", hintHeader)
		w.Header().Add("Vary", hintHeader)

		ctx := context.WithValue(r.Context(), visitorKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func visitorID(r *http.Request) string {
	id, _ := r.Context().Value(visitorKey{}).(string)
	return id
}

func systemHint(r *http.Request) theme.Hint {
	return theme.ParseHint(r.Header.Get(hintHeader))
}

// currentTheme resolves the visitor's mode. A saved preference also
// refreshes the theme cookie, which tells the page script not to override the
// mode with the system setting. Storage failures fall back to light so a page
// always renders.
func (h *Handler) currentTheme(w http.ResponseWriter, r *http.Request) theme.Mode {
	if h.themes == nil {
		return theme.Light
	}
	mode, saved, err := h.themes.Saved(r.Context(), visitorID(r))
	if err != nil {
		h.logger.Warn("resolving theme failed", zap.Error(err))
		return theme.Light
	}
	if saved {
		setThemeCookie(w, mode)
		return mode
	}
	return h.themes.Default(systemHint(r))
}

// shownHint is the mode the page reported it was showing when the visitor
// toggled, else the client hint.
func shownHint(r *http.Request) theme.Hint {
	if mode, ok := theme.ParseMode(r.FormValue(currentField)); ok {
		return theme.HintFor(mode)
	}
	return systemHint(r)
}

func setThemeCookie(w http.ResponseWriter, mode theme.Mode) {
	// Not HttpOnly: the head script reads it before paint.
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    string(mode),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: false,
	})
}
