// Package restcountriestest serves a small fixed REST Countries data set for
// tests.
package restcountriestest

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

//go:embed countries.json
var fixture []byte

// Fixture returns a fresh decode of the fixture records, in file order.
func Fixture(t testing.TB) []restcountries.Country {
	t.Helper()
	var countries []restcountries.Country
	if err := json.Unmarshal(fixture, &countries); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return countries
}

// Server is a fake REST Countries API.
type Server struct {
	*httptest.Server

	mu    sync.Mutex
	calls map[string]int
	fail  map[string]int
	raw   []json.RawMessage
	codes []string
	names []string
}

// NewServer starts a fake API that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{calls: make(map[string]int), fail: make(map[string]int)}
	if err := json.Unmarshal(fixture, &s.raw); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	for _, c := range Fixture(t) {
		s.codes = append(s.codes, c.CCA3)
		s.names = append(s.names, c.Name.Common)
	}

	r := chi.NewRouter()
	r.Get("/all", s.handleAll)
	r.Get("/name/{name}", s.handleName)
	r.Get("/alpha", s.handleAlpha)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Calls reports how many requests reached the given endpoint ("all", "name"
// or "alpha").
func (s *Server) Calls(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[endpoint]
}

// Fail makes the given endpoint ("all", "name" or "alpha") answer with
// status. A zero status restores normal answers.
func (s *Server) Fail(endpoint string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[endpoint] = status
}

// hit counts the request and returns the failure status configured for the
// endpoint, if any.
func (s *Server) hit(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[endpoint]++
	return s.fail[endpoint]
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	if status := s.hit("all"); status != 0 {
		writeStatus(w, status)
		return
	}
	writeJSON(w, s.raw)
}

func (s *Server) handleName(w http.ResponseWriter, r *http.Request) {
	if status := s.hit("name"); status != 0 {
		writeStatus(w, status)
		return
	}
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		writeStatus(w, http.StatusBadRequest)
		return
	}
	for i, n := range s.names {
		if strings.EqualFold(n, name) {
			writeJSON(w, []json.RawMessage{s.raw[i]})
			return
		}
	}
	writeStatus(w, http.StatusNotFound)
}

func (s *Server) handleAlpha(w http.ResponseWriter, r *http.Request) {
	if status := s.hit("alpha"); status != 0 {
		writeStatus(w, status)
		return
	}
	var out []json.RawMessage
	for _, code := range strings.Split(r.URL.Query().Get("codes"), ",") {
		for i, c := range s.codes {
			if strings.EqualFold(c, code) {
				out = append(out, s.raw[i])
			}
		}
	}
	if len(out) == 0 {
		writeStatus(w, http.StatusNotFound)
		return
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"status": status, "message": http.StatusText(status)})
}
