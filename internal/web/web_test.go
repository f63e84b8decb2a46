package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/ziadkadry99/countrydir/internal/db"
	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/restcountries"
	"github.com/ziadkadry99/countrydir/internal/restcountries/restcountriestest"
	"github.com/ziadkadry99/countrydir/internal/theme"
)

type testEnv struct {
	api    *restcountriestest.Server
	router http.Handler
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	api := restcountriestest.NewServer(t)
	client := restcountries.NewClient(api.URL)

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	h, err := New(
		directory.NewCatalog(client),
		directory.NewResolver(client, nil),
		theme.NewController(theme.NewSQLStore(database), theme.Light, nil),
		nil,
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return &testEnv{api: api, router: r}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) get(target string) *httptest.ResponseRecorder {
	return e.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func TestListPage(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`id="search-input"`,
		`id="region-filter"`,
		`id="countries-grid"`,
		`<option value="Europe">Europe</option>`,
		`href="/country?name=Belgium"`,
		"83,240,525",
		`alt="Germany flag"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	// Collection is sorted by name.
	if strings.Index(body, "Antarctica") > strings.Index(body, "Belgium") {
		t.Error("Antarctica should be listed before Belgium")
	}
}

func TestListFetchesOnce(t *testing.T) {
	env := setupEnv(t)
	env.get("/")
	env.get("/?q=ger")
	env.get("/?region=Asia")

	if n := env.api.Calls("all"); n != 1 {
		t.Errorf("expected 1 fetch, got %d", n)
	}
}

func TestListFilters(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/?q=an&region=Europe")

	body := rec.Body.String()
	for _, want := range []string{"France", "Germany", "Netherlands"} {
		if !strings.Contains(body, `data-name="`+want+`"`) {
			t.Errorf("expected %s in filtered list", want)
		}
	}
	for _, unwanted := range []string{"Belgium", "Japan", "Antarctica"} {
		if strings.Contains(body, `data-name="`+unwanted+`"`) {
			t.Errorf("did not expect %s in filtered list", unwanted)
		}
	}
	if !strings.Contains(body, `<option value="Europe" selected>`) {
		t.Error("selected region should be preserved")
	}
	if !strings.Contains(body, `value="an"`) {
		t.Error("search text should be preserved")
	}
}

func TestGridFragment(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/?region=Asia&fragment=grid")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("fragment should not include the page layout")
	}
	if !strings.Contains(body, `data-name="Japan"`) || strings.Contains(body, `data-name="Germany"`) {
		t.Errorf("unexpected fragment: %s", body)
	}
}

func TestEmptyResultPlaceholder(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/?q=zzz&fragment=grid")

	if !strings.Contains(rec.Body.String(), "No countries found") {
		t.Errorf("expected placeholder, got %s", rec.Body.String())
	}
}

func TestListLoadError(t *testing.T) {
	env := setupEnv(t)
	env.api.Fail("all", http.StatusInternalServerError)

	rec := env.get("/")
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error loading countries: HTTP 500") {
		t.Errorf("missing error message in %s", rec.Body.String())
	}

	// A later request retries the fetch.
	env.api.Fail("all", 0)
	rec = env.get("/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `data-name="Japan"`) {
		t.Errorf("retry failed: status %d", rec.Code)
	}
}

func TestDetailPage(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/country?name=Germany")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<h1>Germany</h1>",
		"Deutschland",
		"83,240,525",
		"Western Europe",
		"Berlin",
		".de",
		"Euro",
		"German",
		`id="border-countries"`,
		`href="/country?name=Belgium"`,
		`href="/country?name=France"`,
		`href="/country?name=Netherlands"`,
		`id="back-button"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestDetailLegacyPath(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/country-detail.html?name=Japan")

	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "<h1>Japan</h1>") {
		t.Errorf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestDetailBorderFailure(t *testing.T) {
	env := setupEnv(t)
	env.api.Fail("alpha", http.StatusInternalServerError)

	rec := env.get("/country?name=Germany")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h1>Germany</h1>") {
		t.Error("profile should still render")
	}
	if strings.Contains(body, `id="border-countries"`) {
		t.Error("border section should be omitted")
	}
}

func TestDetailNoBorders(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/country?name=Japan")

	if strings.Contains(rec.Body.String(), `id="border-countries"`) {
		t.Error("border section should be omitted for an island")
	}
	if n := env.api.Calls("alpha"); n != 0 {
		t.Errorf("expected no border lookup, got %d", n)
	}
}

func TestDetailNoName(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/country")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No country specified") {
		t.Error("missing no-country message")
	}
	if n := env.api.Calls("name"); n != 0 {
		t.Errorf("expected no lookup, got %d", n)
	}
}

func TestDetailNotFound(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/country?name=Atlantis")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error: HTTP 404") {
		t.Errorf("missing error message in %s", rec.Body.String())
	}
}

func TestVisitorCookie(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/")

	var visitor *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == visitorCookie {
			visitor = c
		}
	}
	if visitor == nil {
		t.Fatal("expected a visitor cookie")
	}
	if !visitor.HttpOnly {
		t.Error("visitor cookie should be HttpOnly")
	}
	if got := rec.Header().Get("Accept-CH"); got != hintHeader {
		t.Errorf("Accept-CH = %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(visitor)
	rec = env.do(req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == visitorCookie {
			t.Error("known visitor should not get a new cookie")
		}
	}
}

func TestSystemHintAppliesWithoutPreference(t *testing.T) {
	env := setupEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(hintHeader, `"dark"`)
	rec := env.do(req)

	if !strings.Contains(rec.Body.String(), `data-theme="dark" class="dark"`) {
		t.Error("expected dark page from the system hint")
	}

	rec = env.get("/")
	if !strings.Contains(rec.Body.String(), `data-theme="light"`) {
		t.Error("expected light page by default")
	}
}

func TestFirstVisitWithoutHint(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/")

	if got := rec.Header().Get("Critical-CH"); got != hintHeader {
		t.Errorf("Critical-CH = %q, want %q", got, hintHeader)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-theme="light"`) {
		t.Error("expected the server to render light without a hint")
	}
	// The head script falls back to the system setting before paint.
	if !strings.Contains(body, "prefers-color-scheme: dark") {
		t.Error("page should consult the system colour scheme")
	}
	if !strings.Contains(body, `name="current" id="theme-current" value="light"`) {
		t.Error("toggle form should report the shown mode")
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == themeCookie {
			t.Error("no theme cookie should be set without a saved preference")
		}
	}
}

func TestThemeToggleFlipsShownMode(t *testing.T) {
	env := setupEnv(t)
	visitor := &http.Cookie{Name: visitorCookie, Value: "5f0c2e7a-9b1d-4c3e-8a2f-1d6b7e9c0a44"}

	// No preference and no hint, but the page switched to dark from the
	// system setting.
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader("current=dark"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.AddCookie(visitor)
	rec := env.do(req)

	var resp themeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding toggle response: %v", err)
	}
	if resp.Theme != "light" {
		t.Fatalf("toggle from shown dark = %q, want light", resp.Theme)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(visitor)
	rec = env.do(req)
	if !strings.Contains(rec.Body.String(), `data-theme="light"`) {
		t.Error("saved light should render")
	}
	var refreshed *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == themeCookie {
			refreshed = c
		}
	}
	if refreshed == nil || refreshed.Value != "light" || refreshed.HttpOnly {
		t.Errorf("expected a script-readable theme=light cookie, got %+v", refreshed)
	}
}

func toggle(t *testing.T, env *testEnv, visitor *http.Cookie) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(visitor)
	rec := env.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}
	var resp themeResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding toggle response: %v", err)
	}
	return resp.Theme
}

func TestThemeToggle(t *testing.T) {
	env := setupEnv(t)
	visitor := &http.Cookie{Name: visitorCookie, Value: "0b6f1d8e-3a51-4f5e-9d0e-6d1f8f0c2a11"}

	if got := toggle(t, env, visitor); got != "dark" {
		t.Fatalf("first toggle = %q, want dark", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/country?name=Japan", nil)
	req.AddCookie(visitor)
	if !strings.Contains(env.do(req).Body.String(), `class="dark"`) {
		t.Error("preference should persist across pages")
	}

	if got := toggle(t, env, visitor); got != "light" {
		t.Errorf("second toggle = %q, want light", got)
	}
}

func TestThemeToggleRedirect(t *testing.T) {
	env := setupEnv(t)

	tests := []struct {
		referer string
		want    string
	}{
		{"http://example.com/country?name=Belgium", "/country?name=Belgium"},
		{"http://evil.test/phish", "/"},
		{"", "/"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		rec := env.do(req)
		if rec.Code != http.StatusSeeOther {
			t.Errorf("referer %q: status = %d", tt.referer, rec.Code)
		}
		if got := rec.Header().Get("Location"); got != tt.want {
			t.Errorf("referer %q: Location = %q, want %q", tt.referer, got, tt.want)
		}
	}
}

func TestAPIList(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/api/countries?region=Europe&q=land")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp listResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	var names []string
	for _, c := range resp.Countries {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"Åland Islands", "Netherlands"}, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if resp.Count != 2 {
		t.Errorf("count = %d", resp.Count)
	}
}

func TestAPIDetail(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/api/countries/Belgium")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p directory.Profile
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if p.NativeName != "Belgien" || p.Languages != "German, French, Dutch" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if len(p.Borders) != 3 {
		t.Errorf("borders = %+v", p.Borders)
	}

	if rec := env.get("/api/countries/Atlantis"); rec.Code != http.StatusNotFound {
		t.Errorf("unknown country status = %d", rec.Code)
	}
}

func TestAPIRegions(t *testing.T) {
	env := setupEnv(t)
	rec := env.get("/api/regions")

	var regions []string
	if err := json.NewDecoder(rec.Body).Decode(&regions); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	want := []string{"Americas", "Antarctic", "Asia", "Europe"}
	if diff := cmp.Diff(want, regions); diff != "" {
		t.Errorf("regions mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticAssets(t *testing.T) {
	env := setupEnv(t)
	for _, path := range []string{"/static/style.css", "/static/app.js"} {
		if rec := env.get(path); rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
	}
	script := env.get("/static/app.js").Body.String()
	for _, want := range []string{"theme-current", "seq !== latest"} {
		if !strings.Contains(script, want) {
			t.Errorf("app.js missing %q", want)
		}
	}
	if len(StyleCSS()) == 0 {
		t.Error("StyleCSS should not be empty")
	}
}
