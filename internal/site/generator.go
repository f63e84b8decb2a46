package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ziadkadry99/countrydir/internal/directory"
	"github.com/ziadkadry99/countrydir/internal/progress"
	"github.com/ziadkadry99/countrydir/internal/restcountries"
	"github.com/ziadkadry99/countrydir/internal/web"
)

// countriesDir holds one page per country below the output directory.
const countriesDir = "countries"

// Source supplies the collection and resolves border codes.
type Source interface {
	All(ctx context.Context, fields ...string) ([]restcountries.Country, error)
	ByCodes(ctx context.Context, codes []string, fields ...string) ([]restcountries.Country, error)
}

// Generator exports the directory as a static HTML site.
type Generator struct {
	source         Source
	outputDir      string
	locale         language.Tag
	maxConcurrency int
	reporter       progress.Reporter
	logger         *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLocale sets the collation locale used to order the index.
func WithLocale(tag language.Tag) Option {
	return func(g *Generator) { g.locale = tag }
}

// WithConcurrency bounds how many country pages render at once.
func WithConcurrency(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxConcurrency = n
		}
	}
}

// WithReporter sets the progress reporter.
func WithReporter(r progress.Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// WithLogger sets the generator logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(source Source, outputDir string, opts ...Option) *Generator {
	g := &Generator{
		source:         source,
		outputDir:      outputDir,
		locale:         language.English,
		maxConcurrency: 8,
		reporter:       progress.Nop{},
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// indexData is passed to the index page template.
type indexData struct {
	Title   string
	Cards   []directory.Card
	Regions []string
}

// countryData is passed to the country page template.
type countryData struct {
	Title   string
	Name    string
	Content template.HTML
}

// Generate fetches the collection and writes the whole site. It returns the
// number of country pages written.
func (g *Generator) Generate(ctx context.Context) (int, error) {
	countries, err := g.source.All(ctx, restcountries.ProfileFields...)
	if err != nil {
		return 0, fmt.Errorf("fetching countries: %w", err)
	}
	if len(countries) == 0 {
		return 0, fmt.Errorf("no countries returned by the API")
	}
	directory.SortByName(countries, g.locale)

	slugs := assignSlugs(countries)
	pageByName := make(map[string]string, len(countries))
	for i, c := range countries {
		pageByName[c.Name.Common] = slugs[i] + ".html"
	}
	borders := g.borderNames(ctx, countries)

	if err := os.MkdirAll(filepath.Join(g.outputDir, countriesDir), 0o755); err != nil {
		return 0, err
	}

	// Static assets.
	css := append(append([]byte{}, web.StyleCSS()...), siteCSS...)
	if err := os.WriteFile(filepath.Join(g.outputDir, "style.css"), css, 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.outputDir, "app.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	cards := directory.Cards(countries)
	for i := range cards {
		cards[i].DetailURL = countriesDir + "/" + slugs[i] + ".html"
	}
	if err := WriteExport(BuildExport(cards), filepath.Join(g.outputDir, "countries.json")); err != nil {
		return 0, fmt.Errorf("writing countries.json: %w", err)
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return 0, err
	}
	index := indexData{Title: siteTitle, Cards: cards, Regions: directory.Regions(countries)}
	if err := writeTemplate(tmpl, "index", filepath.Join(g.outputDir, "index.html"), index); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	link := func(name string) string {
		if page, ok := pageByName[name]; ok {
			return page
		}
		return Slug(name) + ".html"
	}

	g.reporter.Start(len(countries))
	defer g.reporter.Finish()

	var done atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.maxConcurrency)
	for i, c := range countries {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			profile := directory.NewProfile(c, borderList(c, borders))
			out := filepath.Join(g.outputDir, countriesDir, slugs[i]+".html")
			if err := renderCountry(md, tmpl, profile, link, out); err != nil {
				return fmt.Errorf("rendering %s: %w", c.Name.Common, err)
			}
			g.reporter.Update(int(done.Add(1)), c.Name.Common)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	g.logger.Info("site exported",
		zap.String("output", g.outputDir),
		zap.Int("countries", len(countries)))
	return len(countries), nil
}

// borderNames resolves every border code in the collection with a single
// request. A failed lookup is logged and returns nil, which leaves every page
// without a border section.
func (g *Generator) borderNames(ctx context.Context, countries []restcountries.Country) map[string]string {
	seen := make(map[string]bool)
	var codes []string
	for _, c := range countries {
		for _, code := range c.Borders {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	if len(codes) == 0 {
		return nil
	}

	found, err := g.source.ByCodes(ctx, codes, "name", "cca3")
	if err != nil {
		g.logger.Warn("border lookup failed", zap.Int("codes", len(codes)), zap.Error(err))
		return nil
	}
	names := make(map[string]string, len(found))
	for _, b := range found {
		names[b.CCA3] = b.Name.Common
	}
	return names
}

// borderList maps the border codes of c to names, skipping unknown codes.
func borderList(c restcountries.Country, names map[string]string) []string {
	if names == nil {
		return nil
	}
	var out []string
	for _, code := range c.Borders {
		if name, ok := names[code]; ok {
			out = append(out, name)
		}
	}
	return out
}

func renderCountry(md goldmark.Markdown, tmpl *template.Template, p directory.Profile, link func(string) string, outPath string) error {
	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(directory.Markdown(p, link)), &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	data := countryData{
		Title:   p.Name + " | " + siteTitle,
		Name:    p.Name,
		Content: template.HTML(htmlBuf.String()),
	}
	return writeTemplate(tmpl, "country", outPath, data)
}

func writeTemplate(tmpl *template.Template, name, outPath string, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

func parseTemplates() (*template.Template, error) {
	tmpl := template.New("site")
	if _, err := tmpl.New("index").Parse(indexTemplate); err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}
	if _, err := tmpl.New("country").Parse(countryTemplate); err != nil {
		return nil, fmt.Errorf("parsing country template: %w", err)
	}
	return tmpl, nil
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug turns a country name into a file name: "Åland Islands" -> "aland-islands".
// Names without any Latin letters or digits produce "".
func Slug(name string) string {
	folded, _, err := transform.String(foldDiacritics, name)
	if err != nil {
		folded = name
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// assignSlugs gives every country a unique page name.
func assignSlugs(countries []restcountries.Country) []string {
	used := make(map[string]int)
	slugs := make([]string, len(countries))
	for i, c := range countries {
		s := Slug(c.Name.Common)
		if s == "" {
			s = "country"
		}
		used[s]++
		if n := used[s]; n > 1 {
			s = fmt.Sprintf("%s-%d", s, n)
		}
		slugs[i] = s
	}
	return slugs
}
