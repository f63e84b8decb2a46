package directory

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

// Source supplies the full country collection.
type Source interface {
	All(ctx context.Context, fields ...string) ([]restcountries.Country, error)
}

// Catalog holds the full country collection in memory, sorted by common
// name. It is fetched once and never mutated afterwards.
type Catalog struct {
	source Source
	fields []string
	locale language.Tag
	logger *zap.Logger

	group singleflight.Group

	mu        sync.RWMutex
	countries []restcountries.Country
	loaded    bool
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLocale sets the collation locale used to sort names.
func WithLocale(tag language.Tag) CatalogOption {
	return func(c *Catalog) { c.locale = tag }
}

// WithFields overrides the field projection requested from the source.
func WithFields(fields ...string) CatalogOption {
	return func(c *Catalog) { c.fields = fields }
}

// WithLogger sets the catalog logger.
func WithLogger(l *zap.Logger) CatalogOption {
	return func(c *Catalog) { c.logger = l }
}

// NewCatalog creates an empty catalog backed by source.
func NewCatalog(source Source, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		source: source,
		locale: language.English,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ensure returns the collection, fetching it first if no earlier fetch has
// succeeded. Concurrent callers share a single fetch. A failed fetch leaves
// the catalog empty, so the next call fetches again.
func (c *Catalog) Ensure(ctx context.Context) ([]restcountries.Country, error) {
	if countries, ok := c.snapshot(); ok {
		return countries, nil
	}

	// The shared fetch outlives any single caller's cancellation.
	shared := context.WithoutCancel(ctx)
	_, err, _ := c.group.Do("all", func() (any, error) {
		if c.Loaded() {
			return nil, nil
		}
		return nil, c.load(shared)
	})
	if err != nil {
		return nil, err
	}
	countries, _ := c.snapshot()
	return countries, nil
}

// Countries returns a copy of the stored collection, or nil before the first
// successful fetch.
func (c *Catalog) Countries() []restcountries.Country {
	countries, _ := c.snapshot()
	return countries
}

// Loaded reports whether a fetch has succeeded.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Catalog) snapshot() ([]restcountries.Country, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return slices.Clone(c.countries), true
}

func (c *Catalog) load(ctx context.Context) error {
	countries, err := c.source.All(ctx, c.fields...)
	if err != nil {
		c.logger.Error("loading countries failed", zap.Error(err))
		return err
	}
	SortByName(countries, c.locale)

	c.mu.Lock()
	c.countries = countries
	c.loaded = true
	c.mu.Unlock()

	c.logger.Info("countries loaded", zap.Int("count", len(countries)))
	return nil
}

// SortByName sorts countries in place by common name using the collation
// rules of the given locale. Equal names keep their relative order.
func SortByName(countries []restcountries.Country, tag language.Tag) {
	col := collate.New(tag)
	slices.SortStableFunc(countries, func(a, b restcountries.Country) int {
		return col.CompareString(a.Name.Common, b.Name.Common)
	})
}
