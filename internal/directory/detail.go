package directory

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

// ErrNoCountry is returned when a detail request names no country.
var ErrNoCountry = errors.New("no country specified")

// Lookup resolves single countries and border codes.
type Lookup interface {
	ByName(ctx context.Context, name string) (*restcountries.Country, error)
	ByCodes(ctx context.Context, codes []string, fields ...string) ([]restcountries.Country, error)
}

// Resolver loads the detail view of a single country.
type Resolver struct {
	lookup Lookup
	logger *zap.Logger
}

// NewResolver creates a Resolver. A nil logger discards output.
func NewResolver(lookup Lookup, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{lookup: lookup, logger: logger}
}

// Resolve fetches the exact-match record for name and then, best effort, the
// names of its border countries. A failed border lookup is logged and yields
// a profile without borders; only the primary lookup can fail the call.
func (r *Resolver) Resolve(ctx context.Context, name string) (*Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoCountry
	}

	country, err := r.lookup.ByName(ctx, name)
	if err != nil {
		r.logger.Error("country lookup failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	p := NewProfile(*country, r.BorderNames(ctx, *country))
	return &p, nil
}

// BorderNames resolves the border codes of c to common names in the order the
// API returns them. Failures are logged and produce nil.
func (r *Resolver) BorderNames(ctx context.Context, c restcountries.Country) []string {
	if len(c.Borders) == 0 {
		return nil
	}
	borders, err := r.lookup.ByCodes(ctx, c.Borders, restcountries.BorderFields...)
	if err != nil {
		r.logger.Warn("border lookup failed",
			zap.String("country", c.Name.Common),
			zap.Strings("codes", c.Borders),
			zap.Error(err))
		return nil
	}
	names := make([]string, 0, len(borders))
	for _, b := range borders {
		names = append(names, b.Name.Common)
	}
	return names
}
