package directory

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

// AllRegions is the region selector value that disables region filtering.
const AllRegions = "all"

// DefaultRegions is offered by the region selector before any data is loaded.
var DefaultRegions = []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}

// Filter is the ephemeral search state of the list view.
type Filter struct {
	Query  string `json:"query,omitempty"`
	Region string `json:"region,omitempty"`
}

// normalized trims the query and maps the "all" region to no region.
func (f Filter) normalized() Filter {
	f.Query = strings.ToLower(strings.TrimSpace(f.Query))
	f.Region = strings.TrimSpace(f.Region)
	if strings.EqualFold(f.Region, AllRegions) {
		f.Region = ""
	}
	return f
}

// Active reports whether the filter restricts anything.
func (f Filter) Active() bool {
	n := f.normalized()
	return n.Query != "" || n.Region != ""
}

// matches reports whether c passes both the region and the name restriction.
// f must be normalized.
func (f Filter) matches(c restcountries.Country) bool {
	if f.Region != "" && c.Region != f.Region {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(c.Name.Common), f.Query) {
		return false
	}
	return true
}

// Apply returns the subset of all that passes f, in the order of all. It
// always works from the given collection and never modifies it.
func Apply(all []restcountries.Country, f Filter) []restcountries.Country {
	n := f.normalized()
	out := make([]restcountries.Country, 0, len(all))
	for _, c := range all {
		if n.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Regions returns the distinct non-empty regions in all, sorted. It falls
// back to DefaultRegions when all is empty.
func Regions(all []restcountries.Country) []string {
	if len(all) == 0 {
		return append([]string(nil), DefaultRegions...)
	}
	seen := make(map[string]bool)
	var regions []string
	for _, c := range all {
		if c.Region == "" || seen[c.Region] {
			continue
		}
		seen[c.Region] = true
		regions = append(regions, c.Region)
	}
	sort.Strings(regions)
	return regions
}
