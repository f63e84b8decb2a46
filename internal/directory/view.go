package directory

import (
	"net/url"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ziadkadry99/countrydir/internal/restcountries"
)

// Placeholder stands in for a missing value.
const Placeholder = "N/A"

// Card is the list-view rendition of one country.
type Card struct {
	Name       string `json:"name"`
	FlagURL    string `json:"flag_url"`
	FlagAlt    string `json:"flag_alt"`
	Population string `json:"population"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	DetailURL  string `json:"detail_url"`
}

// NewCard builds the card for c.
func NewCard(c restcountries.Country) Card {
	return Card{
		Name:       c.Name.Common,
		FlagURL:    c.FlagURL(),
		FlagAlt:    c.Name.Common + " flag",
		Population: FormatPopulation(c.Population),
		Region:     c.Region,
		Capital:    orPlaceholder(c.FirstCapital()),
		DetailURL:  DetailURL(c.Name.Common),
	}
}

// Cards builds one card per country, in order.
func Cards(countries []restcountries.Country) []Card {
	cards := make([]Card, 0, len(countries))
	for _, c := range countries {
		cards = append(cards, NewCard(c))
	}
	return cards
}

// Border is a navigable neighbouring country.
type Border struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Profile is the detail-view rendition of one country.
type Profile struct {
	Name       string   `json:"name"`
	FlagURL    string   `json:"flag_url"`
	FlagAlt    string   `json:"flag_alt"`
	NativeName string   `json:"native_name"`
	Population string   `json:"population"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Capital    string   `json:"capital"`
	TLD        string   `json:"tld"`
	Currencies string   `json:"currencies"`
	Languages  string   `json:"languages"`
	Borders    []Border `json:"borders"`
}

// NewProfile builds the profile for c with the given border country names.
func NewProfile(c restcountries.Country, borderNames []string) Profile {
	tld := ""
	if len(c.TLD) > 0 {
		tld = c.TLD[0]
	}
	p := Profile{
		Name:       c.Name.Common,
		FlagURL:    c.FlagURL(),
		FlagAlt:    c.Name.Common + " flag",
		NativeName: orPlaceholder(c.FirstNativeName()),
		Population: FormatPopulation(c.Population),
		Region:     orPlaceholder(c.Region),
		Subregion:  orPlaceholder(c.Subregion),
		Capital:    orPlaceholder(c.FirstCapital()),
		TLD:        orPlaceholder(tld),
		Currencies: joinOrPlaceholder(c.CurrencyNames()),
		Languages:  joinOrPlaceholder(c.LanguageNames()),
		Borders:    []Border{},
	}
	for _, name := range borderNames {
		p.Borders = append(p.Borders, Border{Name: name, URL: DetailURL(name)})
	}
	return p
}

// FormatPopulation groups digits in threes: 83240525 -> "83,240,525".
func FormatPopulation(n int64) string {
	return humanize.Comma(n)
}

// DetailURL is the detail-page link for the named country. Spaces encode as
// %20, not "+".
func DetailURL(name string) string {
	return "/country?name=" + EscapeName(name)
}

// EscapeName percent-encodes a country name for use as a query value.
func EscapeName(name string) string {
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func joinOrPlaceholder(values []string) string {
	return orPlaceholder(strings.Join(values, ", "))
}
