package restcountries

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Country is one record of the REST Countries v3.1 API. Which fields are
// populated depends on the projection the record was fetched with.
type Country struct {
	Name       Name                                    `json:"name"`
	Capital    []string                                `json:"capital,omitempty"`
	Population int64                                   `json:"population"`
	Region     string                                  `json:"region,omitempty"`
	Subregion  string                                  `json:"subregion,omitempty"`
	Flags      Flags                                   `json:"flags"`
	Borders    []string                                `json:"borders,omitempty"`
	TLD        []string                                `json:"tld,omitempty"`
	Currencies *orderedmap.OrderedMap[string, Currency] `json:"currencies,omitempty"`
	Languages  *orderedmap.OrderedMap[string, string]   `json:"languages,omitempty"`
	CCA3       string                                  `json:"cca3,omitempty"`
}

// Name holds the common and official names plus localized native names keyed
// by language code, in the order the API served them.
type Name struct {
	Common     string                                    `json:"common"`
	Official   string                                    `json:"official,omitempty"`
	NativeName *orderedmap.OrderedMap[string, NativeName] `json:"nativeName,omitempty"`
}

// NativeName is a country name in one of its own languages.
type NativeName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags references the flag images hosted by the API.
type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// Currency is a currency entry keyed by its ISO 4217 code.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// FirstNativeName returns the common form of the first native name, or ""
// when the record has none.
func (c Country) FirstNativeName() string {
	if c.Name.NativeName == nil {
		return ""
	}
	if p := c.Name.NativeName.Oldest(); p != nil {
		return p.Value.Common
	}
	return ""
}

// CurrencyNames returns currency display names in API order.
func (c Country) CurrencyNames() []string {
	if c.Currencies == nil {
		return nil
	}
	names := make([]string, 0, c.Currencies.Len())
	for p := c.Currencies.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Value.Name)
	}
	return names
}

// LanguageNames returns language display names in API order.
func (c Country) LanguageNames() []string {
	if c.Languages == nil {
		return nil
	}
	names := make([]string, 0, c.Languages.Len())
	for p := c.Languages.Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Value)
	}
	return names
}

// FirstCapital returns the first listed capital, or "" when there is none.
func (c Country) FirstCapital() string {
	if len(c.Capital) == 0 {
		return ""
	}
	return c.Capital[0]
}

// FlagURL prefers the SVG flag and falls back to PNG.
func (c Country) FlagURL() string {
	if c.Flags.SVG != "" {
		return c.Flags.SVG
	}
	return c.Flags.PNG
}
