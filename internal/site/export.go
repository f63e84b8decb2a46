package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/countrydir/internal/directory"
)

// ExportEntry is one country in countries.json, a machine-readable copy of
// the index for consumers outside the site. The index page itself filters on
// its cards' data attributes.
type ExportEntry struct {
	Name       string `json:"name"`
	Region     string `json:"region"`
	Capital    string `json:"capital"`
	Population string `json:"population"`
	Flag       string `json:"flag"`
	Path       string `json:"path"`
}

// BuildExport converts exported cards into entries, keeping their order.
func BuildExport(cards []directory.Card) []ExportEntry {
	entries := make([]ExportEntry, 0, len(cards))
	for _, c := range cards {
		entries = append(entries, ExportEntry{
			Name:       c.Name,
			Region:     c.Region,
			Capital:    c.Capital,
			Population: c.Population,
			Flag:       c.FlagURL,
			Path:       c.DetailURL,
		})
	}
	return entries
}

// WriteExport writes entries as indented JSON to the given path.
func WriteExport(entries []ExportEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
