package directory

import (
	"fmt"
	"strings"
)

// Markdown renders p as a markdown document. link maps a border country name
// to its target; nil keeps each Border's own URL.
func Markdown(p Profile, link func(name string) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeText(p.Name))
	if p.FlagURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", escapeText(p.FlagAlt), p.FlagURL)
	}

	b.WriteString("| Field | Value |\n|---|---|\n")
	rows := [][2]string{
		{"Native Name", p.NativeName},
		{"Population", p.Population},
		{"Region", p.Region},
		{"Sub Region", p.Subregion},
		{"Capital", p.Capital},
		{"Top Level Domain", p.TLD},
		{"Currencies", p.Currencies},
		{"Languages", p.Languages},
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], escapeCell(row[1]))
	}

	if len(p.Borders) > 0 {
		b.WriteString("\n## Border Countries\n\n")
		for _, border := range p.Borders {
			target := border.URL
			if link != nil {
				target = link(border.Name)
			}
			fmt.Fprintf(&b, "- [%s](%s)\n", escapeText(border.Name), target)
		}
	}

	return b.String()
}

var (
	textEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`, "*", `\*`, "_", `\_`, "`", "\\`")
	cellEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`, "*", `\*`, "_", `\_`, "`", "\\`", "|", `\|`)
)

// escapeText escapes the characters that start inline markdown constructs.
func escapeText(s string) string { return textEscaper.Replace(s) }

// escapeCell is escapeText plus the table column separator.
func escapeCell(s string) string { return cellEscaper.Replace(s) }
