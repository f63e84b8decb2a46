package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ziadkadry99/countrydir/internal/directory"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	muted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// listOutput is the JSON shape of `list --json`.
type listOutput struct {
	Filter    directory.Filter `json:"filter"`
	Count     int              `json:"count"`
	Countries []directory.Card `json:"countries"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderCards prints one table row per card, or the empty-result message.
func renderCards(w io.Writer, cards []directory.Card) {
	if len(cards) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No countries found"))
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers("Name", "Population", "Region", "Capital").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, c := range cards {
		t.Row(c.Name, c.Population, c.Region, c.Capital)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d countries", len(cards))))
}

// renderProfile prints a profile as labelled lines.
func renderProfile(w io.Writer, p directory.Profile) {
	fmt.Fprintln(w, titleStyle.Render(p.Name))
	fmt.Fprintln(w)

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
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(row[0]+":"), row[1])
	}

	if len(p.Borders) > 0 {
		names := make([]string, 0, len(p.Borders))
		for _, b := range p.Borders {
			names = append(names, b.Name)
		}
		fmt.Fprintf(w, "\n%s %s\n", labelStyle.Render("Border Countries:"), strings.Join(names, ", "))
	}
	fmt.Fprintln(w, mutedStyle.Render("Flag: "+p.FlagURL))
}
