package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/countrydir/internal/directory"
)

var (
	listSearch string
	listRegion string
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries, optionally filtered by name and region",
	Example: `  countrydir list --region Europe
  countrydir list --search land --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "case-insensitive substring of the country name")
	listCmd.Flags().StringVarP(&listRegion, "region", "r", "", "exact region name (Africa, Americas, Asia, Europe, Oceania)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	catalog := directory.NewCatalog(newClient(cfg),
		directory.WithLocale(cfg.LocaleTag()),
		directory.WithLogger(logger),
	)
	all, err := catalog.Ensure(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading countries: %w", err)
	}

	f := directory.Filter{Query: listSearch, Region: listRegion}
	cards := directory.Cards(directory.Apply(all, f))

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, listOutput{Filter: f, Count: len(cards), Countries: cards})
	}
	renderCards(out, cards)
	return nil
}
