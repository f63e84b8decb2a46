package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/countrydir/internal/directory"
)

var (
	showMarkdown bool
	showJSON     bool
)

var showCmd = &cobra.Command{
	Use:   "show <country name>",
	Short: "Show the full profile of one country",
	Long: `Looks up a country by its exact name and prints its profile together
with the names of its border countries. Names with spaces may be quoted or
given as several words.`,
	Example: `  countrydir show Belgium
  countrydir show united states --markdown`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showMarkdown, "markdown", false, "print the profile as markdown")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the profile as JSON")
	showCmd.MarkFlagsMutuallyExclusive("markdown", "json")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	client := newClient(cfg)
	resolver := directory.NewResolver(client, logger)

	profile, err := resolver.Resolve(cmd.Context(), strings.Join(args, " "))
	if errors.Is(err, directory.ErrNoCountry) {
		return err
	}
	if err != nil {
		return fmt.Errorf("looking up country: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case showJSON:
		return writeJSON(out, profile)
	case showMarkdown:
		_, err := fmt.Fprint(out, directory.Markdown(*profile, nil))
		return err
	default:
		renderProfile(out, *profile)
		return nil
	}
}
