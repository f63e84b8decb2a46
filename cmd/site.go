package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/countrydir/internal/progress"
	"github.com/ziadkadry99/countrydir/internal/site"
)

var siteOutput string

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the directory as a static website",
	Long: `Fetches every country and writes a self-contained static site: an index
page with in-page search and region filtering, one profile page per country,
and countries.json.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().StringVarP(&siteOutput, "output", "o", "", "output directory (overrides site.output_dir)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	outputDir := cfg.Site.OutputDir
	if siteOutput != "" {
		outputDir = siteOutput
	}

	generator := site.NewGenerator(newClient(cfg), outputDir,
		site.WithLocale(cfg.LocaleTag()),
		site.WithConcurrency(cfg.Site.MaxConcurrency),
		site.WithReporter(progress.NewReporter("Exporting site")),
		site.WithLogger(logger),
	)
	pageCount, err := generator.Generate(cmd.Context())
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d countries)\n", outputDir, pageCount)
	return nil
}
