package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/countrydir/internal/config"
	"github.com/ziadkadry99/countrydir/internal/logging"
)

var (
	cfgFile string
	verbose bool

	// cfg and logger are set up in PersistentPreRunE for every command.
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "countrydir",
	Short: "Browse the countries of the world from the terminal or the browser",
	Long: `countrydir is a directory of the world's countries backed by the REST
Countries API. Serve it as a web app with search, region filtering, country
profiles and a persisted light/dark theme, browse it from the terminal, or
export it as a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations["config"] == "skip" {
			return nil
		}
		c, err := loadConfig()
		if err != nil {
			return err
		}
		l, err := logging.New(c.Log.Level, c.Log.Format, verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		cfg, logger = c, l
		logger.Debug("config loaded", zap.String("path", cfgFile), zap.String("api", cfg.APIBaseURL))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".countrydir.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
