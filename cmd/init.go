package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/countrydir/internal/config"
)

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Initialize countrydir configuration with an interactive wizard",
	Long:        `Runs an interactive wizard to configure countrydir and writes the answers to the config file (.countrydir.yml by default).`,
	Annotations: map[string]string{"config": "skip"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
