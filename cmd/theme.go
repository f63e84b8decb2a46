package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/countrydir/internal/theme"
)

// cliVisitor keys the preference shared by terminal sessions.
const cliVisitor = "cli"

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the saved light/dark theme preference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, database, err := openThemes(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		mode, err := themes.Resolve(cmd.Context(), cliVisitor, theme.HintNone)
		if err != nil {
			return fmt.Errorf("reading theme: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), mode)
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark and save the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		themes, database, err := openThemes(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		mode, err := themes.Toggle(cmd.Context(), cliVisitor, theme.HintNone)
		if err != nil {
			return fmt.Errorf("toggling theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
		return nil
	},
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Save an explicit theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(theme.Light), string(theme.Dark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, ok := theme.ParseMode(args[0])
		if !ok {
			return fmt.Errorf("unknown theme %q: must be light or dark", args[0])
		}

		themes, database, err := openThemes(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := themes.Set(cmd.Context(), cliVisitor, mode); err != nil {
			return fmt.Errorf("saving theme: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", mode)
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeToggleCmd, themeSetCmd)
	rootCmd.AddCommand(themeCmd)
}
