package config

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/manifoldco/promptui"
	"golang.org/x/text/language"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to countrydir! Let's configure your directory.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. API endpoint.
	apiPrompt := promptui.Prompt{
		Label:   "REST Countries API base URL",
		Default: cfg.APIBaseURL,
		Validate: func(s string) error {
			u, err := url.Parse(s)
			if err != nil || u.Host == "" {
				return fmt.Errorf("enter an absolute URL")
			}
			return nil
		},
	}
	apiBaseURL, err := apiPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("api base url: %w", err)
	}
	cfg.APIBaseURL = apiBaseURL

	// 2. Sort locale.
	localePrompt := promptui.Prompt{
		Label:   "Locale for sorting country names (BCP 47)",
		Default: cfg.Locale,
		Validate: func(s string) error {
			_, err := language.Parse(s)
			return err
		},
	}
	locale, err := localePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	cfg.Locale = locale

	// 3. Default theme.
	themePrompt := promptui.Select{
		Label: "Default theme when a visitor has no preference",
		Items: []string{
			"system (follow the browser, else light)",
			"light",
			"dark",
		},
	}
	themeIdx, _, err := themePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}
	cfg.DefaultTheme = []string{"", "light", "dark"}[themeIdx]

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for `countrydir serve`",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Static site output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
