package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ziadkadry99/countrydir/internal/config"
	"github.com/ziadkadry99/countrydir/internal/db"
	"github.com/ziadkadry99/countrydir/internal/restcountries"
	"github.com/ziadkadry99/countrydir/internal/theme"
)

// apiTimeout bounds a single upstream request.
const apiTimeout = 30 * time.Second

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `countrydir init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return c, nil
}

// newClient creates the REST Countries client from config.
func newClient(c *config.Config) *restcountries.Client {
	return restcountries.NewClient(c.APIBaseURL,
		restcountries.WithHTTPClient(&http.Client{Timeout: apiTimeout}),
		restcountries.WithUserAgent("countrydir/"+Version),
	)
}

// openThemes opens the preference database and returns a theme controller
// over it. The caller closes the database.
func openThemes(c *config.Config) (*theme.Controller, *db.DB, error) {
	database, err := db.Open(c.DatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	fallback, _ := theme.ParseMode(c.DefaultTheme)
	return theme.NewController(theme.NewSQLStore(database), fallback, logger), database, nil
}
