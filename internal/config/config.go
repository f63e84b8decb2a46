package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COUNTRYDIR_"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL: "https://restcountries.com/v3.1",
		Locale:     "en",
		DataDir:    ".countrydir",
		Server: ServerConfig{
			Port:                  8080,
			RequestTimeoutSeconds: 60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Site: SiteConfig{
			OutputDir:      "site",
			MaxConcurrency: 8,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (COUNTRYDIR_*). A double underscore
// separates nested keys: COUNTRYDIR_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validThemes is the set of recognized default_theme values. Empty means
// "follow the system, else light".
var validThemes = map[string]bool{
	"":      true,
	"light": true,
	"dark":  true,
}

// validLogFormats is the set of recognized log.format values.
var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// validLogLevels is the set of recognized log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_base_url %q: must be an absolute http(s) URL", c.APIBaseURL)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}

	if !validThemes[c.DefaultTheme] {
		return fmt.Errorf("invalid default_theme %q: must be light, dark or empty", c.DefaultTheme)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.Server.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}

	if c.Site.MaxConcurrency < 0 {
		return fmt.Errorf("site.max_concurrency must be non-negative")
	}

	return nil
}

// LocaleTag returns the parsed collation locale, falling back to English.
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// DatabasePath is where the preference database lives.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "countrydir.db")
}
