package config

// Config is the top-level countrydir configuration, corresponding to .countrydir.yml.
type Config struct {
	APIBaseURL   string       `yaml:"api_base_url" koanf:"api_base_url"`
	Locale       string       `yaml:"locale" koanf:"locale"`
	DefaultTheme string       `yaml:"default_theme" koanf:"default_theme"`
	DataDir      string       `yaml:"data_dir" koanf:"data_dir"`
	Server       ServerConfig `yaml:"server" koanf:"server"`
	Log          LogConfig    `yaml:"log" koanf:"log"`
	Site         SiteConfig   `yaml:"site" koanf:"site"`
}

// ServerConfig holds settings for `countrydir serve`.
type ServerConfig struct {
	Port                  int  `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int  `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}

// SiteConfig holds settings for the static export.
type SiteConfig struct {
	OutputDir      string `yaml:"output_dir" koanf:"output_dir"`
	MaxConcurrency int    `yaml:"max_concurrency" koanf:"max_concurrency"`
}
