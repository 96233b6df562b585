package config

import "time"

// Config holds runtime settings for the deckkeeper CLI.
//
// Durations are time.Duration values; RequestTimeout is set in whole seconds
// from the command line but accepts any duration in a config file.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	RequestInterval time.Duration

	StorageDriver string
	StoragePath   string

	SessionTTL time.Duration
	AuthDelay  time.Duration

	LogLevel   string
	LogBackend string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.scryfall.com"
	c.RequestTimeout = 10 * time.Second
	c.RequestInterval = 100 * time.Millisecond
	c.StorageDriver = "sqlite"
	c.StoragePath = "deckkeeper.db"
	c.SessionTTL = 24 * time.Hour
	c.AuthDelay = 500 * time.Millisecond
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
