package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/flagx"
	"github.com/dmitrijs2005/deckkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of Config. It is only used for decoding;
// values are copied into Config afterwards.
type FileConfig struct {
	APIBaseURL      string         `json:"api_base_url" yaml:"api_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	RequestInterval timex.Duration `json:"request_interval" yaml:"request_interval"`
	StorageDriver   string         `json:"storage_driver" yaml:"storage_driver"`
	StoragePath     string         `json:"storage_path" yaml:"storage_path"`
	SessionTTL      timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	AuthDelay       timex.Duration `json:"auth_delay" yaml:"auth_delay"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	LogBackend      string         `json:"log_backend" yaml:"log_backend"`
}

func fileConfigFrom(cfg *Config) FileConfig {
	return FileConfig{
		APIBaseURL:      cfg.APIBaseURL,
		RequestTimeout:  timex.Duration{Duration: cfg.RequestTimeout},
		RequestInterval: timex.Duration{Duration: cfg.RequestInterval},
		StorageDriver:   cfg.StorageDriver,
		StoragePath:     cfg.StoragePath,
		SessionTTL:      timex.Duration{Duration: cfg.SessionTTL},
		AuthDelay:       timex.Duration{Duration: cfg.AuthDelay},
		LogLevel:        cfg.LogLevel,
		LogBackend:      cfg.LogBackend,
	}
}

func (fc FileConfig) apply(cfg *Config) {
	cfg.APIBaseURL = fc.APIBaseURL
	cfg.RequestTimeout = fc.RequestTimeout.Duration
	cfg.RequestInterval = fc.RequestInterval.Duration
	cfg.StorageDriver = fc.StorageDriver
	cfg.StoragePath = fc.StoragePath
	cfg.SessionTTL = fc.SessionTTL.Duration
	cfg.AuthDelay = fc.AuthDelay.Duration
	cfg.LogLevel = fc.LogLevel
	cfg.LogBackend = fc.LogBackend
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	if err := loadFile(path, cfg); err != nil {
		panic(err)
	}
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fc := fileConfigFrom(cfg)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}
