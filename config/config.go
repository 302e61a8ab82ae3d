// Package config reads the wfo configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"WATCHFOLIO_LOG_LEVEL" envDefault:"info"`
	API      API
	Cache    Cache
	Watch    Watch
	// Exchanges are the exchanges whose securities can be tracked, crypto
	// currencies are always supported. Empty means twelvedata.DefaultExchanges.
	Exchanges []string `env:"WATCHFOLIO_EXCHANGES" envSeparator:","`
}

type API struct {
	Key     string        `env:"TWELVEDATA_API_KEY"`
	URL     string        `env:"TWELVEDATA_API_URL" envDefault:"https://api.twelvedata.com"`
	Timeout time.Duration `env:"TWELVEDATA_API_TIMEOUT" envDefault:"10s"`
	Debug   bool          `env:"TWELVEDATA_API_DEBUG"`
	// Interval and OutputSize shape the price history fetched per ticker.
	Interval   string `env:"TWELVEDATA_INTERVAL" envDefault:"1day"`
	OutputSize int    `env:"TWELVEDATA_OUTPUT_SIZE" envDefault:"30"`
}

type Cache struct {
	Disabled bool   `env:"WATCHFOLIO_CACHE_DISABLED"`
	Dir      string `env:"WATCHFOLIO_CACHE_DIR"` // defaults to a folder in os.TempDir
}

type Watch struct {
	Interval time.Duration `env:"WATCHFOLIO_WATCH_INTERVAL" envDefault:"5m"`
}

// Load reads the configuration from the environment, after loading the
// optional .env file of the current directory.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return load(env.Options{})
}

// MustLoad is like Load but exits on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse config error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = filepath.Join(os.TempDir(), "watchfolio")
	}
	if cfg.API.OutputSize <= 0 {
		return nil, fmt.Errorf("invalid TWELVEDATA_OUTPUT_SIZE %d: must be positive", cfg.API.OutputSize)
	}
	for i, e := range cfg.Exchanges {
		cfg.Exchanges[i] = strings.TrimSpace(e)
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel, Info if unknown.
func (c *Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
