package config

import (
	"log/slog"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(env.Options{Environment: map[string]string{}})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.API.URL != "https://api.twelvedata.com" {
		t.Errorf("API.URL = %q", cfg.API.URL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.API.Interval != "1day" || cfg.API.OutputSize != 30 {
		t.Errorf("API interval/size = %q/%d, want 1day/30", cfg.API.Interval, cfg.API.OutputSize)
	}
	if cfg.Watch.Interval != 5*time.Minute {
		t.Errorf("Watch.Interval = %v, want 5m", cfg.Watch.Interval)
	}
	if len(cfg.Exchanges) != 0 {
		t.Errorf("Exchanges = %q, want none", cfg.Exchanges)
	}
	if filepath.Base(cfg.Cache.Dir) != "watchfolio" {
		t.Errorf("Cache.Dir = %q, want a watchfolio folder", cfg.Cache.Dir)
	}
	if cfg.Level() != slog.LevelInfo {
		t.Errorf("Level() = %v, want INFO", cfg.Level())
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(env.Options{Environment: map[string]string{
		"WATCHFOLIO_LOG_LEVEL":      "debug",
		"TWELVEDATA_API_KEY":        "secret",
		"TWELVEDATA_API_TIMEOUT":    "3s",
		"TWELVEDATA_OUTPUT_SIZE":    "90",
		"WATCHFOLIO_CACHE_DIR":      "/var/cache/wfo",
		"WATCHFOLIO_CACHE_DISABLED": "true",
		"WATCHFOLIO_EXCHANGES":      "LSE, XETR",
	}})
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}
	if cfg.API.Key != "secret" || cfg.API.Timeout != 3*time.Second || cfg.API.OutputSize != 90 {
		t.Errorf("API = %+v", cfg.API)
	}
	if !cfg.Cache.Disabled || cfg.Cache.Dir != "/var/cache/wfo" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if want := []string{"LSE", "XETR"}; !slices.Equal(cfg.Exchanges, want) {
		t.Errorf("Exchanges = %q, want %q", cfg.Exchanges, want)
	}
	if cfg.Level() != slog.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", cfg.Level())
	}
}

func TestLoad_Invalid(t *testing.T) {
	for _, environment := range []map[string]string{
		{"TWELVEDATA_API_TIMEOUT": "soon"},
		{"TWELVEDATA_OUTPUT_SIZE": "0"},
		{"TWELVEDATA_OUTPUT_SIZE": "many"},
	} {
		if _, err := load(env.Options{Environment: environment}); err == nil {
			t.Errorf("load(%v) succeeded, want error", environment)
		}
	}
}
