package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinytelemetry/clash-analyzer/internal/model"
	"github.com/tinytelemetry/clash-analyzer/internal/session"

	"github.com/spf13/viper"
)

const (
	defaultStartElixir    = model.DefaultStartElixir
	defaultMaxElixir      = model.DefaultMaxElixir
	defaultRegenPeriod    = model.DefaultRegenPeriod
	defaultHistoryLimit   = model.DefaultHistoryLimit
	defaultArtBaseURL     = model.DefaultArtBaseURL
	defaultArtTimeout     = model.DefaultArtTimeout
	defaultArtConcurrency = model.DefaultArtConcurrency
	defaultLogLevel       = "info"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	StartElixir    float64       `mapstructure:"start-elixir"`
	MaxElixir      int           `mapstructure:"max-elixir"`
	RegenPeriod    float64       `mapstructure:"regen-period"`
	HistoryLimit   int           `mapstructure:"history-limit"`
	ArtCheck       bool          `mapstructure:"art-check"`
	ArtBaseURL     string        `mapstructure:"art-base-url"`
	ArtTimeout     time.Duration `mapstructure:"art-timeout"`
	ArtConcurrency int           `mapstructure:"art-concurrency"`
	LogLevel       string        `mapstructure:"log-level"`
	ConfigPath     string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("CLASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("start-elixir", defaultStartElixir)
	v.SetDefault("max-elixir", defaultMaxElixir)
	v.SetDefault("regen-period", defaultRegenPeriod)
	v.SetDefault("history-limit", defaultHistoryLimit)
	v.SetDefault("art-check", true)
	v.SetDefault("art-base-url", defaultArtBaseURL)
	v.SetDefault("art-timeout", defaultArtTimeout)
	v.SetDefault("art-concurrency", defaultArtConcurrency)
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "clash-analyzer", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if cfg.MaxElixir < 1 {
		return cfg, fmt.Errorf("invalid max-elixir: %d", cfg.MaxElixir)
	}
	if cfg.RegenPeriod <= 0 {
		return cfg, fmt.Errorf("invalid regen-period: %v", cfg.RegenPeriod)
	}
	if cfg.HistoryLimit < 1 {
		return cfg, fmt.Errorf("invalid history-limit: %d", cfg.HistoryLimit)
	}

	return cfg, nil
}

// sessionConfig maps the user settings onto a session. The tick cadence is
// not configurable: every tick adds 1/regen-period, so it stays at one second.
func (c appConfig) sessionConfig() session.Config {
	return session.Config{
		StartElixir:  c.StartElixir,
		MaxElixir:    c.MaxElixir,
		RegenPeriod:  c.RegenPeriod,
		TickInterval: model.DefaultTickInterval,
		HistoryLimit: c.HistoryLimit,
	}
}
