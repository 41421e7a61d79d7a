package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StartElixir != 5.0 || cfg.MaxElixir != 10 || cfg.RegenPeriod != 2.8 {
		t.Fatalf("elixir defaults = %v/%d/%v, want 5/10/2.8", cfg.StartElixir, cfg.MaxElixir, cfg.RegenPeriod)
	}
	if cfg.HistoryLimit != 30 {
		t.Fatalf("history-limit = %d, want 30", cfg.HistoryLimit)
	}
	if !cfg.ArtCheck || cfg.ArtBaseURL == "" {
		t.Fatalf("art defaults = %v %q, want enabled with base url", cfg.ArtCheck, cfg.ArtBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log-level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
start-elixir: 7
max-elixir: 12
regen-period: 1.4
history-limit: 10
art-check: false
log-level: debug
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.StartElixir != 7 || cfg.MaxElixir != 12 || cfg.RegenPeriod != 1.4 {
		t.Fatalf("elixir = %v/%d/%v, want 7/12/1.4", cfg.StartElixir, cfg.MaxElixir, cfg.RegenPeriod)
	}
	if cfg.HistoryLimit != 10 || cfg.ArtCheck || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ConfigPath != path {
		t.Fatalf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestSessionConfig_TickCadenceIsFixed(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLASH_TICK_INTERVAL", "250ms")
	path := writeConfig(t, "tick-interval: 500ms\nregen-period: 1.4\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	sc := cfg.sessionConfig()
	if sc.TickInterval != time.Second {
		t.Fatalf("tick interval = %v, want fixed 1s", sc.TickInterval)
	}
	if sc.RegenPeriod != 1.4 {
		t.Fatalf("regen period = %v, want 1.4 from file", sc.RegenPeriod)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLASH_MAX_ELIXIR", "8")
	t.Setenv("CLASH_ART_CHECK", "false")
	path := writeConfig(t, "max-elixir: 12\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.MaxElixir != 8 {
		t.Fatalf("max-elixir = %d, want 8 from env", cfg.MaxElixir)
	}
	if cfg.ArtCheck {
		t.Fatal("art-check = true, want false from env")
	}
}

func TestLoadConfig_MissingFileIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("loadConfig with missing file: %v", err)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero max", "max-elixir: 0\n", "max-elixir"},
		{"negative regen", "regen-period: -1\n", "regen-period"},
		{"zero history", "history-limit: 0\n", "history-limit"},
		{"malformed yaml", "max-elixir: [\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			_, err := loadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("loadConfig succeeded, want error")
			}
			if tt.want != "" && !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestConfigureRuntimeLogger_WritesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	cleanup := configureRuntimeLogger("debug")
	log.Debug().Msg("hello from test")
	cleanup()

	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("level = %v, want debug", got)
	}
	data, err := os.ReadFile(filepath.Join(home, ".local", "state", "clash-analyzer", "clash-analyzer.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log file = %q, want test message", data)
	}
}

func TestConfigureRuntimeLogger_BadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	cleanup := configureRuntimeLogger("loud")
	defer cleanup()

	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("level = %v, want info", got)
	}
}
