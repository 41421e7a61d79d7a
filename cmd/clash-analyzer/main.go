package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tinytelemetry/clash-analyzer/internal/cardart"
	"github.com/tinytelemetry/clash-analyzer/internal/catalog"
	"github.com/tinytelemetry/clash-analyzer/internal/session"
	"github.com/tinytelemetry/clash-analyzer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/clash-analyzer/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Clash Analyzer - Elixir Tracker\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	// A missing .env is normal; values already in the environment win.
	_ = godotenv.Load()

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger(cfg.LogLevel)
	defer cleanupLogger()

	log.Info().
		Str("version", version).
		Str("config", cfg.ConfigPath).
		Int("cards", catalog.Len()).
		Msg("starting clash-analyzer")

	art, err := cardart.NewResolver(cardart.Config{
		Enabled:     cfg.ArtCheck,
		BaseURL:     cfg.ArtBaseURL,
		Timeout:     cfg.ArtTimeout,
		Concurrency: cfg.ArtConcurrency,
	})
	if err != nil {
		return fmt.Errorf("initializing card art: %w", err)
	}

	s := session.New(cfg.sessionConfig())
	s.Start()

	tracker := tui.NewTrackerModel(s, art)
	app := tui.NewApp(tui.NewTrackerPage(tracker))
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
