package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// configureRuntimeLogger sends logs to a file because the TUI owns the
// terminal. It falls back to stderr when the state directory is unusable.
func configureRuntimeLogger(level string) func() {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	home, err := os.UserHomeDir()
	if err != nil {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "clash-analyzer")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}
	}

	logPath := filepath.Join(logDir, "clash-analyzer.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}
	}

	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() {
		_ = f.Close()
	}
}
