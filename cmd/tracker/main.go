package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"options-tracker-go/internal/config"
	"options-tracker-go/internal/logger"
	"options-tracker-go/internal/store"
	"options-tracker-go/internal/tui"
)

func main() {
	// Load configuration; missing config file falls back to defaults.
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Open the database before taking over the terminal so failures are
	// still readable.
	st, err := store.Open(cfg.Database.Path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		log.Error("Failed to open database", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Starting UI")

	p := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
		log.Error("UI error", zap.Error(err))
		os.Exit(1)
	}

	log.Info("Clean shutdown")
}
