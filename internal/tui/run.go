// Package tui implements the interactive dashboard.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/service"
	"github.com/Shubham-Khatrii/budgetwise/internal/tui/themes"
)

// Config holds the dependencies for running the dashboard.
type Config struct {
	// Store is the state container the dashboard reads and mutates.
	Store service.Store
	// Recorder must be installed as the store's Toaster; the dashboard
	// drains it into the status line after each mutation.
	Recorder *cli.Recorder
	// Theme selects the color scheme; the zero value falls back to Default.
	Theme string
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Store == nil {
		return fmt.Errorf("store is required")
	}
	if cfg.Recorder == nil {
		return fmt.Errorf("toast recorder is required")
	}

	program := tea.NewProgram(
		newModel(cfg.Store, cfg.Recorder, themes.GetTheme(cfg.Theme)),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
