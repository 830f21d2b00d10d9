package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shubham-Khatrii/budgetwise/internal/cli"
	"github.com/Shubham-Khatrii/budgetwise/internal/config"
	"github.com/Shubham-Khatrii/budgetwise/internal/storage"
	"github.com/Shubham-Khatrii/budgetwise/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context())
		},
	}

	cmd.Flags().String("theme", "", "color theme (default, catppuccin-mocha)")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runDashboard(ctx context.Context) error {
	// The dashboard needs toasts recorded, not printed, so it uses its own
	// store wiring instead of openStore.
	recorder := &cli.Recorder{}
	store, err := storage.Open(ctx,
		storage.WithToaster(recorder),
		storage.WithCurrentUser(config.CurrentUser()))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = store.Close() }()

	return tui.Run(ctx, tui.Config{
		Store:    store,
		Recorder: recorder,
		Theme:    viper.GetString("ui.theme"),
	})
}
