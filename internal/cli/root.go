package cli

import (
	"context"
	"fmt"

	"fleet_maintenance/internal/app"
	"fleet_maintenance/internal/infrastructure/config"
	"fleet_maintenance/internal/infrastructure/logging"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootCmd builds the fleetctl command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fleetctl",
		Short: "Fleet maintenance work order service and operations tool",
		Long: `fleetctl runs the work order API and exposes operational commands that talk
to the same storage: manual reconciliation runs and live elapsed-time queries.`,
		SilenceUsage: true,
	}

	root.AddCommand(ServeCmd())
	root.AddCommand(ReconcileCmd())
	root.AddCommand(ElapsedCmd())
	return root
}

// bootstrap loads configuration and wires the application the same way the API does.
func bootstrap(ctx context.Context) (*app.App, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("loading config: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.AppEnv)

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, log, fmt.Errorf("starting application: %w", err)
	}
	return a, log, nil
}
