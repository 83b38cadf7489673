package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "fleet_maintenance/docs"
	"fleet_maintenance/internal/app"
	"fleet_maintenance/internal/infrastructure/config"
	"fleet_maintenance/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fleet Maintenance API
// @version         1.0
// @description     Work order time and cost reconciliation for fleet maintenance.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Identifier of the acting user. Required on mutating endpoints.

// @securityDefinitions.apikey UserRole
// @in header
// @name X-User-Role
// @description Role of the acting user (technician, foreman, manager, admin).

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start application")
	}

	serveErr := a.Serve(ctx)
	if err := a.Close(); err != nil {
		log.Error().Err(err).Msg("closing resources")
	}
	if serveErr != nil {
		log.Fatal().Err(serveErr).Msg("server error")
	}
	log.Info().Msg("server exiting")
}
