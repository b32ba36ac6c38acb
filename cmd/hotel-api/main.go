// Command hotel-api runs the hotel booking HTTP API and its maintenance
// tasks: schema migrations, catalog seeding and email template previews.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/hotel-booking/internal/config"
	"github.com/deppfellow/hotel-booking/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "hotel-api",
	Short:         "Hotel booking REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, emailPreviewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		l := logger.NewLogger("error", false)
		l.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the application logger. The
// returned LoggerService must be shut down by the caller.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, log, nil
}
