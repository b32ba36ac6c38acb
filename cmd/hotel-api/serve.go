package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deppfellow/hotel-booking/internal/database"
	"github.com/deppfellow/hotel-booking/internal/handler"
	"github.com/deppfellow/hotel-booking/internal/lib/job"
	"github.com/deppfellow/hotel-booking/internal/middleware"
	"github.com/deppfellow/hotel-booking/internal/repository"
	"github.com/deppfellow/hotel-booking/internal/router"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API, job workers and scheduler",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	if cfg.Primary.Env != "local" {
		if err := database.Migrate(cmd.Context(), &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewService(srv, repos)
	if err != nil {
		srv.Close()
		return fmt.Errorf("could not create services: %w", err)
	}

	mw := middleware.NewMiddlewares(srv, services.Auth)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers, mw)
	srv.SetupHTTPServer(r)

	scheduler := job.NewScheduler(&log, repos.PasswordReset)
	if err := scheduler.Start(); err != nil {
		srv.Close()
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer scheduler.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server stopped unexpectedly")
			_ = srv.Shutdown(context.Background())
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server exited properly")
	return nil
}
