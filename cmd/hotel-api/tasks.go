package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/deppfellow/hotel-booking/internal/database"
	"github.com/deppfellow/hotel-booking/internal/lib/email"
	"github.com/deppfellow/hotel-booking/internal/lib/utils"
	"github.com/deppfellow/hotel-booking/internal/repository"
	"github.com/deppfellow/hotel-booking/internal/server"
	"github.com/deppfellow/hotel-booking/internal/service"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, loggerService, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		return database.Migrate(cmd.Context(), &log, cfg)
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load hotels from a JSON array, adding columns for unknown attributes",
	Long: `Loads hotel documents into the catalog. Without --file the bundled
sample catalog is used. Hotels whose id already exists are skipped.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "path to a JSON array of hotel objects")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	data := database.SampleHotels
	if seedFile != "" {
		raw, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}
		data = raw
	}

	cfg, loggerService, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer loggerService.Shutdown()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		return err
	}
	defer srv.Close()

	services, err := service.NewService(srv, repository.NewRepositories(srv))
	if err != nil {
		return err
	}

	report, err := services.Seed.Seed(log.WithContext(cmd.Context()), data)
	if err != nil {
		return err
	}

	return utils.PrintJSON(cmd.OutOrStdout(), report)
}

var emailPreviewCmd = &cobra.Command{
	Use:   "email-preview <template>",
	Short: "Render an email template with sample data to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := email.Template(args[0])
		if !slices.Contains(email.Templates(), name) {
			return fmt.Errorf("unknown template %q, expected one of %v", args[0], email.Templates())
		}

		html, err := email.Render(name, email.PreviewData[name])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	},
}
