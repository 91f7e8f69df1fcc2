package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/ovella/internal/api"
	"github.com/terraincognita07/ovella/internal/cli"
	"github.com/terraincognita07/ovella/internal/config"
	"github.com/terraincognita07/ovella/internal/db"
	"github.com/terraincognita07/ovella/internal/logging"
	"github.com/terraincognita07/ovella/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ovella",
		Short:         "Cycle statistics and fertility-window prediction",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newServeCommand())
	root.AddCommand(newPredictCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP calculation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newPredictCommand() *cobra.Command {
	options := cli.PredictOptions{}

	command := &cobra.Command{
		Use:   "predict",
		Short: "Compute a one-shot cycle roadmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunPredictCommand(options, cmd.OutOrStdout())
		},
	}

	command.Flags().StringVar(&options.Start, "start", "", "cycle start date (YYYY-MM-DD)")
	command.Flags().Float64Var(&options.BleedDays, "bleed", 0, "average bleed duration in days")
	command.Flags().Float64Var(&options.CycleDays, "cycle", 0, "average cycle length in days")
	command.Flags().StringVar(&options.Variant, "variant", services.VariantEnriched, "calculation variant (classic or enriched)")
	command.Flags().BoolVar(&options.AsJSON, "json", false, "print the full prediction as JSON")
	command.Flags().StringVar(&options.ExportPath, "out", "", "write the export document to this file")
	_ = command.MarkFlagRequired("start")
	_ = command.MarkFlagRequired("bleed")
	_ = command.MarkFlagRequired("cycle")

	return command
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	variant := services.ResolveVariant(cfg.Variant)
	handler := api.NewHandler(database, cfg.SecretKey, variant, logger, cfg.Environment == "production")

	app := fiber.New(fiber.Config{
		AppName:               "Ovella",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	retention := services.NewRetentionService(
		db.NewSessionRepository(database),
		cfg.SessionTTL,
		cfg.RetentionCron,
		logger,
	)
	if err := retention.Start(); err != nil {
		return fmt.Errorf("start retention job: %w", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		retention.Stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.WithFields(map[string]interface{}{
		"port":    cfg.Port,
		"db":      cfg.DBPath,
		"variant": variant.Name,
	}).Info("ovella listening")

	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
