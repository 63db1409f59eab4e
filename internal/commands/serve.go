package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/insightdelivered/gpay-extractor/internal/api"
	"github.com/insightdelivered/gpay-extractor/internal/config"
	"github.com/insightdelivered/gpay-extractor/internal/logging"
	"github.com/insightdelivered/gpay-extractor/internal/metrics"
)

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	collector := metrics.New("gpay_extractor")
	if err := collector.Register(registry); err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName:   "gpay-extractor",
		BodyLimit: cfg.Server.BodyLimitMB << 20,
	})
	api.Register(app, api.Options{
		Logger:   logger,
		Metrics:  collector,
		Registry: registry,
	})

	logger.Info("server listening", zap.String("addr", cfg.Server.Addr))
	return app.Listen(cfg.Server.Addr)
}
