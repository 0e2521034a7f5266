package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/property-ledger/api"
	"github.com/carson-networks/property-ledger/internal/config"
	"github.com/carson-networks/property-ledger/internal/filestore"
	"github.com/carson-networks/property-ledger/internal/i18n"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/observability"
	"github.com/carson-networks/property-ledger/internal/operator"
	"github.com/carson-networks/property-ledger/internal/service"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/migrations"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "property-ledger",
		Usage: "ledger backend for rental properties",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "optional YAML config file",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "migrate the database and serve the HTTP API",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "apply or revert the schema migrations",
				Subcommands: []*cli.Command{
					{Name: "up", Usage: "apply all pending migrations", Action: migrateUp},
					{Name: "down", Usage: "revert every migration", Action: migrateDown},
				},
			},
		},
		Action: serve,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("property-ledger")
	}
}

func setup(c *cli.Context) (*config.Config, *logrus.Logger, *storage.Storage, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.SetupLogging(cfg.Log.Level)

	store, err := storage.NewStorage(cfg.Postgres)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("storage.NewStorage: %w", err)
	}
	return cfg, logger, store, nil
}

func serve(c *cli.Context) error {
	cfg, logger, store, err := setup(c)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("property-ledger starting")

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		Stdout:  cfg.Tracing.Stdout,
		Version: api.Version,
	}, logger)
	if err != nil {
		return fmt.Errorf("observability.InitTracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.WithError(err).Warn("observability.shutdown")
		}
	}()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("storage.Ping: %w", err)
	}
	if err := migrations.Up(store.DB, logger); err != nil {
		return fmt.Errorf("migrations.Up: %w", err)
	}

	files, closeFiles, err := newFileStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeFiles()

	delegator := operator.NewOperatorDelegator(store, logger, cfg.Operator.Workers)
	delegator.Start()
	defer delegator.Stop()

	rest := api.Rest{
		Logger:       logger,
		Port:         cfg.HTTP.Port,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		Service:      service.NewService(store, delegator, files, cfg.Upload.MaxBytes),
		Translator:   i18n.NewTranslator(cfg.Locale.Default),
	}
	return rest.Serve(ctx)
}

func newFileStore(ctx context.Context, cfg *config.Config) (filestore.Store, func(), error) {
	if cfg.Storage.Backend == config.StorageBackendGCS {
		gcs, err := filestore.NewGCS(ctx, cfg.Storage.GCSBucket, cfg.Upload.MaxBytes)
		if err != nil {
			return nil, nil, fmt.Errorf("filestore.NewGCS: %w", err)
		}
		return gcs, func() { _ = gcs.Close() }, nil
	}
	return filestore.NewLocal(cfg.Upload.Dir, cfg.Upload.MaxBytes), func() {}, nil
}

func migrateUp(c *cli.Context) error {
	_, logger, store, err := setup(c)
	if err != nil {
		return err
	}
	defer store.Close()
	return migrations.Up(store.DB, logger)
}

func migrateDown(c *cli.Context) error {
	_, logger, store, err := setup(c)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := migrations.Down(store.DB); err != nil {
		return err
	}
	logger.Info("Migrations reverted")
	return nil
}
