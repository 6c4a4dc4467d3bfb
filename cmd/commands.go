package main

import (
	"context"
	"fmt"

	"inventory_management/internal/config"
	"inventory_management/internal/logger"
	"inventory_management/internal/repository/db"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "inventory",
		Short:         "Inventory management API server",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cfgPath)
		},
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default configs/config.yml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply the schema and serve the HTTP API",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), cfgPath)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema and exit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd.Context(), cfgPath)
			},
		},
	)
	return root
}

// bootstrap loads config, builds the logger and opens the schema-ready database.
func bootstrap(ctx context.Context, cfgPath string) (*config.Config, *logger.Logger, *sqlx.DB, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	conn, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s database: %w", cfg.DB.Driver, err)
	}
	if err := db.Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return cfg, log, conn, nil
}

func runMigrate(ctx context.Context, cfgPath string) error {
	cfg, log, conn, err := bootstrap(ctx, cfgPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer func() { _ = log.Sync() }()

	log.Infow("schema applied", "driver", cfg.DB.Driver)
	return nil
}
