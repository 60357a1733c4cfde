package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pg "lar-amigo/internal/adapters/storage/postgres"
	"lar-amigo/internal/config"
	"lar-amigo/internal/content"
	"lar-amigo/internal/platform/logger"
)

// --- db ---

func newDBCmd() *cobra.Command {
	var dsn string

	db := &cobra.Command{
		Use:   "db",
		Short: "Administrar el espejo Postgres del catálogo",
	}
	db.PersistentFlags().StringVar(&dsn, "dsn", "", "DSN de Postgres (default env DB_DSN)")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar migraciones pendientes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := dbSetup(cmd, dsn)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return pg.Migrate(cfg.DBDSN, log)
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "Migrar y cargar el catálogo embebido",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := dbSetup(cmd, dsn)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			if err := pg.Migrate(cfg.DBDSN, log); err != nil {
				return err
			}

			catalog, err := content.Catalog()
			if err != nil {
				return err
			}

			openCtx, cancel := context.WithTimeout(cmd.Context(), pg.ConnectTimeout)
			conn, err := pg.Open(openCtx, cfg.DBDSN, pg.DefaultPool())
			cancel()
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := pg.SeedCatalog(cmd.Context(), conn, catalog); err != nil {
				return err
			}
			log.Info("catalog seeded", map[string]any{"pets": len(catalog)})
			return nil
		},
	}

	db.AddCommand(migrate, seed)
	return db
}

// dbSetup combina --dsn con la config de entorno; los logs van a stderr.
func dbSetup(cmd *cobra.Command, dsn string) (config.Config, logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if dsn != "" {
		cfg.DBDSN = dsn
	}
	if cfg.DBDSN == "" {
		return config.Config{}, nil, fmt.Errorf("--dsn or DB_DSN is required")
	}

	opts := cfg.LoggerOptions()
	opts.Output = cmd.ErrOrStderr()
	return cfg, logger.New(opts), nil
}
