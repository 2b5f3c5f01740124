package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"docstatus/internal/config"
	"docstatus/internal/database"
	"docstatus/internal/database/migration"
	"docstatus/internal/logger"
)

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create or upgrade the documents schema",
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(os.Stdout, cfg.LogLevel, cfg.Location())

		db, err := database.NewPostgres(c.Context, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		return migration.EnsureMigrated(c.Context, db, log, cfg.Database.Host)
	},
}
