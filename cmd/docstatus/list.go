package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"docstatus/internal/config"
	"docstatus/internal/database"
	"docstatus/internal/doclist"
	"docstatus/internal/logger"
	"docstatus/internal/repository/postgres"
	"docstatus/internal/service"
)

var listCommand = &cli.Command{
	Name:  "list",
	Usage: "Print the document list as a table",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "Column key (column1..column5) or label to sort by",
			Value:   doclist.ColumnLastUpdated,
		},
		&cli.BoolFlag{
			Name:  "desc",
			Usage: "Sort descending",
			Value: true,
		},
		&cli.StringSliceFlag{
			Name:  "activate",
			Usage: "Column key to activate after loading; repeat to toggle",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"n"},
			Usage:   "Maximum number of documents",
			Value:   50,
		},
	},
	Action: func(c *cli.Context) error {
		col, err := resolveColumn(c.String("sort"))
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.New(os.Stderr, cfg.LogLevel, cfg.Location())

		db, err := database.NewPostgres(c.Context, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		// listing needs neither object storage nor the queue
		svc := service.NewDocumentService(nil, postgres.NewDocumentPostgres(db), nil, cfg.MinIO.PresignExpiry)

		view, err := service.NewView(c.Context, svc, c.Int("limit"), doclist.Options{
			Logger: log,
			Sort:   &doclist.SortState{Key: col.Key, Descending: c.Bool("desc")},
		})
		if err != nil {
			return fmt.Errorf("failed to load documents: %w", err)
		}
		defer view.Close()

		for _, key := range c.StringSlice("activate") {
			if err := view.ActivateColumn(key); err != nil {
				return err
			}
		}

		return doclist.RenderTable(c.App.Writer, view.Snapshot())
	},
}

// resolveColumn accepts a sortable column's key or label.
func resolveColumn(arg string) (doclist.Column, error) {
	col, ok := doclist.ColumnByKey(arg)
	if !ok {
		col, ok = doclist.ColumnByLabel(arg)
	}
	if !ok || col.Kind() == doclist.KindNone {
		return doclist.Column{}, fmt.Errorf("unknown sort column %q", arg)
	}
	return col, nil
}
