package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title Document Status API
// @version 1.0
// @description Document storage with embedding status and server-side sortable list views.
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "docstatus",
		Usage: "Document storage and embedding status service",
		Commands: []*cli.Command{
			serveCommand,
			migrateCommand,
			listCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
