package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gophcal/internal/cli"
	"github.com/dmitrijs2005/gophcal/internal/config"
	"github.com/dmitrijs2005/gophcal/internal/database"
	"github.com/dmitrijs2005/gophcal/internal/logging"
	"github.com/dmitrijs2005/gophcal/internal/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger := logging.NewSlogLogger(logging.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr))

	db, err := database.Open(ctx, database.Config{Driver: cfg.Driver, DSN: cfg.DSN}, logger, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error(ctx, "error closing database", "error", err)
		}
	}()

	app := cli.NewApp(cfg, services.NewEventService(db, logger), logger, os.Stdin, os.Stdout)

	if cfg.ExportPath != "" {
		return app.Export(ctx, cfg.ExportPath)
	}
	return app.Run(ctx)
}
