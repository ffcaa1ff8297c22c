package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railbook/railbook/pkg/console"
	"github.com/railbook/railbook/pkg/export"
)

func main() {
	// Load .env into the environment, ignore if missing
	_ = godotenv.Load()

	if os.Getenv("RAILBOOK_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILBOOK_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railbook",
		Description: "Railway reservation system - train routes, fares, bookings, catering and the interactive console",

		Commands: []*cli.Command{
			console.RegisterCLI(),
			export.RegisterCLI(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
