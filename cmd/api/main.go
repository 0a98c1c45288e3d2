package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/contribtrack/internal/bootstrap"
	"github.com/yigit/contribtrack/internal/pkg/logger"
	"github.com/yigit/contribtrack/internal/server"
)

// @title Contribution Tracker API
// @version 1.0
// @description API for tracking department contribution allocations across academy, intensive and niat

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	app := &cli.App{
		Name:  "contribtrack",
		Usage: "serve the contribution tracker API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML configuration file",
				Value:   bootstrap.DefaultConfigPath,
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}

func run(c *cli.Context) error {
	srv, err := server.NewServer(c.String("config"))
	if err != nil {
		return err
	}

	// blocks until shutdown signal
	return srv.Run()
}
