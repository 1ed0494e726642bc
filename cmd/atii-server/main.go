package main

import (
	"context"
	"os"

	"github.com/KoboSteruS/atii/pkg/cmd"
	"github.com/KoboSteruS/atii/pkg/log"
	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 3001

func main() {
	_ = godotenv.Load()

	logger := log.WithModule("server")

	command := &cli.Command{
		Name:                  "atii-server",
		Usage:                 "Serve the consolidated site data snapshot",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the snapshot server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:    "cache-url",
				Usage:   "Cache backend URL (file://<dir> or redis://<addr>)",
				Value:   "file://./data",
				Sources: cli.EnvVars("CACHE_URL"),
			},
			&cli.StringFlag{
				Name:    "auth-token",
				Usage:   "Bearer token required on data endpoints, empty disables auth",
				Sources: cli.EnvVars("API_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger.InfoContext(ctx, "Initializing snapshot server")

			dataCache := cmd.NewCache(command.String("cache-url"), logger)
			defer func() {
				if err := dataCache.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close cache", "error", err)
				}
			}()

			api := NewAPI(logger, dataCache, command.String("auth-token"))

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start snapshot server", "error", err)
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
