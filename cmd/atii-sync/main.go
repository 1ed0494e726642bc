// Package main provides the sync daemon: it warm-starts the in-memory store
// from the cache, listens for peer change events, reconciles against the
// remote snapshot service and optionally serves the admin API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/KoboSteruS/atii/pkg/cmd"
	"github.com/KoboSteruS/atii/pkg/log"
	"github.com/KoboSteruS/atii/pkg/remote"
	"github.com/KoboSteruS/atii/pkg/store"
	"github.com/joho/godotenv"
	cli "github.com/urfave/cli/v3"
)

func main() {
	_ = godotenv.Load()

	command := &cli.Command{
		Name:                  "atii-sync",
		EnableShellCompletion: true,
		Usage:                 "Keep local site content in sync with the remote data service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "cache-url",
				Usage:   "Cache backend URL (file://<dir> or redis://<addr>)",
				Value:   "file://./data",
				Sources: cli.EnvVars("CACHE_URL"),
			},
			&cli.StringFlag{
				Name:    "remote-url",
				Usage:   "Base URL of the remote data service, empty disables reconciliation",
				Sources: cli.EnvVars("API_URL"),
			},
			&cli.StringFlag{
				Name:    "api-token",
				Usage:   "Bearer token for the remote data service",
				Sources: cli.EnvVars("API_TOKEN"),
			},
			&cli.StringFlag{
				Name:    "broadcast",
				Usage:   "Broadcast channel type (gochannel, kafka)",
				Value:   "gochannel",
				Sources: cli.EnvVars("BROADCAST_CHANNEL"),
			},
			&cli.DurationFlag{
				Name:    "sync-interval",
				Usage:   "How often to poll the remote data service",
				Value:   remote.DefaultInterval,
				Sources: cli.EnvVars("SYNC_INTERVAL"),
			},
			&cli.IntFlag{
				Name:    "admin-port",
				Usage:   "Port for the embedded admin API, 0 disables it",
				Value:   0,
				Sources: cli.EnvVars("ADMIN_PORT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: runSync,
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}

func runSync(ctx context.Context, command *cli.Command) error {
	log.Setup(command.String("log-level"))

	logger := log.WithModule("atii-sync")

	logger.InfoContext(ctx, "Initializing sync daemon")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataCache := cmd.NewCache(command.String("cache-url"), logger)
	defer func() {
		if err := dataCache.Close(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to close cache", "error", err)
		}
	}()

	bus := cmd.NewBroadcaster(command.String("broadcast"), logger)
	defer func() {
		if err := bus.Close(); err != nil {
			logger.ErrorContext(ctx, "Failed to close broadcaster", "error", err)
		}
	}()

	var client *remote.Client
	if remoteURL := command.String("remote-url"); remoteURL != "" {
		client = remote.NewClient(remoteURL, command.String("api-token"), logger)
	}

	var pusher store.Pusher
	if client != nil {
		pusher = client
	}

	st := store.New(dataCache, bus, pusher, logger)
	st.Load(ctx)

	defer st.Flush()

	if err := bus.Subscribe(ctx, st.HandleChange); err != nil {
		logger.ErrorContext(ctx, "Failed to subscribe to change events", "error", err)

		return err
	}

	if client != nil {
		reconciler := remote.NewReconciler(client, st, command.Duration("sync-interval"), logger)
		if err := reconciler.Start(ctx); err != nil {
			logger.ErrorContext(ctx, "Failed to start reconciler", "error", err)

			return err
		}

		defer reconciler.Stop()
	}

	if port := command.Int("admin-port"); port > 0 {
		admin := NewAdmin(st, log.WithModule("admin"))
		go admin.Start(port)
	}

	logger.InfoContext(ctx, "Sync daemon running")

	<-ctx.Done()

	logger.Info("Shutting down sync daemon")

	return nil
}
