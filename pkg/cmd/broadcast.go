package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KoboSteruS/atii/pkg/broadcast"
	"github.com/KoboSteruS/atii/pkg/channels/gochannel"
	"github.com/KoboSteruS/atii/pkg/channels/kafka"
	"github.com/ThreeDotsLabs/watermill"
)

func NewBroadcaster(provider string, logger *slog.Logger) broadcast.Broadcaster {
	switch provider {
	case "kafka":
		pub, sub, err := kafka.CreateChannel(watermill.NewSlogLogger(logger), "atii-sync")
		if err != nil {
			panic(fmt.Errorf("failed to create Kafka pub/sub: %w", err))
		}

		return broadcast.NewWatermillBroadcaster(pub, sub, logger)
	default:
		pub, sub, err := gochannel.CreateChannel(watermill.NewSlogLogger(logger))
		if err != nil {
			panic(fmt.Errorf("failed to create in-process pub/sub: %w", err))
		}

		return broadcast.NewWatermillBroadcaster(pub, sub, logger)
	}
}
