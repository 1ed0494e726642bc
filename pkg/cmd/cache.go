// Package cmd provides shared constructors for the binaries: cache and
// broadcast backends are selected from configuration here so both entry
// points wire them identically.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/KoboSteruS/atii/pkg/cache"
	"github.com/KoboSteruS/atii/pkg/cache/file"
	"github.com/KoboSteruS/atii/pkg/cache/redis"
)

var supportedCacheProviders = []string{"file", "redis"}

func NewCache(cacheURL string, logger *slog.Logger) cache.Cache {
	switch parseCacheProvider(cacheURL) {
	case "redis":
		c, err := redis.NewCache(cacheURL, logger)
		if err != nil {
			panic(fmt.Errorf("failed to create redis cache: %w", err))
		}

		return c
	default:
		return file.NewCache(cacheURL)
	}
}

func parseCacheProvider(cacheURL string) string {
	parts := strings.Split(cacheURL, "://")

	provider := parts[0]
	for _, supported := range supportedCacheProviders {
		if provider == supported {
			return provider
		}
	}

	return "file"
}
