// Package file provides a file-based cache implementation, one JSON file per
// key under a root directory.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Cache implements the cache.Cache interface on the local file system.
type Cache struct {
	root string
}

// NewCache creates a file cache rooted at the given directory. A "file://"
// prefix on the root is accepted and stripped.
func NewCache(root string) *Cache {
	return &Cache{
		root: strings.TrimPrefix(root, "file://"),
	}
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.root, key+".json")
}

// Read returns the value stored for key. Missing files and files that do not
// hold valid JSON both read as absent.
func (c *Cache) Read(_ context.Context, key string) (json.RawMessage, bool) {
	body, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	if !json.Valid(body) {
		return nil, false
	}

	return body, true
}

// Write stores the value under key, creating the root directory on first use.
func (c *Cache) Write(_ context.Context, key string, value json.RawMessage) error {
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return err
	}

	return os.WriteFile(c.path(key), value, 0o644)
}

// HealthCheck verifies the root directory exists or can be created.
func (c *Cache) HealthCheck(_ context.Context) error {
	return os.MkdirAll(c.root, 0o755)
}

// Close is a no-op for file-based caching.
func (c *Cache) Close(_ context.Context) error {
	return nil
}
