// Package cache provides the persistent key/value cache the sync layer
// warm-starts from and falls back to when the remote service is unreachable.
package cache

import (
	"context"
	"encoding/json"
)

// Cache stores named JSON blobs under stable keys. Values are overwritten on
// every write; there is no TTL, versioning or compaction.
//
// Read reports absence instead of failing: a missing key and a malformed
// stored value are indistinguishable to callers, both mean "no cached data".
type Cache interface {
	Read(ctx context.Context, key string) (json.RawMessage, bool)
	Write(ctx context.Context, key string, value json.RawMessage) error
	HealthCheck(ctx context.Context) error
	Close(ctx context.Context) error
}
