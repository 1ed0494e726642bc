// Package store holds the canonical in-memory site content for one process
// and fans every local mutation out to the persistent cache, the change
// broadcaster and the remote service. The cache and the remote service are
// eventually-consistent replicas; during a session the store is the single
// source of truth.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/KoboSteruS/atii/pkg/broadcast"
	"github.com/KoboSteruS/atii/pkg/cache"
	"github.com/KoboSteruS/atii/pkg/models"
)

// Pusher sends the full replacement value of one collection to the remote
// service. Pushes are fire-and-forget: the store logs failures and never
// rolls back the local mutation.
type Pusher interface {
	Push(ctx context.Context, collection models.Collection, value json.RawMessage) error
}

// Store owns the five content collections. All mutation methods succeed
// locally regardless of cache, broadcast or remote failures; synchronization
// may silently lag, callers never see an error for it.
type Store struct {
	logger *slog.Logger
	cache  cache.Cache
	bus    broadcast.Broadcaster
	pusher Pusher

	mu        sync.Mutex
	websites  []models.Website
	templates []models.Template
	pages     []models.PageContent
	settings  models.Settings
	schemas   map[string][]models.SchemaNode

	pushes sync.WaitGroup
}

// New creates a store seeded with the built-in defaults. The broadcaster and
// pusher may be nil when the deployment runs without cross-instance or remote
// synchronization. Call Load to warm-start from the cache.
func New(c cache.Cache, bus broadcast.Broadcaster, pusher Pusher, logger *slog.Logger) *Store {
	return &Store{
		logger:    logger,
		cache:     c,
		bus:       bus,
		pusher:    pusher,
		websites:  models.DefaultWebsites(),
		templates: models.DefaultTemplates(),
		pages:     models.DefaultPages(),
		settings:  models.DefaultSettings(),
		schemas:   models.DefaultWorkflowSchemas(),
	}
}

// Load replaces each collection with its cached value where one exists and
// decodes cleanly; everything else keeps the built-in defaults. Malformed
// cache entries are indistinguishable from absent ones.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.websites = loadCollection(ctx, s, models.CollectionWebsites, models.DefaultWebsites)
	s.templates = loadCollection(ctx, s, models.CollectionTemplates, models.DefaultTemplates)
	s.pages = loadCollection(ctx, s, models.CollectionPages, models.DefaultPages)
	s.settings = loadCollection(ctx, s, models.CollectionSettings, models.DefaultSettings)
	s.schemas = loadCollection(ctx, s, models.CollectionWorkflowSchemas, models.DefaultWorkflowSchemas)
}

func loadCollection[T any](ctx context.Context, s *Store, collection models.Collection, fallback func() T) T {
	raw, ok := s.cache.Read(ctx, collection.CacheKey())
	if !ok {
		return fallback()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("ignoring unreadable cached collection", "collection", collection, "error", err)

		return fallback()
	}

	return value
}

// Apply replaces one collection with an inbound serialized value (remote pull
// or peer broadcast). Malformed payloads leave the collection untouched and
// are reported to the inbound caller only.
func (s *Store) Apply(ctx context.Context, collection models.Collection, raw json.RawMessage) error {
	if !collection.Valid() {
		return fmt.Errorf("unknown collection %q", collection)
	}

	// Guard the container kind before decoding. "null" and bare scalars are
	// well-formed JSON but would zero the collection, and a nil schema map
	// panics on the next save.
	if !collection.ValidValue(raw) {
		return fmt.Errorf("wrong container kind for %s", collection)
	}

	switch collection {
	case models.CollectionWebsites:
		return applyCollection(ctx, s, collection, raw, func(v []models.Website) { s.websites = v })
	case models.CollectionTemplates:
		return applyCollection(ctx, s, collection, raw, func(v []models.Template) { s.templates = v })
	case models.CollectionPages:
		return applyCollection(ctx, s, collection, raw, func(v []models.PageContent) { s.pages = v })
	case models.CollectionSettings:
		return applyCollection(ctx, s, collection, raw, func(v models.Settings) { s.settings = v })
	case models.CollectionWorkflowSchemas:
		return applyCollection(ctx, s, collection, raw, func(v map[string][]models.SchemaNode) { s.schemas = v })
	}

	return fmt.Errorf("unknown collection %q", collection)
}

func applyCollection[T any](ctx context.Context, s *Store, collection models.Collection, raw json.RawMessage, assign func(T)) error {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}

	s.mu.Lock()
	assign(value)
	s.mu.Unlock()

	s.emit(ctx, collection, value)

	return nil
}

// HandleChange applies a change event received from another instance. It is
// the handler wired into the broadcaster subscription. Failures are terminal
// here; nothing propagates past the sync boundary.
func (s *Store) HandleChange(ctx context.Context, event broadcast.ChangeEvent) error {
	collection, ok := models.CollectionByCacheKey(event.Key)
	if !ok {
		s.logger.Debug("ignoring change event for unknown key", "key", event.Key)

		return nil
	}

	ctx = WithOrigin(ctx, OriginPeer)

	if err := s.Apply(ctx, collection, json.RawMessage(event.NewValue)); err != nil {
		s.logger.Warn("ignoring malformed change event", "key", event.Key, "error", err)
	}

	return nil
}

// emit runs the downstream effects of one collection change, exactly once per
// mutation. The cache is updated for every origin; broadcast and remote push
// happen only for genuine local edits.
func (s *Store) emit(ctx context.Context, collection models.Collection, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("failed to encode collection", "collection", collection, "error", err)

		return
	}

	if err := s.cache.Write(ctx, collection.CacheKey(), raw); err != nil {
		s.logger.Warn("cache write failed", "collection", collection, "error", err)
	}

	if OriginFromContext(ctx) != OriginLocal {
		return
	}

	if s.bus != nil {
		event := broadcast.ChangeEvent{Key: collection.CacheKey(), NewValue: string(raw)}
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Warn("change broadcast failed", "collection", collection, "error", err)
		}
	}

	if s.pusher != nil {
		s.pushes.Add(1)

		pushCtx := context.WithoutCancel(ctx)

		go func() {
			defer s.pushes.Done()

			if err := s.pusher.Push(pushCtx, collection, raw); err != nil {
				s.logger.Warn("remote push failed, data saved locally only", "collection", collection, "error", err)
			}
		}()
	}
}

// Flush waits for in-flight remote pushes. Best effort on shutdown.
func (s *Store) Flush() {
	s.pushes.Wait()
}

// Websites returns a copy of the portfolio collection.
func (s *Store) Websites() []models.Website {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.websites)
}

// Templates returns a copy of the templates collection.
func (s *Store) Templates() []models.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.templates)
}

// Pages returns a copy of the pages collection.
func (s *Store) Pages() []models.PageContent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.pages)
}

// Settings returns the current site settings.
func (s *Store) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// WorkflowSchemas returns a copy of the schema map.
func (s *Store) WorkflowSchemas() map[string][]models.SchemaNode {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.schemas)
}
