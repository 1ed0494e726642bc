package remote

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/KoboSteruS/atii/pkg/store"
	"github.com/robfig/cron/v3"
)

// DefaultInterval is how often the reconciler polls the remote source when
// no interval is configured.
const DefaultInterval = 30 * time.Second

// Reconciler periodically pulls the remote snapshot and applies it over the
// local store. Remote state wins per collection; collections missing from a
// snapshot or carrying the wrong container kind are left untouched.
type Reconciler struct {
	source   Source
	store    *store.Store
	logger   *slog.Logger
	interval time.Duration
	cron     *cron.Cron
}

func NewReconciler(source Source, st *store.Store, interval time.Duration, logger *slog.Logger) *Reconciler {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Reconciler{
		source:   source,
		store:    st,
		logger:   logger,
		interval: interval,
		cron:     cron.New(),
	}
}

// Start performs an immediate sync and then schedules recurring syncs at the
// configured interval.
func (r *Reconciler) Start(ctx context.Context) error {
	r.SyncOnce(ctx)

	// Scheduled syncs outlive the startup context: a canceled signal context
	// must not fail ticks that fire before Stop.
	syncCtx := context.WithoutCancel(ctx)

	_, err := r.cron.AddFunc(fmt.Sprintf("@every %s", r.interval), func() {
		r.SyncOnce(syncCtx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	r.cron.Start()

	r.logger.Info("Remote reconciler started", "interval", r.interval.String())

	return nil
}

// Stop cancels the recurring schedule. An in-flight sync is not aborted.
func (r *Reconciler) Stop() {
	r.cron.Stop()
	r.logger.Info("Remote reconciler stopped")
}

// SyncOnce fetches the remote snapshot and applies every present, valid
// collection to the store. When the remote is unreachable local data is kept
// and the failure is only logged.
func (r *Reconciler) SyncOnce(ctx context.Context) {
	snapshot, err := r.source.FetchSnapshot(ctx)
	if err != nil {
		r.logger.Warn("Remote unavailable, keeping local data", "error", err)

		return
	}

	ctx = store.WithOrigin(ctx, store.OriginRemote)

	for _, collection := range models.Collections() {
		raw := snapshot.Get(collection)
		if raw == nil {
			continue
		}

		if !collection.ValidValue(raw) {
			r.logger.Warn("Skipping remote collection with invalid payload", "collection", collection)

			continue
		}

		if err := r.store.Apply(ctx, collection, raw); err != nil {
			r.logger.Warn("Failed to apply remote collection", "collection", collection, "error", err)
		}
	}
}
