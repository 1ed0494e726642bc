// Package remote reconciles the in-memory store with the remote snapshot
// service: periodic pulls of the consolidated snapshot and fire-and-forget
// pushes of local mutations.
package remote

import (
	"context"

	"github.com/KoboSteruS/atii/pkg/models"
)

// Source produces consolidated snapshots of all collections. The polling
// reconciler is the only consumer; a push-based channel can replace the HTTP
// implementation without touching the merge logic.
type Source interface {
	FetchSnapshot(ctx context.Context) (*models.Snapshot, error)
}
