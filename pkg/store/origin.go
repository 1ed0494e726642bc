package store

import "context"

// UpdateOrigin tells the mutation pipeline where an assignment came from, so
// inbound updates are never mistaken for fresh local edits and re-broadcast
// in a loop.
type UpdateOrigin int

const (
	// OriginLocal is a user-initiated edit in this process. It fans out to
	// the cache, the broadcaster and the remote service.
	OriginLocal UpdateOrigin = iota
	// OriginRemote is an assignment applied from a remote snapshot pull.
	OriginRemote
	// OriginPeer is an assignment applied from another instance's broadcast.
	OriginPeer
)

var originNames = map[UpdateOrigin]string{
	OriginLocal:  "local",
	OriginRemote: "remote",
	OriginPeer:   "peer",
}

func (o UpdateOrigin) String() string {
	if name, ok := originNames[o]; ok {
		return name
	}

	return "unknown"
}

type originContextKey struct{}

// WithOrigin marks the context with the origin of the update being applied.
func WithOrigin(ctx context.Context, origin UpdateOrigin) context.Context {
	return context.WithValue(ctx, originContextKey{}, origin)
}

// OriginFromContext returns the update origin carried by the context,
// defaulting to OriginLocal for unmarked contexts.
func OriginFromContext(ctx context.Context) UpdateOrigin {
	if origin, ok := ctx.Value(originContextKey{}).(UpdateOrigin); ok {
		return origin
	}

	return OriginLocal
}
