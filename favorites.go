package brabant

import (
	"context"
)

// DeviceID identifies the browser or device that owns a favorite set. The
// web client sends it as an opaque header; the server never mints one.
type DeviceID string

// FavoriteStore is the per-device favorites capability. The authoritative
// copy lives on the client device; server-side implementations only mirror
// it so the API can intersect favorites with search results.
type FavoriteStore interface {
	// Contains reports whether id is in the device's favorite set.
	Contains(ctx context.Context, device DeviceID, id EventID) (bool, error)
	// Toggle adds or removes id and returns the new membership state.
	Toggle(ctx context.Context, device DeviceID, id EventID) (bool, error)
	// List returns the device's favorite IDs in a stable order.
	List(ctx context.Context, device DeviceID) ([]EventID, error)
}
