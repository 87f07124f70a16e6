// Package favorites provides a server-side stand-in for the per-device
// favorite sets that normally live in the visitor's browser storage. The
// authoritative copy is client-owned; this store only mirrors toggles so the
// API can answer membership queries.
package favorites

import (
	"context"
	"sort"
	"sync"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
)

// MemStore keeps favorite sets in memory, keyed by device. It implements
// brabant.FavoriteStore and is safe for concurrent use.
type MemStore struct {
	mu   sync.Mutex
	sets map[brabant.DeviceID]map[brabant.EventID]bool
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		sets: make(map[brabant.DeviceID]map[brabant.EventID]bool),
	}
}

// Contains reports whether id is in the device's favorite set.
func (s *MemStore) Contains(ctx context.Context, device brabant.DeviceID, id brabant.EventID) (bool, error) {
	if device == "" {
		return false, errors.E(errors.Invalid, "missing device id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sets[device][id], nil
}

// Toggle adds or removes id from the device's set and returns the new
// membership state.
func (s *MemStore) Toggle(ctx context.Context, device brabant.DeviceID, id brabant.EventID) (bool, error) {
	if device == "" {
		return false, errors.E(errors.Invalid, "missing device id")
	}
	if id == "" {
		return false, errors.E(errors.Invalid, "missing event id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[device]
	if set == nil {
		set = make(map[brabant.EventID]bool)
		s.sets[device] = set
	}

	if set[id] {
		delete(set, id)
		return false, nil
	}
	set[id] = true
	return true, nil
}

// List returns the device's favorite IDs sorted lexically.
func (s *MemStore) List(ctx context.Context, device brabant.DeviceID) ([]brabant.EventID, error) {
	if device == "" {
		return nil, errors.E(errors.Invalid, "missing device id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]brabant.EventID, 0, len(s.sets[device]))
	for id := range s.sets[device] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}
