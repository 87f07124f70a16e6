package service

import (
	"context"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
)

// FavoriteToggle flips an event's membership in the device's favorite set
// and returns the new state.
func (s *Service) FavoriteToggle(ctx context.Context, device brabant.DeviceID, id brabant.EventID) (bool, error) {
	const op errors.Op = "Service.FavoriteToggle"

	if device == "" {
		return false, errors.E(op, errors.Invalid, "missing device id")
	}
	if id == "" {
		return false, errors.E(op, errors.Invalid, "missing event id")
	}

	on, err := s.Favorites.Toggle(ctx, device, id)
	if err != nil {
		return false, errors.E(op, id, err)
	}
	return on, nil
}

// FavoriteList returns the device's favorite event IDs.
func (s *Service) FavoriteList(ctx context.Context, device brabant.DeviceID) ([]brabant.EventID, error) {
	const op errors.Op = "Service.FavoriteList"

	if device == "" {
		return nil, errors.E(op, errors.Invalid, "missing device id")
	}

	ids, err := s.Favorites.List(ctx, device)
	if err != nil {
		return nil, errors.E(op, err)
	}
	if ids == nil {
		ids = []brabant.EventID{}
	}
	return ids, nil
}
