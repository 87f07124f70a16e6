package service

import (
	"context"
	"encoding/json"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
	"github.com/frankokule97/brabant-events/log"
	"github.com/frankokule97/brabant-events/ticketmaster"
)

// EventSearch queries the provider for events in the requested window,
// normalizes the raw records and re-filters the survivors by window, free
// text and category.
//
// Records the normalizer rejects are dropped silently; an empty provider
// response is an empty result, not an error.
func (s *Service) EventSearch(ctx context.Context, req brabant.EventSearchRequest) (brabant.EventSearchReply, error) {
	const op errors.Op = "Service.EventSearch"

	window := brabant.ResolveWindow(s.now(), req.When)
	return s.search(ctx, op, window, req)
}

// EventHighlights returns the first page of events within the short
// highlights horizon. It backs the landing page's teaser section.
func (s *Service) EventHighlights(ctx context.Context) (brabant.EventSearchReply, error) {
	const op errors.Op = "Service.EventHighlights"

	window := brabant.ResolveHorizon(s.now(), brabant.HighlightsHorizonMonths)
	return s.search(ctx, op, window, brabant.EventSearchRequest{})
}

func (s *Service) search(ctx context.Context, op errors.Op, window brabant.TimeWindow, req brabant.EventSearchRequest) (brabant.EventSearchReply, error) {
	reply := brabant.EventSearchReply{Events: []brabant.Event{}}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	params := ticketmaster.SearchParams{
		CountryCode: s.Search.CountryCode,
		GeoPoint:    s.Search.GeoPoint,
		Radius:      s.Search.Radius,
		Unit:        s.Search.Unit,
		Sort:        "date,asc",
		Start:       window.Start,
		End:         window.End,
		Size:        s.pageSize(req.Size),
		Page:        req.Page,
	}

	var resp *ticketmaster.SearchResponse
	err := s.retry(ctx, 2, func() error {
		var err error
		resp, err = s.Provider.SearchEvents(ctx, params)
		return err
	})
	if err != nil {
		return reply, errors.E(op, errors.Upstream, err)
	}

	for _, raw := range resp.Embedded.Events {
		event := ticketmaster.Normalize(raw)
		if event == nil {
			continue
		}
		if !brabant.InWindow(*event, window) {
			continue
		}
		if !brabant.MatchesQuery(*event, req.Query) {
			continue
		}
		if !brabant.MatchesCategory(*event, req.Category) {
			continue
		}
		reply.Events = append(reply.Events, *event)
	}

	reply.Page = brabant.PageInfo{
		Size:          resp.Page.Size,
		TotalElements: resp.Page.TotalElements,
		TotalPages:    resp.Page.TotalPages,
		Number:        resp.Page.Number,
	}
	return reply, nil
}

// EventGet retrieves one event by its provider id, serving from the fetch
// cache when the cached record is still fresh. A record the provider no
// longer has, or one too sparse to normalize, is NotExist.
func (s *Service) EventGet(ctx context.Context, id brabant.EventID) (brabant.Event, error) {
	const op errors.Op = "Service.EventGet"

	if id == "" {
		return brabant.Event{}, errors.E(op, errors.Invalid, "missing event id")
	}

	logger := log.FromContext(ctx)
	now := s.now()

	if s.Cache != nil {
		raw, fetchedAt, err := s.Cache.Get(ctx, id)
		if err == nil && now.Sub(fetchedAt) <= s.CacheTTL {
			return s.normalizeRaw(op, id, raw)
		}
		if err != nil && !errors.Is(errors.NotExist, err) {
			logger.Warn("event cache read failed", zap.String("eventID", string(id)), zap.Error(err))
		}
	}

	var raw json.RawMessage
	err := s.retry(ctx, 2, func() error {
		var err error
		raw, err = s.Provider.GetEvent(ctx, string(id))
		if ticketmaster.IsNotFound(err) {
			// Don't burn retries on an event that's gone.
			return errors.E(errors.NotExist, err)
		}
		return err
	})
	if errors.Is(errors.NotExist, err) {
		return brabant.Event{}, errors.E(op, id, errors.NotExist)
	} else if err != nil {
		return brabant.Event{}, errors.E(op, id, errors.Upstream, err)
	}

	if s.Cache != nil {
		if err := s.Cache.Save(ctx, raw, now); err != nil {
			logger.Warn("event cache write failed", zap.String("eventID", string(id)), zap.Error(err))
		}
	}

	return s.normalizeRaw(op, id, raw)
}

func (s *Service) normalizeRaw(op errors.Op, id brabant.EventID, raw json.RawMessage) (brabant.Event, error) {
	var rawEvent ticketmaster.Event
	if err := json.Unmarshal(raw, &rawEvent); err != nil {
		return brabant.Event{}, errors.E(op, id, errors.Upstream, err)
	}

	event := ticketmaster.Normalize(rawEvent)
	if event == nil {
		return brabant.Event{}, errors.E(op, id, errors.NotExist, "record not usable")
	}
	return *event, nil
}

// retry is a simple exponential backoff function. If you cancel the context
// passed to it retries will stop. errors.NotExist results are terminal.
func (s *Service) retry(ctx context.Context, count int, f func() error) error {
	retries := count

RETRY:
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := f(); err != nil {
		if retries == 0 || errors.Is(errors.NotExist, err) {
			return err
		}

		retries--
		backoff := time.Duration((math.Pow(2, float64(count-retries-1)) + rand.Float64()) * float64(s.RetryBackoff))
		time.Sleep(backoff)
		goto RETRY
	}

	return nil
}
