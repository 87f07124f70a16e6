// Package rest contains a REST handler for the event site backend. It wraps
// Service in a web-accessible API.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path"
	"strings"

	"go.uber.org/zap"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
	"github.com/frankokule97/brabant-events/log"
	"github.com/frankokule97/brabant-events/service"
)

// deviceHeader carries the visitor's opaque per-browser identifier. The web
// client mints it once and sends it with every favorites request.
const deviceHeader = "X-Device-ID"

// New creates a new REST handler wrapping a Service.
func New(service *service.Service) *Handler {
	return &Handler{
		EventsHandler:    newEventsHandler(service),
		CalendarHandler:  newCalendarHandler(service),
		FavoritesHandler: newFavoritesHandler(service),
	}
}

// Handler is an http.Handler that provides a REST interface for the event
// site backend.
type Handler struct {
	EventsHandler    *EventsHandler
	CalendarHandler  *CalendarHandler
	FavoritesHandler *FavoritesHandler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var head string
	head, r.URL.Path = ShiftPath(r.URL.Path)

	switch head {
	case "events":
		if h.EventsHandler != nil {
			h.EventsHandler.ServeHTTP(w, r)
		} else {
			http.NotFound(w, r)
		}

	case "calendar":
		if h.CalendarHandler != nil {
			h.CalendarHandler.ServeHTTP(w, r)
		} else {
			http.NotFound(w, r)
		}

	case "favorites":
		if h.FavoritesHandler != nil {
			h.FavoritesHandler.ServeHTTP(w, r)
		} else {
			http.NotFound(w, r)
		}

	case "healthz":
		fmt.Fprintln(w, "ok")

	default:
		http.NotFound(w, r)
	}
}

// ShiftPath splits off the first component of p, which will be cleaned of
// relative components before processing. head will never contain a slash and
// tail will always be a rooted path without trailing slash.
func ShiftPath(p string) (head, tail string) {
	p = path.Clean("/" + p)
	i := strings.Index(p[1:], "/") + 1
	if i <= 0 {
		return p[1:], "/"
	}
	return p[1:i], p[i:]
}

// device extracts the per-browser identifier from the request headers.
func device(r *http.Request) brabant.DeviceID {
	return brabant.DeviceID(strings.TrimSpace(r.Header.Get(deviceHeader)))
}

func handleJSON(w http.ResponseWriter, r *http.Request, f func(context.Context) (interface{}, error)) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	resp, err := f(ctx)
	if err != nil {
		errResp := errors.ResponseForError(err)
		if errResp.Status >= 500 {
			logger.Error("internal server error", zap.Error(err))
		} else {
			logger.Warn("handler failed", zap.Error(err))
		}

		writeErrorResp(w, errResp)
		return
	}

	js, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		logger.Error("write json failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(js)
}

func writeErrorResp(w http.ResponseWriter, resp errors.Response) {
	js, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(resp.Status)
	w.Write(js)
}
