package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/prom"
	"github.com/frankokule97/brabant-events/service"
)

// EventsHandler provides a REST interface to the event listing and lookup
// functions.
type EventsHandler struct {
	http.Handler // router

	service *service.Service
}

func newEventsHandler(service *service.Service) *EventsHandler {
	h := &EventsHandler{
		service: service,
	}

	m := mux.NewRouter()
	m.Handle(
		"/",
		prom.InstrumentHandler("EventSearch", http.HandlerFunc(h.HandleSearch)),
	).Methods("GET")
	m.Handle(
		"/highlights",
		prom.InstrumentHandler("EventHighlights", http.HandlerFunc(h.HandleHighlights)),
	).Methods("GET")
	m.Handle(
		"/{id}",
		prom.InstrumentHandler("EventGet", http.HandlerFunc(h.HandleGet)),
	).Methods("GET")

	h.Handler = m

	return h
}

// HandleSearch wraps Service.EventSearch in a REST interface. Filters come in
// as query parameters: when (today|weekend|month), q, cat, page, size.
func (h *EventsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	handleJSON(w, r, func(ctx context.Context) (interface{}, error) {
		req := brabant.EventSearchRequest{
			When:     brabant.ParseWindowKind(r.FormValue("when")),
			Query:    r.FormValue("q"),
			Category: r.FormValue("cat"),
		}
		if page, err := strconv.Atoi(r.FormValue("page")); err == nil && page > 0 {
			req.Page = page
		}
		if size, err := strconv.Atoi(r.FormValue("size")); err == nil && size > 0 {
			req.Size = size
		}

		return h.service.EventSearch(ctx, req)
	})
}

// HandleHighlights wraps Service.EventHighlights in a REST interface.
func (h *EventsHandler) HandleHighlights(w http.ResponseWriter, r *http.Request) {
	handleJSON(w, r, func(ctx context.Context) (interface{}, error) {
		return h.service.EventHighlights(ctx)
	})
}

// HandleGet wraps Service.EventGet in a REST interface.
func (h *EventsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	handleJSON(w, r, func(ctx context.Context) (interface{}, error) {
		return h.service.EventGet(ctx, brabant.EventID(eventID))
	})
}
