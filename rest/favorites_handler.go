package rest

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/prom"
	"github.com/frankokule97/brabant-events/service"
)

// FavoritesHandler provides a REST interface to the per-device favorite sets.
// The owning device identifies itself with the X-Device-ID header.
type FavoritesHandler struct {
	http.Handler // router

	service *service.Service
}

func newFavoritesHandler(service *service.Service) *FavoritesHandler {
	h := &FavoritesHandler{
		service: service,
	}

	m := mux.NewRouter()
	m.Handle(
		"/",
		prom.InstrumentHandler("FavoriteList", http.HandlerFunc(h.HandleList)),
	).Methods("GET")
	m.Handle(
		"/{id}",
		prom.InstrumentHandler("FavoriteToggle", http.HandlerFunc(h.HandleToggle)),
	).Methods("POST")

	h.Handler = m

	return h
}

// FavoriteToggleReply reports an event's membership state after a toggle.
type FavoriteToggleReply struct {
	ID       brabant.EventID `json:"id"`
	Favorite bool            `json:"favorite"`
}

// HandleList wraps Service.FavoriteList in a REST interface.
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	handleJSON(w, r, func(ctx context.Context) (interface{}, error) {
		return h.service.FavoriteList(ctx, device(r))
	})
}

// HandleToggle wraps Service.FavoriteToggle in a REST interface.
func (h *FavoritesHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	eventID := brabant.EventID(mux.Vars(r)["id"])

	handleJSON(w, r, func(ctx context.Context) (interface{}, error) {
		on, err := h.service.FavoriteToggle(ctx, device(r), eventID)
		if err != nil {
			return nil, err
		}
		return FavoriteToggleReply{ID: eventID, Favorite: on}, nil
	})
}
