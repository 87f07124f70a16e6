package rest

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gorilla/mux"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
	"github.com/frankokule97/brabant-events/log"
	"github.com/frankokule97/brabant-events/prom"
	"github.com/frankokule97/brabant-events/service"
)

// CalendarHandler serves single-event iCalendar downloads.
type CalendarHandler struct {
	http.Handler // router

	service *service.Service
}

func newCalendarHandler(service *service.Service) *CalendarHandler {
	h := &CalendarHandler{
		service: service,
	}

	m := mux.NewRouter()
	m.Handle(
		"/{id}",
		prom.InstrumentHandler("CalendarExport", http.HandlerFunc(h.HandleExport)),
	).Methods("GET")

	h.Handler = m

	return h
}

// HandleExport wraps Service.CalendarExport in a REST interface. The id path
// segment may carry an .ics suffix so the URL itself looks like a file.
//
// Responses embed a generation timestamp and must not be cached.
func (h *CalendarHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	eventID := strings.TrimSuffix(mux.Vars(r)["id"], ".ics")

	doc, filename, err := h.service.CalendarExport(ctx, brabant.EventID(eventID))
	if err != nil {
		errResp := errors.ResponseForError(err)
		if errResp.Status >= 500 {
			logger.Error("calendar export failed", zap.Error(err))
		} else {
			logger.Warn("calendar export failed", zap.Error(err))
		}
		writeErrorResp(w, errResp)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(doc)
}
