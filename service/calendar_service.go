package service

import (
	"context"

	brabant "github.com/frankokule97/brabant-events"
	"github.com/frankokule97/brabant-events/errors"
	"github.com/frankokule97/brabant-events/ics"
)

// CalendarExport resolves an event and renders it as an iCalendar document
// for "add to calendar" downloads. The suggested filename is "<id>.ics".
//
// The document embeds a generation timestamp, so responses must never be
// cached by intermediaries; the REST layer sets the headers for that.
func (s *Service) CalendarExport(ctx context.Context, id brabant.EventID) (doc []byte, filename string, err error) {
	const op errors.Op = "Service.CalendarExport"

	event, err := s.EventGet(ctx, id)
	if err != nil {
		return nil, "", errors.E(op, err)
	}

	doc, err = ics.Encode(event, s.now())
	if err != nil {
		return nil, "", errors.E(op, id, errors.Internal, err)
	}

	return doc, string(id) + ".ics", nil
}
