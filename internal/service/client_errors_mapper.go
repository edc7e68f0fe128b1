package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/app"
	"github.com/MKhiriev/go-park-audit/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgInvalidEntryData, app.MsgInvalidUpdateData:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		default:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrEntryNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
