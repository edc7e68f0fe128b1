package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/app"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/service"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/utils"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agentID, ok := utils.AgentIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEntry").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	entry, err := h.services.AuditService.CreateEntry(ctx, agentID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Str("func", "*Handler.createEntry").Msg("invalid entry data")
			http.Error(w, app.MsgInvalidEntryData, http.StatusBadRequest)
			return
		default:
			log.Err(err).Str("func", "*Handler.createEntry").Msg("error creating audit entry")
			http.Error(w, app.MsgErrorCreatingEntry, http.StatusInternalServerError)
			return
		}
	}

	_, _ = utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agentID, ok := utils.AgentIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("invalid filter params")
		http.Error(w, app.MsgInvalidFilterParams, http.StatusBadRequest)
		return
	}

	entries, err := h.services.AuditService.ListEntries(ctx, agentID, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listEntries").Msg("error listing audit entries")
		http.Error(w, app.MsgErrorListingEntries, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.ListEntriesResponse{Entries: entries, Length: len(entries)}, http.StatusOK)
}

func (h *Handler) updateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agentID, ok := utils.AgentIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, app.MsgInvalidEntryID, http.StatusBadRequest)
		return
	}

	var update models.UpdateEntryRequest
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateEntry").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.services.AuditService.UpdateEntry(ctx, agentID, entryID, update); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			http.Error(w, app.MsgInvalidUpdateData, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEntryNotFound):
			http.Error(w, app.MsgEntryNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.updateEntry").Msg("error updating audit entry")
			http.Error(w, app.MsgErrorUpdatingEntry, http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agentID, ok := utils.AgentIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, app.MsgInvalidEntryID, http.StatusBadRequest)
		return
	}

	if err = h.services.AuditService.DeleteEntry(ctx, agentID, entryID); err != nil {
		switch {
		case errors.Is(err, store.ErrEntryNotFound):
			http.Error(w, app.MsgEntryNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("func", "*Handler.deleteEntry").Msg("error deleting audit entry")
			http.Error(w, app.MsgErrorDeletingEntry, http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) exportEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	agentID, ok := utils.AgentIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	filter, err := entryFilterFromQuery(r)
	if err != nil {
		http.Error(w, app.MsgInvalidFilterParams, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="audit-export.csv"`)

	if err = h.services.AuditService.ExportCSV(ctx, agentID, filter, w); err != nil {
		// headers are already sent; nothing left to do but log
		log.Err(err).Str("func", "*Handler.exportEntries").Msg("error exporting audit entries")
	}
}

func entryFilterFromQuery(r *http.Request) (models.EntryFilter, error) {
	q := r.URL.Query()
	filter := models.EntryFilter{
		Zone:   q.Get("zone"),
		Plate:  q.Get("plate"),
		Status: q.Get("status"),
	}

	if since := q.Get("since"); since != "" {
		ts, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return models.EntryFilter{}, err
		}
		filter.Since = &ts
	}

	return filter, nil
}
