package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/validators"
	"github.com/MKhiriev/go-park-audit/models"
)

type auditService struct {
	entryRepository store.AuditEntryRepository
	validator       validators.Validator
	logger          *logger.Logger
}

func NewAuditService(entryRepository store.AuditEntryRepository, log *logger.Logger) AuditService {
	return &auditService{
		entryRepository: entryRepository,
		validator:       validators.NewAuditValidator(),
		logger:          log,
	}
}

// CreateEntry implements AuditService. A duplicate submission of the same
// (agent, local id) pair is resolved to the already-stored row: the unique
// constraint trips, and the existing entry is fetched and returned as if it
// had just been created. This is what lets the client re-submit after a lost
// acknowledgement without creating duplicates.
func (s *auditService) CreateEntry(ctx context.Context, agentID int64, req models.CreateEntryRequest) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entry := models.AuditEntry{
		AgentID:    agentID,
		LocalID:    req.LocalID,
		Payload:    req.Payload,
		CapturedAt: req.CapturedAt.UTC(),
	}

	created, err := s.entryRepository.CreateEntry(ctx, entry)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, store.ErrDuplicateLocalID) {
		log.Err(err).Str("local_id", req.LocalID).Msg("entry creation failed")
		return models.AuditEntry{}, fmt.Errorf("create audit entry: %w", err)
	}

	existing, err := s.entryRepository.GetEntryByLocalID(ctx, agentID, req.LocalID)
	if err != nil {
		return models.AuditEntry{}, fmt.Errorf("load existing entry for replay: %w", err)
	}

	log.Debug().
		Str("local_id", req.LocalID).
		Int64("entry_id", existing.ID).
		Msg("duplicate submission resolved to existing entry")

	return existing, nil
}

// ListEntries implements AuditService.
func (s *auditService) ListEntries(ctx context.Context, agentID int64, filter models.EntryFilter) ([]models.AuditEntry, error) {
	entries, err := s.entryRepository.ListEntries(ctx, agentID, filter)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry implements AuditService.
func (s *auditService) UpdateEntry(ctx context.Context, agentID int64, entryID int64, update models.UpdateEntryRequest) error {
	if update.Status == nil && update.Notes == nil {
		return ErrInvalidDataProvided
	}
	if update.Status != nil {
		if err := s.validator.Validate(ctx, *update.Status); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	if err := s.entryRepository.UpdateEntry(ctx, agentID, entryID, update); err != nil {
		return fmt.Errorf("update audit entry: %w", err)
	}
	return nil
}

// DeleteEntry implements AuditService.
func (s *auditService) DeleteEntry(ctx context.Context, agentID int64, entryID int64) error {
	if err := s.entryRepository.SoftDeleteEntry(ctx, agentID, entryID); err != nil {
		return fmt.Errorf("delete audit entry: %w", err)
	}
	return nil
}

// ExportCSV implements AuditService. The column layout is stable so that
// downstream spreadsheets keep working across releases.
func (s *auditService) ExportCSV(ctx context.Context, agentID int64, filter models.EntryFilter, w io.Writer) error {
	entries, err := s.entryRepository.ListEntries(ctx, agentID, filter)
	if err != nil {
		return fmt.Errorf("list entries for export: %w", err)
	}

	cw := csv.NewWriter(w)
	header := []string{"id", "local_id", "plate_number", "zone", "latitude", "longitude", "confidence", "status", "notes", "captured_at"}
	if err = cw.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for _, entry := range entries {
		row := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.LocalID,
			entry.Payload.PlateNumber,
			entry.Payload.Zone,
			strconv.FormatFloat(entry.Payload.Latitude, 'f', -1, 64),
			strconv.FormatFloat(entry.Payload.Longitude, 'f', -1, 64),
			strconv.FormatFloat(entry.Payload.Confidence, 'f', -1, 64),
			string(entry.Payload.Status),
			entry.Payload.Notes,
			entry.CapturedAt.UTC().Format(time.RFC3339),
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}

	return nil
}
