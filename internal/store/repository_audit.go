package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
)

// auditEntryRepository is the PostgreSQL-backed implementation of
// [AuditEntryRepository]. All queries run against the "audit_entries" table
// through the embedded [*DB] connection.
type auditEntryRepository struct {
	*DB
	logger *logger.Logger
}

func NewAuditEntryRepository(db *DB, logger *logger.Logger) AuditEntryRepository {
	return &auditEntryRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateEntry inserts a new audit entry. A unique-constraint violation on
// (agent_id, local_id) means the same capture was already delivered in an
// earlier attempt; it is reported as [ErrDuplicateLocalID] so the service
// layer can respond idempotently instead of creating a second row.
func (a *auditEntryRepository) CreateEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, insertAuditEntry,
		entry.AgentID,
		entry.LocalID,
		entry.Payload.PlateNumber,
		entry.Payload.Latitude,
		entry.Payload.Longitude,
		entry.Payload.Zone,
		entry.Payload.Confidence,
		entry.Payload.Status,
		entry.Payload.Notes,
		entry.Payload.ImageRef,
		entry.CapturedAt,
	)

	if err := row.Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		if isPgUniqueViolation(err) {
			return models.AuditEntry{}, fmt.Errorf("%w (local_id=%s)", ErrDuplicateLocalID, entry.LocalID)
		}

		log.Err(err).
			Str("func", "auditEntryRepository.CreateEntry").
			Int64("agent_id", entry.AgentID).
			Str("local_id", entry.LocalID).
			Bool("retryable", a.errorClassifier.Classify(err) == Retryable).
			Msg("failed to execute insert for audit entry")
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// GetEntryByLocalID loads the entry created from the capture identified by
// localID for the given agent. Returns [ErrEntryNotFound] when absent.
func (a *auditEntryRepository) GetEntryByLocalID(ctx context.Context, agentID int64, localID string) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, getAuditEntryByLocalID, agentID, localID)

	entry, err := scanAuditEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuditEntry{}, ErrEntryNotFound
		}
		log.Err(err).
			Str("func", "auditEntryRepository.GetEntryByLocalID").
			Int64("agent_id", agentID).
			Str("local_id", localID).
			Msg("failed to scan audit entry row")
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

// ListEntries returns the agent's non-deleted entries matching filter,
// ordered by captured_at descending.
func (a *auditEntryRepository) ListEntries(ctx context.Context, agentID int64, filter models.EntryFilter) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(agentID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "auditEntryRepository.ListEntries").
			Int64("agent_id", agentID).
			Msg("failed to build list query")
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "auditEntryRepository.ListEntries").
			Int64("agent_id", agentID).
			Msg("failed to execute query for listing audit entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0, 50)

	for rows.Next() {
		entry, scanErr := scanAuditEntry(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "auditEntryRepository.ListEntries").
				Int64("agent_id", agentID).
				Msg("failed to scan audit entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "auditEntryRepository.ListEntries").
			Int64("agent_id", agentID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// UpdateEntry applies a partial update (status and/or notes) to an entry
// owned by agentID. Returns [ErrEntryNotFound] when no live row matches.
func (a *auditEntryRepository) UpdateEntry(ctx context.Context, agentID int64, entryID int64, update models.UpdateEntryRequest) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, updateAuditEntry,
		update.Status,
		update.Notes,
		entryID,
		agentID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "auditEntryRepository.UpdateEntry").
			Int64("agent_id", agentID).
			Int64("entry_id", entryID).
			Msg("failed to execute update for audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// SoftDeleteEntry marks an entry deleted without removing the row.
// Returns [ErrEntryNotFound] when no live row matches.
func (a *auditEntryRepository) SoftDeleteEntry(ctx context.Context, agentID int64, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := a.DB.ExecContext(ctx, softDeleteAuditEntry, entryID, agentID)
	if err != nil {
		log.Err(err).
			Str("func", "auditEntryRepository.SoftDeleteEntry").
			Int64("agent_id", agentID).
			Int64("entry_id", entryID).
			Msg("failed to execute soft delete for audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func scanAuditEntry(scan func(dest ...any) error) (models.AuditEntry, error) {
	var entry models.AuditEntry

	err := scan(
		&entry.ID,
		&entry.AgentID,
		&entry.LocalID,
		&entry.Payload.PlateNumber,
		&entry.Payload.Latitude,
		&entry.Payload.Longitude,
		&entry.Payload.Zone,
		&entry.Payload.Confidence,
		&entry.Payload.Status,
		&entry.Payload.Notes,
		&entry.Payload.ImageRef,
		&entry.CapturedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&entry.Deleted,
	)
	if err != nil {
		return models.AuditEntry{}, err
	}

	return entry, nil
}
