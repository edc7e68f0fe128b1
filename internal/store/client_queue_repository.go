package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
)

type localQueueRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalQueueRepository(db *DB, logger *logger.Logger) LocalQueueRepository {
	return &localQueueRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localQueueRepository) EnqueueRecord(ctx context.Context, record models.PendingAuditRecord) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, enqueueRecord,
		record.LocalID,
		record.Payload.PlateNumber,
		record.Payload.Latitude,
		record.Payload.Longitude,
		record.Payload.Zone,
		record.Payload.Confidence,
		record.Payload.Status,
		record.Payload.Notes,
		record.Payload.ImageRef,
		record.CapturedAt,
		record.SyncState,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.EnqueueRecord").
			Str("local_id", record.LocalID).
			Msg("failed to execute insert for queue record")

		if l.errorClassifier.Classify(err) == StorageExhausted {
			return fmt.Errorf("%w: %w", ErrStorageFull, err)
		}
		return fmt.Errorf("failed to enqueue record (local_id=%s): %w", record.LocalID, err)
	}

	return nil
}

func (l *localQueueRepository) GetRecord(ctx context.Context, localID string) (models.PendingAuditRecord, error) {
	log := logger.FromContext(ctx)

	row := l.DB.QueryRowContext(ctx, getQueueRecord, localID)

	record, err := scanQueueRecord(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PendingAuditRecord{}, ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "localQueueRepository.GetRecord").
			Str("local_id", localID).
			Msg("failed to scan queue record row")
		return models.PendingAuditRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (l *localQueueRepository) ListPending(ctx context.Context) ([]models.PendingAuditRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, listPendingRecords)
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.ListPending").
			Msg("failed to execute query for pending queue records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.PendingAuditRecord

	for rows.Next() {
		record, scanErr := scanQueueRecord(rows.Scan)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localQueueRepository.ListPending").
				Msg("failed to scan queue record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localQueueRepository.ListPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func (l *localQueueRepository) MarkSynced(ctx context.Context, localID string) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, markRecordSynced, time.Now().UTC(), localID)
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.MarkSynced").
			Str("local_id", localID).
			Msg("failed to execute mark synced for queue record")
		return fmt.Errorf("failed to mark record synced (local_id=%s): %w", localID, err)
	}

	// Zero rows affected means the record is already synced or unknown;
	// both are no-ops so that replays stay idempotent.
	return nil
}

func (l *localQueueRepository) PendingCount(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := l.DB.QueryRowContext(ctx, countPendingRecords).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.PendingCount").
			Msg("failed to count pending queue records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (l *localQueueRepository) PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, purgeSyncedRecords, olderThan)
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.PurgeSynced").
			Time("older_than", olderThan).
			Msg("failed to execute purge for synced queue records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "localQueueRepository.PurgeSynced").
			Msg("failed to get rows affected after purge")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return purged, nil
}

func scanQueueRecord(scan func(dest ...any) error) (models.PendingAuditRecord, error) {
	var (
		record   models.PendingAuditRecord
		syncedAt sql.NullTime
	)

	err := scan(
		&record.LocalID,
		&record.Payload.PlateNumber,
		&record.Payload.Latitude,
		&record.Payload.Longitude,
		&record.Payload.Zone,
		&record.Payload.Confidence,
		&record.Payload.Status,
		&record.Payload.Notes,
		&record.Payload.ImageRef,
		&record.CapturedAt,
		&record.SyncState,
		&syncedAt,
	)
	if err != nil {
		return models.PendingAuditRecord{}, err
	}

	if syncedAt.Valid {
		t := syncedAt.Time
		record.SyncedAt = &t
	}

	return record, nil
}
