package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/utils"
	"github.com/MKhiriev/go-park-audit/internal/validators"
	"github.com/MKhiriev/go-park-audit/models"
)

type clientQueueService struct {
	queue     store.LocalQueueRepository
	validator validators.Validator
	uuidGen   *utils.UUIDGenerator
	logger    *logger.Logger
}

func NewClientQueueService(queue store.LocalQueueRepository, validator validators.Validator, log *logger.Logger) ClientQueueService {
	return &clientQueueService{
		queue:     queue,
		validator: validator,
		uuidGen:   utils.NewUUIDGenerator(),
		logger:    log,
	}
}

// Capture implements ClientQueueService. The record is durable once this
// returns: a crash or network loss after enqueue can delay delivery but
// never lose the capture.
func (s *clientQueueService) Capture(ctx context.Context, payload models.AuditPayload) (models.PendingAuditRecord, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.PendingAuditRecord{}, fmt.Errorf("validate capture payload: %w", err)
	}

	record := models.PendingAuditRecord{
		LocalID:    s.uuidGen.Generate(),
		Payload:    payload,
		CapturedAt: time.Now().UTC(),
		SyncState:  models.SyncStatePending,
	}

	if err := s.queue.EnqueueRecord(ctx, record); err != nil {
		return models.PendingAuditRecord{}, fmt.Errorf("enqueue capture: %w", err)
	}

	s.logger.Debug().
		Str("func", "clientQueueService.Capture").
		Str("local_id", record.LocalID).
		Str("plate", record.Payload.PlateNumber).
		Msg("capture enqueued")

	return record, nil
}

// PendingCount implements ClientQueueService.
func (s *clientQueueService) PendingCount(ctx context.Context) (int, error) {
	count, err := s.queue.PendingCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending records: %w", err)
	}
	return count, nil
}
