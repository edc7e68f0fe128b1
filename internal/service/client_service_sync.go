package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/models"
)

type clientSyncService struct {
	queue   store.LocalQueueRepository
	adapter adapter.ServerAdapter
	logger  *logger.Logger

	// mu serialises drain passes: a trigger that arrives mid-pass waits for
	// the running pass and then drains whatever is still pending.
	mu sync.Mutex
}

func NewClientSyncService(queue store.LocalQueueRepository, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSyncService {
	return &clientSyncService{queue: queue, adapter: serverAdapter, logger: log}
}

// TriggerSync implements ClientSyncService. Records are submitted oldest
// first and each one is marked synced only after the server acknowledged it,
// so a crash mid-pass re-submits at most the unacknowledged tail. The server
// deduplicates re-submissions by local id, which makes that tail harmless.
func (s *clientSyncService) TriggerSync(ctx context.Context) (models.SyncResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.queue.ListPending(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("list pending records: %w", err)
	}

	result := models.SyncResult{Attempted: len(pending)}
	for _, record := range pending {
		if ctx.Err() != nil {
			result.Failed = result.Attempted - result.Synced
			return result, fmt.Errorf("sync pass interrupted: %w", ctx.Err())
		}

		if _, err = s.adapter.CreateEntry(ctx, record); err != nil {
			// an expired session fails every remaining record the same way
			if errors.Is(err, adapter.ErrUnauthorized) {
				result.Failed = result.Attempted - result.Synced
				return result, fmt.Errorf("sync pass rejected: %w", err)
			}

			result.Failed++
			s.logger.Warn().Err(err).
				Str("func", "clientSyncService.TriggerSync").
				Str("local_id", record.LocalID).
				Msg("record submission failed, will retry next pass")
			continue
		}

		if err = s.queue.MarkSynced(ctx, record.LocalID); err != nil {
			// the server already holds the record; it stays pending locally
			// and the next pass re-submits it as a deduplicated replay
			result.Failed++
			s.logger.Error().Err(err).
				Str("func", "clientSyncService.TriggerSync").
				Str("local_id", record.LocalID).
				Msg("failed to mark acknowledged record as synced")
			continue
		}

		result.Synced++
	}

	s.logger.Info().
		Str("func", "clientSyncService.TriggerSync").
		Int("attempted", result.Attempted).
		Int("synced", result.Synced).
		Int("failed", result.Failed).
		Msg("sync pass finished")

	return result, nil
}
