package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-park-audit/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalQueueRepository is the durable on-device queue of captured audit
// records. It is the only shared mutable resource of the client core: all
// mutation goes through EnqueueRecord, MarkSynced and PurgeSynced, each
// atomic with respect to a single record.
type LocalQueueRepository interface {
	// EnqueueRecord appends a capture to the queue. It never touches the
	// network and fails only with [ErrStorageFull] (wrapped) or a low-level
	// statement error.
	EnqueueRecord(ctx context.Context, record models.PendingAuditRecord) error

	// GetRecord loads a single queue row by its local id.
	// Returns [ErrRecordNotFound] if no such row exists.
	GetRecord(ctx context.Context, localID string) (models.PendingAuditRecord, error)

	// ListPending returns all records still awaiting delivery, ordered by
	// captured_at ascending (oldest first) to preserve audit chronology on
	// replay.
	ListPending(ctx context.Context) ([]models.PendingAuditRecord, error)

	// MarkSynced flips a record from pending to synced. Idempotent: marking
	// an already-synced (or unknown) record is a no-op, not an error. The
	// transition is monotonic and never reversed.
	MarkSynced(ctx context.Context, localID string) error

	// PendingCount reports how many records are still pending, for the
	// offline-indicator badge.
	PendingCount(ctx context.Context) (int, error)

	// PurgeSynced removes already-synced records captured before olderThan.
	// Pending records are never removed. Returns the number of purged rows.
	PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error)
}
