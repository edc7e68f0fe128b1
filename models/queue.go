package models

import "time"

// SyncState describes the delivery state of a locally captured record.
// The state is monotonic: pending -> synced, never reversed.
type SyncState string

const (
	SyncStatePending SyncState = "pending"
	SyncStateSynced  SyncState = "synced"
)

// PendingAuditRecord is a capture stored in the durable local queue.
//
// LocalID is generated on the device, is unique within it, and never changes
// or gets reused for the record's lifetime. CapturedAt is set once at creation.
// The queue exclusively owns the record until it is marked synced; after that
// the server copy is authoritative and the local row is kept only to suppress
// duplicate replays until it is purged.
type PendingAuditRecord struct {
	LocalID    string       `json:"local_id"`
	Payload    AuditPayload `json:"payload"`
	CapturedAt time.Time    `json:"captured_at"`
	SyncState  SyncState    `json:"sync_state"`
	SyncedAt   *time.Time   `json:"synced_at,omitempty"`
}
