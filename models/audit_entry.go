package models

import "time"

// AuditEntry is the authoritative server-side audit record.
//
// LocalID carries the client-generated identifier of the originating capture
// and acts as an idempotency key: submitting the same capture twice yields
// the same server row instead of a duplicate.
type AuditEntry struct {
	ID         int64        `json:"id"`
	AgentID    int64        `json:"agent_id"`
	LocalID    string       `json:"local_id"`
	Payload    AuditPayload `json:"payload"`
	CapturedAt time.Time    `json:"captured_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Deleted    bool         `json:"-"`
}

// EntryFilter is the server-side listing filter.
type EntryFilter struct {
	Zone   string     `json:"zone,omitempty"`
	Plate  string     `json:"plate,omitempty"`
	Since  *time.Time `json:"since,omitempty"`
	Status string     `json:"status,omitempty"`
}
