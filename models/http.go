package models

import "time"

// CreateEntryRequest is the body of POST /api/audit/.
type CreateEntryRequest struct {
	LocalID    string       `json:"local_id"`
	Payload    AuditPayload `json:"payload"`
	CapturedAt time.Time    `json:"captured_at"`
}

// UpdateEntryRequest is the body of PATCH /api/audit/{id}. Nil fields are
// left untouched.
type UpdateEntryRequest struct {
	Status *AuditStatus `json:"status,omitempty"`
	Notes  *string      `json:"notes,omitempty"`
}

// ListEntriesResponse wraps GET /api/audit/ results.
type ListEntriesResponse struct {
	Entries []AuditEntry `json:"entries"`
	Length  int          `json:"length"`
}
