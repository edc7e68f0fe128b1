package models

import "time"

// SyncResult is the per-pass outcome of the sync engine. It is ephemeral:
// surfaced to the UI after a pass and not persisted anywhere.
type SyncResult struct {
	Attempted int `json:"attempted"`
	Synced    int `json:"synced"`
	Failed    int `json:"failed"`
}

// MergedFeedEntry is a view-only projection for the audit feed: either a
// local pending record (Offline=true) or a server-confirmed entry
// (Offline=false). It has no identity or lifecycle of its own and is
// recomputed on every read.
type MergedFeedEntry struct {
	LocalID   string       `json:"local_id,omitempty"`
	EntryID   int64        `json:"entry_id,omitempty"`
	Payload   AuditPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
	Offline   bool         `json:"offline"`
}

// FeedFilter narrows the merged feed. Search is matched case-insensitively
// against plate number, zone and notes of both pending and confirmed entries.
type FeedFilter struct {
	Search string `json:"search,omitempty"`
	Zone   string `json:"zone,omitempty"`
}
