package service

import (
	"context"

	"github.com/MKhiriev/go-park-audit/models"
)

// ClientAuthService defines the client-side contract for agent registration
// and authentication against the audit server.
type ClientAuthService interface {
	// Register creates a new agent account on the server. On success the
	// adapter holds a fresh bearer token for subsequent requests.
	Register(ctx context.Context, agent models.Agent) (models.Agent, error)

	// Login authenticates the agent against the server and stores the issued
	// bearer token in the adapter. Returns the token with AgentID populated.
	Login(ctx context.Context, agent models.Agent) (models.Token, error)
}

// ClientQueueService is the capture entry point of the client. Every capture
// lands in the durable local queue before anything touches the network, so
// enqueueing succeeds or fails identically whether the device is online or
// not.
type ClientQueueService interface {
	// Capture validates the payload, assigns a fresh local id and capture
	// timestamp, and appends the record to the durable queue. Returns the
	// enqueued record. Fails with a validation error or with
	// [store.ErrStorageFull] (wrapped) when local storage is exhausted;
	// network state never affects the outcome.
	Capture(ctx context.Context, payload models.AuditPayload) (models.PendingAuditRecord, error)

	// PendingCount reports how many records still await delivery.
	PendingCount(ctx context.Context) (int, error)
}

// ClientSyncService drains the pending queue to the server.
type ClientSyncService interface {
	// TriggerSync runs one drain pass: pending records are submitted oldest
	// first, and each record is marked synced only after the server
	// acknowledges it. Concurrent triggers are serialised; a trigger that
	// arrives while a pass is running waits and then drains whatever is
	// left. Per-record failures do not abort the pass. The returned
	// [models.SyncResult] counts the attempted, synced and failed records;
	// err is non-nil only when the pass could not run at all (e.g. the
	// queue cannot be read or the session is rejected).
	TriggerSync(ctx context.Context) (models.SyncResult, error)
}

// ClientFeedService produces the merged audit feed shown to the agent.
type ClientFeedService interface {
	// MergedFeed combines server-confirmed entries with local pending
	// records into one chronological view (newest first). Pending records
	// are flagged Offline. When the server cannot be reached the feed
	// degrades to local records only instead of failing. The filter is
	// applied uniformly to both halves.
	MergedFeed(ctx context.Context, filter models.FeedFilter) ([]models.MergedFeedEntry, error)
}

// ClientSyncJob is the background worker that keeps the queue drained: it
// syncs on a timer, immediately after connectivity returns, and compacts
// old synced records on a retention schedule.
type ClientSyncJob interface {
	// Start launches the background goroutine. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
