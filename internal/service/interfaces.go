package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-park-audit/models"
)

// AuditService is the server-side contract for managing audit entries.
type AuditService interface {
	// CreateEntry persists a submitted capture for the given agent. The
	// operation is idempotent on (agentID, localID): re-submitting an
	// already-stored capture returns the existing entry instead of creating
	// a duplicate, so a client whose acknowledgement was lost can safely
	// replay.
	CreateEntry(ctx context.Context, agentID int64, req models.CreateEntryRequest) (models.AuditEntry, error)

	// ListEntries returns the agent's non-deleted entries matching filter,
	// newest capture first.
	ListEntries(ctx context.Context, agentID int64, filter models.EntryFilter) ([]models.AuditEntry, error)

	// UpdateEntry applies a partial update (status and/or notes) to the
	// agent's entry. Returns store.ErrEntryNotFound (wrapped) if the entry
	// does not exist or belongs to another agent.
	UpdateEntry(ctx context.Context, agentID int64, entryID int64, update models.UpdateEntryRequest) error

	// DeleteEntry soft-deletes the agent's entry.
	DeleteEntry(ctx context.Context, agentID int64, entryID int64) error

	// ExportCSV streams the agent's entries matching filter as CSV to w.
	ExportCSV(ctx context.Context, agentID int64, filter models.EntryFilter, w io.Writer) error
}

// AuthService is the server-side contract for agent accounts and token
// lifecycle.
type AuthService interface {
	// RegisterAgent creates a new agent account with a bcrypt-hashed
	// password. Returns store.ErrLoginAlreadyExists (wrapped) if the login
	// is taken.
	RegisterAgent(ctx context.Context, agent models.Agent) (models.Agent, error)

	// Login verifies the agent's credentials. Returns ErrWrongPassword if
	// the password does not match, or a wrapped storage error if the lookup
	// fails.
	Login(ctx context.Context, agent models.Agent) (models.Agent, error)

	// CreateToken issues a signed JWT for the agent.
	CreateToken(ctx context.Context, agent models.Agent) (models.Token, error)

	// ParseToken validates a raw JWT string. Any validation failure is
	// normalised to ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
