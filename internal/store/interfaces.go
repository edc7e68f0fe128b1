package store

import (
	"context"

	"github.com/MKhiriev/go-park-audit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// AuditEntryRepository is the server-side store of confirmed audit entries.
type AuditEntryRepository interface {
	CreateEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)
	GetEntryByLocalID(ctx context.Context, agentID int64, localID string) (models.AuditEntry, error)
	ListEntries(ctx context.Context, agentID int64, filter models.EntryFilter) ([]models.AuditEntry, error)
	UpdateEntry(ctx context.Context, agentID int64, entryID int64, update models.UpdateEntryRequest) error
	SoftDeleteEntry(ctx context.Context, agentID int64, entryID int64) error
}

// AgentRepository manages field-auditor accounts.
type AgentRepository interface {
	CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error)
	FindAgentByLogin(ctx context.Context, login string) (models.Agent, error)
}
