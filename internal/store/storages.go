package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	AuditEntryRepository AuditEntryRepository
	AgentRepository      AgentRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// the server repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.MigrateServer(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		AuditEntryRepository: NewAuditEntryRepository(db, logger),
		AgentRepository:      NewAgentRepository(db, logger),
	}, nil
}
