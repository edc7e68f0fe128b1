package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the service layer. Currently it holds only the durable
// queue repository.
type ClientStorages struct {
	// QueueRepository is the SQLite-backed durable queue of captured audit
	// records awaiting delivery.
	QueueRepository LocalQueueRepository
}

// NewClientStorages initialises the client storage layer: it opens the SQLite
// database at cfg.DB.DSN (creating the file on first run), applies pending
// schema migrations, and wires a fresh [LocalQueueRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		QueueRepository: NewLocalQueueRepository(db, logger),
	}, nil
}
