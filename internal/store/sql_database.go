package store

import (
	"database/sql"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	clientmigrations "github.com/MKhiriev/go-park-audit/migrations/client"
	servermigrations "github.com/MKhiriev/go-park-audit/migrations/server"
)

type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func (db *DB) MigrateServer() error {
	return servermigrations.Migrate(db.DB)
}

func (db *DB) MigrateClient() error {
	return clientmigrations.Migrate(db.DB)
}
