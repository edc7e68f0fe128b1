package config

import "errors"

var (
	// ErrNoDatabaseDSN is returned when the server config has no PostgreSQL
	// connection string.
	ErrNoDatabaseDSN = errors.New("no database DSN provided")

	// ErrNoTokenSignKey is returned when the server config has no JWT signing
	// key.
	ErrNoTokenSignKey = errors.New("no token sign key provided")
)
