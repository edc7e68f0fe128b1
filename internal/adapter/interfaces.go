// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the parking-audit server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-park-audit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the audit
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided agent
	// credentials. On success it stores the returned bearer token via
	// SetToken and returns the agent record with AgentID populated.
	Register(ctx context.Context, agent models.Agent) (models.Agent, error)

	// Login authenticates the agent with the server. On success it stores the
	// returned bearer token via SetToken and returns the token value.
	Login(ctx context.Context, agent models.Agent) (models.Token, error)

	// CreateEntry submits one queued audit record to the server. The record's
	// LocalID travels with the request so the server can deduplicate
	// re-submissions of the same capture. Returns the server-side entry on
	// success, or [ErrConflict] (wrapped) if the server already holds an
	// entry for this LocalID under a different payload.
	CreateEntry(ctx context.Context, record models.PendingAuditRecord) (models.AuditEntry, error)

	// ListEntries fetches the agent's audit entries from the server, filtered
	// server-side by the non-zero fields of filter.
	ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.AuditEntry, error)

	// Ping performs a lightweight reachability probe against the server.
	// A nil return means the server answered within the adapter timeout.
	Ping(ctx context.Context) error
}
