// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-park-audit/models"
)

const (
	insertAuditEntry = `
		INSERT INTO audit_entries (
			agent_id,
			local_id,
			plate_number,
			latitude,
			longitude,
			zone,
			confidence,
			status,
			notes,
			image_ref,
			captured_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at;`

	getAuditEntryByLocalID = `
		SELECT
			id,
			agent_id,
			local_id,
			plate_number,
			latitude,
			longitude,
			zone,
			confidence,
			status,
			notes,
			image_ref,
			captured_at,
			created_at,
			updated_at,
			deleted
		FROM audit_entries
		WHERE agent_id = $1 AND local_id = $2;`

	updateAuditEntry = `
		UPDATE audit_entries SET
			status     = COALESCE($1, status),
			notes      = COALESCE($2, notes),
			updated_at = now()
		WHERE id = $3 AND agent_id = $4 AND deleted = false;`

	softDeleteAuditEntry = `
		UPDATE audit_entries SET
			deleted    = true,
			updated_at = now()
		WHERE id = $1 AND agent_id = $2 AND deleted = false;`

	insertAgent = `
		INSERT INTO agents (login, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING agent_id;`

	getAgentByLogin = `
		SELECT agent_id, login, password_hash, name
		FROM agents
		WHERE login = $1;`
)

var auditEntryColumns = []string{
	"id", "agent_id", "local_id", "plate_number", "latitude", "longitude",
	"zone", "confidence", "status", "notes", "image_ref",
	"captured_at", "created_at", "updated_at", "deleted",
}

// buildListEntriesQuery assembles the filtered listing query. Filters are
// optional and combined with AND; results are newest-capture first.
func buildListEntriesQuery(agentID int64, filter models.EntryFilter) (string, []any, error) {
	builder := sq.Select(auditEntryColumns...).
		From("audit_entries").
		Where(sq.Eq{"agent_id": agentID}).
		Where(sq.Eq{"deleted": false}).
		PlaceholderFormat(sq.Dollar)

	if filter.Zone != "" {
		builder = builder.Where(sq.Eq{"zone": filter.Zone})
	}
	if filter.Plate != "" {
		builder = builder.Where(sq.ILike{"plate_number": "%" + filter.Plate + "%"})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Since != nil {
		builder = builder.Where(sq.GtOrEq{"captured_at": *filter.Since})
	}

	query, args, err := builder.OrderBy("captured_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
