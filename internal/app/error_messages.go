// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// park-audit server handlers and the client-side error mapping.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body can be decoded
	// but fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing agent record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidEntryData is returned when a submitted audit capture fails
	// validation (blank plate number, missing zone, bad coordinates).
	MsgInvalidEntryData = "invalid entry data"

	// MsgInvalidEntryID is returned when the entry id path parameter is not a
	// valid integer.
	MsgInvalidEntryID = "invalid entry id"

	// MsgInvalidUpdateData is returned when an entry update request carries an
	// unknown status value.
	MsgInvalidUpdateData = "invalid update data"

	// MsgInvalidFilterParams is returned when listing filters cannot be
	// parsed (e.g. a malformed "since" timestamp).
	MsgInvalidFilterParams = "invalid filter params"

	// MsgEntryNotFound is returned when a read, update, or delete operation
	// targets an audit entry that does not exist for the current agent.
	MsgEntryNotFound = "entry not found"

	// MsgErrorCreatingEntry is returned when entry creation fails with an
	// unexpected server-side error.
	MsgErrorCreatingEntry = "error creating audit entry"

	// MsgErrorListingEntries is returned when the listing query fails with an
	// unexpected server-side error.
	MsgErrorListingEntries = "error listing audit entries"

	// MsgErrorUpdatingEntry is returned when an entry update fails with an
	// unexpected server-side error.
	MsgErrorUpdatingEntry = "error updating audit entry"

	// MsgErrorDeletingEntry is returned when an entry deletion fails with an
	// unexpected server-side error.
	MsgErrorDeletingEntry = "error deleting audit entry"
)
