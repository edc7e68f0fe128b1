package tui

import (
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/models"
)

type authDoneMsg struct {
	agentID int64
}

type feedLoadedMsg struct {
	entries []models.MergedFeedEntry
	pending int
	err     error
}

type syncDoneMsg struct {
	result models.SyncResult
	err    error
}

type captureSavedMsg struct {
	record models.PendingAuditRecord
	err    error
}

type connTickMsg struct {
	state   connectivity.State
	pending int
}

type copiedMsg struct{}

type clearStatusMsg struct{}
