package service

import (
	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/connectivity"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/validators"
)

type ClientServices struct {
	AuthService  ClientAuthService
	QueueService ClientQueueService
	SyncService  ClientSyncService
	FeedService  ClientFeedService
	SyncJob      ClientSyncJob
}

func NewClientServices(queue store.LocalQueueRepository, serverAdapter adapter.ServerAdapter, monitor *connectivity.Monitor, cfg config.WorkersConfig, log *logger.Logger) *ClientServices {
	validator := validators.NewAuditValidator()
	syncSvc := NewClientSyncService(queue, serverAdapter, log)

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, log),
		QueueService: NewClientQueueService(queue, validator, log),
		SyncService:  syncSvc,
		FeedService:  NewClientFeedService(queue, serverAdapter, log),
		SyncJob:      NewClientSyncJob(syncSvc, queue, monitor, cfg, log),
	}
}
