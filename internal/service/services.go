package service

import (
	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
)

type Services struct {
	AuthService  AuthService
	AuditService AuditService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.AgentRepository, cfg.App, log),
		AuditService: NewAuditService(storages.AuditEntryRepository, log),
	}
}
