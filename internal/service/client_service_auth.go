package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/adapter"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: log}
}

// Register implements ClientAuthService.
func (s *clientAuthService) Register(ctx context.Context, agent models.Agent) (models.Agent, error) {
	registered, err := s.adapter.Register(ctx, agent)
	if err != nil {
		return models.Agent{}, fmt.Errorf("register agent: %w", mapAdapterError(err))
	}

	s.logger.Info().
		Str("func", "clientAuthService.Register").
		Str("login", registered.Login).
		Msg("agent registered")

	return registered, nil
}

// Login implements ClientAuthService.
func (s *clientAuthService) Login(ctx context.Context, agent models.Agent) (models.Token, error) {
	token, err := s.adapter.Login(ctx, agent)
	if err != nil {
		return models.Token{}, fmt.Errorf("login agent: %w", mapAdapterError(err))
	}

	s.logger.Info().
		Str("func", "clientAuthService.Login").
		Str("login", agent.Login).
		Msg("agent logged in")

	return token, nil
}
