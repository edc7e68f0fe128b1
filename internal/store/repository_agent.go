package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
)

type agentRepository struct {
	*DB
	logger *logger.Logger
}

func NewAgentRepository(db *DB, logger *logger.Logger) AgentRepository {
	return &agentRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *agentRepository) CreateAgent(ctx context.Context, agent models.Agent) (models.Agent, error) {
	log := logger.FromContext(ctx)

	row := a.DB.QueryRowContext(ctx, insertAgent, agent.Login, agent.PasswordHash, agent.Name)
	if err := row.Scan(&agent.AgentID); err != nil {
		if isPgUniqueViolation(err) {
			return models.Agent{}, ErrLoginAlreadyExists
		}

		log.Err(err).
			Str("func", "agentRepository.CreateAgent").
			Str("login", agent.Login).
			Msg("failed to execute insert for agent")
		return models.Agent{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return agent, nil
}

func (a *agentRepository) FindAgentByLogin(ctx context.Context, login string) (models.Agent, error) {
	log := logger.FromContext(ctx)

	var agent models.Agent
	row := a.DB.QueryRowContext(ctx, getAgentByLogin, login)

	err := row.Scan(&agent.AgentID, &agent.Login, &agent.PasswordHash, &agent.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Agent{}, ErrNoAgentWasFound
		}
		log.Err(err).
			Str("func", "agentRepository.FindAgentByLogin").
			Str("login", login).
			Msg("failed to scan agent row")
		return models.Agent{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return agent, nil
}
