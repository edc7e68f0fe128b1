package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/internal/utils"
	"github.com/MKhiriev/go-park-audit/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService. It handles agent
// registration, credential verification with bcrypt, and JWT token lifecycle
// using an AgentRepository for persistence.
type authService struct {
	agentRepository store.AgentRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT. Tokens
	// whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// AgentRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(agentRepository store.AgentRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		agentRepository: agentRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          log,
	}
}

// RegisterAgent implements AuthService. It validates that Login and Password
// are non-empty, hashes the password with bcrypt, and delegates persistence
// to the AgentRepository.
//
// Returns the persisted agent (with a server-assigned AgentID) or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the repository call fails (e.g. login
//     already taken, see store.ErrLoginAlreadyExists).
func (a *authService) RegisterAgent(ctx context.Context, agent models.Agent) (models.Agent, error) {
	log := logger.FromContext(ctx)

	if agent.Login == "" || agent.Password == "" {
		log.Error().Str("login", agent.Login).Msg("invalid agent data provided")
		return models.Agent{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(agent.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Agent{}, fmt.Errorf("hash agent password: %w", err)
	}
	agent.PasswordHash = string(hash)
	agent.Password = ""

	registeredAgent, err := a.agentRepository.CreateAgent(ctx, agent)
	if err != nil {
		log.Err(err).Str("login", agent.Login).Msg("agent creation ended with error")
		return models.Agent{}, fmt.Errorf("agent creation ended with error: %w", err)
	}

	return registeredAgent, nil
}

// Login implements AuthService. It looks up the account by login and compares
// the bcrypt hash with the supplied password.
//
// Returns the authenticated agent record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the lookup fails (e.g. no such agent, see
//     store.ErrNoAgentWasFound).
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, agent models.Agent) (models.Agent, error) {
	log := logger.FromContext(ctx)

	if agent.Login == "" || agent.Password == "" {
		log.Error().Str("login", agent.Login).Msg("invalid agent data provided")
		return models.Agent{}, ErrInvalidDataProvided
	}

	foundAgent, err := a.agentRepository.FindAgentByLogin(ctx, agent.Login)
	if err != nil {
		log.Err(err).Str("login", agent.Login).Msg("agent search by login failed")
		return models.Agent{}, fmt.Errorf("agent search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundAgent.PasswordHash), []byte(agent.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().
				Int64("id", foundAgent.AgentID).
				Str("login", foundAgent.Login).
				Msg("wrong password")
			return models.Agent{}, ErrWrongPassword
		}
		return models.Agent{}, fmt.Errorf("compare agent password: %w", err)
	}

	foundAgent.PasswordHash = ""
	return foundAgent, nil
}

// CreateToken implements AuthService. The token is signed with the configured
// tokenSignKey, carries the configured tokenIssuer as the "iss" claim, and
// expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, agent models.Agent) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, agent.AgentID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken implements AuthService. Any validation failure (expired, wrong
// issuer, malformed) is normalised to ErrTokenIsExpiredOrInvalid so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
