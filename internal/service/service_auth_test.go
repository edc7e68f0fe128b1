package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/internal/mock"
	"github.com/MKhiriev/go-park-audit/internal/store"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "park-audit-test",
		TokenDuration: time.Hour,
	}
}

func TestRegisterAgent_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	agents.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, agent models.Agent) (models.Agent, error) {
			// пароль не должен сохраняться в открытом виде
			assert.Empty(t, agent.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte("secret")))
			agent.AgentID = 1
			return agent, nil
		})

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	got, err := svc.RegisterAgent(context.Background(), models.Agent{Login: "agent42", Password: "secret", Name: "Agent 42"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AgentID)
	assert.Equal(t, "agent42", got.Login)
}

func TestRegisterAgent_EmptyCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())

	_, err := svc.RegisterAgent(context.Background(), models.Agent{Login: "", Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.RegisterAgent(context.Background(), models.Agent{Login: "agent42", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestRegisterAgent_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	agents.EXPECT().CreateAgent(gomock.Any(), gomock.Any()).
		Return(models.Agent{}, store.ErrLoginAlreadyExists)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	_, err := svc.RegisterAgent(context.Background(), models.Agent{Login: "agent42", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	agents.EXPECT().FindAgentByLogin(gomock.Any(), "agent42").
		Return(models.Agent{AgentID: 1, Login: "agent42", PasswordHash: string(hash)}, nil)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	got, err := svc.Login(context.Background(), models.Agent{Login: "agent42", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AgentID)
	assert.Empty(t, got.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	agents.EXPECT().FindAgentByLogin(gomock.Any(), "agent42").
		Return(models.Agent{AgentID: 1, Login: "agent42", PasswordHash: string(hash)}, nil)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	_, err = svc.Login(context.Background(), models.Agent{Login: "agent42", Password: "nope"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLogin_AgentNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	agents.EXPECT().FindAgentByLogin(gomock.Any(), "ghost").
		Return(models.Agent{}, store.ErrNoAgentWasFound)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	_, err := svc.Login(context.Background(), models.Agent{Login: "ghost", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNoAgentWasFound)
}

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.Agent{AgentID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.AgentID)
}

func TestParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	cfg := testAppConfig()
	cfg.TokenDuration = -time.Second
	svc := NewAuthService(agents, cfg, logger.Nop())

	token, err := svc.CreateToken(context.Background(), models.Agent{AgentID: 42})
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	agents := mock.NewMockAgentRepository(ctrl)

	svc := NewAuthService(agents, testAppConfig(), logger.Nop())
	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
