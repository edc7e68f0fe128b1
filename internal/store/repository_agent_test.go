package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/jackc/pgerrcode"
)

func newTestAgentRepo(t *testing.T) (*agentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &agentRepository{
		DB:     &DB{DB: db, errorClassifier: NewPostgresErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateAgent_Success(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	agent := models.Agent{Login: "inspector-07", PasswordHash: "hashed", Name: "Пётр"}

	mock.ExpectQuery("INSERT INTO agents").
		WithArgs(agent.Login, agent.PasswordHash, agent.Name).
		WillReturnRows(sqlmock.NewRows([]string{"agent_id"}).AddRow(int64(42)))

	created, err := repo.CreateAgent(context.Background(), agent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.AgentID != 42 {
		t.Errorf("expected assigned agent_id 42, got %d", created.AgentID)
	}
	if created.Login != agent.Login {
		t.Errorf("expected login %s, got %s", agent.Login, created.Login)
	}
}

func TestCreateAgent_LoginAlreadyExists(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO agents").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateAgent(context.Background(), models.Agent{Login: "taken"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateAgent_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO agents").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateAgent(context.Background(), models.Agent{Login: "inspector-07"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatal("plain errors must not map to ErrLoginAlreadyExists")
	}
}

func TestFindAgentByLogin_Success(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"agent_id", "login", "password_hash", "name"}).
		AddRow(int64(42), "inspector-07", "hashed", "Пётр")

	mock.ExpectQuery("SELECT(.|\n)+FROM agents").
		WithArgs("inspector-07").
		WillReturnRows(rows)

	agent, err := repo.FindAgentByLogin(context.Background(), "inspector-07")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.AgentID != 42 {
		t.Errorf("expected agent_id 42, got %d", agent.AgentID)
	}
	if agent.PasswordHash != "hashed" {
		t.Errorf("expected password hash to be loaded, got %q", agent.PasswordHash)
	}
}

func TestFindAgentByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM agents").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAgentByLogin(context.Background(), "ghost")
	if !errors.Is(err, ErrNoAgentWasFound) {
		t.Fatalf("expected ErrNoAgentWasFound, got %v", err)
	}
}

func TestFindAgentByLogin_ScanError(t *testing.T) {
	repo, mock, db := newTestAgentRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"agent_id"}). // intentionally wrong shape → scan error
							AddRow(int64(42))

	mock.ExpectQuery("SELECT(.|\n)+FROM agents").
		WithArgs("inspector-07").
		WillReturnRows(rows)

	_, err := repo.FindAgentByLogin(context.Background(), "inspector-07")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
