package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"geonotes/internal/logger"
	"geonotes/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
		AddRow(int64(1), "alice", "hashed", now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), models.User{Login: "alice", PasswordHash: "hashed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected assigned user id, got %d", created.UserID)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be populated")
	}
}

func TestCreateUser_LoginAlreadyExists(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hashed").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice", PasswordHash: "hashed"})
	if !errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("expected ErrLoginAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "alice", PasswordHash: "hashed"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrLoginAlreadyExists) {
		t.Fatalf("driver error must not map to ErrLoginAlreadyExists: %v", err)
	}
}

func TestFindUserByLogin_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
		AddRow(int64(42), "bob", "hashed", time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("bob").
		WillReturnRows(rows)

	user, err := repo.FindUserByLogin(context.Background(), "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 42 || user.Login != "bob" {
		t.Errorf("unexpected user returned: %+v", user)
	}
}

func TestFindUserByLogin_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
