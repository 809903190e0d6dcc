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

	"go-folio/internal/logger"
	"go-folio/models"
)

func newTestContactRepo(t *testing.T) (*contactRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &contactRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var contactColumns = []string{"id", "name", "email", "subject", "message", "created_at"}

func TestCreateContactMessage_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs("Visitor", "visitor@example.com", "Hi", "Hello there").
		WillReturnError(deadlock)
	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs("Visitor", "visitor@example.com", "Hi", "Hello there").
		WillReturnRows(sqlmock.NewRows(contactColumns).
			AddRow(9, "Visitor", "visitor@example.com", "Hi", "Hello there", time.Now()))

	created, err := repo.CreateContactMessage(context.Background(), models.ContactMessage{
		Name: "Visitor", Email: "visitor@example.com", Subject: "Hi", Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 9 {
		t.Errorf("expected id 9, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateContactMessage_NonRetryableFailsImmediately(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	notNull := &pgconn.PgError{Code: pgerrcode.NotNullViolation}
	mock.ExpectQuery("INSERT INTO contact_messages").
		WillReturnError(notNull)

	_, err := repo.CreateContactMessage(context.Background(), models.ContactMessage{Name: "Visitor"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	// a second query would show up here as an unmet expectation mismatch
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateContactMessage_GivesUpAfterRetries(t *testing.T) {
	repo, mock, db := newTestContactRepo(t)
	defer db.Close()

	for i := 0; i < contactWriteAttempts; i++ {
		mock.ExpectQuery("INSERT INTO contact_messages").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	}

	_, err := repo.CreateContactMessage(context.Background(), models.ContactMessage{Name: "Visitor"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
