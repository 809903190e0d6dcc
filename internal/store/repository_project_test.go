package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"go-folio/internal/logger"
	"go-folio/models"
)

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &projectRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var projectColumns = []string{"id", "title", "description", "emoji", "github_url", "demo_url", "featured", "technologies"}

func TestListProjects_DecodesTechnologies(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(projectColumns).
		AddRow(2, "go-folio", "portfolio backend", "🧰", "https://github.com/x/go-folio", "", true, []byte(`["Go","PostgreSQL"]`)).
		AddRow(1, "legacy", "", "", "", "", false, []byte(`[]`))

	mock.ExpectQuery("SELECT .+ FROM projects").WillReturnRows(rows)

	projects, err := repo.ListProjects(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if got := projects[0].Technologies; len(got) != 2 || got[0] != "Go" || got[1] != "PostgreSQL" {
		t.Errorf("unexpected technologies: %v", got)
	}
	if projects[1].Technologies == nil {
		t.Error("expected empty slice, got nil technologies")
	}
}

func TestGetProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM projects").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProject(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateProject_EncodesTechnologies(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	project := models.Project{
		Title:        "new",
		Technologies: []string{"React", "Node.js", "Go"},
	}

	rows := sqlmock.NewRows(projectColumns).
		AddRow(7, "new", "", "", "", "", false, []byte(`["React","Node.js","Go"]`))

	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("new", "", "", "", "", false, []byte(`["React","Node.js","Go"]`)).
		WillReturnRows(rows)

	created, err := repo.CreateProject(context.Background(), project)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected ID=7, got %d", created.ID)
	}
	if len(created.Technologies) != 3 {
		t.Errorf("expected 3 technologies, got %v", created.Technologies)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE projects").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProject(context.Background(), models.Project{ID: 42, Title: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProject_Success(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteProject(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	repo, mock, db := newTestProjectRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProject(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
