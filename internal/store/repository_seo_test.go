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

func newTestSEORepo(t *testing.T) (*seoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &seoRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var seoColumns = []string{"page_name", "title", "description", "keywords", "og_image", "twitter_image", "canonical_url"}

func TestListSEOSettings_Success(t *testing.T) {
	repo, mock, db := newTestSEORepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(seoColumns).
		AddRow("about", "About", "", "", "", "", "").
		AddRow("home", "Home", "", "", "", "", "")

	mock.ExpectQuery("SELECT .+ FROM seo_settings").WillReturnRows(rows)

	settings, err := repo.ListSEOSettings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(settings) != 2 {
		t.Fatalf("expected 2 settings, got %d", len(settings))
	}
	if settings[0].PageName != "about" {
		t.Errorf("expected first page 'about', got %q", settings[0].PageName)
	}
}

func TestGetSEOByPage_NotFound(t *testing.T) {
	repo, mock, db := newTestSEORepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM seo_settings").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSEOByPage(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertSEO_InsertsOrReplaces(t *testing.T) {
	repo, mock, db := newTestSEORepo(t)
	defer db.Close()

	setting := models.SEOSetting{PageName: "contact", Title: "Contact"}

	rows := sqlmock.NewRows(seoColumns).
		AddRow("contact", "Contact", "", "", "", "", "")

	mock.ExpectQuery("INSERT INTO seo_settings").
		WithArgs("contact", "Contact", "", "", "", "", "").
		WillReturnRows(rows)

	got, err := repo.UpsertSEO(context.Background(), setting)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.PageName != "contact" || got.Title != "Contact" {
		t.Errorf("unexpected upsert result: %+v", got)
	}
}

func TestUpdateSEOByPage_NotFound(t *testing.T) {
	repo, mock, db := newTestSEORepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE seo_settings").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateSEOByPage(context.Background(), "ghost", models.SEOSetting{Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
