package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ekomarov/docsight/internal/core/domain"
)

type staticSource struct {
	db *sql.DB
}

func (s staticSource) DB(context.Context) (*sql.DB, error) {
	return s.db, nil
}

func newRepoWithMock(t *testing.T) (*RecordRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return NewRecordRepository(staticSource{db: db}), mock, func() { _ = db.Close() }
}

func recordColumns() []string {
	return []string{
		"id", "file_name", "summary", "processing_method", "document_type",
		"file_size", "text_length", "processing_time_ms", "success", "error_type", "created_at",
	}
}

func TestCreatePersistsAllFields(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	errType := domain.ErrorExtractionFailed
	createdAt := time.Date(2026, 5, 17, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO document_records").
		WithArgs("rec-1", "scan.pdf", "guidance text", string(domain.MethodUserGuidance), string(domain.TypeOther),
			int64(2048), 0, int64(120), false, sqlmock.AnyArg(), createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), domain.Record{
		ID:               "rec-1",
		FileName:         "scan.pdf",
		Summary:          "guidance text",
		ProcessingMethod: domain.MethodUserGuidance,
		DocumentType:     domain.TypeOther,
		FileSize:         2048,
		ProcessingTimeMs: 120,
		Success:          false,
		ErrorType:        &errType,
		CreatedAt:        createdAt,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListRecentNormalizesLegacyRows(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(recordColumns()).
		AddRow("new-1", "report.pdf", "summary one", "Remote API text extraction", "Technical Report",
			int64(1000), int64(500), int64(900), true, nil, createdAt).
		AddRow("old-1", "legacy.txt", "summary two", nil, nil, nil, nil, nil, nil, nil, createdAt)
	mock.ExpectQuery("SELECT id, file_name, summary").
		WithArgs(100).
		WillReturnRows(rows)

	got, err := repo.ListRecent(context.Background(), 100)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].DocumentType != domain.TypeTechnical || !got[0].Success {
		t.Fatalf("modern row mangled: %+v", got[0])
	}
	legacy := got[1]
	if !legacy.Success {
		t.Fatal("legacy row must read as successful")
	}
	if legacy.ProcessingMethod != domain.MethodManualText || legacy.DocumentType != domain.TypeOther {
		t.Fatalf("legacy defaults missing: %+v", legacy)
	}
	if legacy.ErrorType != nil || legacy.ProcessingTimeMs != 0 {
		t.Fatalf("legacy numerics must zero: %+v", legacy)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestBackfillLegacyFieldsReportsRowCount(t *testing.T) {
	repo, mock, done := newRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE document_records").
		WillReturnResult(sqlmock.NewResult(0, 7))

	updated, err := repo.BackfillLegacyFields(context.Background())
	if err != nil {
		t.Fatalf("BackfillLegacyFields() error = %v", err)
	}
	if updated != 7 {
		t.Fatalf("expected 7 rows updated, got %d", updated)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListRecentSurfacesConnectionError(t *testing.T) {
	repo := NewRecordRepository(failingSource{})
	if _, err := repo.ListRecent(context.Background(), 10); err == nil {
		t.Fatal("expected connection error")
	}
}

type failingSource struct{}

func (failingSource) DB(context.Context) (*sql.DB, error) {
	return nil, sql.ErrConnDone
}
