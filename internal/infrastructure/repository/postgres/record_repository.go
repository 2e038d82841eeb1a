package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekomarov/docsight/internal/core/domain"
)

// DBSource yields the live database handle, dialing lazily if needed.
type DBSource interface {
	DB(ctx context.Context) (*sql.DB, error)
}

type RecordRepository struct {
	src DBSource
}

func NewRecordRepository(src DBSource) *RecordRepository {
	return &RecordRepository{src: src}
}

func (r *RecordRepository) EnsureSchema(ctx context.Context) error {
	db, err := r.src.DB(ctx)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Serialize bootstrap DDL across api/worker startups.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(2026051701)); err != nil {
		return fmt.Errorf("acquire schema lock: %w", err)
	}

	// Optional columns stay nullable: rows written before the analytics
	// fields existed are normalized at read time.
	const query = `
CREATE TABLE IF NOT EXISTS document_records (
	id TEXT PRIMARY KEY,
	file_name TEXT NOT NULL,
	summary TEXT NOT NULL,
	processing_method TEXT,
	document_type TEXT,
	file_size BIGINT,
	text_length BIGINT,
	processing_time_ms BIGINT,
	success BOOLEAN,
	error_type TEXT,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_document_records_created_at ON document_records(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_document_records_success ON document_records(success);
`
	if _, err := tx.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute schema ddl: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

func (r *RecordRepository) Create(ctx context.Context, rec domain.Record) error {
	db, err := r.src.DB(ctx)
	if err != nil {
		return err
	}

	var errorType *string
	if rec.ErrorType != nil {
		s := string(*rec.ErrorType)
		errorType = &s
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO document_records (
	id, file_name, summary, processing_method, document_type, file_size, text_length, processing_time_ms, success, error_type, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`,
		rec.ID, rec.FileName, rec.Summary, string(rec.ProcessingMethod), string(rec.DocumentType),
		rec.FileSize, rec.TextLength, rec.ProcessingTimeMs, rec.Success, errorType, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// ListRecent returns up to limit records, newest first, with legacy rows
// normalized to the compatibility defaults.
func (r *RecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.Record, error) {
	db, err := r.src.DB(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
SELECT id, file_name, summary, processing_method, document_type, file_size, text_length, processing_time_ms, success, error_type, created_at
FROM document_records
ORDER BY created_at DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		var raw domain.RawRecord
		if err := rows.Scan(
			&raw.ID, &raw.FileName, &raw.Summary, &raw.ProcessingMethod, &raw.DocumentType,
			&raw.FileSize, &raw.TextLength, &raw.ProcessingTimeMs, &raw.Success, &raw.ErrorType, &raw.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, domain.NormalizeLegacyRecord(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// BackfillLegacyFields writes the compatibility defaults into rows that
// predate the analytics fields. Returns the number of rows updated.
func (r *RecordRepository) BackfillLegacyFields(ctx context.Context) (int64, error) {
	db, err := r.src.DB(ctx)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, `
UPDATE document_records
SET success = COALESCE(success, TRUE),
	processing_method = COALESCE(processing_method, 'Manual text input'),
	document_type = COALESCE(document_type, 'Other'),
	file_size = COALESCE(file_size, 0),
	text_length = COALESCE(text_length, 0),
	processing_time_ms = COALESCE(processing_time_ms, 0)
WHERE success IS NULL
	OR processing_method IS NULL
	OR document_type IS NULL
	OR processing_time_ms IS NULL
`)
	if err != nil {
		return 0, fmt.Errorf("backfill legacy fields: %w", err)
	}
	updated, _ := result.RowsAffected()
	return updated, nil
}
