package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
)

const recentActivityLimit = 10

// Analytics computes the corpus statistics in SQL. Missing success
// values count as successful, matching the read-time normalization of
// legacy rows.
func (r *RecordRepository) Analytics(ctx context.Context, now time.Time) (domain.AnalyticsSnapshot, error) {
	db, err := r.src.DB(ctx)
	if err != nil {
		return domain.AnalyticsSnapshot{}, err
	}

	now = now.UTC()
	last30Days := now.Add(-30 * 24 * time.Hour)
	last7Days := now.Add(-7 * 24 * time.Hour)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	snapshot := domain.EmptyAnalytics("")

	row := db.QueryRowContext(ctx, `
SELECT COUNT(*),
	COUNT(*) FILTER (WHERE created_at >= $1),
	COUNT(*) FILTER (WHERE created_at >= $2),
	COUNT(*) FILTER (WHERE created_at >= $3),
	COUNT(*) FILTER (WHERE success IS NOT FALSE),
	COUNT(*) FILTER (WHERE success = FALSE)
FROM document_records
`, last30Days, last7Days, today)
	ov := &snapshot.Overview
	if err := row.Scan(&ov.TotalDocuments, &ov.DocumentsLast30Days, &ov.DocumentsLast7Days,
		&ov.DocumentsToday, &ov.SuccessfulProcessing, &ov.FailedProcessing); err != nil {
		return domain.AnalyticsSnapshot{}, fmt.Errorf("scan overview: %w", err)
	}
	if ov.TotalDocuments > 0 {
		rate := float64(ov.SuccessfulProcessing) / float64(ov.TotalDocuments) * 100
		ov.SuccessRate = math.Round(rate*100) / 100
	}

	if snapshot.ProcessingMethods, err = r.methodStats(ctx, db); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	if snapshot.DocumentTypes, err = r.typeStats(ctx, db); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	if snapshot.ErrorTypes, err = r.errorStats(ctx, db); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	if snapshot.DailyActivity, err = r.dailyActivity(ctx, db, last30Days); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	if ov.TotalDocuments > 0 {
		perf, err := r.performanceStats(ctx, db)
		if err != nil {
			return domain.AnalyticsSnapshot{}, err
		}
		snapshot.Performance = perf
	}

	if snapshot.RecentActivity, err = r.ListRecent(ctx, recentActivityLimit); err != nil {
		return domain.AnalyticsSnapshot{}, err
	}
	return snapshot, nil
}

func (r *RecordRepository) methodStats(ctx context.Context, db *sql.DB) ([]domain.MethodStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT COALESCE(processing_method, 'Manual text input'),
	COUNT(*),
	COALESCE(AVG(processing_time_ms), 0)
FROM document_records
GROUP BY 1
ORDER BY 2 DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query method stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.MethodStat{}
	for rows.Next() {
		var s domain.MethodStat
		var method string
		var avg float64
		if err := rows.Scan(&method, &s.Count, &avg); err != nil {
			return nil, fmt.Errorf("scan method stat: %w", err)
		}
		s.Method = domain.ProcessingMethod(method)
		s.AvgProcessingTime = int64(math.Round(avg))
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *RecordRepository) typeStats(ctx context.Context, db *sql.DB) ([]domain.TypeStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT COALESCE(document_type, 'Other'),
	COUNT(*),
	COALESCE(AVG(text_length), 0),
	COALESCE(AVG(file_size), 0)
FROM document_records
GROUP BY 1
ORDER BY 2 DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query type stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.TypeStat{}
	for rows.Next() {
		var s domain.TypeStat
		var docType string
		var avgText, avgSize float64
		if err := rows.Scan(&docType, &s.Count, &avgText, &avgSize); err != nil {
			return nil, fmt.Errorf("scan type stat: %w", err)
		}
		s.Type = domain.DocumentType(docType)
		s.AvgTextLength = int(math.Round(avgText))
		s.AvgFileSize = int64(math.Round(avgSize))
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *RecordRepository) errorStats(ctx context.Context, db *sql.DB) ([]domain.ErrorStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT error_type, COUNT(*)
FROM document_records
WHERE success = FALSE AND error_type IS NOT NULL
GROUP BY error_type
ORDER BY 2 DESC
`)
	if err != nil {
		return nil, fmt.Errorf("query error stats: %w", err)
	}
	defer rows.Close()

	stats := []domain.ErrorStat{}
	for rows.Next() {
		var s domain.ErrorStat
		var errType string
		if err := rows.Scan(&errType, &s.Count); err != nil {
			return nil, fmt.Errorf("scan error stat: %w", err)
		}
		s.Type = domain.ErrorType(errType)
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *RecordRepository) dailyActivity(ctx context.Context, db *sql.DB, since time.Time) ([]domain.DayStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD'),
	COUNT(*),
	COUNT(*) FILTER (WHERE success IS NOT FALSE),
	COUNT(*) FILTER (WHERE success = FALSE)
FROM document_records
WHERE created_at >= $1
GROUP BY 1
ORDER BY 1
`, since)
	if err != nil {
		return nil, fmt.Errorf("query daily activity: %w", err)
	}
	defer rows.Close()

	days := []domain.DayStat{}
	for rows.Next() {
		var d domain.DayStat
		if err := rows.Scan(&d.Date, &d.Total, &d.Successful, &d.Failed); err != nil {
			return nil, fmt.Errorf("scan day stat: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

func (r *RecordRepository) performanceStats(ctx context.Context, db *sql.DB) (*domain.PerformanceStats, error) {
	row := db.QueryRowContext(ctx, `
SELECT COALESCE(AVG(processing_time_ms), 0),
	COALESCE(MIN(processing_time_ms), 0),
	COALESCE(MAX(processing_time_ms), 0),
	COALESCE(AVG(text_length), 0),
	COALESCE(AVG(file_size), 0),
	COALESCE(SUM(text_length), 0),
	COALESCE(SUM(CASE WHEN file_size > 0 THEN file_size ELSE 0 END), 0)
FROM document_records
`)

	var avgTime, avgText, avgSize float64
	perf := &domain.PerformanceStats{}
	if err := row.Scan(&avgTime, &perf.MinProcessingTime, &perf.MaxProcessingTime,
		&avgText, &avgSize, &perf.TotalTextProcessed, &perf.TotalFilesProcessed); err != nil {
		return nil, fmt.Errorf("scan performance stats: %w", err)
	}
	perf.AvgProcessingTime = int64(math.Round(avgTime))
	perf.AvgTextLength = int(math.Round(avgText))
	perf.AvgFileSize = int64(math.Round(avgSize))
	return perf, nil
}
