package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ekomarov/docsight/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type repoFake struct {
	created       []domain.Record
	createErr     error
	records       []domain.Record
	listErr       error
	listLimit     int
	backfilled    int64
	backfillErr   error
	backfillCalls int
	snapshot      domain.AnalyticsSnapshot
	analyticsErr  error
}

func (f *repoFake) Create(_ context.Context, rec domain.Record) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, rec)
	return nil
}

func (f *repoFake) ListRecent(_ context.Context, limit int) ([]domain.Record, error) {
	f.listLimit = limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records, nil
}

func (f *repoFake) BackfillLegacyFields(context.Context) (int64, error) {
	f.backfillCalls++
	return f.backfilled, f.backfillErr
}

func (f *repoFake) Analytics(context.Context, time.Time) (domain.AnalyticsSnapshot, error) {
	if f.analyticsErr != nil {
		return domain.AnalyticsSnapshot{}, f.analyticsErr
	}
	return f.snapshot, nil
}

type extractorFake struct {
	extraction domain.Extraction
	err        error
	calls      int
}

func (f *extractorFake) Extract(context.Context, []byte, string) (domain.Extraction, error) {
	f.calls++
	if f.err != nil {
		return domain.Extraction{}, f.err
	}
	return f.extraction, nil
}

type spoolFake struct {
	saveErr   error
	savedPath string
	removed   []string
}

func (f *spoolFake) Save(context.Context, []byte) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.savedPath = "/tmp/spool/pdf-test.pdf"
	return f.savedPath, nil
}

func (f *spoolFake) Remove(_ context.Context, path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type publisherFake struct {
	ids []string
	err error
}

func (f *publisherFake) PublishRecordCreated(_ context.Context, recordID string) error {
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, recordID)
	return nil
}

type cacheFake struct {
	snapshot domain.InsightsSnapshot
	hit      bool
	getErr   error
	setErr   error
	stored   *domain.InsightsSnapshot
}

func (f *cacheFake) Get(context.Context) (domain.InsightsSnapshot, bool, error) {
	if f.getErr != nil {
		return domain.InsightsSnapshot{}, false, f.getErr
	}
	return f.snapshot, f.hit, nil
}

func (f *cacheFake) Set(_ context.Context, snapshot domain.InsightsSnapshot) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = &snapshot
	return nil
}

type toolkitFake struct {
	sentences []string
	entities  domain.EntitySet
	lastText  string
}

func (f *toolkitFake) Sentences(text string) []string {
	f.lastText = text
	return f.sentences
}

func (f *toolkitFake) Entities(string) domain.EntitySet {
	return f.entities
}
