package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ekomarov/docsight/internal/core/domain"
)

func TestHistoryBackfillsAndLists(t *testing.T) {
	repo := &repoFake{
		backfilled: 4,
		records: []domain.Record{
			{ID: "a", FileName: "report.pdf", DocumentType: domain.TypeTechnical, Summary: "System design overview"},
		},
	}
	uc := NewHistoryUseCase(repo, discardLogger())

	records, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if repo.backfillCalls != 1 {
		t.Fatalf("backfill calls = %d, want 1", repo.backfillCalls)
	}
	if repo.listLimit != historyLimit {
		t.Fatalf("list limit = %d, want %d", repo.listLimit, historyLimit)
	}
	if len(records) != 1 || records[0].ID != "a" {
		t.Fatalf("records = %+v", records)
	}
}

func TestHistoryRetagsUncategorizedRecords(t *testing.T) {
	repo := &repoFake{records: []domain.Record{
		{ID: "a", FileName: "doc.pdf", DocumentType: domain.TypeOther,
			Summary: "The invoice covers the billed amount due with payment terms and the invoice number."},
		{ID: "b", FileName: "doc2.pdf", DocumentType: domain.TypeOther, Summary: ""},
		{ID: "c", FileName: "doc3.pdf", DocumentType: domain.TypeContract, Summary: "Signed agreement"},
	}}
	uc := NewHistoryUseCase(repo, discardLogger())

	records, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if records[0].DocumentType != domain.TypeInvoice {
		t.Fatalf("retagged type = %q, want invoice", records[0].DocumentType)
	}
	if records[1].DocumentType != domain.TypeOther {
		t.Fatalf("empty-summary record retagged to %q", records[1].DocumentType)
	}
	if records[2].DocumentType != domain.TypeContract {
		t.Fatalf("already-typed record changed to %q", records[2].DocumentType)
	}
}

func TestHistoryToleratesBackfillFailure(t *testing.T) {
	repo := &repoFake{backfillErr: errors.New("db busy"), records: []domain.Record{{ID: "a"}}}
	uc := NewHistoryUseCase(repo, discardLogger())

	records, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %+v", records)
	}
}

func TestHistorySurfacesListFailure(t *testing.T) {
	repo := &repoFake{listErr: errors.New("connection refused")}
	uc := NewHistoryUseCase(repo, discardLogger())

	if _, err := uc.History(context.Background()); err == nil {
		t.Fatal("expected error when listing fails")
	}
}
