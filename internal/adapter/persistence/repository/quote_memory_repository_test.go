package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"fleetflow_quotes/internal/domain/entities"
)

func memQuote(id string, lastModified time.Time) entities.MultiStateConsolidatedQuote {
	return entities.MultiStateConsolidatedQuote{
		ID:           id,
		QuoteName:    "Quote " + id,
		Status:       entities.QuoteStatusDraft,
		LastModified: lastModified,
	}
}

func TestQuoteMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, memQuote("MSQ-1", time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "MSQ-1" {
		t.Fatalf("unexpected created quote: %+v", created)
	}

	got, err := repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "MSQ-1" || got.QuoteName != "Quote MSQ-1" {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestQuoteMemoryRepository_GetByIDMissing(t *testing.T) {
	repo := NewQuoteMemoryRepository()

	got, err := repo.GetByID(context.Background(), "MSQ-404")
	if err != nil {
		t.Fatalf("missing quote must not error, got %v", err)
	}
	if got.ID != "" {
		t.Fatalf("expected zero quote, got %+v", got)
	}
}

func TestQuoteMemoryRepository_GetAllOrdering(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("MSQ-%d", i)
		if _, err := repo.Create(ctx, memQuote(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	quotes, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 5 {
		t.Fatalf("expected 5 quotes, got %d", len(quotes))
	}
	for i := 1; i < len(quotes); i++ {
		if quotes[i].LastModified.After(quotes[i-1].LastModified) {
			t.Fatalf("quotes not sorted by lastModified descending: %v before %v",
				quotes[i-1].LastModified, quotes[i].LastModified)
		}
	}
	if quotes[0].ID != "MSQ-4" {
		t.Fatalf("expected most recently modified first, got %s", quotes[0].ID)
	}
}

func TestQuoteMemoryRepository_Update(t *testing.T) {
	t.Run("applies the mutation and persists it", func(t *testing.T) {
		repo := NewQuoteMemoryRepository()
		ctx := context.Background()

		if _, err := repo.Create(ctx, memQuote("MSQ-1", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := repo.Update(ctx, "MSQ-1", func(q *entities.MultiStateConsolidatedQuote) error {
			q.Status = entities.QuoteStatusCancelled
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.QuoteStatusCancelled {
			t.Fatalf("mutation not applied: %+v", updated)
		}

		got, err := repo.GetByID(ctx, "MSQ-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuoteStatusCancelled {
			t.Fatalf("update not persisted: %+v", got)
		}

		quotes, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 1 {
			t.Fatalf("update must not duplicate, got %d quotes", len(quotes))
		}
	})

	t.Run("missing quote returns zero without running the mutation", func(t *testing.T) {
		repo := NewQuoteMemoryRepository()

		called := false
		got, err := repo.Update(context.Background(), "MSQ-404", func(q *entities.MultiStateConsolidatedQuote) error {
			called = true
			return nil
		})
		if err != nil {
			t.Fatalf("missing quote must not error, got %v", err)
		}
		if got.ID != "" || called {
			t.Fatalf("expected zero quote and no mutation, got %+v (called=%v)", got, called)
		}
	})

	t.Run("mutation error leaves the record untouched", func(t *testing.T) {
		repo := NewQuoteMemoryRepository()
		ctx := context.Background()

		if _, err := repo.Create(ctx, memQuote("MSQ-1", time.Now())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantErr := errors.New("no")
		_, err := repo.Update(ctx, "MSQ-1", func(q *entities.MultiStateConsolidatedQuote) error {
			q.Status = entities.QuoteStatusCancelled
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected mutation error, got %v", err)
		}

		got, err := repo.GetByID(ctx, "MSQ-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.QuoteStatusDraft {
			t.Fatalf("failed mutation must not persist: %+v", got)
		}
	})
}

func TestQuoteMemoryRepository_ConcurrentWriters(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("MSQ-%d", i)
			if _, err := repo.Create(ctx, memQuote(id, time.Now())); err != nil {
				t.Errorf("create %s: %v", id, err)
				return
			}
			_, err := repo.Update(ctx, id, func(q *entities.MultiStateConsolidatedQuote) error {
				q.Status = entities.QuoteStatusSubmitted
				return nil
			})
			if err != nil {
				t.Errorf("update %s: %v", id, err)
			}
			if _, err := repo.GetAll(ctx); err != nil {
				t.Errorf("get all: %v", err)
			}
		}(i)
	}
	wg.Wait()

	quotes, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotes) != 50 {
		t.Fatalf("expected 50 quotes, got %d", len(quotes))
	}
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusSubmitted {
			t.Fatalf("lost update on %s: %+v", q.ID, q)
		}
	}
}

func TestQuoteMemoryRepository_ConcurrentUpdatesSameQuote(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	quote := memQuote("MSQ-1", time.Now())
	quote.InternalNotes = []entities.InternalNote{}
	if _, err := repo.Create(ctx, quote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Two writers touching different fields of the same quote: both changes
	// must survive, whichever lands first.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := repo.Update(ctx, "MSQ-1", func(q *entities.MultiStateConsolidatedQuote) error {
			q.QuoteName = "Renamed Network"
			return nil
		})
		if err != nil {
			t.Errorf("rename: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		_, err := repo.Update(ctx, "MSQ-1", func(q *entities.MultiStateConsolidatedQuote) error {
			q.Status = entities.QuoteStatusSubmitted
			return nil
		})
		if err != nil {
			t.Errorf("submit: %v", err)
		}
	}()
	wg.Wait()

	got, err := repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.QuoteName != "Renamed Network" {
		t.Fatalf("rename lost: %+v", got)
	}
	if got.Status != entities.QuoteStatusSubmitted {
		t.Fatalf("status change lost: %+v", got)
	}

	// Many writers appending to the same list: every append must be kept.
	const writers = 50
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.Update(ctx, "MSQ-1", func(q *entities.MultiStateConsolidatedQuote) error {
				q.InternalNotes = append(q.InternalNotes, entities.InternalNote{
					ID:   fmt.Sprintf("NOTE-%d", i),
					Note: "reviewed",
				})
				return nil
			})
			if err != nil {
				t.Errorf("append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	got, err = repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.InternalNotes) != writers {
		t.Fatalf("expected %d notes, got %d", writers, len(got.InternalNotes))
	}
}

func TestQuoteMemoryRepository_ReturnsDetachedCopies(t *testing.T) {
	repo := NewQuoteMemoryRepository()
	ctx := context.Background()

	quote := memQuote("MSQ-1", time.Now())
	quote.ApprovalWorkflow.RequiredApprovals = []entities.RequiredApproval{
		{Role: "Sales Manager", Status: entities.ApprovalStatusPending},
	}
	if _, err := repo.Create(ctx, quote); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Writing through a returned quote's slices must never reach the store.
	got, err := repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got.ApprovalWorkflow.RequiredApprovals[0].Status = entities.ApprovalStatusApproved

	stored, err := repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ApprovalWorkflow.RequiredApprovals[0].Status != entities.ApprovalStatusPending {
		t.Fatalf("stored record reachable through a returned quote: %+v", stored.ApprovalWorkflow)
	}

	// Same for the caller's input and for listed quotes.
	quote.ApprovalWorkflow.RequiredApprovals[0].Role = "Janitor"
	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if all[0].ApprovalWorkflow.RequiredApprovals[0].Role != "Sales Manager" {
		t.Fatalf("stored record reachable through the caller's input: %+v", all[0].ApprovalWorkflow)
	}
	all[0].ApprovalWorkflow.RequiredApprovals[0].Status = entities.ApprovalStatusRejected

	stored, err = repo.GetByID(ctx, "MSQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.ApprovalWorkflow.RequiredApprovals[0].Status != entities.ApprovalStatusPending {
		t.Fatalf("stored record reachable through a listed quote: %+v", stored.ApprovalWorkflow)
	}
}
