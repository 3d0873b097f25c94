package interfaces

import (
	"context"

	"fleetflow_quotes/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for MultiStateConsolidatedQuote.
//
// The quote service must be able to:
//   - insert a fully assembled quote under its generated ID
//   - fetch a quote by ID (zero-value quote, nil error when absent)
//   - list every quote sorted by lastModified descending
//   - apply a mutation atomically: Update runs fn inside the store's own
//     write path, so two concurrent updates to the same ID cannot lose a
//     writer's changes
//
// Implementations own their records exclusively; every quote handed out is a
// detached copy. Update calls fn only when the quote exists and persists the
// mutated quote only when fn returns nil. Not-found is never an error at this
// layer; the use case maps an empty ID to its own sentinel.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.MultiStateConsolidatedQuote) (entities.MultiStateConsolidatedQuote, error)
	GetByID(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error)
	GetAll(ctx context.Context) ([]entities.MultiStateConsolidatedQuote, error)
	Update(ctx context.Context, id string, fn func(q *entities.MultiStateConsolidatedQuote) error) (entities.MultiStateConsolidatedQuote, error)
}
