package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase/interfaces"
)

// QuoteMemoryRepository keeps quotes in a process-lifetime map. This is the
// default store: the quote book is working data, not a system of record.
//
// The store owns its records exclusively. Quotes are deep-copied on the way
// in and on the way out, so callers can never reach the stored record through
// a returned slice or pointer, and Update holds the write lock across the
// whole load-mutate-store sequence so concurrent updates to the same quote
// cannot lose a writer's changes.

type QuoteMemoryRepository struct {
	mu     sync.RWMutex
	quotes map[string]entities.MultiStateConsolidatedQuote
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{
		quotes: make(map[string]entities.MultiStateConsolidatedQuote),
	}
}

func (r *QuoteMemoryRepository) Create(ctx context.Context, q entities.MultiStateConsolidatedQuote) (entities.MultiStateConsolidatedQuote, error) {
	stored, err := copyQuote(q)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes[q.ID] = stored
	return q, nil
}

func (r *QuoteMemoryRepository) GetByID(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error) {
	r.mu.RLock()
	stored, ok := r.quotes[id]
	r.mu.RUnlock()

	if !ok {
		return entities.MultiStateConsolidatedQuote{}, nil
	}
	return copyQuote(stored)
}

func (r *QuoteMemoryRepository) GetAll(ctx context.Context) ([]entities.MultiStateConsolidatedQuote, error) {
	r.mu.RLock()
	quotes := make([]entities.MultiStateConsolidatedQuote, 0, len(r.quotes))
	for _, stored := range r.quotes {
		q, err := copyQuote(stored)
		if err != nil {
			r.mu.RUnlock()
			return nil, err
		}
		quotes = append(quotes, q)
	}
	r.mu.RUnlock()

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].LastModified.After(quotes[j].LastModified)
	})
	return quotes, nil
}

func (r *QuoteMemoryRepository) Update(ctx context.Context, id string, fn func(q *entities.MultiStateConsolidatedQuote) error) (entities.MultiStateConsolidatedQuote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.quotes[id]
	if !ok {
		return entities.MultiStateConsolidatedQuote{}, nil
	}

	q, err := copyQuote(stored)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	if err := fn(&q); err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}

	next, err := copyQuote(q)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	r.quotes[id] = next
	return q, nil
}

// copyQuote detaches a quote from the store's record via a JSON round trip;
// the aggregate is nested slices all the way down, so a field-by-field clone
// would be a maintenance hazard.
func copyQuote(q entities.MultiStateConsolidatedQuote) (entities.MultiStateConsolidatedQuote, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	var out entities.MultiStateConsolidatedQuote
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	return out, nil
}
