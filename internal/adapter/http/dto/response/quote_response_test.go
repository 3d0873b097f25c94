package response

import (
	"encoding/json"
	"strings"
	"testing"

	"fleetflow_quotes/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	resp := FromQuote(entities.MultiStateConsolidatedQuote{ID: "MSQ-1"}, "Quote created")
	if !resp.Success || resp.Quote == nil || resp.Quote.ID != "MSQ-1" || resp.Message != "Quote created" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestFromQuoteList(t *testing.T) {
	t.Run("nil quotes serialize as empty array", func(t *testing.T) {
		resp := FromQuoteList(nil, entities.QuoteSummary{})
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(raw), `"quotes":[]`) {
			t.Fatalf("expected empty array, got %s", raw)
		}
	})

	t.Run("quotes and summary pass through", func(t *testing.T) {
		resp := FromQuoteList(
			[]entities.MultiStateConsolidatedQuote{{ID: "MSQ-1"}},
			entities.QuoteSummary{TotalQuotes: 1},
		)
		if !resp.Success || len(resp.Quotes) != 1 || resp.Summary.TotalQuotes != 1 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestFromQuoteDetails(t *testing.T) {
	resp := FromQuoteDetails(
		entities.MultiStateConsolidatedQuote{ID: "MSQ-1"},
		entities.PricingResult{TotalAnnualRevenue: 1000},
		entities.RouteOptimization{},
	)
	if !resp.Success || resp.Quote == nil || resp.Pricing.TotalAnnualRevenue != 1000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
