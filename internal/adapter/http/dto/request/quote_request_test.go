package request

import (
	"reflect"
	"testing"

	"fleetflow_quotes/internal/domain/entities"
)

func TestQuoteActionRequest_Resolvers(t *testing.T) {
	t.Run("quote id and role are trimmed", func(t *testing.T) {
		r := QuoteActionRequest{QuoteID: "  MSQ-1  ", Role: " Sales Manager "}
		if r.ResolveQuoteID() != "MSQ-1" {
			t.Fatalf("unexpected quote id: %q", r.ResolveQuoteID())
		}
		if r.ResolveRole() != "Sales Manager" {
			t.Fatalf("unexpected role: %q", r.ResolveRole())
		}
	})

	t.Run("nil quote resolves to empty draft", func(t *testing.T) {
		r := QuoteActionRequest{Action: ActionCreateQuote}
		draft := r.ResolveDraft()
		if !reflect.DeepEqual(draft, entities.QuoteDraft{}) {
			t.Fatalf("expected empty draft, got %+v", draft)
		}
	})

	t.Run("provided quote is passed through", func(t *testing.T) {
		r := QuoteActionRequest{
			Action: ActionCreateQuote,
			Quote:  &entities.QuoteDraft{QuoteName: "Acme Network"},
		}
		if r.ResolveDraft().QuoteName != "Acme Network" {
			t.Fatalf("unexpected draft: %+v", r.ResolveDraft())
		}
	})
}

func TestParseStates(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want []string
	}{
		{name: "plain", csv: "CA,TX", want: []string{"CA", "TX"}},
		{name: "lowercase and spaces", csv: " ca , tx ,il", want: []string{"CA", "TX", "IL"}},
		{name: "empty segments dropped", csv: "CA,,  ,TX", want: []string{"CA", "TX"}},
		{name: "empty input", csv: "", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseStates(tc.csv)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("want %v got %v", tc.want, got)
			}
		})
	}
}
