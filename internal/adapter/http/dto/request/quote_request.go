package request

import (
	"strings"

	"fleetflow_quotes/internal/domain/entities"
)

// Actions accepted on POST /multi-state-quotes.
const (
	ActionCreateQuote         = "create-quote"
	ActionUpdateQuote         = "update-quote"
	ActionSubmitQuote         = "submit-quote"
	ActionApproveQuote        = "approve-quote"
	ActionGenerateProposal    = "generate-proposal"
	ActionCompetitiveAnalysis = "competitive-analysis"
)

// QuoteActionRequest is the POST payload for every quote action. Which fields
// are required depends on the action; the handler validates per action.
type QuoteActionRequest struct {
	Action  string                `json:"action" binding:"required"`
	QuoteID string                `json:"quoteId"`
	Quote   *entities.QuoteDraft  `json:"quote"`
	Updates *entities.QuoteUpdate `json:"updates"`

	// approve-quote
	Role     string `json:"role"`
	Approver string `json:"approver"`
	Comments string `json:"comments"`
}

func (r QuoteActionRequest) ResolveQuoteID() string {
	return strings.TrimSpace(r.QuoteID)
}

func (r QuoteActionRequest) ResolveRole() string {
	return strings.TrimSpace(r.Role)
}

// ResolveDraft never returns nil; create-quote accepts an empty body and
// relies on assembly defaults.
func (r QuoteActionRequest) ResolveDraft() entities.QuoteDraft {
	if r.Quote == nil {
		return entities.QuoteDraft{}
	}
	return *r.Quote
}

// ParseStates splits the pricing-calculator csv query into cleaned codes.
func ParseStates(csv string) []string {
	parts := strings.Split(csv, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.ToUpper(strings.TrimSpace(p)); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
