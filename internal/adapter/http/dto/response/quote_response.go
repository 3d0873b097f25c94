package response

import (
	"fleetflow_quotes/internal/domain/entities"
)

type QuoteResponse struct {
	Success bool                                  `json:"success"`
	Quote   *entities.MultiStateConsolidatedQuote `json:"quote"`
	Message string                                `json:"message,omitempty"`
}

func FromQuote(q entities.MultiStateConsolidatedQuote, message string) QuoteResponse {
	return QuoteResponse{Success: true, Quote: &q, Message: message}
}

type QuoteListResponse struct {
	Success bool                                   `json:"success"`
	Quotes  []entities.MultiStateConsolidatedQuote `json:"quotes"`
	Summary entities.QuoteSummary                  `json:"summary"`
}

func FromQuoteList(quotes []entities.MultiStateConsolidatedQuote, summary entities.QuoteSummary) QuoteListResponse {
	if quotes == nil {
		quotes = []entities.MultiStateConsolidatedQuote{}
	}
	return QuoteListResponse{Success: true, Quotes: quotes, Summary: summary}
}

type QuoteDetailsResponse struct {
	Success      bool                                  `json:"success"`
	Quote        *entities.MultiStateConsolidatedQuote `json:"quote"`
	Pricing      entities.PricingResult                `json:"pricing"`
	Optimization entities.RouteOptimization            `json:"optimization"`
}

func FromQuoteDetails(q entities.MultiStateConsolidatedQuote, pricing entities.PricingResult, optimization entities.RouteOptimization) QuoteDetailsResponse {
	return QuoteDetailsResponse{Success: true, Quote: &q, Pricing: pricing, Optimization: optimization}
}

type PricingCalculatorResponse struct {
	Success         bool                       `json:"success"`
	Pricing         entities.PricingResult     `json:"pricing"`
	Optimization    entities.RouteOptimization `json:"optimization"`
	Recommendations []string                   `json:"recommendations"`
}

type MarketAnalysisResponse struct {
	Success  bool                    `json:"success"`
	Analysis entities.MarketAnalysis `json:"analysis"`
}

type ProposalResponse struct {
	Success  bool              `json:"success"`
	Proposal entities.Proposal `json:"proposal"`
	Message  string            `json:"message,omitempty"`
}

type CompetitiveAnalysisResponse struct {
	Success  bool                         `json:"success"`
	Analysis entities.CompetitiveAnalysis `json:"analysis"`
	Message  string                       `json:"message,omitempty"`
}
