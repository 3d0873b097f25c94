package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleetflow_quotes/internal/adapter/http/handlers/mocks"
	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type handlerEnv struct {
	quotes  *mocks.MockIQuoteUseCase
	pricing *mocks.MockIPricingUseCase
	router  *gin.Engine
}

func newHandlerEnv(t *testing.T) handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	pricing := mocks.NewMockIPricingUseCase(ctrl)
	h := NewQuoteHandler(quotes, pricing)

	r := gin.New()
	r.GET("/v1/multi-state-quotes", h.HandleGet)
	r.POST("/v1/multi-state-quotes", h.HandlePost)
	r.DELETE("/v1/multi-state-quotes", h.HandleDelete)

	return handlerEnv{quotes: quotes, pricing: pricing, router: r}
}

func (e handlerEnv) get(t *testing.T, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/multi-state-quotes"+query, nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e handlerEnv) post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/multi-state-quotes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestQuoteHandler_HandleGet(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.get(t, "?action=does-not-exist")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Success || body.Code != "UNKNOWN_ACTION" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("missing action", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.get(t, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("all-quotes", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().GetAll(gomock.Any()).Return(
			[]entities.MultiStateConsolidatedQuote{{ID: "MSQ-1"}},
			entities.QuoteSummary{TotalQuotes: 1, TotalValue: 500, AverageValue: 500},
			nil,
		)

		w := env.get(t, "?action=all-quotes")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool                                   `json:"success"`
			Quotes  []entities.MultiStateConsolidatedQuote `json:"quotes"`
			Summary entities.QuoteSummary                  `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || len(body.Quotes) != 1 || body.Summary.TotalQuotes != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("quote-details missing id", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.get(t, "?action=quote-details")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "MISSING_QUOTE_ID" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("quote-details not found", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().GetByID(gomock.Any(), "MSQ-404").Return(entities.MultiStateConsolidatedQuote{}, usecase.ErrQuoteNotFound)

		w := env.get(t, "?action=quote-details&quoteId=MSQ-404")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Success || body.Error != "Quote not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("quote-details success", func(t *testing.T) {
		env := newHandlerEnv(t)
		quote := entities.MultiStateConsolidatedQuote{
			ID:          "MSQ-1",
			StateRoutes: []entities.StateRouteGroup{{State: "TX"}},
		}
		env.quotes.EXPECT().GetByID(gomock.Any(), "MSQ-1").Return(quote, nil)
		env.pricing.EXPECT().CalculateConsolidatedPricing(quote.StateRoutes).Return(entities.PricingResult{TotalAnnualRevenue: 1000})
		env.pricing.EXPECT().RouteOptimization(quote.StateRoutes).Return(entities.RouteOptimization{})

		w := env.get(t, "?action=quote-details&quoteId=MSQ-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool                   `json:"success"`
			Pricing entities.PricingResult `json:"pricing"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Pricing.TotalAnnualRevenue != 1000 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("pricing-calculator missing states", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.get(t, "?action=pricing-calculator")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "MISSING_STATES" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("pricing-calculator success", func(t *testing.T) {
		env := newHandlerEnv(t)
		groups := []entities.StateRouteGroup{{State: "CA"}, {State: "TX"}}
		result := entities.PricingResult{TotalAnnualRevenue: 2500}
		env.pricing.EXPECT().SyntheticRouteGroups([]string{"CA", "TX"}).Return(groups)
		env.pricing.EXPECT().CalculateConsolidatedPricing(groups).Return(result)
		env.pricing.EXPECT().RouteOptimization(groups).Return(entities.RouteOptimization{})
		env.pricing.EXPECT().Recommendations(result).Return([]string{"consolidate more lanes"})

		w := env.get(t, "?action=pricing-calculator&states=ca,%20tx")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success         bool     `json:"success"`
			Recommendations []string `json:"recommendations"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || len(body.Recommendations) != 1 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("market-analysis", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.pricing.EXPECT().MarketAnalysis().Return(entities.MarketAnalysis{MarketPosition: "aggressive"})

		w := env.get(t, "?action=market-analysis")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_HandlePost(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.post(t, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_QUOTE_INPUT" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.post(t, `{"action":"destroy-quote"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "UNKNOWN_ACTION" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("create-quote", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.QuoteDraft{})).DoAndReturn(
			func(_ context.Context, draft entities.QuoteDraft) (entities.MultiStateConsolidatedQuote, error) {
				if draft.QuoteName != "New Network" {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.MultiStateConsolidatedQuote{ID: "MSQ-1", QuoteName: draft.QuoteName}, nil
			},
		)

		w := env.post(t, `{"action":"create-quote","quote":{"quoteName":"New Network"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Success bool                                  `json:"success"`
			Quote   *entities.MultiStateConsolidatedQuote `json:"quote"`
			Message string                                `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Quote == nil || body.Quote.ID != "MSQ-1" || body.Message != "Quote created" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("create-quote without draft body", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Create(gomock.Any(), entities.QuoteDraft{}).Return(entities.MultiStateConsolidatedQuote{ID: "MSQ-1"}, nil)

		w := env.post(t, `{"action":"create-quote"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update-quote missing id", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.post(t, `{"action":"update-quote","updates":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "MISSING_QUOTE_ID" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("update-quote missing updates", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.post(t, `{"action":"update-quote","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "MISSING_UPDATES" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("update-quote success", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Update(gomock.Any(), "MSQ-1", gomock.AssignableToTypeOf(entities.QuoteUpdate{})).DoAndReturn(
			func(_ context.Context, id string, update entities.QuoteUpdate) (entities.MultiStateConsolidatedQuote, error) {
				if update.QuoteName == nil || *update.QuoteName != "Renamed" {
					t.Fatalf("unexpected update: %+v", update)
				}
				return entities.MultiStateConsolidatedQuote{ID: id, QuoteName: *update.QuoteName}, nil
			},
		)

		w := env.post(t, `{"action":"update-quote","quoteId":"MSQ-1","updates":{"quoteName":"Renamed"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("submit-quote", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Submit(gomock.Any(), "MSQ-1").Return(entities.MultiStateConsolidatedQuote{ID: "MSQ-1", Status: entities.QuoteStatusSubmitted}, nil)

		w := env.post(t, `{"action":"submit-quote","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("approve-quote missing role", func(t *testing.T) {
		env := newHandlerEnv(t)

		w := env.post(t, `{"action":"approve-quote","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "MISSING_ROLE" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("approve-quote unknown role", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Approve(gomock.Any(), "MSQ-1", "Janitor", "", "").Return(entities.MultiStateConsolidatedQuote{}, usecase.ErrApprovalRoleUnknown)

		w := env.post(t, `{"action":"approve-quote","quoteId":"MSQ-1","role":"Janitor"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "APPROVAL_ROLE_UNKNOWN" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("approve-quote success", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Approve(gomock.Any(), "MSQ-1", "Sales Manager", "pat", "lgtm").Return(entities.MultiStateConsolidatedQuote{ID: "MSQ-1", Status: entities.QuoteStatusUnderReview}, nil)

		w := env.post(t, `{"action":"approve-quote","quoteId":"MSQ-1","role":"Sales Manager","approver":"pat","comments":"lgtm"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("generate-proposal", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().GenerateProposal(gomock.Any(), "MSQ-1").Return(
			entities.Proposal{QuoteID: "MSQ-1", Title: "Acme - Consolidated Transportation Proposal"},
			entities.MultiStateConsolidatedQuote{ID: "MSQ-1"},
			nil,
		)

		w := env.post(t, `{"action":"generate-proposal","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success  bool              `json:"success"`
			Proposal entities.Proposal `json:"proposal"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Proposal.QuoteID != "MSQ-1" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("competitive-analysis", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().RefreshCompetitiveAnalysis(gomock.Any(), "MSQ-1").Return(entities.CompetitiveAnalysis{WinProbability: 75}, nil)

		w := env.post(t, `{"action":"competitive-analysis","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Submit(gomock.Any(), "MSQ-1").Return(entities.MultiStateConsolidatedQuote{}, errors.New("boom"))

		w := env.post(t, `{"action":"submit-quote","quoteId":"MSQ-1"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body.Error != "Internal server error" {
			t.Fatalf("internal details must not leak: %+v", body)
		}
	})
}

func TestQuoteHandler_HandleDelete(t *testing.T) {
	t.Run("missing quote id", func(t *testing.T) {
		env := newHandlerEnv(t)

		req := httptest.NewRequest(http.MethodDelete, "/v1/multi-state-quotes", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("soft delete", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Cancel(gomock.Any(), "MSQ-1").Return(entities.MultiStateConsolidatedQuote{ID: "MSQ-1", Status: entities.QuoteStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/multi-state-quotes?quoteId=MSQ-1", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool                                  `json:"success"`
			Quote   *entities.MultiStateConsolidatedQuote `json:"quote"`
			Message string                                `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if !body.Success || body.Quote.Status != entities.QuoteStatusCancelled || body.Message != "Quote cancelled" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("not found", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.quotes.EXPECT().Cancel(gomock.Any(), "MSQ-404").Return(entities.MultiStateConsolidatedQuote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/multi-state-quotes?quoteId=MSQ-404", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
