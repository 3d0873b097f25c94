package handlers

import (
	"errors"
	"log"
	"net/http"

	request "fleetflow_quotes/internal/adapter/http/dto/request"
	response "fleetflow_quotes/internal/adapter/http/dto/response"
	"fleetflow_quotes/internal/usecase"
	"fleetflow_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errMissingQuoteID      = pkg.NewDomainErrorSimple("MISSING_QUOTE_ID", "Missing required parameter: quoteId", http.StatusBadRequest)
	errUnknownAction       = pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown or missing action", http.StatusBadRequest)
)

// QuoteHandler serves the /multi-state-quotes surface. GET and POST multiplex
// on an action parameter; DELETE soft-deletes by quoteId.

type QuoteHandler struct {
	quotes  usecase.IQuoteUseCase
	pricing usecase.IPricingUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, pricing usecase.IPricingUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, pricing: pricing}
}

func (h *QuoteHandler) HandleGet(c *gin.Context) {
	switch c.Query("action") {
	case "all-quotes":
		h.listQuotes(c)
	case "quote-details":
		h.quoteDetails(c)
	case "pricing-calculator":
		h.pricingCalculator(c)
	case "market-analysis":
		c.JSON(http.StatusOK, response.MarketAnalysisResponse{
			Success:  true,
			Analysis: h.pricing.MarketAnalysis(),
		})
	default:
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
	}
}

func (h *QuoteHandler) listQuotes(c *gin.Context) {
	quotes, summary, err := h.quotes.GetAll(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteList(quotes, summary))
}

func (h *QuoteHandler) quoteDetails(c *gin.Context) {
	quoteID := c.Query("quoteId")
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	quote, err := h.quotes.GetByID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pricing := h.pricing.CalculateConsolidatedPricing(quote.StateRoutes)
	optimization := h.pricing.RouteOptimization(quote.StateRoutes)
	c.JSON(http.StatusOK, response.FromQuoteDetails(quote, pricing, optimization))
}

func (h *QuoteHandler) pricingCalculator(c *gin.Context) {
	codes := request.ParseStates(c.Query("states"))
	if len(codes) == 0 {
		appErr := pkg.NewDomainErrorSimple("MISSING_STATES", "Missing required parameter: states", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	groups := h.pricing.SyntheticRouteGroups(codes)
	pricing := h.pricing.CalculateConsolidatedPricing(groups)
	c.JSON(http.StatusOK, response.PricingCalculatorResponse{
		Success:         true,
		Pricing:         pricing,
		Optimization:    h.pricing.RouteOptimization(groups),
		Recommendations: h.pricing.Recommendations(pricing),
	})
}

func (h *QuoteHandler) HandlePost(c *gin.Context) {
	var payload request.QuoteActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	switch payload.Action {
	case request.ActionCreateQuote:
		h.createQuote(c, payload)
	case request.ActionUpdateQuote:
		h.updateQuote(c, payload)
	case request.ActionSubmitQuote:
		h.submitQuote(c, payload)
	case request.ActionApproveQuote:
		h.approveQuote(c, payload)
	case request.ActionGenerateProposal:
		h.generateProposal(c, payload)
	case request.ActionCompetitiveAnalysis:
		h.competitiveAnalysis(c, payload)
	default:
		c.JSON(errUnknownAction.HTTPStatus, errUnknownAction.ToHTTPError())
	}
}

func (h *QuoteHandler) createQuote(c *gin.Context, payload request.QuoteActionRequest) {
	quote, err := h.quotes.Create(c.Request.Context(), payload.ResolveDraft())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] created quote_id=%s name=%q", quote.ID, quote.QuoteName)
	c.JSON(http.StatusCreated, response.FromQuote(quote, "Quote created"))
}

func (h *QuoteHandler) updateQuote(c *gin.Context, payload request.QuoteActionRequest) {
	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}
	if payload.Updates == nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_UPDATES", "Missing required field: updates", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.quotes.Update(c.Request.Context(), quoteID, *payload.Updates)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, "Quote updated"))
}

func (h *QuoteHandler) submitQuote(c *gin.Context, payload request.QuoteActionRequest) {
	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	quote, err := h.quotes.Submit(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, "Quote submitted"))
}

func (h *QuoteHandler) approveQuote(c *gin.Context, payload request.QuoteActionRequest) {
	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}
	role := payload.ResolveRole()
	if role == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_ROLE", "Missing required field: role", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.quotes.Approve(c.Request.Context(), quoteID, role, payload.Approver, payload.Comments)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote, "Approval recorded"))
}

func (h *QuoteHandler) generateProposal(c *gin.Context, payload request.QuoteActionRequest) {
	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	proposal, _, err := h.quotes.GenerateProposal(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProposalResponse{Success: true, Proposal: proposal, Message: "Proposal generated"})
}

func (h *QuoteHandler) competitiveAnalysis(c *gin.Context, payload request.QuoteActionRequest) {
	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	analysis, err := h.quotes.RefreshCompetitiveAnalysis(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CompetitiveAnalysisResponse{Success: true, Analysis: analysis, Message: "Competitive analysis refreshed"})
}

// HandleDelete soft-deletes: the quote flips to cancelled and stays listed.
func (h *QuoteHandler) HandleDelete(c *gin.Context) {
	quoteID := c.Query("quoteId")
	if quoteID == "" {
		c.JSON(errMissingQuoteID.HTTPStatus, errMissingQuoteID.ToHTTPError())
		return
	}

	quote, err := h.quotes.Cancel(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] cancelled quote_id=%s", quote.ID)
	c.JSON(http.StatusOK, response.FromQuote(quote, "Quote cancelled"))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrApprovalRoleUnknown):
		return pkg.NewDomainErrorSimple("APPROVAL_ROLE_UNKNOWN", "Approval role is not part of this quote's workflow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
