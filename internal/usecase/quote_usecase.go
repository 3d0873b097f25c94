package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound       = errors.New("quote not found")
	ErrInvalidQuoteID      = errors.New("invalid quote id")
	ErrApprovalRoleUnknown = errors.New("approval role not in workflow")
)

const quoteValidityDays = 30

// IQuoteUseCase exposes the multi-state quote lifecycle.
//
// Every mutation goes through the same merge path: the financial summary is
// recomputed from the merged state routes and lastModified is bumped. Quotes
// are soft-deleted only (Cancel); the record always survives.

type IQuoteUseCase interface {
	Create(ctx context.Context, draft entities.QuoteDraft) (entities.MultiStateConsolidatedQuote, error)
	GetByID(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error)
	GetAll(ctx context.Context) ([]entities.MultiStateConsolidatedQuote, entities.QuoteSummary, error)
	Update(ctx context.Context, id string, update entities.QuoteUpdate) (entities.MultiStateConsolidatedQuote, error)
	Submit(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error)
	Approve(ctx context.Context, id, role, approver, comments string) (entities.MultiStateConsolidatedQuote, error)
	Cancel(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error)
	GenerateProposal(ctx context.Context, id string) (entities.Proposal, entities.MultiStateConsolidatedQuote, error)
	RefreshCompetitiveAnalysis(ctx context.Context, id string) (entities.CompetitiveAnalysis, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	pricing     IPricingUseCase
	recommender interfaces.IRecommender
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, pricing IPricingUseCase, recommender interfaces.IRecommender) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, pricing: pricing, recommender: recommender}
}

// Create assembles a full quote record from a partial draft and stores it.
// Assembly never rejects draft content; omitted sections get defaults.
func (u *QuoteUseCase) Create(ctx context.Context, draft entities.QuoteDraft) (entities.MultiStateConsolidatedQuote, error) {
	now := time.Now().UTC()
	id := newQuoteID(now)

	stateRoutes := draft.StateRoutes
	if stateRoutes == nil {
		stateRoutes = []entities.StateRouteGroup{}
	}

	quoteName := strings.TrimSpace(draft.QuoteName)
	if quoteName == "" {
		quoteName = "Multi-State Quote " + id
	}

	var client entities.Client
	if draft.Client != nil {
		client = *draft.Client
	}

	pricingModel := defaultPricingModel()
	if draft.ConsolidatedPricing != nil {
		pricingModel = *draft.ConsolidatedPricing
	}
	sla := defaultSLA()
	if draft.SLA != nil {
		sla = *draft.SLA
	}
	contractTerms := defaultContractTerms(now)
	if draft.ContractTerms != nil {
		contractTerms = *draft.ContractTerms
	}

	financial := u.pricing.FinancialSummary(stateRoutes)

	quote := entities.MultiStateConsolidatedQuote{
		ID:             id,
		QuoteName:      quoteName,
		Client:         client,
		Status:         entities.QuoteStatusDraft,
		CreatedDate:    now,
		ExpirationDate: now.AddDate(0, 0, quoteValidityDays),
		LastModified:   now,

		StateRoutes:         stateRoutes,
		ConsolidatedPricing: pricingModel,
		SLA:                 sla,
		ContractTerms:       contractTerms,

		FinancialSummary:    financial,
		RiskAssessment:      u.pricing.AssessRisk(stateRoutes),
		CompetitiveAnalysis: u.recommender.CompetitiveAnalysis(),
		ImplementationPlan:  u.pricing.ImplementationPlan(stateRoutes),

		Documents:     []entities.Document{},
		InternalNotes: []entities.InternalNote{},
		ApprovalWorkflow: entities.ApprovalWorkflow{
			CurrentStage:      string(entities.QuoteStatusDraft),
			RequiredApprovals: requiredApprovals(financial.TotalAnnualRevenue),
		},
	}

	return u.repo.Create(ctx, quote)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MultiStateConsolidatedQuote{}, ErrInvalidQuoteID
	}

	quote, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	if quote.ID == "" {
		return entities.MultiStateConsolidatedQuote{}, ErrQuoteNotFound
	}
	return quote, nil
}

func (u *QuoteUseCase) GetAll(ctx context.Context) ([]entities.MultiStateConsolidatedQuote, entities.QuoteSummary, error) {
	quotes, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, entities.QuoteSummary{}, err
	}

	summary := entities.QuoteSummary{
		TotalQuotes:     len(quotes),
		StatusBreakdown: make(map[entities.QuoteStatus]int),
	}
	for _, q := range quotes {
		summary.TotalValue += q.FinancialSummary.TotalAnnualRevenue
		summary.StatusBreakdown[q.Status]++
	}
	if len(quotes) > 0 {
		summary.AverageValue = summary.TotalValue / float64(len(quotes))
	}
	return quotes, summary, nil
}

// Update merges the partial update over the stored quote. Fields the update
// leaves nil keep their current value; the financial summary is always
// recomputed from the merged state routes.
func (u *QuoteUseCase) Update(ctx context.Context, id string, update entities.QuoteUpdate) (entities.MultiStateConsolidatedQuote, error) {
	return u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		if update.QuoteName != nil {
			quote.QuoteName = *update.QuoteName
		}
		if update.Client != nil {
			quote.Client = *update.Client
		}
		if update.Status != nil {
			quote.Status = *update.Status
		}
		if update.ExpirationDate != nil {
			quote.ExpirationDate = *update.ExpirationDate
		}
		if update.StateRoutes != nil {
			quote.StateRoutes = update.StateRoutes
		}
		if update.ConsolidatedPricing != nil {
			quote.ConsolidatedPricing = *update.ConsolidatedPricing
		}
		if update.SLA != nil {
			quote.SLA = *update.SLA
		}
		if update.ContractTerms != nil {
			quote.ContractTerms = *update.ContractTerms
		}
		if update.Documents != nil {
			quote.Documents = update.Documents
		}
		if update.InternalNotes != nil {
			quote.InternalNotes = update.InternalNotes
		}
		return nil
	})
}

func (u *QuoteUseCase) Submit(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error) {
	return u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		now := time.Now().UTC()
		quote.Status = entities.QuoteStatusSubmitted
		quote.SubmittedDate = &now
		quote.ApprovalWorkflow.CurrentStage = string(entities.QuoteStatusSubmitted)
		return nil
	})
}

// Approve records one role's approval. The overall status flips to approved
// only when every required approval is approved; until then the quote sits
// in under_review.
func (u *QuoteUseCase) Approve(ctx context.Context, id, role, approver, comments string) (entities.MultiStateConsolidatedQuote, error) {
	role = strings.TrimSpace(role)
	return u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		idx := -1
		for i, approval := range quote.ApprovalWorkflow.RequiredApprovals {
			if approval.Role == role {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrApprovalRoleUnknown
		}

		now := time.Now().UTC()
		approval := &quote.ApprovalWorkflow.RequiredApprovals[idx]
		approval.Status = entities.ApprovalStatusApproved
		approval.Approver = approver
		approval.Timestamp = &now
		approval.Comments = comments

		allApproved := true
		for _, a := range quote.ApprovalWorkflow.RequiredApprovals {
			if a.Status != entities.ApprovalStatusApproved {
				allApproved = false
				break
			}
		}
		if allApproved {
			quote.Status = entities.QuoteStatusApproved
			quote.ApprovalWorkflow.CurrentStage = string(entities.QuoteStatusApproved)
		} else {
			quote.Status = entities.QuoteStatusUnderReview
			quote.ApprovalWorkflow.CurrentStage = string(entities.QuoteStatusUnderReview)
		}
		return nil
	})
}

// Cancel is the delete path: the quote transitions to cancelled and stays in
// the store.
func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.MultiStateConsolidatedQuote, error) {
	return u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		quote.Status = entities.QuoteStatusCancelled
		quote.ApprovalWorkflow.CurrentStage = string(entities.QuoteStatusCancelled)
		return nil
	})
}

// GenerateProposal builds the client-facing proposal for a quote and records
// it on the quote's document list.
func (u *QuoteUseCase) GenerateProposal(ctx context.Context, id string) (entities.Proposal, entities.MultiStateConsolidatedQuote, error) {
	var proposal entities.Proposal
	quote, err := u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		now := time.Now().UTC()
		proposal = entities.Proposal{
			QuoteID:       quote.ID,
			Title:         quote.QuoteName + " - Consolidated Transportation Proposal",
			PreparedFor:   quote.Client.Name,
			GeneratedDate: now,
			Sections: []string{
				"Executive Summary",
				"Multi-State Network Overview",
				"Consolidated Pricing",
				"Service Level Agreement",
				"Implementation Plan",
				"Contract Terms",
			},
			TotalValue: quote.FinancialSummary.TotalAnnualRevenue,
			ValidUntil: quote.ExpirationDate,
		}
		quote.Documents = append(quote.Documents, entities.Document{
			ID:          "DOC-" + uuid.NewString(),
			Name:        proposal.Title,
			Type:        entities.DocumentProposal,
			CreatedDate: now,
		})
		return nil
	})
	if err != nil {
		return entities.Proposal{}, entities.MultiStateConsolidatedQuote{}, err
	}
	return proposal, quote, nil
}

// RefreshCompetitiveAnalysis re-runs the recommender for a quote and stores
// the result.
func (u *QuoteUseCase) RefreshCompetitiveAnalysis(ctx context.Context, id string) (entities.CompetitiveAnalysis, error) {
	quote, err := u.mutate(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		quote.CompetitiveAnalysis = u.recommender.CompetitiveAnalysis()
		return nil
	})
	if err != nil {
		return entities.CompetitiveAnalysis{}, err
	}
	return quote.CompetitiveAnalysis, nil
}

// mutate applies fn to a quote through the repository's atomic update, so the
// load-mutate-store sequence cannot interleave with another writer on the
// same quote. The financial summary is recomputed from the merged state
// routes and lastModified is bumped inside the same update.
func (u *QuoteUseCase) mutate(
	ctx context.Context,
	id string,
	fn func(quote *entities.MultiStateConsolidatedQuote) error,
) (entities.MultiStateConsolidatedQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MultiStateConsolidatedQuote{}, ErrInvalidQuoteID
	}

	quote, err := u.repo.Update(ctx, id, func(quote *entities.MultiStateConsolidatedQuote) error {
		if err := fn(quote); err != nil {
			return err
		}
		quote.FinancialSummary = u.pricing.FinancialSummary(quote.StateRoutes)
		quote.LastModified = time.Now().UTC()
		return nil
	})
	if err != nil {
		return entities.MultiStateConsolidatedQuote{}, err
	}
	if quote.ID == "" {
		return entities.MultiStateConsolidatedQuote{}, ErrQuoteNotFound
	}
	return quote, nil
}

// newQuoteID keeps the historical MSQ-<millis>-<suffix> shape; the suffix
// comes from a UUID so uniqueness does not depend on the clock.
func newQuoteID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("MSQ-%d-%s", now.UnixMilli(), suffix)
}
