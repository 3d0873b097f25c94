package entities

import "time"

// QuoteStatus represents the lifecycle of a multi-state consolidated quote.
//
// Domain notes:
//   - The quote service is the source of truth for quote state.
//   - Quotes are never physically deleted; the delete path transitions the
//     quote to QuoteStatusCancelled and keeps the record.

type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusSubmitted   QuoteStatus = "submitted"
	QuoteStatusUnderReview QuoteStatus = "under_review"
	QuoteStatusNegotiating QuoteStatus = "negotiating"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusExpired     QuoteStatus = "expired"
	QuoteStatusCancelled   QuoteStatus = "cancelled"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type Client struct {
	Name          string  `json:"name"`
	Industry      string  `json:"industry"`
	Headquarters  string  `json:"headquarters"`
	AnnualRevenue float64 `json:"annualRevenue,omitempty"`
	Employees     int     `json:"employees,omitempty"`
	ContactPerson string  `json:"contactPerson"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
}

type FinancialSummary struct {
	TotalAnnualVolume     float64 `json:"totalAnnualVolume"` // estimated loads
	TotalAnnualMiles      float64 `json:"totalAnnualMiles"`
	TotalAnnualRevenue    float64 `json:"totalAnnualRevenue"`
	AverageRevenuePerLoad float64 `json:"averageRevenuePerLoad"`
	ProfitMargin          float64 `json:"profitMargin"`
	ROI                   float64 `json:"roi"`
	PaybackPeriod         float64 `json:"paybackPeriod"` // months
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RiskFactor struct {
	Category   string    `json:"category"`
	Risk       string    `json:"risk"`
	Impact     RiskLevel `json:"impact"`
	Mitigation string    `json:"mitigation"`
}

type RiskAssessment struct {
	OverallRisk           RiskLevel    `json:"overallRisk"`
	RiskFactors           []RiskFactor `json:"riskFactors"`
	CreditRating          string       `json:"creditRating,omitempty"`
	InsuranceRequirements []string     `json:"insuranceRequirements"`
}

type PricingPosition string

const (
	PricingPositionAggressive  PricingPosition = "aggressive"
	PricingPositionCompetitive PricingPosition = "competitive"
	PricingPositionPremium     PricingPosition = "premium"
)

type CompetitiveAnalysis struct {
	Competitors        []string        `json:"competitors"`
	OurAdvantages      []string        `json:"ourAdvantages"`
	PricingPosition    PricingPosition `json:"pricingPosition"`
	WinProbability     float64         `json:"winProbability"` // percentage
	KeyDifferentiators []string        `json:"keyDifferentiators"`
}

type ImplementationPhase struct {
	Phase       int      `json:"phase"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // days
	Milestones  []string `json:"milestones"`
	Resources   []string `json:"resources"`
}

type ImplementationPlan struct {
	Phases                  []ImplementationPhase `json:"phases"`
	TotalImplementationTime int                   `json:"totalImplementationTime"` // days
	TrainingRequirements    []string              `json:"trainingRequirements"`
	TechnologyRequirements  []string              `json:"technologyRequirements"`
}

type DocumentType string

const (
	DocumentProposal     DocumentType = "proposal"
	DocumentContract     DocumentType = "contract"
	DocumentSLA          DocumentType = "sla"
	DocumentPricing      DocumentType = "pricing"
	DocumentAnalysis     DocumentType = "analysis"
	DocumentPresentation DocumentType = "presentation"
)

type Document struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        DocumentType `json:"type"`
	URL         string       `json:"url,omitempty"`
	CreatedDate time.Time    `json:"createdDate"`
}

type NoteCategory string

const (
	NotePricing        NoteCategory = "pricing"
	NoteRisk           NoteCategory = "risk"
	NoteImplementation NoteCategory = "implementation"
	NoteCompetitive    NoteCategory = "competitive"
	NoteClientFeedback NoteCategory = "client_feedback"
)

type InternalNote struct {
	ID        string       `json:"id"`
	Author    string       `json:"author"`
	Timestamp time.Time    `json:"timestamp"`
	Note      string       `json:"note"`
	Category  NoteCategory `json:"category"`
}

type RequiredApproval struct {
	Role      string         `json:"role"`
	Approver  string         `json:"approver,omitempty"`
	Status    ApprovalStatus `json:"status"`
	Timestamp *time.Time     `json:"timestamp,omitempty"`
	Comments  string         `json:"comments,omitempty"`
}

type ApprovalWorkflow struct {
	CurrentStage      string             `json:"currentStage"`
	RequiredApprovals []RequiredApproval `json:"requiredApprovals"`
}

// MultiStateConsolidatedQuote is the aggregate root owned by the quote store.
// Derived sections (financialSummary, riskAssessment, competitiveAnalysis,
// implementationPlan) are computed on assembly; financialSummary is also
// recomputed on every update.
type MultiStateConsolidatedQuote struct {
	ID        string      `json:"id"`
	QuoteName string      `json:"quoteName"`
	Client    Client      `json:"client"`
	Status    QuoteStatus `json:"status"`

	CreatedDate    time.Time  `json:"createdDate"`
	SubmittedDate  *time.Time `json:"submittedDate,omitempty"`
	ExpirationDate time.Time  `json:"expirationDate"`
	LastModified   time.Time  `json:"lastModified"`

	StateRoutes         []StateRouteGroup        `json:"stateRoutes"`
	ConsolidatedPricing ConsolidatedPricingModel `json:"consolidatedPricing"`
	SLA                 ServiceLevelAgreement    `json:"sla"`
	ContractTerms       ContractTerms            `json:"contractTerms"`

	FinancialSummary    FinancialSummary    `json:"financialSummary"`
	RiskAssessment      RiskAssessment      `json:"riskAssessment"`
	CompetitiveAnalysis CompetitiveAnalysis `json:"competitiveAnalysis"`
	ImplementationPlan  ImplementationPlan  `json:"implementationPlan"`

	Documents        []Document       `json:"documents"`
	InternalNotes    []InternalNote   `json:"internalNotes"`
	ApprovalWorkflow ApprovalWorkflow `json:"approvalWorkflow"`
}

// QuoteUpdate is a partial update applied over an existing quote. Nil fields
// leave the current value untouched; stateRoutes, documents, internalNotes
// replace wholesale when non-nil, matching the shallow-merge semantics of
// the store.
type QuoteUpdate struct {
	QuoteName           *string                   `json:"quoteName,omitempty"`
	Client              *Client                   `json:"client,omitempty"`
	Status              *QuoteStatus              `json:"status,omitempty"`
	ExpirationDate      *time.Time                `json:"expirationDate,omitempty"`
	StateRoutes         []StateRouteGroup         `json:"stateRoutes,omitempty"`
	ConsolidatedPricing *ConsolidatedPricingModel `json:"consolidatedPricing,omitempty"`
	SLA                 *ServiceLevelAgreement    `json:"sla,omitempty"`
	ContractTerms       *ContractTerms            `json:"contractTerms,omitempty"`
	Documents           []Document                `json:"documents,omitempty"`
	InternalNotes       []InternalNote            `json:"internalNotes,omitempty"`
}

// QuoteDraft is the caller-supplied portion of a new quote. Every nil or
// empty field is filled with a documented default during assembly.
type QuoteDraft struct {
	QuoteName           string                    `json:"quoteName,omitempty"`
	Client              *Client                   `json:"client,omitempty"`
	StateRoutes         []StateRouteGroup         `json:"stateRoutes,omitempty"`
	ConsolidatedPricing *ConsolidatedPricingModel `json:"consolidatedPricing,omitempty"`
	SLA                 *ServiceLevelAgreement    `json:"sla,omitempty"`
	ContractTerms       *ContractTerms            `json:"contractTerms,omitempty"`
}

// Proposal is the generated client-facing proposal document payload.
type Proposal struct {
	QuoteID       string    `json:"quoteId"`
	Title         string    `json:"title"`
	PreparedFor   string    `json:"preparedFor"`
	GeneratedDate time.Time `json:"generatedDate"`
	Sections      []string  `json:"sections"`
	TotalValue    float64   `json:"totalValue"`
	ValidUntil    time.Time `json:"validUntil"`
}

// QuoteSummary aggregates the quote book for list responses.
type QuoteSummary struct {
	TotalQuotes     int                 `json:"totalQuotes"`
	TotalValue      float64             `json:"totalValue"`
	AverageValue    float64             `json:"averageValue"`
	StatusBreakdown map[QuoteStatus]int `json:"statusBreakdown"`
}
