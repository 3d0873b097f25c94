package entities

import "time"

type CommunicationFrequency string

const (
	CommunicationRealTime CommunicationFrequency = "real-time"
	CommunicationHourly   CommunicationFrequency = "hourly"
	CommunicationDaily    CommunicationFrequency = "daily"
)

type ReportingFrequency string

const (
	ReportingDaily   ReportingFrequency = "daily"
	ReportingWeekly  ReportingFrequency = "weekly"
	ReportingMonthly ReportingFrequency = "monthly"
)

type CommunicationRequirements struct {
	Frequency           CommunicationFrequency `json:"frequency"`
	Methods             []string               `json:"methods"`
	EscalationProcedure []string               `json:"escalationProcedure"`
}

type ReportingRequirements struct {
	Frequency       ReportingFrequency `json:"frequency"`
	Metrics         []string           `json:"metrics"`
	DashboardAccess bool               `json:"dashboardAccess"`
	CustomReports   bool               `json:"customReports"`
}

type QualityStandards struct {
	DriverRequirements []string           `json:"driverRequirements"`
	EquipmentStandards []string           `json:"equipmentStandards"`
	SafetyRating       float64            `json:"safetyRating"`
	InsuranceLimits    map[string]float64 `json:"insuranceLimits"`
}

// ServiceLevelAgreement captures the guaranteed service terms of a quote.
// TransitTimes is keyed by state pair ("CA-TX") in guaranteed hours.
type ServiceLevelAgreement struct {
	TransitTimes              map[string]float64        `json:"transitTimes"`
	OnTimeDeliveryGuarantee   float64                   `json:"onTimeDeliveryGuarantee"`
	CommunicationRequirements CommunicationRequirements `json:"communicationRequirements"`
	ReportingRequirements     ReportingRequirements     `json:"reportingRequirements"`
	QualityStandards          QualityStandards          `json:"qualityStandards"`
}

type AdjustmentFrequency string

const (
	AdjustmentMonthly   AdjustmentFrequency = "monthly"
	AdjustmentQuarterly AdjustmentFrequency = "quarterly"
	AdjustmentAnnually  AdjustmentFrequency = "annually"
)

type PenaltyType string

const (
	PenaltyFlat          PenaltyType = "flat"
	PenaltyPercentage    PenaltyType = "percentage"
	PenaltyPerOccurrence PenaltyType = "per_occurrence"
)

type VolumeCommitment struct {
	Minimum float64  `json:"minimum"`
	Maximum *float64 `json:"maximum,omitempty"`
	Penalty float64  `json:"penalty"` // fraction
}

type RateProtection struct {
	FuelSurchargeProtection bool                `json:"fuelSurchargeProtection"`
	MaximumIncrease         float64             `json:"maximumIncrease"` // annual fraction
	AdjustmentFrequency     AdjustmentFrequency `json:"adjustmentFrequency"`
}

type ContractPenalty struct {
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Type        PenaltyType `json:"type"`
}

type ContractIncentive struct {
	Description string  `json:"description"`
	Reward      float64 `json:"reward"`
	Criteria    string  `json:"criteria"`
}

type TerminationClauses struct {
	NoticePeriod        int      `json:"noticePeriod"` // days
	EarlyTerminationFee float64  `json:"earlyTerminationFee"`
	ForCauseTermination []string `json:"forCauseTermination"`
}

type ContractTerms struct {
	Duration           string                       `json:"duration"`
	StartDate          time.Time                    `json:"startDate"`
	EndDate            time.Time                    `json:"endDate"`
	AutoRenewal        bool                         `json:"autoRenewal"`
	RenewalTerms       string                       `json:"renewalTerms"`
	VolumeCommitments  map[string]VolumeCommitment  `json:"volumeCommitments"`
	RateProtection     RateProtection               `json:"rateProtection"`
	Penalties          map[string]ContractPenalty   `json:"penalties"`
	Incentives         map[string]ContractIncentive `json:"incentives"`
	TerminationClauses TerminationClauses           `json:"terminationClauses"`
}
