package usecase

import (
	"time"

	"fleetflow_quotes/internal/domain/entities"
)

// Canned defaults applied by quote assembly when the caller omits a section.
// Sales adjusts these per deal after creation; they only need to be a
// reasonable starting position.

func defaultPricingModel() entities.ConsolidatedPricingModel {
	return entities.ConsolidatedPricingModel{
		Type: entities.PricingModelVolumeTiered,
		BaseRates: entities.BaseRates{
			PerMile:       2.5,
			PerStop:       75,
			PerHour:       65,
			FuelSurcharge: 0.35,
			Accessorials: map[string]float64{
				"detention":  65,
				"layover":    150,
				"redelivery": 125,
				"liftgate":   85,
			},
		},
		VolumeDiscounts: []entities.VolumeDiscount{
			{Threshold: 1000, Discount: 0.05, Description: "5% discount for 1000+ loads/year"},
			{Threshold: 2000, Discount: 0.08, Description: "8% discount for 2000+ loads/year"},
			{Threshold: 5000, Discount: 0.12, Description: "12% discount for 5000+ loads/year"},
			{Threshold: 10000, Discount: 0.15, Description: "15% discount for 10000+ loads/year"},
		},
		StateMultipliers: map[string]entities.StateMultiplier{
			"CA": {Multiplier: 1.25, Reasoning: "High cost state", Factors: []string{"Regulations", "Congestion", "Fuel costs"}},
			"TX": {Multiplier: 1.0, Reasoning: "Baseline state", Factors: []string{"Standard operations"}},
			"MN": {Multiplier: 1.08, Reasoning: "Weather challenges", Factors: []string{"Winter conditions", "Seasonal restrictions"}},
			"IL": {Multiplier: 1.05, Reasoning: "Urban congestion", Factors: []string{"Chicago traffic", "Tolls"}},
			"GA": {Multiplier: 0.95, Reasoning: "Favorable conditions", Factors: []string{"Good infrastructure", "Low regulations"}},
		},
		SeasonalAdjustments: map[string]entities.SeasonalAdjustment{
			"winter": {Months: []string{"Dec", "Jan", "Feb"}, Adjustment: 0.08, Reasoning: "Winter weather surcharge"},
			"peak":   {Months: []string{"Oct", "Nov"}, Adjustment: 0.05, Reasoning: "Peak season demand"},
		},
		PerformanceIncentives: entities.PerformanceIncentives{
			OnTimeDelivery:       entities.IncentiveThreshold{Threshold: 0.98, Bonus: 0.02},
			FuelEfficiency:       entities.IncentiveThreshold{Threshold: 7.5, Bonus: 0.015},
			SafetyRating:         entities.IncentiveThreshold{Threshold: 4.8, Bonus: 0.01},
			CustomerSatisfaction: entities.IncentiveThreshold{Threshold: 4.9, Bonus: 0.015},
		},
	}
}

func defaultSLA() entities.ServiceLevelAgreement {
	return entities.ServiceLevelAgreement{
		TransitTimes: map[string]float64{
			"CA-TX": 48,
			"TX-IL": 36,
			"IL-MN": 18,
			"IL-GA": 24,
			"GA-CA": 72,
		},
		OnTimeDeliveryGuarantee: 0.98,
		CommunicationRequirements: entities.CommunicationRequirements{
			Frequency:           entities.CommunicationRealTime,
			Methods:             []string{"Dashboard", "Email alerts", "SMS notifications"},
			EscalationProcedure: []string{"Account manager", "Operations director", "VP Operations"},
		},
		ReportingRequirements: entities.ReportingRequirements{
			Frequency:       entities.ReportingWeekly,
			Metrics:         []string{"On-time delivery", "Cost per mile", "Fuel efficiency", "Customer satisfaction"},
			DashboardAccess: true,
			CustomReports:   true,
		},
		QualityStandards: entities.QualityStandards{
			DriverRequirements: []string{"CDL Class A", "2+ years experience", "Clean MVR"},
			EquipmentStandards: []string{"Less than 5 years old", "GPS tracking", "ELD compliant"},
			SafetyRating:       4.5,
			InsuranceLimits: map[string]float64{
				"liability": 1000000,
				"cargo":     100000,
				"auto":      1000000,
			},
		},
	}
}

func defaultContractTerms(now time.Time) entities.ContractTerms {
	return entities.ContractTerms{
		Duration:     "24 months",
		StartDate:    now,
		EndDate:      now.AddDate(0, 24, 0),
		AutoRenewal:  true,
		RenewalTerms: "12 month automatic renewal",
		VolumeCommitments: map[string]entities.VolumeCommitment{
			"annual":    {Minimum: 2000, Penalty: 0.05},
			"quarterly": {Minimum: 500, Penalty: 0.03},
		},
		RateProtection: entities.RateProtection{
			FuelSurchargeProtection: true,
			MaximumIncrease:         0.05,
			AdjustmentFrequency:     entities.AdjustmentQuarterly,
		},
		Penalties: map[string]entities.ContractPenalty{
			"lateDelivery":   {Description: "Late delivery penalty", Amount: 100, Type: entities.PenaltyPerOccurrence},
			"serviceFailure": {Description: "Service failure penalty", Amount: 0.02, Type: entities.PenaltyPercentage},
		},
		Incentives: map[string]entities.ContractIncentive{
			"earlyDelivery": {Description: "Early delivery bonus", Reward: 25, Criteria: "Delivery >2 hours early"},
			"volumeBonus":   {Description: "Volume achievement bonus", Reward: 0.01, Criteria: "Exceed annual commitment by 10%"},
		},
		TerminationClauses: entities.TerminationClauses{
			NoticePeriod:        90,
			EarlyTerminationFee: 50000,
			ForCauseTermination: []string{"Material breach", "Safety violations", "Regulatory violations"},
		},
	}
}

// requiredApprovals builds the approval chain for a quote of the given
// estimated annual value. Sales Manager and Operations Director always sign;
// larger deals pull in VP Sales and the CEO.
func requiredApprovals(quoteValue float64) []entities.RequiredApproval {
	approvals := []entities.RequiredApproval{
		{Role: "Sales Manager", Status: entities.ApprovalStatusPending},
		{Role: "Operations Director", Status: entities.ApprovalStatusPending},
	}
	if quoteValue > 1000000 {
		approvals = append(approvals, entities.RequiredApproval{Role: "VP Sales", Status: entities.ApprovalStatusPending})
	}
	if quoteValue > 5000000 {
		approvals = append(approvals, entities.RequiredApproval{Role: "CEO", Status: entities.ApprovalStatusPending})
	}
	return approvals
}
