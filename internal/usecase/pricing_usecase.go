package usecase

import (
	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/domain/stateconfig"
	"fleetflow_quotes/internal/usecase/interfaces"
)

// baseRatePerMile is the linehaul base rate before state cost adjustment.
const baseRatePerMile = 2.5

// IPricingUseCase exposes consolidated pricing and the derived quote sections
// computed from state route groups.
//
// Calculation contract:
//   - Route groups whose state code is not in the configuration table are
//     excluded from every total and reported in PricingResult.SkippedStates.
//   - No input, including an empty group list, produces an error; totals
//     degrade to zero.

type IPricingUseCase interface {
	CalculateConsolidatedPricing(stateRoutes []entities.StateRouteGroup) entities.PricingResult
	FinancialSummary(stateRoutes []entities.StateRouteGroup) entities.FinancialSummary
	AssessRisk(stateRoutes []entities.StateRouteGroup) entities.RiskAssessment
	ImplementationPlan(stateRoutes []entities.StateRouteGroup) entities.ImplementationPlan
	RouteOptimization(stateRoutes []entities.StateRouteGroup) entities.RouteOptimization
	MarketAnalysis() entities.MarketAnalysis
	SyntheticRouteGroups(codes []string) []entities.StateRouteGroup
	Recommendations(pricing entities.PricingResult) []string
}

type PricingUseCase struct {
	estimator   interfaces.IDistanceEstimator
	recommender interfaces.IRecommender
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(estimator interfaces.IDistanceEstimator, recommender interfaces.IRecommender) *PricingUseCase {
	return &PricingUseCase{estimator: estimator, recommender: recommender}
}

// CalculateConsolidatedPricing prices the whole multi-state footprint in one
// pass: per-state annualized revenue at the cost-adjusted rate, then a single
// volume discount tier (highest annual-load threshold met, tiers never stack)
// and a flat cross-state optimization savings on top.
func (u *PricingUseCase) CalculateConsolidatedPricing(stateRoutes []entities.StateRouteGroup) entities.PricingResult {
	var totalRevenue, totalMiles, totalLoads float64
	breakdown := make(map[string]entities.StateBreakdown)
	var skipped []string

	for _, group := range stateRoutes {
		cfg, ok := stateconfig.Lookup(group.State)
		if !ok {
			skipped = append(skipped, group.State)
			continue
		}

		var monthlyVolume float64
		for _, origin := range group.Origins {
			monthlyVolume += origin.MonthlyVolume
		}
		stateVolume := monthlyVolume * 12
		averageMiles := u.estimator.AverageMilesPerLoad(group)
		adjustedRate := baseRatePerMile * cfg.CostMultiplier
		stateRevenue := stateVolume * averageMiles * adjustedRate

		totalRevenue += stateRevenue
		totalMiles += stateVolume * averageMiles
		totalLoads += stateVolume

		breakdown[group.State] = entities.StateBreakdown{
			Volume:         stateVolume,
			AverageMiles:   averageMiles,
			Rate:           adjustedRate,
			Revenue:        stateRevenue,
			CostMultiplier: cfg.CostMultiplier,
		}
	}

	var volumeDiscount float64
	switch {
	case totalLoads > 10000:
		volumeDiscount = 0.15
	case totalLoads > 5000:
		volumeDiscount = 0.12
	case totalLoads > 2000:
		volumeDiscount = 0.08
	case totalLoads > 1000:
		volumeDiscount = 0.05
	}

	// Backhaul opportunities scale with network size.
	optimizationRate := 0.04
	if totalLoads > 1000 {
		optimizationRate = 0.08
	}

	volumeDiscountSavings := totalRevenue * volumeDiscount
	crossStateSavings := totalRevenue * optimizationRate
	finalRevenue := totalRevenue - volumeDiscountSavings - crossStateSavings

	averageRatePerMile := 0.0
	if totalMiles > 0 {
		averageRatePerMile = finalRevenue / totalMiles
	}

	return entities.PricingResult{
		TotalAnnualRevenue:            finalRevenue,
		AverageRatePerMile:            averageRatePerMile,
		VolumeDiscountSavings:         volumeDiscountSavings,
		CrossStateOptimizationSavings: crossStateSavings,
		Breakdown:                     breakdown,
		SkippedStates:                 skipped,
	}
}

// FinancialSummary derives the financial section of a quote from its route
// groups. Margin, ROI, and payback are the program-level targets, not
// per-quote computations.
func (u *PricingUseCase) FinancialSummary(stateRoutes []entities.StateRouteGroup) entities.FinancialSummary {
	pricing := u.CalculateConsolidatedPricing(stateRoutes)

	var totalVolume float64
	for _, group := range stateRoutes {
		for _, origin := range group.Origins {
			totalVolume += origin.MonthlyVolume * 12
		}
	}

	avgRate := pricing.AverageRatePerMile
	if avgRate == 0 {
		avgRate = 1
	}

	groups := len(stateRoutes)
	if groups == 0 {
		groups = 1
	}

	return entities.FinancialSummary{
		TotalAnnualVolume:     totalVolume,
		TotalAnnualMiles:      pricing.TotalAnnualRevenue / avgRate,
		TotalAnnualRevenue:    pricing.TotalAnnualRevenue,
		AverageRevenuePerLoad: pricing.TotalAnnualRevenue / float64(groups),
		ProfitMargin:          0.18,
		ROI:                   0.24,
		PaybackPeriod:         8,
	}
}

// AssessRisk produces the standard multi-state risk profile. The factor list
// is the program baseline; route data does not change it today.
func (u *PricingUseCase) AssessRisk(stateRoutes []entities.StateRouteGroup) entities.RiskAssessment {
	return entities.RiskAssessment{
		OverallRisk: entities.RiskMedium,
		RiskFactors: []entities.RiskFactor{
			{
				Category:   "Regulatory",
				Risk:       "Multi-state compliance complexity",
				Impact:     entities.RiskMedium,
				Mitigation: "Dedicated compliance team and automated monitoring",
			},
			{
				Category:   "Operational",
				Risk:       "Equipment positioning across states",
				Impact:     entities.RiskMedium,
				Mitigation: "Strategic fleet positioning and partner network",
			},
		},
		CreditRating: "A-",
		InsuranceRequirements: []string{
			"$1M General Liability",
			"$100K Cargo",
			"$1M Auto Liability",
		},
	}
}

// ImplementationPlan lays out the standard three-phase rollout.
func (u *PricingUseCase) ImplementationPlan(stateRoutes []entities.StateRouteGroup) entities.ImplementationPlan {
	return entities.ImplementationPlan{
		Phases: []entities.ImplementationPhase{
			{
				Phase:       1,
				Description: "System setup and integration",
				Duration:    30,
				Milestones:  []string{"API integration", "User training", "Initial testing"},
				Resources:   []string{"Technical team", "Training materials", "Test environment"},
			},
			{
				Phase:       2,
				Description: "Pilot operations launch",
				Duration:    45,
				Milestones:  []string{"First state activation", "Process validation", "Performance monitoring"},
				Resources:   []string{"Operations team", "Customer success", "Monitoring tools"},
			},
			{
				Phase:       3,
				Description: "Full multi-state rollout",
				Duration:    60,
				Milestones:  []string{"All states active", "Complete planning", "SLA compliance"},
				Resources:   []string{"Full operational team", "All technology platforms", "Reporting systems"},
			},
		},
		TotalImplementationTime: 135,
		TrainingRequirements:    []string{"Platform training", "Process training", "Compliance training"},
		TechnologyRequirements:  []string{"API access", "Dashboard setup", "Reporting configuration"},
	}
}
