package usecase

import (
	"fmt"
	"strings"

	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/domain/stateconfig"
)

// RouteOptimization delegates to the recommender capability; the pricing
// path itself never fabricates optimization content.
func (u *PricingUseCase) RouteOptimization(stateRoutes []entities.StateRouteGroup) entities.RouteOptimization {
	return u.recommender.RouteOptimization(stateRoutes)
}

func (u *PricingUseCase) MarketAnalysis() entities.MarketAnalysis {
	return u.recommender.MarketAnalysis()
}

// Synthetic volumes used by the ad-hoc pricing calculator when a caller asks
// for a preview by state codes alone.
const (
	previewWeeklyVolume  = 115
	previewMonthlyVolume = 500
)

// SyntheticRouteGroups builds one single-origin, single-destination route
// group per state code so the calculator can price a footprint before any
// facility data exists. Codes outside the configuration table still produce
// a group; pricing will report them as skipped.
func (u *PricingUseCase) SyntheticRouteGroups(codes []string) []entities.StateRouteGroup {
	groups := make([]entities.StateRouteGroup, 0, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}

		group := entities.StateRouteGroup{
			State:     code,
			StateName: code,
		}

		originCity := code
		destinationCity := code
		if cfg, ok := stateconfig.Lookup(code); ok {
			group.StateName = cfg.StateName
			group.Region = cfg.Region
			if len(cfg.MajorCities) > 0 {
				originCity = cfg.MajorCities[0]
				destinationCity = cfg.MajorCities[len(cfg.MajorCities)-1]
			}
			group.StateRequirements = entities.StateRequirements{
				Permits:     cfg.Permits,
				Regulations: cfg.Regulations,
				FuelTaxes:   cfg.FuelTaxRate,
			}
			group.StateMetrics = entities.StateMetrics{
				CongestionFactor:  cfg.CongestionFactor,
				CostMultiplier:    cfg.CostMultiplier,
				SeasonalVariation: cfg.SeasonalVariation,
				WeatherRisk:       cfg.WeatherRisk,
			}
		}

		group.Origins = []entities.Origin{{
			ID:             code + "-ORIG-1",
			City:           originCity,
			FacilityType:   entities.FacilityTypeDistribution,
			WeeklyVolume:   previewWeeklyVolume,
			MonthlyVolume:  previewMonthlyVolume,
			OperatingHours: entities.OperatingHours{Start: "06:00", End: "22:00"},
		}}
		group.Destinations = []entities.Destination{{
			ID:            code + "-DEST-1",
			City:          destinationCity,
			State:         code,
			FacilityType:  string(entities.FacilityTypeRetail),
			WeeklyVolume:  previewWeeklyVolume,
			MonthlyVolume: previewMonthlyVolume,
			TimeWindows:   []entities.TimeWindow{{Start: "06:00", End: "18:00"}},
			Priority:      entities.PriorityMedium,
		}}

		groups = append(groups, group)
	}
	return groups
}

// Recommendations turns a pricing result into short advisory lines for the
// calculator response.
func (u *PricingUseCase) Recommendations(pricing entities.PricingResult) []string {
	recommendations := []string{}

	if pricing.VolumeDiscountSavings > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Volume discount tier reached: $%.0f in annual savings already applied.",
			pricing.VolumeDiscountSavings,
		))
	} else {
		recommendations = append(recommendations,
			"Annual volume is below the first discount tier; consolidating additional lanes unlocks a 5% discount at 1,000 loads/year.")
	}

	if pricing.CrossStateOptimizationSavings > 0 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Cross-state backhaul pairing yields $%.0f in optimization savings.",
			pricing.CrossStateOptimizationSavings,
		))
	}

	if len(pricing.Breakdown) > 1 {
		recommendations = append(recommendations,
			"Multiple jurisdictions qualify for a master contract pricing model.")
	}

	for _, code := range pricing.SkippedStates {
		recommendations = append(recommendations, fmt.Sprintf(
			"No operational configuration for %q; it was excluded from the totals.", code,
		))
	}

	return recommendations
}
