package recommender

import (
	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase/interfaces"
)

// StaticRecommender serves curated advisory content. The payloads are sample
// figures reviewed by the sales team, not computed from route data; a real
// optimization engine is expected to replace this implementation behind
// IRecommender without touching callers.

type StaticRecommender struct{}

var _ interfaces.IRecommender = (*StaticRecommender)(nil)

func NewStaticRecommender() *StaticRecommender {
	return &StaticRecommender{}
}

func (r *StaticRecommender) RouteOptimization([]entities.StateRouteGroup) entities.RouteOptimization {
	return entities.RouteOptimization{
		BackhaulOpportunities: []entities.BackhaulOpportunity{
			{FromState: "CA", ToState: "TX", Potential: 85, Savings: 125000},
			{FromState: "TX", ToState: "IL", Potential: 72, Savings: 98000},
			{FromState: "IL", ToState: "GA", Potential: 68, Savings: 87000},
		},
		ConsolidationOpportunities: []entities.ConsolidationOpportunity{
			{States: []string{"CA", "TX"}, Description: "West Coast to Southwest consolidation hub", Savings: 250000},
			{States: []string{"IL", "MN"}, Description: "Midwest regional consolidation", Savings: 180000},
		},
		EquipmentPositioning: []entities.EquipmentPositioning{
			{State: "TX", RecommendedFleetSize: 45, Reasoning: "Central hub for multi-state operations"},
			{State: "IL", RecommendedFleetSize: 35, Reasoning: "Midwest distribution center"},
		},
	}
}

func (r *StaticRecommender) CompetitiveAnalysis() entities.CompetitiveAnalysis {
	return entities.CompetitiveAnalysis{
		Competitors: []string{"C.H. Robinson", "XPO Logistics", "J.B. Hunt", "Schneider"},
		OurAdvantages: []string{
			"Route optimization",
			"Real-time visibility platform",
			"Consolidated multi-state pricing",
			"Technology integration capabilities",
		},
		PricingPosition: entities.PricingPositionCompetitive,
		WinProbability:  75,
		KeyDifferentiators: []string{
			"Only platform offering true multi-state consolidation",
			"Real-time planning across all routes",
			"Integrated financial and operational reporting",
		},
	}
}

func (r *StaticRecommender) MarketAnalysis() entities.MarketAnalysis {
	return entities.MarketAnalysis{
		IndustryRates: []entities.IndustryRate{
			{Carrier: "C.H. Robinson", RatePerMile: 2.85, Position: "premium"},
			{Carrier: "XPO Logistics", RatePerMile: 2.65, Position: "competitive"},
			{Carrier: "J.B. Hunt", RatePerMile: 2.7, Position: "competitive"},
			{Carrier: "Schneider", RatePerMile: 2.55, Position: "competitive"},
			{Carrier: "FleetFlow", RatePerMile: 2.5, Position: "aggressive"},
		},
		MarketPosition: "Priced below the national brokerage average with consolidated multi-state discounts on top.",
		TrendSummary:   "Contract rates are flat year over year; volume-tiered consolidation remains the main savings lever.",
	}
}
