package recommender

import (
	"testing"

	"fleetflow_quotes/internal/domain/entities"
)

func TestStaticRecommender_RouteOptimization(t *testing.T) {
	r := NewStaticRecommender()
	opt := r.RouteOptimization(nil)

	if len(opt.BackhaulOpportunities) != 3 {
		t.Fatalf("expected 3 backhaul opportunities, got %d", len(opt.BackhaulOpportunities))
	}
	first := opt.BackhaulOpportunities[0]
	if first.FromState != "CA" || first.ToState != "TX" || first.Savings != 125000 {
		t.Fatalf("unexpected first backhaul: %+v", first)
	}
	if len(opt.ConsolidationOpportunities) != 2 || len(opt.EquipmentPositioning) != 2 {
		t.Fatalf("unexpected optimization payload: %+v", opt)
	}
	if opt.EquipmentPositioning[0].State != "TX" || opt.EquipmentPositioning[0].RecommendedFleetSize != 45 {
		t.Fatalf("unexpected positioning: %+v", opt.EquipmentPositioning[0])
	}
}

func TestStaticRecommender_CompetitiveAnalysis(t *testing.T) {
	r := NewStaticRecommender()
	analysis := r.CompetitiveAnalysis()

	if len(analysis.Competitors) != 4 {
		t.Fatalf("expected 4 competitors, got %v", analysis.Competitors)
	}
	if analysis.PricingPosition != entities.PricingPositionCompetitive {
		t.Fatalf("unexpected position: %s", analysis.PricingPosition)
	}
	if analysis.WinProbability != 75 {
		t.Fatalf("unexpected win probability: %v", analysis.WinProbability)
	}
}

func TestStaticRecommender_MarketAnalysis(t *testing.T) {
	r := NewStaticRecommender()
	analysis := r.MarketAnalysis()

	if len(analysis.IndustryRates) != 5 {
		t.Fatalf("expected 5 industry rates, got %d", len(analysis.IndustryRates))
	}
	var ours *entities.IndustryRate
	for i := range analysis.IndustryRates {
		if analysis.IndustryRates[i].Carrier == "FleetFlow" {
			ours = &analysis.IndustryRates[i]
		}
	}
	if ours == nil {
		t.Fatalf("expected our own rate in the comparison")
	}
	if ours.RatePerMile != 2.5 || ours.Position != "aggressive" {
		t.Fatalf("unexpected own rate: %+v", ours)
	}
}
