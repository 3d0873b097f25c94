package stateconfig

import (
	"testing"

	"fleetflow_quotes/internal/domain/entities"
)

func TestLookup(t *testing.T) {
	t.Run("known US state", func(t *testing.T) {
		cfg, ok := Lookup("CA")
		if !ok {
			t.Fatalf("expected CA to be configured")
		}
		if cfg.StateName != "California" {
			t.Fatalf("expected California, got %s", cfg.StateName)
		}
		if cfg.Region != entities.RegionWestCoast {
			t.Fatalf("expected West Coast region, got %s", cfg.Region)
		}
		if cfg.CostMultiplier != 1.25 {
			t.Fatalf("expected cost multiplier 1.25, got %v", cfg.CostMultiplier)
		}
		if len(cfg.MajorCities) == 0 || cfg.MajorCities[0] != "Los Angeles" {
			t.Fatalf("unexpected major cities: %v", cfg.MajorCities)
		}
	})

	t.Run("baseline state", func(t *testing.T) {
		cfg, ok := Lookup("TX")
		if !ok {
			t.Fatalf("expected TX to be configured")
		}
		if cfg.CostMultiplier != 1.0 {
			t.Fatalf("expected cost multiplier 1.0, got %v", cfg.CostMultiplier)
		}
	})

	t.Run("canadian province", func(t *testing.T) {
		cfg, ok := Lookup("ON")
		if !ok {
			t.Fatalf("expected ON to be configured")
		}
		if cfg.StateName != "Ontario" {
			t.Fatalf("expected Ontario, got %s", cfg.StateName)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		cfg, ok := Lookup("ZZ")
		if ok {
			t.Fatalf("expected ZZ to be unknown")
		}
		if cfg.StateName != "" {
			t.Fatalf("expected zero config, got %+v", cfg)
		}
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		if _, ok := Lookup("ca"); ok {
			t.Fatalf("expected lowercase code to miss; callers normalize")
		}
	})
}

func TestCodes(t *testing.T) {
	codes := Codes()
	if len(codes) != 76 {
		t.Fatalf("expected 76 configured jurisdictions, got %d", len(codes))
	}

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		if seen[code] {
			t.Fatalf("duplicate code %s", code)
		}
		seen[code] = true
		if _, ok := Lookup(code); !ok {
			t.Fatalf("Codes returned %s but Lookup misses it", code)
		}
	}

	for _, code := range []string{"CA", "TX", "ON", "MEX"} {
		if !seen[code] {
			t.Fatalf("expected %s in Codes", code)
		}
	}
}

func TestConfigurationsAreComplete(t *testing.T) {
	for _, code := range Codes() {
		cfg, _ := Lookup(code)
		if cfg.StateName == "" {
			t.Fatalf("%s: missing state name", code)
		}
		if cfg.CostMultiplier <= 0 {
			t.Fatalf("%s: non-positive cost multiplier %v", code, cfg.CostMultiplier)
		}
		if cfg.CongestionFactor <= 0 {
			t.Fatalf("%s: non-positive congestion factor %v", code, cfg.CongestionFactor)
		}
		if len(cfg.MajorCities) == 0 {
			t.Fatalf("%s: no major cities", code)
		}
	}
}
