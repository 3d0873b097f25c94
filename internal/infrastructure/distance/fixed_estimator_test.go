package distance

import (
	"testing"

	"fleetflow_quotes/internal/domain/entities"
)

func TestFixedEstimator(t *testing.T) {
	t.Run("default figure", func(t *testing.T) {
		e := NewFixedEstimator()
		if got := e.AverageMilesPerLoad(entities.StateRouteGroup{State: "TX"}); got != 450 {
			t.Fatalf("expected 450, got %v", got)
		}
	})

	t.Run("same figure for every group", func(t *testing.T) {
		e := NewFixedEstimator()
		a := e.AverageMilesPerLoad(entities.StateRouteGroup{State: "CA"})
		b := e.AverageMilesPerLoad(entities.StateRouteGroup{State: "ZZ"})
		if a != b {
			t.Fatalf("expected a fixed figure, got %v and %v", a, b)
		}
	})

	t.Run("pinned miles", func(t *testing.T) {
		e := NewFixedEstimatorWithMiles(275)
		if got := e.AverageMilesPerLoad(entities.StateRouteGroup{}); got != 275 {
			t.Fatalf("expected 275, got %v", got)
		}
	})
}
