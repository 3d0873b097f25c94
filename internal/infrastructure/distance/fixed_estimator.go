package distance

import (
	"fleetflow_quotes/internal/domain/entities"
	"fleetflow_quotes/internal/usecase/interfaces"
)

// defaultMilesPerLoad is the network-wide planning figure used until lane
// level mileage data is wired in.
const defaultMilesPerLoad = 450

// FixedEstimator returns the same average miles per load for every route
// group. It is the production default; a mileage-API-backed estimator can
// replace it behind the same interface.

type FixedEstimator struct {
	miles float64
}

var _ interfaces.IDistanceEstimator = (*FixedEstimator)(nil)

func NewFixedEstimator() *FixedEstimator {
	return &FixedEstimator{miles: defaultMilesPerLoad}
}

// NewFixedEstimatorWithMiles pins the figure, mainly for tests.
func NewFixedEstimatorWithMiles(miles float64) *FixedEstimator {
	return &FixedEstimator{miles: miles}
}

func (e *FixedEstimator) AverageMilesPerLoad(entities.StateRouteGroup) float64 {
	return e.miles
}
