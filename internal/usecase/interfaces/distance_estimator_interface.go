package interfaces

import "fleetflow_quotes/internal/domain/entities"

// IDistanceEstimator estimates the average miles per load for one state route
// group. The production default is a fixed figure; the abstraction exists so
// a real mileage source can be swapped in and so tests can pin the value.

type IDistanceEstimator interface {
	AverageMilesPerLoad(group entities.StateRouteGroup) float64
}
