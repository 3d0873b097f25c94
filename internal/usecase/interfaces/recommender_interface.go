package interfaces

import "fleetflow_quotes/internal/domain/entities"

// IRecommender produces the advisory content attached to quotes: route
// optimization opportunities, competitive positioning, and market rate
// comparisons.
//
// The shipped implementation returns curated static content. A model-backed
// implementation can replace it without touching the pricing path, which is
// why this content is not produced inside the calculator.

type IRecommender interface {
	RouteOptimization(stateRoutes []entities.StateRouteGroup) entities.RouteOptimization
	CompetitiveAnalysis() entities.CompetitiveAnalysis
	MarketAnalysis() entities.MarketAnalysis
}
