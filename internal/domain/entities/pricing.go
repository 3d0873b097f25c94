package entities

// PricingModelType selects how a consolidated quote is priced.

type PricingModelType string

const (
	PricingModelMasterContract   PricingModelType = "master_contract"
	PricingModelZoneBased        PricingModelType = "zone_based"
	PricingModelVolumeTiered     PricingModelType = "volume_tiered"
	PricingModelHybrid           PricingModelType = "hybrid"
	PricingModelPerformanceBased PricingModelType = "performance_based"
)

type BaseRates struct {
	PerMile       float64            `json:"perMile"`
	PerStop       float64            `json:"perStop"`
	PerHour       float64            `json:"perHour"`
	FuelSurcharge float64            `json:"fuelSurcharge"`
	Accessorials  map[string]float64 `json:"accessorials"`
}

// VolumeDiscount is one tier of the schedule. Tiers are mutually exclusive:
// the highest threshold met wins, discounts never stack.
type VolumeDiscount struct {
	Threshold   float64 `json:"threshold"` // loads per year
	Discount    float64 `json:"discount"`  // fraction, e.g. 0.05
	Description string  `json:"description"`
}

type StateMultiplier struct {
	Multiplier float64  `json:"multiplier"`
	Reasoning  string   `json:"reasoning"`
	Factors    []string `json:"factors"`
}

type SeasonalAdjustment struct {
	Months     []string `json:"months"`
	Adjustment float64  `json:"adjustment"`
	Reasoning  string   `json:"reasoning"`
}

type IncentiveThreshold struct {
	Threshold float64 `json:"threshold"`
	Bonus     float64 `json:"bonus"`
}

type PerformanceIncentives struct {
	OnTimeDelivery       IncentiveThreshold `json:"onTimeDelivery"`
	FuelEfficiency       IncentiveThreshold `json:"fuelEfficiency"`
	SafetyRating         IncentiveThreshold `json:"safetyRating"`
	CustomerSatisfaction IncentiveThreshold `json:"customerSatisfaction"`
}

type ConsolidatedPricingModel struct {
	Type                  PricingModelType              `json:"type"`
	BaseRates             BaseRates                     `json:"baseRates"`
	VolumeDiscounts       []VolumeDiscount              `json:"volumeDiscounts"`
	StateMultipliers      map[string]StateMultiplier    `json:"stateMultipliers"`
	SeasonalAdjustments   map[string]SeasonalAdjustment `json:"seasonalAdjustments"`
	PerformanceIncentives PerformanceIncentives         `json:"performanceIncentives"`
}

// StateBreakdown is the per-jurisdiction slice of a consolidated pricing run.
type StateBreakdown struct {
	Volume         float64 `json:"volume"` // annual loads
	AverageMiles   float64 `json:"averageMiles"`
	Rate           float64 `json:"rate"`
	Revenue        float64 `json:"revenue"`
	CostMultiplier float64 `json:"costMultiplier"`
}

// PricingResult is the outcome of a consolidated pricing calculation.
// SkippedStates lists route-group codes absent from the configuration table;
// those groups contribute nothing to the totals and have no breakdown entry.
type PricingResult struct {
	TotalAnnualRevenue            float64                   `json:"totalAnnualRevenue"`
	AverageRatePerMile            float64                   `json:"averageRatePerMile"`
	VolumeDiscountSavings         float64                   `json:"volumeDiscountSavings"`
	CrossStateOptimizationSavings float64                   `json:"crossStateOptimizationSavings"`
	Breakdown                     map[string]StateBreakdown `json:"breakdown"`
	SkippedStates                 []string                  `json:"skippedStates,omitempty"`
}

type BackhaulOpportunity struct {
	FromState string  `json:"fromState"`
	ToState   string  `json:"toState"`
	Potential float64 `json:"potential"`
	Savings   float64 `json:"savings"`
}

type ConsolidationOpportunity struct {
	States      []string `json:"states"`
	Description string   `json:"description"`
	Savings     float64  `json:"savings"`
}

type EquipmentPositioning struct {
	State                string `json:"state"`
	RecommendedFleetSize int    `json:"recommendedFleetSize"`
	Reasoning            string `json:"reasoning"`
}

type RouteOptimization struct {
	BackhaulOpportunities      []BackhaulOpportunity      `json:"backhaulOpportunities"`
	ConsolidationOpportunities []ConsolidationOpportunity `json:"consolidationOpportunities"`
	EquipmentPositioning       []EquipmentPositioning     `json:"equipmentPositioning"`
}

type IndustryRate struct {
	Carrier     string  `json:"carrier"`
	RatePerMile float64 `json:"ratePerMile"`
	Position    string  `json:"position"`
}

type MarketAnalysis struct {
	IndustryRates  []IndustryRate `json:"industryRates"`
	MarketPosition string         `json:"marketPosition"`
	TrendSummary   string         `json:"trendSummary"`
}
