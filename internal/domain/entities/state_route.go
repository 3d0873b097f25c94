package entities

// Region groups jurisdictions into the operating regions used by pricing and
// fleet positioning.

type Region string

const (
	RegionWestCoast    Region = "West Coast"
	RegionSouthwest    Region = "Southwest"
	RegionMidwest      Region = "Midwest"
	RegionSoutheast    Region = "Southeast"
	RegionNortheast    Region = "Northeast"
	RegionMountainWest Region = "Mountain West"
)

type WeatherRisk string

const (
	WeatherRiskLow    WeatherRisk = "low"
	WeatherRiskMedium WeatherRisk = "medium"
	WeatherRiskHigh   WeatherRisk = "high"
)

type RegulatoryComplexity string

const (
	RegulatoryComplexitySimple   RegulatoryComplexity = "simple"
	RegulatoryComplexityModerate RegulatoryComplexity = "moderate"
	RegulatoryComplexityComplex  RegulatoryComplexity = "complex"
)

type FacilityType string

const (
	FacilityTypeWarehouse     FacilityType = "warehouse"
	FacilityTypeManufacturing FacilityType = "manufacturing"
	FacilityTypeDistribution  FacilityType = "distribution"
	FacilityTypeRetail        FacilityType = "retail"
	FacilityTypePort          FacilityType = "port"
	FacilityTypeRailYard      FacilityType = "rail_yard"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OperatingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Origin is a pickup facility inside one jurisdiction's route group.
type Origin struct {
	ID                  string         `json:"id"`
	City                string         `json:"city"`
	Address             string         `json:"address"`
	Coordinates         Coordinates    `json:"coordinates"`
	FacilityType        FacilityType   `json:"facilityType"`
	WeeklyVolume        float64        `json:"weeklyVolume"`
	MonthlyVolume       float64        `json:"monthlyVolume"`
	SpecialRequirements []string       `json:"specialRequirements"`
	OperatingHours      OperatingHours `json:"operatingHours"`
	DockCount           int            `json:"dockCount"`
	EquipmentTypes      []string       `json:"equipmentTypes"`
}

// Destination is a delivery facility; it may sit in a different state than the
// group it belongs to.
type Destination struct {
	ID                  string       `json:"id"`
	City                string       `json:"city"`
	State               string       `json:"state"`
	Address             string       `json:"address"`
	Coordinates         Coordinates  `json:"coordinates"`
	FacilityType        string       `json:"facilityType"`
	WeeklyVolume        float64      `json:"weeklyVolume"`
	MonthlyVolume       float64      `json:"monthlyVolume"`
	TimeWindows         []TimeWindow `json:"timeWindows"`
	SpecialRequirements []string     `json:"specialRequirements"`
	Priority            Priority     `json:"priority"`
}

type Tolls struct {
	Average float64  `json:"average"`
	Routes  []string `json:"routes"`
}

type StateRequirements struct {
	Permits                []string `json:"permits"`
	Regulations            []string `json:"regulations"`
	EquipmentRestrictions  []string `json:"equipmentRestrictions"`
	DriverRequirements     []string `json:"driverRequirements"`
	SeasonalConsiderations []string `json:"seasonalConsiderations"`
	WeatherFactors         []string `json:"weatherFactors"`
	Tolls                  Tolls    `json:"tolls"`
	FuelTaxes              float64  `json:"fuelTaxes"`
}

type StateMetrics struct {
	AverageTransitTime   float64              `json:"averageTransitTime"` // hours
	CongestionFactor     float64              `json:"congestionFactor"`   // 1.0 = normal
	CostMultiplier       float64              `json:"costMultiplier"`
	SeasonalVariation    float64              `json:"seasonalVariation"`
	WeatherRisk          WeatherRisk          `json:"weatherRisk"`
	RegulatoryComplexity RegulatoryComplexity `json:"regulatoryComplexity"`
}

// StateRouteGroup is one jurisdiction's operational footprint inside a
// multi-state quote. State must be a code the state configuration table
// covers for the group to contribute to pricing; unknown codes are skipped.
type StateRouteGroup struct {
	State             string            `json:"state"`
	StateName         string            `json:"stateName"`
	Region            Region            `json:"region"`
	Origins           []Origin          `json:"origins"`
	Destinations      []Destination     `json:"destinations"`
	StateRequirements StateRequirements `json:"stateRequirements"`
	StateMetrics      StateMetrics      `json:"stateMetrics"`
}
