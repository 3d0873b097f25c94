package stateconfig

import "fleetflow_quotes/internal/domain/entities"

// Config is the operational reference record for one jurisdiction. The values
// are maintained by the pricing team and only change with a release, so the
// table ships compiled in rather than as a config file.
type Config struct {
	StateName         string
	Region            entities.Region
	CostMultiplier    float64
	CongestionFactor  float64
	Permits           []string
	Regulations       []string
	WeatherRisk       entities.WeatherRisk
	SeasonalVariation float64
	MajorCities       []string
	FuelTaxRate       float64
	AverageDriverWage float64
	KeyIndustries     []string
}

var configurations = map[string]Config{
	// United States
	"CA": {
		StateName:         "California",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.25,
		CongestionFactor:  1.4,
		Permits:           []string{"CARB Compliance", "Oversize Permits", "Hazmat Endorsement"},
		Regulations:       []string{"AB5 Compliance", "CARB Diesel Regulations", "Port Drayage Rules"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Los Angeles", "San Francisco", "San Diego", "Sacramento", "Oakland"},
		FuelTaxRate:       0.511,
		AverageDriverWage: 28.5,
		KeyIndustries:     []string{"Technology", "Agriculture", "Entertainment", "Ports"},
	},
	"WA": {
		StateName:         "Washington",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.18,
		CongestionFactor:  1.2,
		Permits:           []string{"Oversize Permits", "Environmental Permits"},
		Regulations:       []string{"Seattle Traffic Restrictions", "Port Access Rules"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Seattle", "Spokane", "Tacoma", "Vancouver", "Bellevue"},
		FuelTaxRate:       0.494,
		AverageDriverWage: 26.75,
		KeyIndustries:     []string{"Technology", "Aerospace", "Agriculture", "Ports"},
	},
	"OR": {
		StateName:         "Oregon",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.12,
		CongestionFactor:  1.1,
		Permits:           []string{"Oversize Permits", "DEQ Permits"},
		Regulations:       []string{"Portland Metro Restrictions", "Environmental Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Portland", "Eugene", "Salem", "Gresham", "Hillsboro"},
		FuelTaxRate:       0.38,
		AverageDriverWage: 25.2,
		KeyIndustries:     []string{"Technology", "Forestry", "Agriculture", "Manufacturing"},
	},
	"NV": {
		StateName:         "Nevada",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.08,
		CongestionFactor:  1.05,
		Permits:           []string{"Oversize Permits", "Mining Permits"},
		Regulations:       []string{"Las Vegas Restrictions", "Desert Driving Requirements"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Las Vegas", "Reno", "Henderson", "North Las Vegas", "Sparks"},
		FuelTaxRate:       0.274,
		AverageDriverWage: 24.8,
		KeyIndustries:     []string{"Mining", "Tourism", "Logistics", "Manufacturing"},
	},
	"AK": {
		StateName:         "Alaska",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.45,
		CongestionFactor:  0.8,
		Permits:           []string{"Arctic Permits", "Environmental Permits"},
		Regulations:       []string{"Extreme Weather Requirements", "Remote Area Protocols"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.35,
		MajorCities:       []string{"Anchorage", "Fairbanks", "Juneau", "Sitka", "Ketchikan"},
		FuelTaxRate:       0.0895,
		AverageDriverWage: 32.5,
		KeyIndustries:     []string{"Oil & Gas", "Fishing", "Tourism", "Mining"},
	},
	"HI": {
		StateName:         "Hawaii",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.55,
		CongestionFactor:  1.3,
		Permits:           []string{"Island Transport Permits", "Environmental Permits"},
		Regulations:       []string{"Inter-Island Shipping", "Agricultural Restrictions"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.05,
		MajorCities:       []string{"Honolulu", "Pearl City", "Hilo", "Kailua", "Waipahu"},
		FuelTaxRate:       0.17,
		AverageDriverWage: 28.9,
		KeyIndustries:     []string{"Tourism", "Agriculture", "Military", "Shipping"},
	},
	"TX": {
		StateName:         "Texas",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.0,
		CongestionFactor:  1.1,
		Permits:           []string{"Oversize Permits", "Hazmat Endorsement"},
		Regulations:       []string{"Texas Motor Carrier Requirements", "Border Crossing Procedures"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Houston", "Dallas", "Austin", "San Antonio", "Fort Worth"},
		FuelTaxRate:       0.2,
		AverageDriverWage: 22.5,
		KeyIndustries:     []string{"Oil & Gas", "Technology", "Agriculture", "Manufacturing"},
	},
	"AZ": {
		StateName:         "Arizona",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.02,
		CongestionFactor:  1.08,
		Permits:           []string{"Oversize Permits", "Desert Operations"},
		Regulations:       []string{"Phoenix Metro Restrictions", "Border Protocols"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Phoenix", "Tucson", "Mesa", "Chandler", "Scottsdale"},
		FuelTaxRate:       0.19,
		AverageDriverWage: 23.75,
		KeyIndustries:     []string{"Manufacturing", "Mining", "Agriculture", "Tourism"},
	},
	"NM": {
		StateName:         "New Mexico",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    0.98,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Nuclear Transport"},
		Regulations:       []string{"Tribal Land Protocols", "Environmental Restrictions"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Albuquerque", "Las Cruces", "Rio Rancho", "Santa Fe", "Roswell"},
		FuelTaxRate:       0.1875,
		AverageDriverWage: 21.8,
		KeyIndustries:     []string{"Oil & Gas", "Mining", "Agriculture", "Government"},
	},
	"UT": {
		StateName:         "Utah",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.05,
		CongestionFactor:  1.02,
		Permits:           []string{"Oversize Permits", "Mountain Passes"},
		Regulations:       []string{"Salt Lake Metro", "Winter Driving Requirements"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Salt Lake City", "West Valley City", "Provo", "West Jordan", "Orem"},
		FuelTaxRate:       0.314,
		AverageDriverWage: 23.25,
		KeyIndustries:     []string{"Mining", "Technology", "Manufacturing", "Agriculture"},
	},
	"CO": {
		StateName:         "Colorado",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.08,
		CongestionFactor:  1.12,
		Permits:           []string{"Mountain Passes", "Chain Requirements"},
		Regulations:       []string{"Denver Metro Restrictions", "High Altitude Operations"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.22,
		MajorCities:       []string{"Denver", "Colorado Springs", "Aurora", "Fort Collins", "Lakewood"},
		FuelTaxRate:       0.2275,
		AverageDriverWage: 24.5,
		KeyIndustries:     []string{"Aerospace", "Technology", "Agriculture", "Energy"},
	},
	"IL": {
		StateName:         "Illinois",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.05,
		CongestionFactor:  1.3,
		Permits:           []string{"IFTA Permits", "Oversize Permits"},
		Regulations:       []string{"Chicago Truck Routes", "Environmental Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Chicago", "Aurora", "Rockford", "Joliet", "Naperville"},
		FuelTaxRate:       0.382,
		AverageDriverWage: 25.75,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Transportation", "Finance"},
	},
	"IN": {
		StateName:         "Indiana",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.95,
		CongestionFactor:  1.1,
		Permits:           []string{"Oversize Permits", "Hazmat Endorsement"},
		Regulations:       []string{"Indianapolis Metro", "Manufacturing Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Indianapolis", "Fort Wayne", "Evansville", "South Bend", "Carmel"},
		FuelTaxRate:       0.33,
		AverageDriverWage: 22.9,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Pharmaceuticals", "Logistics"},
	},
	"OH": {
		StateName:         "Ohio",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.98,
		CongestionFactor:  1.15,
		Permits:           []string{"Oversize Permits", "Turnpike Permits"},
		Regulations:       []string{"Cleveland-Cincinnati Corridor", "Manufacturing Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"},
		FuelTaxRate:       0.385,
		AverageDriverWage: 23.5,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Healthcare", "Aerospace"},
	},
	"MI": {
		StateName:         "Michigan",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.02,
		CongestionFactor:  1.18,
		Permits:           []string{"Oversize Permits", "Bridge Crossings"},
		Regulations:       []string{"Detroit Metro", "Great Lakes Shipping"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.2,
		MajorCities:       []string{"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Lansing"},
		FuelTaxRate:       0.2733,
		AverageDriverWage: 24.25,
		KeyIndustries:     []string{"Automotive", "Manufacturing", "Agriculture", "Technology"},
	},
	"WI": {
		StateName:         "Wisconsin",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.0,
		CongestionFactor:  1.05,
		Permits:           []string{"Oversize Permits", "Dairy Transport"},
		Regulations:       []string{"Milwaukee Metro", "Agricultural Regulations"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Milwaukee", "Madison", "Green Bay", "Kenosha", "Racine"},
		FuelTaxRate:       0.329,
		AverageDriverWage: 23.8,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Paper", "Tourism"},
	},
	"MN": {
		StateName:         "Minnesota",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.08,
		CongestionFactor:  1.0,
		Permits:           []string{"Winter Weight Restrictions", "Oversize Permits"},
		Regulations:       []string{"Winter Driving Requirements", "Environmental Regulations"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.25,
		MajorCities:       []string{"Minneapolis", "St. Paul", "Rochester", "Duluth", "Bloomington"},
		FuelTaxRate:       0.286,
		AverageDriverWage: 25.4,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Healthcare", "Mining"},
	},
	"IA": {
		StateName:         "Iowa",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.92,
		CongestionFactor:  0.85,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Biofuel Requirements"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Des Moines", "Cedar Rapids", "Davenport", "Sioux City", "Iowa City"},
		FuelTaxRate:       0.309,
		AverageDriverWage: 22.1,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Insurance", "Renewable Energy"},
	},
	"MO": {
		StateName:         "Missouri",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.94,
		CongestionFactor:  1.08,
		Permits:           []string{"Oversize Permits", "River Crossing"},
		Regulations:       []string{"Kansas City-St. Louis Corridor", "Agricultural Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Kansas City", "St. Louis", "Springfield", "Independence", "Columbia"},
		FuelTaxRate:       0.1742,
		AverageDriverWage: 21.95,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Transportation", "Aerospace"},
	},
	"ND": {
		StateName:         "North Dakota",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.15,
		CongestionFactor:  0.7,
		Permits:           []string{"Oversize Permits", "Oil Field Operations"},
		Regulations:       []string{"Bakken Oil Field", "Winter Driving Requirements"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.3,
		MajorCities:       []string{"Fargo", "Bismarck", "Grand Forks", "Minot", "West Fargo"},
		FuelTaxRate:       0.23,
		AverageDriverWage: 28.75,
		KeyIndustries:     []string{"Oil & Gas", "Agriculture", "Mining", "Energy"},
	},
	"SD": {
		StateName:         "South Dakota",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.96,
		CongestionFactor:  0.75,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Tourism Areas"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.22,
		MajorCities:       []string{"Sioux Falls", "Rapid City", "Aberdeen", "Brookings", "Watertown"},
		FuelTaxRate:       0.3,
		AverageDriverWage: 21.5,
		KeyIndustries:     []string{"Agriculture", "Tourism", "Manufacturing", "Healthcare"},
	},
	"NE": {
		StateName:         "Nebraska",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.93,
		CongestionFactor:  0.8,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Interstate Corridors"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Omaha", "Lincoln", "Bellevue", "Grand Island", "Kearney"},
		FuelTaxRate:       0.279,
		AverageDriverWage: 22.25,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Transportation", "Insurance"},
	},
	"KS": {
		StateName:         "Kansas",
		Region:            entities.RegionMidwest,
		CostMultiplier:    0.91,
		CongestionFactor:  0.85,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Wind Energy Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Wichita", "Overland Park", "Kansas City", "Topeka", "Olathe"},
		FuelTaxRate:       0.2603,
		AverageDriverWage: 21.75,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Aerospace", "Energy"},
	},
	"FL": {
		StateName:         "Florida",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    1.08,
		CongestionFactor:  1.25,
		Permits:           []string{"Oversize Permits", "Hurricane Protocols"},
		Regulations:       []string{"Miami-Orlando Corridor", "Port Access Rules"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Jacksonville", "Miami", "Tampa", "Orlando", "St. Petersburg"},
		FuelTaxRate:       0.3424,
		AverageDriverWage: 23.9,
		KeyIndustries:     []string{"Tourism", "Agriculture", "Aerospace", "Ports"},
	},
	"GA": {
		StateName:         "Georgia",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.95,
		CongestionFactor:  1.15,
		Permits:           []string{"Oversize Permits", "Port Access Permits"},
		Regulations:       []string{"Port of Savannah Requirements", "Atlanta Metro Restrictions"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.05,
		MajorCities:       []string{"Atlanta", "Augusta", "Columbus", "Savannah", "Athens"},
		FuelTaxRate:       0.2912,
		AverageDriverWage: 22.8,
		KeyIndustries:     []string{"Logistics", "Agriculture", "Manufacturing", "Ports"},
	},
	"AL": {
		StateName:         "Alabama",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.88,
		CongestionFactor:  0.95,
		Permits:           []string{"Oversize Permits", "Port Access"},
		Regulations:       []string{"Birmingham-Mobile Corridor", "Steel Industry"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Birmingham", "Montgomery", "Mobile", "Huntsville", "Tuscaloosa"},
		FuelTaxRate:       0.19,
		AverageDriverWage: 20.5,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Mining", "Aerospace"},
	},
	"SC": {
		StateName:         "South Carolina",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.92,
		CongestionFactor:  1.05,
		Permits:           []string{"Oversize Permits", "Port Access"},
		Regulations:       []string{"Charleston Port", "Manufacturing Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.06,
		MajorCities:       []string{"Charleston", "Columbia", "North Charleston", "Mount Pleasant", "Rock Hill"},
		FuelTaxRate:       0.2275,
		AverageDriverWage: 21.25,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Tourism", "Ports"},
	},
	"NC": {
		StateName:         "North Carolina",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.96,
		CongestionFactor:  1.12,
		Permits:           []string{"Oversize Permits", "Mountain Passes"},
		Regulations:       []string{"Charlotte Metro", "Research Triangle"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem"},
		FuelTaxRate:       0.3525,
		AverageDriverWage: 22.4,
		KeyIndustries:     []string{"Manufacturing", "Technology", "Agriculture", "Finance"},
	},
	"TN": {
		StateName:         "Tennessee",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.93,
		CongestionFactor:  1.08,
		Permits:           []string{"Oversize Permits", "Music Industry Transport"},
		Regulations:       []string{"Nashville-Memphis Corridor", "Manufacturing Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Nashville", "Memphis", "Knoxville", "Chattanooga", "Clarksville"},
		FuelTaxRate:       0.264,
		AverageDriverWage: 21.8,
		KeyIndustries:     []string{"Manufacturing", "Music", "Agriculture", "Healthcare"},
	},
	"KY": {
		StateName:         "Kentucky",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.9,
		CongestionFactor:  1.0,
		Permits:           []string{"Oversize Permits", "Bourbon Transport"},
		Regulations:       []string{"Louisville Metro", "Coal Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Louisville", "Lexington", "Bowling Green", "Owensboro", "Covington"},
		FuelTaxRate:       0.263,
		AverageDriverWage: 21.6,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Coal", "Bourbon"},
	},
	"MS": {
		StateName:         "Mississippi",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.85,
		CongestionFactor:  0.85,
		Permits:           []string{"Oversize Permits", "River Transport"},
		Regulations:       []string{"Mississippi River", "Agricultural Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Jackson", "Gulfport", "Southaven", "Hattiesburg", "Biloxi"},
		FuelTaxRate:       0.1884,
		AverageDriverWage: 19.75,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Oil & Gas", "Forestry"},
	},
	"LA": {
		StateName:         "Louisiana",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.92,
		CongestionFactor:  1.05,
		Permits:           []string{"Oversize Permits", "Port Access", "Hurricane Protocols"},
		Regulations:       []string{"Port of New Orleans", "Oil & Gas Industry"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"New Orleans", "Baton Rouge", "Shreveport", "Lafayette", "Lake Charles"},
		FuelTaxRate:       0.2054,
		AverageDriverWage: 21.4,
		KeyIndustries:     []string{"Oil & Gas", "Ports", "Agriculture", "Petrochemicals"},
	},
	"AR": {
		StateName:         "Arkansas",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.87,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Walmart Corridor", "Agricultural Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Little Rock", "Fort Smith", "Fayetteville", "Springdale", "Jonesboro"},
		FuelTaxRate:       0.247,
		AverageDriverWage: 20.25,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Retail", "Forestry"},
	},
	"OK": {
		StateName:         "Oklahoma",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    0.89,
		CongestionFactor:  0.95,
		Permits:           []string{"Oversize Permits", "Oil Field Operations"},
		Regulations:       []string{"Oil & Gas Transport", "Tribal Lands"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Oklahoma City", "Tulsa", "Norman", "Broken Arrow", "Lawton"},
		FuelTaxRate:       0.19,
		AverageDriverWage: 21.1,
		KeyIndustries:     []string{"Oil & Gas", "Agriculture", "Aerospace", "Manufacturing"},
	},
	"NY": {
		StateName:         "New York",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.35,
		CongestionFactor:  1.5,
		Permits:           []string{"NYC Permits", "Oversize Permits", "Hazmat Endorsement"},
		Regulations:       []string{"NYC Truck Routes", "Port Authority Rules"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"New York City", "Buffalo", "Rochester", "Yonkers", "Syracuse"},
		FuelTaxRate:       0.4533,
		AverageDriverWage: 29.5,
		KeyIndustries:     []string{"Finance", "Manufacturing", "Agriculture", "Ports"},
	},
	"PA": {
		StateName:         "Pennsylvania",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.12,
		CongestionFactor:  1.2,
		Permits:           []string{"Oversize Permits", "Turnpike Permits"},
		Regulations:       []string{"Philadelphia Metro", "Pittsburgh Restrictions"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading"},
		FuelTaxRate:       0.583,
		AverageDriverWage: 25.9,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Healthcare", "Energy"},
	},
	"NJ": {
		StateName:         "New Jersey",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.28,
		CongestionFactor:  1.4,
		Permits:           []string{"Oversize Permits", "Port Access", "Hazmat Endorsement"},
		Regulations:       []string{"Port of Newark", "Turnpike Restrictions"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Newark", "Jersey City", "Paterson", "Elizabeth", "Trenton"},
		FuelTaxRate:       0.424,
		AverageDriverWage: 27.8,
		KeyIndustries:     []string{"Ports", "Pharmaceuticals", "Manufacturing", "Finance"},
	},
	"CT": {
		StateName:         "Connecticut",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.22,
		CongestionFactor:  1.25,
		Permits:           []string{"Oversize Permits", "Environmental Permits"},
		Regulations:       []string{"I-95 Corridor", "Environmental Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.14,
		MajorCities:       []string{"Bridgeport", "New Haven", "Hartford", "Stamford", "Waterbury"},
		FuelTaxRate:       0.25,
		AverageDriverWage: 26.4,
		KeyIndustries:     []string{"Finance", "Insurance", "Manufacturing", "Aerospace"},
	},
	"MA": {
		StateName:         "Massachusetts",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.3,
		CongestionFactor:  1.35,
		Permits:           []string{"Oversize Permits", "Boston Permits"},
		Regulations:       []string{"Big Dig Restrictions", "Port of Boston"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.16,
		MajorCities:       []string{"Boston", "Worcester", "Springfield", "Lowell", "Cambridge"},
		FuelTaxRate:       0.265,
		AverageDriverWage: 28.75,
		KeyIndustries:     []string{"Technology", "Healthcare", "Education", "Finance"},
	},
	"RI": {
		StateName:         "Rhode Island",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.25,
		CongestionFactor:  1.2,
		Permits:           []string{"Oversize Permits", "Port Access"},
		Regulations:       []string{"I-95 Corridor", "Port Restrictions"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.14,
		MajorCities:       []string{"Providence", "Warwick", "Cranston", "Pawtucket", "East Providence"},
		FuelTaxRate:       0.35,
		AverageDriverWage: 25.9,
		KeyIndustries:     []string{"Manufacturing", "Healthcare", "Tourism", "Ports"},
	},
	"VT": {
		StateName:         "Vermont",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.18,
		CongestionFactor:  0.8,
		Permits:           []string{"Oversize Permits", "Mountain Passes"},
		Regulations:       []string{"Environmental Regulations", "Winter Driving"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.25,
		MajorCities:       []string{"Burlington", "South Burlington", "Rutland", "Barre", "Montpelier"},
		FuelTaxRate:       0.311,
		AverageDriverWage: 24.5,
		KeyIndustries:     []string{"Agriculture", "Tourism", "Manufacturing", "Forestry"},
	},
	"NH": {
		StateName:         "New Hampshire",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.15,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Mountain Passes"},
		Regulations:       []string{"I-93 Restrictions", "Winter Requirements"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.22,
		MajorCities:       []string{"Manchester", "Nashua", "Concord", "Dover", "Rochester"},
		FuelTaxRate:       0.2378,
		AverageDriverWage: 25.1,
		KeyIndustries:     []string{"Manufacturing", "Technology", "Tourism", "Agriculture"},
	},
	"ME": {
		StateName:         "Maine",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.2,
		CongestionFactor:  0.85,
		Permits:           []string{"Oversize Permits", "Forestry Transport"},
		Regulations:       []string{"Forestry Regulations", "Coastal Access"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.28,
		MajorCities:       []string{"Portland", "Lewiston", "Bangor", "South Portland", "Auburn"},
		FuelTaxRate:       0.309,
		AverageDriverWage: 24.25,
		KeyIndustries:     []string{"Forestry", "Fishing", "Tourism", "Agriculture"},
	},
	"MT": {
		StateName:         "Montana",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.12,
		CongestionFactor:  0.7,
		Permits:           []string{"Oversize Permits", "Mountain Passes"},
		Regulations:       []string{"Winter Driving", "Mining Transport"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.3,
		MajorCities:       []string{"Billings", "Missoula", "Great Falls", "Bozeman", "Helena"},
		FuelTaxRate:       0.2775,
		AverageDriverWage: 23.8,
		KeyIndustries:     []string{"Mining", "Agriculture", "Energy", "Tourism"},
	},
	"WY": {
		StateName:         "Wyoming",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.08,
		CongestionFactor:  0.6,
		Permits:           []string{"Oversize Permits", "Mining Operations"},
		Regulations:       []string{"Energy Corridor", "Winter Driving"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.28,
		MajorCities:       []string{"Cheyenne", "Casper", "Laramie", "Gillette", "Rock Springs"},
		FuelTaxRate:       0.24,
		AverageDriverWage: 26.5,
		KeyIndustries:     []string{"Mining", "Energy", "Agriculture", "Tourism"},
	},
	"ID": {
		StateName:         "Idaho",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.02,
		CongestionFactor:  0.8,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Mountain Passes"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Boise", "Meridian", "Nampa", "Idaho Falls", "Pocatello"},
		FuelTaxRate:       0.33,
		AverageDriverWage: 22.75,
		KeyIndustries:     []string{"Agriculture", "Technology", "Manufacturing", "Mining"},
	},
	"MD": {
		StateName:         "Maryland",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.18,
		CongestionFactor:  1.3,
		Permits:           []string{"Oversize Permits", "Port Access", "DC Area"},
		Regulations:       []string{"Baltimore Port", "Washington DC Corridor"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Baltimore", "Frederick", "Rockville", "Gaithersburg", "Bowie"},
		FuelTaxRate:       0.376,
		AverageDriverWage: 26.9,
		KeyIndustries:     []string{"Government", "Ports", "Healthcare", "Technology"},
	},
	"DE": {
		StateName:         "Delaware",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.15,
		CongestionFactor:  1.15,
		Permits:           []string{"Oversize Permits", "Chemical Transport"},
		Regulations:       []string{"Chemical Corridor", "Port Access"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Wilmington", "Dover", "Newark", "Middletown", "Smyrna"},
		FuelTaxRate:       0.23,
		AverageDriverWage: 25.5,
		KeyIndustries:     []string{"Chemicals", "Finance", "Agriculture", "Manufacturing"},
	},
	"DC": {
		StateName:         "Washington D.C.",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.4,
		CongestionFactor:  1.6,
		Permits:           []string{"DC Permits", "Security Clearance"},
		Regulations:       []string{"Federal Security", "Restricted Zones"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Washington"},
		FuelTaxRate:       0.2375,
		AverageDriverWage: 31.25,
		KeyIndustries:     []string{"Government", "Tourism", "Education", "Healthcare"},
	},
	"VA": {
		StateName:         "Virginia",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    1.05,
		CongestionFactor:  1.18,
		Permits:           []string{"Oversize Permits", "Port Access"},
		Regulations:       []string{"Norfolk Port", "DC Metro Area"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Virginia Beach", "Norfolk", "Chesapeake", "Richmond", "Newport News"},
		FuelTaxRate:       0.271,
		AverageDriverWage: 23.8,
		KeyIndustries:     []string{"Government", "Military", "Ports", "Agriculture"},
	},
	"WV": {
		StateName:         "West Virginia",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    0.95,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Coal Transport"},
		Regulations:       []string{"Coal Transport", "Mountain Passes"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Charleston", "Huntington", "Parkersburg", "Morgantown", "Wheeling"},
		FuelTaxRate:       0.359,
		AverageDriverWage: 22.4,
		KeyIndustries:     []string{"Coal", "Chemicals", "Steel", "Natural Gas"},
	},

	// Canada
	"BC": {
		StateName:         "British Columbia",
		Region:            entities.RegionWestCoast,
		CostMultiplier:    1.32,
		CongestionFactor:  1.25,
		Permits:           []string{"Oversize Permits", "Mountain Passes", "Environmental Permits"},
		Regulations:       []string{"Vancouver Metro", "Port Access", "Environmental Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Vancouver", "Surrey", "Burnaby", "Richmond", "Abbotsford"},
		FuelTaxRate:       0.67,
		AverageDriverWage: 32.5,
		KeyIndustries:     []string{"Forestry", "Mining", "Ports", "Tourism"},
	},
	"AB": {
		StateName:         "Alberta",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.18,
		CongestionFactor:  1.05,
		Permits:           []string{"Oversize Permits", "Oil Sands Operations"},
		Regulations:       []string{"Oil Sands Transport", "Winter Driving"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.25,
		MajorCities:       []string{"Calgary", "Edmonton", "Red Deer", "Lethbridge", "Medicine Hat"},
		FuelTaxRate:       0.13,
		AverageDriverWage: 35.75,
		KeyIndustries:     []string{"Oil & Gas", "Agriculture", "Forestry", "Technology"},
	},
	"SK": {
		StateName:         "Saskatchewan",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.08,
		CongestionFactor:  0.8,
		Permits:           []string{"Oversize Permits", "Agricultural Transport"},
		Regulations:       []string{"Agricultural Regulations", "Mining Transport"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.3,
		MajorCities:       []string{"Saskatoon", "Regina", "Prince Albert", "Moose Jaw", "Swift Current"},
		FuelTaxRate:       0.15,
		AverageDriverWage: 28.9,
		KeyIndustries:     []string{"Agriculture", "Mining", "Oil & Gas", "Forestry"},
	},
	"MB": {
		StateName:         "Manitoba",
		Region:            entities.RegionMidwest,
		CostMultiplier:    1.12,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Winter Operations"},
		Regulations:       []string{"Agricultural Transport", "Winter Driving"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.28,
		MajorCities:       []string{"Winnipeg", "Brandon", "Steinbach", "Thompson", "Portage la Prairie"},
		FuelTaxRate:       0.14,
		AverageDriverWage: 27.25,
		KeyIndustries:     []string{"Agriculture", "Manufacturing", "Mining", "Transportation"},
	},
	"ON": {
		StateName:         "Ontario",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.25,
		CongestionFactor:  1.35,
		Permits:           []string{"Oversize Permits", "CVOR Certificate"},
		Regulations:       []string{"GTA Restrictions", "Manufacturing Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.2,
		MajorCities:       []string{"Toronto", "Ottawa", "Mississauga", "Brampton", "Hamilton"},
		FuelTaxRate:       0.147,
		AverageDriverWage: 31.5,
		KeyIndustries:     []string{"Manufacturing", "Finance", "Technology", "Agriculture"},
	},
	"QC": {
		StateName:         "Quebec",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.22,
		CongestionFactor:  1.28,
		Permits:           []string{"Oversize Permits", "Language Requirements"},
		Regulations:       []string{"French Language Laws", "Montreal Metro"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.22,
		MajorCities:       []string{"Montreal", "Quebec City", "Laval", "Gatineau", "Longueuil"},
		FuelTaxRate:       0.192,
		AverageDriverWage: 29.75,
		KeyIndustries:     []string{"Manufacturing", "Mining", "Forestry", "Aerospace"},
	},
	"NB": {
		StateName:         "New Brunswick",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.15,
		CongestionFactor:  0.85,
		Permits:           []string{"Oversize Permits", "Forestry Transport"},
		Regulations:       []string{"Forestry Regulations", "Port Access"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.25,
		MajorCities:       []string{"Saint John", "Moncton", "Fredericton", "Dieppe", "Riverview"},
		FuelTaxRate:       0.1085,
		AverageDriverWage: 25.8,
		KeyIndustries:     []string{"Forestry", "Mining", "Agriculture", "Fishing"},
	},
	"NS": {
		StateName:         "Nova Scotia",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.18,
		CongestionFactor:  0.9,
		Permits:           []string{"Oversize Permits", "Port Access"},
		Regulations:       []string{"Halifax Port", "Fishing Industry"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.2,
		MajorCities:       []string{"Halifax", "Dartmouth", "Sydney", "Truro", "New Glasgow"},
		FuelTaxRate:       0.155,
		AverageDriverWage: 26.4,
		KeyIndustries:     []string{"Fishing", "Mining", "Agriculture", "Tourism"},
	},
	"PE": {
		StateName:         "Prince Edward Island",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.25,
		CongestionFactor:  0.7,
		Permits:           []string{"Oversize Permits", "Bridge Access"},
		Regulations:       []string{"Confederation Bridge", "Agricultural Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.18,
		MajorCities:       []string{"Charlottetown", "Summerside", "Stratford", "Cornwall", "Montague"},
		FuelTaxRate:       0.135,
		AverageDriverWage: 24.9,
		KeyIndustries:     []string{"Agriculture", "Fishing", "Tourism", "Manufacturing"},
	},
	"NL": {
		StateName:         "Newfoundland and Labrador",
		Region:            entities.RegionNortheast,
		CostMultiplier:    1.35,
		CongestionFactor:  0.8,
		Permits:           []string{"Oversize Permits", "Remote Area Operations"},
		Regulations:       []string{"Remote Area Protocols", "Mining Transport"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.3,
		MajorCities:       []string{"St. Johns", "Mount Pearl", "Corner Brook", "Conception Bay South", "Grand Falls-Windsor"},
		FuelTaxRate:       0.165,
		AverageDriverWage: 28.5,
		KeyIndustries:     []string{"Mining", "Oil & Gas", "Fishing", "Forestry"},
	},
	"NT": {
		StateName:         "Northwest Territories",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.65,
		CongestionFactor:  0.5,
		Permits:           []string{"Arctic Operations", "Mining Transport"},
		Regulations:       []string{"Arctic Protocols", "Indigenous Land Rights"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.45,
		MajorCities:       []string{"Yellowknife", "Hay River", "Inuvik", "Fort Smith", "Behchoko"},
		FuelTaxRate:       0.107,
		AverageDriverWage: 42.5,
		KeyIndustries:     []string{"Mining", "Oil & Gas", "Tourism", "Government"},
	},
	"NU": {
		StateName:         "Nunavut",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.85,
		CongestionFactor:  0.3,
		Permits:           []string{"Arctic Operations", "Remote Access"},
		Regulations:       []string{"Inuit Land Claims", "Arctic Environment"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.5,
		MajorCities:       []string{"Iqaluit", "Rankin Inlet", "Arviat", "Baker Lake", "Igloolik"},
		FuelTaxRate:       0.063,
		AverageDriverWage: 45.0,
		KeyIndustries:     []string{"Mining", "Government", "Tourism", "Hunting & Fishing"},
	},
	"YT": {
		StateName:         "Yukon",
		Region:            entities.RegionMountainWest,
		CostMultiplier:    1.55,
		CongestionFactor:  0.6,
		Permits:           []string{"Arctic Operations", "Alaska Highway"},
		Regulations:       []string{"Alaska Highway Protocols", "Mining Transport"},
		WeatherRisk:       entities.WeatherRiskHigh,
		SeasonalVariation: 0.4,
		MajorCities:       []string{"Whitehorse", "Dawson City", "Watson Lake", "Haines Junction", "Mayo"},
		FuelTaxRate:       0.132,
		AverageDriverWage: 38.75,
		KeyIndustries:     []string{"Mining", "Tourism", "Government", "Forestry"},
	},

	// Mexico
	"BCN": {
		StateName:         "Baja California Norte",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.15,
		CongestionFactor:  1.3,
		Permits:           []string{"Border Crossing", "Maquiladora Access"},
		Regulations:       []string{"USMCA Compliance", "Border Security"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Tijuana", "Mexicali", "Ensenada", "Rosarito", "Tecate"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 18.5,
		KeyIndustries:     []string{"Manufacturing", "Agriculture", "Tourism", "Maquiladoras"},
	},
	"SON": {
		StateName:         "Sonora",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.08,
		CongestionFactor:  1.0,
		Permits:           []string{"Border Crossing", "Mining Operations"},
		Regulations:       []string{"Desert Operations", "Mining Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Hermosillo", "Ciudad Obregón", "Nogales", "Navojoa", "Guaymas"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 16.75,
		KeyIndustries:     []string{"Mining", "Agriculture", "Manufacturing", "Maquiladoras"},
	},
	"CHH": {
		StateName:         "Chihuahua",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.05,
		CongestionFactor:  0.95,
		Permits:           []string{"Border Crossing", "Manufacturing Zones"},
		Regulations:       []string{"Maquiladora Operations", "Desert Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.15,
		MajorCities:       []string{"Chihuahua", "Ciudad Juárez", "Delicias", "Parral", "Cuauhtémoc"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 15.9,
		KeyIndustries:     []string{"Manufacturing", "Mining", "Agriculture", "Maquiladoras"},
	},
	"COA": {
		StateName:         "Coahuila",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.02,
		CongestionFactor:  0.9,
		Permits:           []string{"Border Crossing", "Steel Industry"},
		Regulations:       []string{"Steel Transport", "Mining Operations"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Saltillo", "Torreón", "Monclova", "Piedras Negras", "Acuña"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 16.25,
		KeyIndustries:     []string{"Steel", "Mining", "Automotive", "Agriculture"},
	},
	"NLE": {
		StateName:         "Nuevo León",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.08,
		CongestionFactor:  1.2,
		Permits:           []string{"Border Crossing", "Industrial Zones"},
		Regulations:       []string{"Monterrey Metro", "Industrial Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Monterrey", "Guadalupe", "San Nicolás", "Apodaca", "Santa Catarina"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 17.8,
		KeyIndustries:     []string{"Manufacturing", "Steel", "Technology", "Automotive"},
	},
	"TAM": {
		StateName:         "Tamaulipas",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.05,
		CongestionFactor:  1.05,
		Permits:           []string{"Border Crossing", "Port Access"},
		Regulations:       []string{"Border Security", "Port Operations"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Reynosa", "Matamoros", "Nuevo Laredo", "Tampico", "Victoria"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 16.5,
		KeyIndustries:     []string{"Maquiladoras", "Ports", "Oil & Gas", "Agriculture"},
	},
	"MEX": {
		StateName:         "Estado de México",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.12,
		CongestionFactor:  1.4,
		Permits:           []string{"Mexico City Access", "Environmental Permits"},
		Regulations:       []string{"Mexico City Metro", "Environmental Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Ecatepec", "Nezahualcóyotl", "Naucalpan", "Tlalnepantla", "Chimalhuacán"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 17.25,
		KeyIndustries:     []string{"Manufacturing", "Automotive", "Textiles", "Chemicals"},
	},
	"CMX": {
		StateName:         "Ciudad de México",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.25,
		CongestionFactor:  1.6,
		Permits:           []string{"CDMX Permits", "Environmental Verification"},
		Regulations:       []string{"Hoy No Circula", "Restricted Zones"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.05,
		MajorCities:       []string{"Mexico City"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 18.75,
		KeyIndustries:     []string{"Finance", "Government", "Manufacturing", "Services"},
	},
	"JAL": {
		StateName:         "Jalisco",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.06,
		CongestionFactor:  1.15,
		Permits:           []string{"Oversize Permits", "Tequila Transport"},
		Regulations:       []string{"Guadalajara Metro", "Tequila Denomination"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.08,
		MajorCities:       []string{"Guadalajara", "Zapopan", "Tlaquepaque", "Tonalá", "Puerto Vallarta"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 16.9,
		KeyIndustries:     []string{"Technology", "Tequila", "Manufacturing", "Agriculture"},
	},
	"GTO": {
		StateName:         "Guanajuato",
		Region:            entities.RegionSouthwest,
		CostMultiplier:    1.02,
		CongestionFactor:  1.0,
		Permits:           []string{"Automotive Industry", "Manufacturing Zones"},
		Regulations:       []string{"Bajío Industrial Corridor", "Automotive Transport"},
		WeatherRisk:       entities.WeatherRiskLow,
		SeasonalVariation: 0.06,
		MajorCities:       []string{"León", "Irapuato", "Celaya", "Salamanca", "Guanajuato"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 16.4,
		KeyIndustries:     []string{"Automotive", "Leather", "Agriculture", "Manufacturing"},
	},
	"VER": {
		StateName:         "Veracruz",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    1.0,
		CongestionFactor:  1.05,
		Permits:           []string{"Port Access", "Oil Industry"},
		Regulations:       []string{"Port of Veracruz", "Oil Transport"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.1,
		MajorCities:       []string{"Veracruz", "Xalapa", "Coatzacoalcos", "Córdoba", "Orizaba"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 15.75,
		KeyIndustries:     []string{"Ports", "Oil & Gas", "Agriculture", "Petrochemicals"},
	},
	"YUC": {
		StateName:         "Yucatán",
		Region:            entities.RegionSoutheast,
		CostMultiplier:    1.08,
		CongestionFactor:  0.9,
		Permits:           []string{"Tourism Transport", "Agricultural Permits"},
		Regulations:       []string{"Mayan Heritage Sites", "Tourism Zones"},
		WeatherRisk:       entities.WeatherRiskMedium,
		SeasonalVariation: 0.12,
		MajorCities:       []string{"Mérida", "Kanasín", "Umán", "Progreso", "Tizimín"},
		FuelTaxRate:       0.52,
		AverageDriverWage: 15.25,
		KeyIndustries:     []string{"Tourism", "Agriculture", "Manufacturing", "Henequen"},
	},
}

// Lookup returns the configuration for a state, province, or Mexican state
// code. The second return is false for codes the table does not cover; pricing
// treats those as a skip, not an error.
func Lookup(code string) (Config, bool) {
	cfg, ok := configurations[code]
	return cfg, ok
}

// Codes lists every jurisdiction code the table covers.
func Codes() []string {
	codes := make([]string, 0, len(configurations))
	for code := range configurations {
		codes = append(codes, code)
	}
	return codes
}
