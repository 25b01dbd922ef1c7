// Package engine implements the deterministic scenario simulator behind
// the EcoSim dashboard: a seeded arithmetic pipeline that derives
// lifetime CO2, water, waste, e-waste risk, Monte Carlo samples, feature
// attribution, and degradation curves from a product configuration.
//
// Every derived field is a pure function of the input plus a seeded
// linear-congruential generator, so identical inputs always produce
// identical results. See Simulate for the pipeline entry point.
package engine

// Usage frequency keys recognized by the simulator. Unknown values fall
// back to the weekly multiplier.
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Risk category labels shared by the e-waste classifier.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Attribution directions.
const (
	DirectionPositive = "positive"
	DirectionNegative = "negative"
)

// Material describes one component of a product's composition.
// Percentages are mass shares and should sum to 100, though the
// simulator tolerates lists that do not.
type Material struct {
	Name          string  `json:"name"`
	Percentage    float64 `json:"percentage"`
	Toxicity      float64 `json:"toxicity"`
	Recyclability float64 `json:"recyclability"`
}

// SimulationInput is the product/usage configuration a simulation runs
// over. It is constructed once per call and never mutated.
type SimulationInput struct {
	// ProductCategory is an enum-like key (e.g. "smartphone", "laptop").
	// Unknown categories fall back to documented defaults.
	ProductCategory string `json:"productCategory"`

	// Materials is the composition list. When empty, or when it holds a
	// single placeholder "Mixed" entry, the per-category template from
	// CategoryMaterials is used instead.
	Materials []Material `json:"materials"`

	ManufacturingCountry string `json:"manufacturingCountry"`
	UsageCountry         string `json:"usageCountry"`
	EnergySource         string `json:"energySource"`

	// LifespanYears must be at least 1.
	LifespanYears int `json:"lifespanYears"`

	// UsageFrequency is daily, weekly, or monthly.
	UsageFrequency string `json:"usageFrequency"`

	// TransportDistanceKm must be non-negative.
	TransportDistanceKm float64 `json:"transportDistanceKm"`
}

// Validate rejects inputs that would break the arithmetic pipeline.
// Unknown string keys are not errors; only numeric preconditions are
// enforced here.
func (in SimulationInput) Validate() error {
	if in.LifespanYears < 1 {
		return ErrInvalidLifespan
	}
	if in.TransportDistanceKm < 0 {
		return ErrNegativeTransportDistance
	}
	for _, m := range in.Materials {
		if m.Toxicity < 0 || m.Toxicity > 1 || m.Recyclability < 0 || m.Recyclability > 1 {
			return ErrMaterialOutOfRange
		}
	}
	return nil
}

// YearlyImpact is one row of the annual breakdown.
type YearlyImpact struct {
	Year   int     `json:"year"`
	CO2    float64 `json:"co2"`
	CILow  float64 `json:"ci_low"`
	CIHigh float64 `json:"ci_high"`
	Water  float64 `json:"water"`
	Waste  float64 `json:"waste"`
}

// LifecyclePhase is one of the five fixed lifecycle phases with its
// share of the total footprint.
type LifecyclePhase struct {
	Phase      string  `json:"phase"`
	Percentage int     `json:"percentage"`
	CO2        float64 `json:"co2"`
	Water      float64 `json:"water"`
	ToxicRisk  int     `json:"toxicRisk"`
}

// MonteCarloSample is one joint draw of the uncertainty distribution.
type MonteCarloSample struct {
	CO2   float64 `json:"co2"`
	Water float64 `json:"water"`
	Waste float64 `json:"waste"`
}

// FeatureImportance is one entry of the pseudo-SHAP attribution list.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
	Direction  string  `json:"direction"`
}

// DegradationPoint is one year of the degradation timeline.
type DegradationPoint struct {
	Year              int     `json:"year"`
	Efficiency        float64 `json:"efficiency"`
	ToxicLeaching     float64 `json:"toxicLeaching"`
	MaterialIntegrity float64 `json:"materialIntegrity"`
	CumulativeCO2     float64 `json:"cumulativeCO2"`
}

// CrossValidationFold is one of the five fixed-shape fold records.
type CrossValidationFold struct {
	Fold int     `json:"fold"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
	MAE  float64 `json:"mae"`
}

// ModelMetrics is the cosmetic model-quality summary.
type ModelMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	F1        float64 `json:"f1"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	AUC       float64 `json:"auc"`
}

// EWasteDetail carries the category-driven end-of-life attributes.
type EWasteDetail struct {
	// Repairability is a 0-100 score; smartphones score lowest,
	// appliances and furniture highest.
	Repairability float64 `json:"repairability"`

	// SoftwareSupportYears is the expected update window, zero for
	// non-software categories.
	SoftwareSupportYears float64 `json:"softwareSupportYears"`

	// ObsolescenceRate is the annual probability of forced replacement.
	ObsolescenceRate float64 `json:"obsolescenceRate"`

	// BatteryRisk is None, Moderate, or High.
	BatteryRisk string `json:"batteryRisk"`

	// ToxicMaterials lists material names with toxicity above 0.4.
	ToxicMaterials []string `json:"toxicMaterials"`
}

// SimulationResult aggregates every derived metric for one input.
type SimulationResult struct {
	TotalCO2               float64               `json:"totalCO2"`
	AnnualBreakdown        []YearlyImpact        `json:"annualBreakdown"`
	WaterFootprint         float64               `json:"waterFootprint"`
	ResourceDepletionIndex float64               `json:"resourceDepletionIndex"`
	LandfillMass           float64               `json:"landfillMass"`
	RecyclingProbability   float64               `json:"recyclingProbability"`
	EWasteRisk             string                `json:"eWasteRisk"`
	EWasteScore            float64               `json:"eWasteScore"`
	EWasteDetail           EWasteDetail          `json:"eWasteDetail"`
	LifecyclePhases        []LifecyclePhase      `json:"lifecyclePhases"`
	MonteCarlo             []MonteCarloSample    `json:"monteCarlo"`
	SHAPValues             []FeatureImportance   `json:"shapValues"`
	DegradationTimeline    []DegradationPoint    `json:"degradationTimeline"`
	CrossValidation        []CrossValidationFold `json:"crossValidation"`
	ModelMetrics           ModelMetrics          `json:"modelMetrics"`
}
