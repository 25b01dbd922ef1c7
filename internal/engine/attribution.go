package engine

import "sort"

// attributionContext carries the resolved inputs the direction rules
// inspect. Attribution never re-reads the raw input so the rules stay in
// lockstep with the values the rest of the pipeline used.
type attributionContext struct {
	energyMultiplier float64
	baseCO2          float64
	transportKm      float64
	frequency        string
	lifespanYears    int
	countryFactor    float64
	avgToxicity      float64
	avgRecyclability float64
}

// featureSpec fixes a feature's name, its base+jitter importance range,
// and its direction rule. The ranges decrease strictly from the first
// feature to the last; jitter can let neighbors cross, which is why the
// final list is sorted rather than assumed ordered.
type featureSpec struct {
	name     string
	base     float64
	spread   float64
	positive func(attributionContext) bool
}

var featureSpecs = []featureSpec{
	{"Energy Source", 0.28, 0.08, func(c attributionContext) bool { return c.energyMultiplier > 1 }},
	{"Product Category", 0.22, 0.06, func(c attributionContext) bool { return c.baseCO2 > DefaultBaseCO2Kg }},
	{"Transport Distance", 0.17, 0.05, func(c attributionContext) bool { return c.transportKm > 2000 }},
	{"Usage Frequency", 0.13, 0.04, func(c attributionContext) bool { return c.frequency == FrequencyDaily }},
	{"Lifespan", 0.10, 0.03, func(c attributionContext) bool { return c.lifespanYears < 5 }},
	{"Manufacturing Country", 0.07, 0.03, func(c attributionContext) bool { return c.countryFactor > 1 }},
	{"Material Toxicity", 0.04, 0.02, func(c attributionContext) bool { return c.avgToxicity > 0.3 }},
	{"Recyclability", 0.02, 0.02, func(c attributionContext) bool { return c.avgRecyclability < 0.5 }},
}

// featureAttribution emits the eight-entry pseudo-SHAP list, sorted
// non-increasing by importance. The descending order is part of the
// result contract, not a display convenience.
func featureAttribution(src *Source, c attributionContext) []FeatureImportance {
	out := make([]FeatureImportance, 0, len(featureSpecs))
	for _, spec := range featureSpecs {
		direction := DirectionNegative
		if spec.positive(c) {
			direction = DirectionPositive
		}
		out = append(out, FeatureImportance{
			Feature:    spec.name,
			Importance: round4(spec.base + src.Float64()*spec.spread),
			Direction:  direction,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}
