package engine

import "strings"

// Fallback values for unrecognized lookup keys. The simulator is total
// over any string input: unknown categories, countries, and energy
// sources use these instead of failing.
const (
	DefaultBaseCO2Kg        = 150.0
	DefaultEnergyMultiplier = 1.0
	DefaultCountryFactor    = 1.0
	DefaultWaterMultiplier  = 60.0
	defaultProductWeightKg  = 5.0
)

// baseCO2ByCategory is the manufacturing-phase CO2 baseline in kg per
// product category, before energy and country adjustments.
var baseCO2ByCategory = map[string]float64{
	"smartphone":      85,
	"laptop":          250,
	"tablet":          120,
	"desktop":         350,
	"television":      400,
	"refrigerator":    550,
	"washing_machine": 450,
	"microwave":       120,
	"clothing":        25,
	"footwear":        18,
	"furniture":       90,
}

// energyMultiplierBySource scales the baseline by grid carbon intensity.
// Coal sits at the top, renewables and nuclear at the bottom.
var energyMultiplierBySource = map[string]float64{
	"coal":        1.8,
	"oil":         1.55,
	"natural_gas": 1.25,
	"grid":        1.0,
	"mixed":       1.0,
	"biomass":     0.9,
	"hydro":       0.35,
	"nuclear":     0.3,
	"wind":        0.28,
	"solar":       0.25,
}

// countryFactorByName reflects the manufacturing grid's average
// emissions intensity relative to a 1.0 baseline.
var countryFactorByName = map[string]float64{
	"china":         1.3,
	"bangladesh":    1.3,
	"india":         1.25,
	"vietnam":       1.2,
	"usa":           1.0,
	"united states": 1.0,
	"japan":         0.95,
	"south korea":   0.95,
	"brazil":        0.9,
	"germany":       0.85,
	"uk":            0.8,
	"france":        0.7,
	"sweden":        0.6,
	"norway":        0.55,
}

// waterMultiplierByCategory converts lifetime CO2 (kg) to a water
// footprint (L). The ratios follow published water-intensity figures per
// category rather than a single global constant.
var waterMultiplierByCategory = map[string]float64{
	"smartphone":      140,
	"laptop":          80,
	"tablet":          110,
	"desktop":         70,
	"television":      55,
	"refrigerator":    30,
	"washing_machine": 35,
	"microwave":       45,
	"clothing":        108,
	"footwear":        95,
	"furniture":       40,
}

// productWeightByCategory is the typical shipped mass in kg, used for
// landfill estimates.
var productWeightByCategory = map[string]float64{
	"smartphone":      0.2,
	"laptop":          2.0,
	"tablet":          0.5,
	"desktop":         9.0,
	"television":      15.0,
	"refrigerator":    80.0,
	"washing_machine": 70.0,
	"microwave":       12.0,
	"clothing":        0.3,
	"footwear":        0.8,
	"furniture":       35.0,
}

// materialTemplateByCategory supplies a composition when the caller
// provides none (or only the "Mixed" placeholder).
var materialTemplateByCategory = map[string][]Material{
	"smartphone": {
		{Name: "Aluminum", Percentage: 25, Toxicity: 0.3, Recyclability: 0.9},
		{Name: "Glass", Percentage: 15, Toxicity: 0.1, Recyclability: 0.7},
		{Name: "Plastic", Percentage: 30, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Lithium Battery", Percentage: 20, Toxicity: 0.8, Recyclability: 0.3},
		{Name: "Rare Earth Metals", Percentage: 10, Toxicity: 0.9, Recyclability: 0.2},
	},
	"laptop": {
		{Name: "Aluminum", Percentage: 35, Toxicity: 0.3, Recyclability: 0.9},
		{Name: "Plastic", Percentage: 25, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Lithium Battery", Percentage: 15, Toxicity: 0.8, Recyclability: 0.3},
		{Name: "Copper", Percentage: 15, Toxicity: 0.4, Recyclability: 0.85},
		{Name: "Silicon", Percentage: 10, Toxicity: 0.35, Recyclability: 0.3},
	},
	"tablet": {
		{Name: "Aluminum", Percentage: 30, Toxicity: 0.3, Recyclability: 0.9},
		{Name: "Glass", Percentage: 25, Toxicity: 0.1, Recyclability: 0.7},
		{Name: "Plastic", Percentage: 20, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Lithium Battery", Percentage: 18, Toxicity: 0.8, Recyclability: 0.3},
		{Name: "Rare Earth Metals", Percentage: 7, Toxicity: 0.9, Recyclability: 0.2},
	},
	"desktop": {
		{Name: "Steel", Percentage: 40, Toxicity: 0.2, Recyclability: 0.95},
		{Name: "Plastic", Percentage: 25, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Copper", Percentage: 15, Toxicity: 0.4, Recyclability: 0.85},
		{Name: "Aluminum", Percentage: 12, Toxicity: 0.3, Recyclability: 0.9},
		{Name: "Silicon", Percentage: 8, Toxicity: 0.35, Recyclability: 0.3},
	},
	"television": {
		{Name: "Plastic", Percentage: 40, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Glass", Percentage: 30, Toxicity: 0.1, Recyclability: 0.7},
		{Name: "Aluminum", Percentage: 15, Toxicity: 0.3, Recyclability: 0.9},
		{Name: "Copper", Percentage: 10, Toxicity: 0.4, Recyclability: 0.85},
		{Name: "Rare Earth Metals", Percentage: 5, Toxicity: 0.9, Recyclability: 0.2},
	},
	"refrigerator": {
		{Name: "Steel", Percentage: 60, Toxicity: 0.2, Recyclability: 0.95},
		{Name: "Plastic", Percentage: 25, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Copper", Percentage: 10, Toxicity: 0.4, Recyclability: 0.85},
		{Name: "Refrigerant", Percentage: 5, Toxicity: 0.9, Recyclability: 0.1},
	},
	"washing_machine": {
		{Name: "Steel", Percentage: 55, Toxicity: 0.2, Recyclability: 0.95},
		{Name: "Plastic", Percentage: 20, Toxicity: 0.5, Recyclability: 0.4},
		{Name: "Concrete", Percentage: 15, Toxicity: 0.15, Recyclability: 0.5},
		{Name: "Copper", Percentage: 10, Toxicity: 0.4, Recyclability: 0.85},
	},
	"clothing": {
		{Name: "Cotton", Percentage: 60, Toxicity: 0.1, Recyclability: 0.6},
		{Name: "Polyester", Percentage: 35, Toxicity: 0.45, Recyclability: 0.3},
		{Name: "Dye", Percentage: 5, Toxicity: 0.7, Recyclability: 0.05},
	},
	"furniture": {
		{Name: "Wood", Percentage: 70, Toxicity: 0.05, Recyclability: 0.8},
		{Name: "Steel", Percentage: 15, Toxicity: 0.2, Recyclability: 0.95},
		{Name: "Foam", Percentage: 10, Toxicity: 0.6, Recyclability: 0.1},
		{Name: "Fabric", Percentage: 5, Toxicity: 0.3, Recyclability: 0.4},
	},
}

// electronicsCategories marks the categories treated as electronics-like
// for the e-waste composite score.
var electronicsCategories = map[string]bool{
	"smartphone":      true,
	"laptop":          true,
	"tablet":          true,
	"desktop":         true,
	"television":      true,
	"microwave":       true,
	"refrigerator":    true,
	"washing_machine": true,
}

// normalizeKey canonicalizes a lookup key: trimmed, lowercased, spaces
// and dashes folded to underscores so "Washing Machine" matches.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "-", "_")
	return strings.ReplaceAll(key, " ", "_")
}

// BaseCO2For returns the per-category CO2 baseline in kg, or
// DefaultBaseCO2Kg for unknown categories.
func BaseCO2For(category string) float64 {
	if v, ok := baseCO2ByCategory[normalizeKey(category)]; ok {
		return v
	}
	return DefaultBaseCO2Kg
}

// EnergyMultiplierFor returns the grid-intensity multiplier for an
// energy source, or DefaultEnergyMultiplier for unknown sources.
func EnergyMultiplierFor(source string) float64 {
	if v, ok := energyMultiplierBySource[normalizeKey(source)]; ok {
		return v
	}
	return DefaultEnergyMultiplier
}

// CountryFactorFor returns the manufacturing-energy factor for a
// country, or DefaultCountryFactor for unknown countries.
func CountryFactorFor(country string) float64 {
	key := strings.ToLower(strings.TrimSpace(country))
	if v, ok := countryFactorByName[key]; ok {
		return v
	}
	return DefaultCountryFactor
}

// WaterMultiplierFor returns the CO2-to-water ratio for a category, or
// DefaultWaterMultiplier for unknown categories.
func WaterMultiplierFor(category string) float64 {
	if v, ok := waterMultiplierByCategory[normalizeKey(category)]; ok {
		return v
	}
	return DefaultWaterMultiplier
}

// productWeightFor returns the typical shipped mass in kg.
func productWeightFor(category string) float64 {
	if v, ok := productWeightByCategory[normalizeKey(category)]; ok {
		return v
	}
	return defaultProductWeightKg
}

// CategoryMaterials returns the material composition template for a
// category. Unknown categories yield a single 100% "Mixed" entry so the
// downstream averages stay defined.
func CategoryMaterials(category string) []Material {
	if tmpl, ok := materialTemplateByCategory[normalizeKey(category)]; ok {
		out := make([]Material, len(tmpl))
		copy(out, tmpl)
		return out
	}
	return []Material{{Name: "Mixed", Percentage: 100, Toxicity: 0.4, Recyclability: 0.5}}
}

// resolveMaterials picks the effective composition for an input: the
// caller's list unless it is empty or a lone "Mixed" placeholder, in
// which case the category template applies.
func resolveMaterials(input SimulationInput) []Material {
	if len(input.Materials) == 0 {
		return CategoryMaterials(input.ProductCategory)
	}
	if len(input.Materials) == 1 && strings.EqualFold(strings.TrimSpace(input.Materials[0].Name), "mixed") {
		return CategoryMaterials(input.ProductCategory)
	}
	return input.Materials
}

// frequencyMultiplier maps usage frequency to its impact multiplier.
// Unknown frequencies behave as weekly.
func frequencyMultiplier(freq string) float64 {
	switch normalizeKey(freq) {
	case FrequencyDaily:
		return 1.5
	case FrequencyMonthly:
		return 0.6
	default:
		return 1.0
	}
}

// weightedAverages returns the mass-weighted average toxicity and
// recyclability of a composition. An all-zero percentage list falls back
// to an unweighted mean so the averages stay defined.
func weightedAverages(materials []Material) (toxicity, recyclability float64) {
	var totalPct, toxSum, recSum float64
	for _, m := range materials {
		totalPct += m.Percentage
		toxSum += m.Toxicity * m.Percentage
		recSum += m.Recyclability * m.Percentage
	}
	if totalPct <= 0 {
		n := float64(len(materials))
		if n == 0 {
			return 0, 0
		}
		for _, m := range materials {
			toxicity += m.Toxicity / n
			recyclability += m.Recyclability / n
		}
		return toxicity, recyclability
	}
	return toxSum / totalPct, recSum / totalPct
}
