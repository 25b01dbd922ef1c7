package engine

import (
	"math"
	"strings"
)

// Battery risk labels.
const (
	BatteryRiskNone     = "None"
	BatteryRiskModerate = "Moderate"
	BatteryRiskHigh     = "High"
)

// Composite e-waste score thresholds.
const (
	eWasteHighThreshold   = 65
	eWasteMediumThreshold = 35
)

// toxicMaterialThreshold is the toxicity above which a material is
// listed by name in the e-waste detail.
const toxicMaterialThreshold = 0.4

// eWasteCategoryProfile fixes the base+jitter ranges for the
// category-specific end-of-life attributes. Smartphones sit at the
// bottom of repairability and support; appliances and furniture at the
// top.
type eWasteCategoryProfile struct {
	repairBase, repairSpread   float64
	supportBase, supportSpread float64
	obsolBase, obsolSpread     float64
}

var eWasteProfiles = map[string]eWasteCategoryProfile{
	"smartphone":      {20, 15, 3, 2, 0.15, 0.10},
	"tablet":          {25, 15, 4, 2, 0.14, 0.08},
	"laptop":          {35, 15, 5, 2, 0.12, 0.08},
	"desktop":         {45, 20, 6, 2, 0.10, 0.06},
	"television":      {40, 20, 7, 2, 0.08, 0.05},
	"microwave":       {55, 20, 8, 2, 0.06, 0.04},
	"washing_machine": {60, 20, 9, 3, 0.05, 0.04},
	"refrigerator":    {60, 20, 10, 3, 0.05, 0.04},
	"clothing":        {50, 20, 0, 0, 0.10, 0.05},
	"footwear":        {45, 20, 0, 0, 0.10, 0.05},
	"furniture":       {75, 15, 0, 0, 0.02, 0.02},
}

var defaultEWasteProfile = eWasteCategoryProfile{40, 20, 5, 2, 0.10, 0.05}

// eWasteProfile derives the composite e-waste score, its risk category,
// and the detail record.
func eWasteProfile(src *Source, input SimulationInput, materials []Material, avgToxicity float64) (float64, string, EWasteDetail) {
	profile, ok := eWasteProfiles[normalizeKey(input.ProductCategory)]
	if !ok {
		profile = defaultEWasteProfile
	}

	repairability := round2(profile.repairBase + src.Float64()*profile.repairSpread)
	supportYears := round2(profile.supportBase + src.Float64()*profile.supportSpread)
	obsolescence := round4(profile.obsolBase + src.Float64()*profile.obsolSpread)

	battery := hasBatteryMaterial(materials)

	score := avgToxicity * 30
	if battery {
		score += 20
	}
	score += (100 - repairability) * 0.15
	if electronicsCategories[normalizeKey(input.ProductCategory)] {
		score += 15
	}
	if input.LifespanYears < 5 {
		score += 10
	}
	score += src.Float64() * 10
	score = clamp(math.Round(score), 0, 100)

	risk := RiskLow
	switch {
	case score > eWasteHighThreshold:
		risk = RiskHigh
	case score > eWasteMediumThreshold:
		risk = RiskMedium
	}

	batteryRisk := BatteryRiskNone
	if battery {
		if avgToxicity > 0.5 {
			batteryRisk = BatteryRiskHigh
		} else {
			batteryRisk = BatteryRiskModerate
		}
	}

	var toxic []string
	for _, m := range materials {
		if m.Toxicity > toxicMaterialThreshold {
			toxic = append(toxic, m.Name)
		}
	}

	return score, risk, EWasteDetail{
		Repairability:        repairability,
		SoftwareSupportYears: supportYears,
		ObsolescenceRate:     obsolescence,
		BatteryRisk:          batteryRisk,
		ToxicMaterials:       toxic,
	}
}

// hasBatteryMaterial reports whether any material name suggests an
// embedded battery.
func hasBatteryMaterial(materials []Material) bool {
	for _, m := range materials {
		name := strings.ToLower(m.Name)
		if strings.Contains(name, "battery") || strings.Contains(name, "lithium") {
			return true
		}
	}
	return false
}
