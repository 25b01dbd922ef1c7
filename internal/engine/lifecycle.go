package engine

import "math"

// Phase names, in canonical order. The result always carries exactly
// these five.
const (
	PhaseRawMaterials   = "Raw Materials"
	PhaseManufacturing  = "Manufacturing"
	PhaseTransportation = "Transportation"
	PhaseUsage          = "Usage"
	PhaseDisposal       = "Disposal"
)

// lifecyclePhases splits the total footprint over the five fixed phases.
// Four fractions are drawn from base+jitter ranges; disposal takes the
// remainder, floored at 2% so it never vanishes. The floor can push the
// raw total past 1, so the five fractions are renormalized to sum to
// exactly 1 before the split is applied.
func lifecyclePhases(src *Source, totalCO2, waterFootprint, avgToxicity float64) []LifecyclePhase {
	raw := 0.15 + src.Float64()*0.05
	manufacturing := 0.35 + src.Float64()*0.10
	transportation := 0.05 + src.Float64()*0.05
	usage := 0.30 + src.Float64()*0.10
	disposal := 1 - (raw + manufacturing + transportation + usage)
	if disposal < 0.02 {
		disposal = 0.02
	}
	total := raw + manufacturing + transportation + usage + disposal
	raw /= total
	manufacturing /= total
	transportation /= total
	usage /= total
	disposal /= total

	build := func(name string, fraction float64, toxicRisk float64) LifecyclePhase {
		return LifecyclePhase{
			Phase:      name,
			Percentage: int(math.Round(fraction * 100)),
			CO2:        round2(totalCO2 * fraction),
			Water:      round2(waterFootprint * fraction),
			ToxicRisk:  int(math.Round(toxicRisk)),
		}
	}

	return []LifecyclePhase{
		build(PhaseRawMaterials, raw, avgToxicity*80),
		build(PhaseManufacturing, manufacturing, avgToxicity*60),
		build(PhaseTransportation, transportation, 10),
		build(PhaseUsage, usage, avgToxicity*30),
		build(PhaseDisposal, disposal, avgToxicity*100),
	}
}

// annualBreakdown spreads the totals over the product lifespan. Each
// year applies a degradation multiplier to its even share, with the
// confidence interval fixed at +/-15% of that year's CO2.
func annualBreakdown(src *Source, lifespanYears int, totalCO2, waterFootprint float64) []YearlyImpact {
	perYearCO2 := totalCO2 / float64(lifespanYears)
	perYearWater := waterFootprint / float64(lifespanYears)

	out := make([]YearlyImpact, 0, lifespanYears)
	for i := 0; i < lifespanYears; i++ {
		degradation := 1 + float64(i)*0.08*(1+src.Float64()*0.3)
		co2 := round2(perYearCO2 * degradation)
		out = append(out, YearlyImpact{
			Year:   i + 1,
			CO2:    co2,
			CILow:  round2(co2 * 0.85),
			CIHigh: round2(co2 * 1.15),
			Water:  round2(perYearWater * degradation),
			Waste:  round2((0.5 + float64(i)*0.3) * (1 + src.Float64()*0.5)),
		})
	}
	return out
}
