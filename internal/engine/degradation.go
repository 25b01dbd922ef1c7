package engine

import "math"

// degradationTimeline models how the product decays from year 0 through
// max(lifespan, 10) inclusive:
//
//   - efficiency follows a logistic decay centered at end of life
//     (t = year/lifespan == 1), floored at 5 and jittered multiplicatively
//   - toxic leaching saturates toward avgToxicity*100 with rate 0.3/year
//   - material integrity decays exponentially at 0.12/year
//   - cumulative CO2 keeps accumulating the annual-breakdown per-year
//     formula, including past the nominal lifespan
func degradationTimeline(src *Source, lifespanYears int, totalCO2, avgToxicity float64) []DegradationPoint {
	horizon := lifespanYears
	if horizon < 10 {
		horizon = 10
	}
	perYearCO2 := totalCO2 / float64(lifespanYears)

	out := make([]DegradationPoint, 0, horizon+1)
	var cumulative float64
	for y := 0; y <= horizon; y++ {
		t := float64(y) / float64(lifespanYears)
		efficiency := 100 / (1 + math.Exp(2.5*(t-1))) * (0.97 + src.Float64()*0.06)
		if efficiency < 5 {
			efficiency = 5
		}
		leaching := avgToxicity * 100 * (1 - math.Exp(-0.3*float64(y)))
		if leaching > 100 {
			leaching = 100
		}
		cumulative += perYearCO2 * (1 + float64(y)*0.08*(1+src.Float64()*0.3))

		out = append(out, DegradationPoint{
			Year:              y,
			Efficiency:        round2(efficiency),
			ToxicLeaching:     round2(leaching),
			MaterialIntegrity: round2(100 * math.Exp(-0.12*float64(y))),
			CumulativeCO2:     round2(cumulative),
		})
	}
	return out
}
