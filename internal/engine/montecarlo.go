package engine

// MonteCarloDraws is the fixed sample-set size.
const MonteCarloDraws = 200

// Relative standard deviations for the joint uncertainty distribution.
const (
	mcCO2Spread   = 0.15
	mcWaterSpread = 0.20
	mcWasteSpread = 0.25
)

// monteCarlo draws the fixed-size uncertainty sample set. Each point is
// three independent Gaussian draws centered on the headline totals,
// floored at zero since negative footprints are meaningless.
func monteCarlo(src *Source, totalCO2, waterFootprint, landfillMass float64) []MonteCarloSample {
	out := make([]MonteCarloSample, 0, MonteCarloDraws)
	for i := 0; i < MonteCarloDraws; i++ {
		out = append(out, MonteCarloSample{
			CO2:   round2(floorZero(src.Norm(totalCO2, totalCO2*mcCO2Spread))),
			Water: round2(floorZero(src.Norm(waterFootprint, waterFootprint*mcWaterSpread))),
			Waste: round2(floorZero(src.Norm(landfillMass, landfillMass*mcWasteSpread))),
		})
	}
	return out
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
