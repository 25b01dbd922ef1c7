package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineInput() SimulationInput {
	return SimulationInput{
		ProductCategory:      "smartphone",
		ManufacturingCountry: "China",
		UsageCountry:         "Germany",
		EnergySource:         "coal",
		LifespanYears:        3,
		UsageFrequency:       "daily",
		TransportDistanceKm:  8000,
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	ctx := context.Background()
	input := baselineInput()

	first, err := Simulate(ctx, input)
	require.NoError(t, err)
	second, err := Simulate(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSimulate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimulationInput)
		wantErr error
	}{
		{
			name:    "zero lifespan",
			mutate:  func(in *SimulationInput) { in.LifespanYears = 0 },
			wantErr: ErrInvalidLifespan,
		},
		{
			name:    "negative lifespan",
			mutate:  func(in *SimulationInput) { in.LifespanYears = -2 },
			wantErr: ErrInvalidLifespan,
		},
		{
			name:    "negative transport distance",
			mutate:  func(in *SimulationInput) { in.TransportDistanceKm = -1 },
			wantErr: ErrNegativeTransportDistance,
		},
		{
			name: "toxicity above one",
			mutate: func(in *SimulationInput) {
				in.Materials = []Material{{Name: "Goo", Percentage: 100, Toxicity: 1.2, Recyclability: 0.5}}
			},
			wantErr: ErrMaterialOutOfRange,
		},
		{
			name: "negative recyclability",
			mutate: func(in *SimulationInput) {
				in.Materials = []Material{{Name: "Goo", Percentage: 100, Toxicity: 0.2, Recyclability: -0.1}}
			},
			wantErr: ErrMaterialOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baselineInput()
			tt.mutate(&input)
			result, err := Simulate(context.Background(), input)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSimulate_ResultShape(t *testing.T) {
	input := baselineInput()
	result, err := Simulate(context.Background(), input)
	require.NoError(t, err)

	assert.Positive(t, result.TotalCO2)
	assert.Positive(t, result.WaterFootprint)
	assert.GreaterOrEqual(t, result.ResourceDepletionIndex, 0.0)
	assert.LessOrEqual(t, result.ResourceDepletionIndex, 100.0)
	assert.GreaterOrEqual(t, result.RecyclingProbability, 0.0)
	assert.LessOrEqual(t, result.RecyclingProbability, 100.0)
	assert.GreaterOrEqual(t, result.LandfillMass, 0.0)

	require.Len(t, result.LifecyclePhases, 5)
	require.Len(t, result.AnnualBreakdown, input.LifespanYears)
	require.Len(t, result.MonteCarlo, MonteCarloDraws)
	for _, sample := range result.MonteCarlo {
		assert.GreaterOrEqual(t, sample.CO2, 0.0)
		assert.GreaterOrEqual(t, sample.Water, 0.0)
		assert.GreaterOrEqual(t, sample.Waste, 0.0)
	}
	require.Len(t, result.SHAPValues, len(featureSpecs))
	require.Len(t, result.CrossValidation, crossValidationFoldCount)

	// Degradation runs from year 0 through max(lifespan, 10) inclusive.
	require.Len(t, result.DegradationTimeline, 11)
	assert.Equal(t, 0, result.DegradationTimeline[0].Year)
	assert.Equal(t, 10, result.DegradationTimeline[10].Year)

	assert.Contains(t, []string{RiskLow, RiskMedium, RiskHigh}, result.EWasteRisk)
	assert.GreaterOrEqual(t, result.EWasteScore, 0.0)
	assert.LessOrEqual(t, result.EWasteScore, 100.0)
}

func TestSimulate_EnergySourceOrdering(t *testing.T) {
	// A coal scenario must never come out cleaner than the identical
	// scenario on solar. The jitter band (up to 20%) is far smaller than
	// the 1.8 vs 0.25 multiplier gap.
	coal := baselineInput()
	coal.EnergySource = "coal"
	solar := baselineInput()
	solar.EnergySource = "solar"

	coalResult, err := Simulate(context.Background(), coal)
	require.NoError(t, err)
	solarResult, err := Simulate(context.Background(), solar)
	require.NoError(t, err)

	assert.Greater(t, coalResult.TotalCO2, solarResult.TotalCO2)
}

func TestSimulate_AnnualBreakdownRows(t *testing.T) {
	input := baselineInput()
	input.LifespanYears = 6
	result, err := Simulate(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, result.AnnualBreakdown, 6)
	for i, row := range result.AnnualBreakdown {
		assert.Equal(t, i+1, row.Year)
		assert.LessOrEqual(t, row.CILow, row.CO2, "year %d", row.Year)
		assert.GreaterOrEqual(t, row.CIHigh, row.CO2, "year %d", row.Year)
		assert.Positive(t, row.Water, "year %d", row.Year)
		assert.Positive(t, row.Waste, "year %d", row.Year)
		if i > 0 {
			// Year 1 carries no degradation, every later year does.
			assert.Greater(t, row.CO2, result.AnnualBreakdown[0].CO2)
		}
	}
}

func TestSimulate_UnknownKeysStillTotal(t *testing.T) {
	input := SimulationInput{
		ProductCategory:      "jetpack",
		ManufacturingCountry: "atlantis",
		EnergySource:         "fusion",
		LifespanYears:        2,
		UsageFrequency:       "hourly",
	}
	result, err := Simulate(context.Background(), input)
	require.NoError(t, err)
	assert.Positive(t, result.TotalCO2)

	// Unknown category falls back to the mixed material placeholder.
	assert.Equal(t, BatteryRiskNone, result.EWasteDetail.BatteryRisk)
}

func BenchmarkSimulate(b *testing.B) {
	ctx := context.Background()
	input := baselineInput()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(ctx, input); err != nil {
			b.Fatal(err)
		}
	}
}
