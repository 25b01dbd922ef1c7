package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_SeedFolding(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{name: "zero seed", seed: 0},
		{name: "positive seed", seed: 12345},
		{name: "negative seed", seed: -98765},
		{name: "seed at modulus boundary", seed: lcgModulus - 1},
		{name: "seed above modulus", seed: lcgModulus + 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(tt.seed)
			require.GreaterOrEqual(t, src.state, int64(1))
			require.LessOrEqual(t, src.state, int64(lcgModulus-1))

			// The stream must stay inside [0,1) and never collapse to a
			// fixed point.
			prev := -1.0
			repeats := 0
			for i := 0; i < 100; i++ {
				v := src.Float64()
				assert.GreaterOrEqual(t, v, 0.0)
				assert.Less(t, v, 1.0)
				if v == prev {
					repeats++
				}
				prev = v
			}
			assert.Zero(t, repeats, "generator degenerated to a fixed point")
		})
	}
}

func TestSource_Deterministic(t *testing.T) {
	a := NewSource(4242)
	b := NewSource(4242)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestSource_KnownSequence(t *testing.T) {
	// First draws of the Park-Miller generator from state 1 are the
	// multiplier powers over the modulus.
	src := NewSource(0) // folds to state 1
	assert.InDelta(t, 16807.0/2147483647.0, src.Float64(), 1e-15)
	assert.InDelta(t, float64(int64(16807)*16807%2147483647)/2147483647.0, src.Float64(), 1e-15)
}

func TestSource_Norm(t *testing.T) {
	src := NewSource(99)
	var sum float64
	const n = 2000
	for i := 0; i < n; i++ {
		v := src.Norm(100, 15)
		require.False(t, math.IsNaN(v))
		require.False(t, math.IsInf(v, 0))
		sum += v
	}
	// Loose sanity bound on the sample mean.
	assert.InDelta(t, 100, sum/n, 3)
}

func TestSeedFor(t *testing.T) {
	input := SimulationInput{
		ProductCategory:     "smartphone", // 10 chars
		EnergySource:        "coal",       // 4 chars
		LifespanYears:       3,
		TransportDistanceKm: 1500.4,
	}
	assert.Equal(t, int64(10*1000+3*100+1500+4*10), SeedFor(input))

	// Same configuration, same seed.
	assert.Equal(t, SeedFor(input), SeedFor(input))

	// Transport rounds to nearest km.
	input.TransportDistanceKm = 1500.6
	assert.Equal(t, int64(10*1000+3*100+1501+4*10), SeedFor(input))
}

func BenchmarkSourceFloat64(b *testing.B) {
	src := NewSource(1)
	for i := 0; i < b.N; i++ {
		_ = src.Float64()
	}
}
