package engine

import "math"

// Lehmer (Park-Miller) generator parameters. Every random draw in a
// simulation flows through one Source seeded from the input, which is
// what makes results reproducible across calls and across platforms.
const (
	lcgMultiplier = 16807
	lcgModulus    = 2147483647 // 2^31 - 1
)

// Source is a deterministic stream of floats in [0,1) driven by a
// multiplicative linear-congruential generator. It is the sole source of
// randomness for a simulation; callers construct one per run and pass it
// by reference through every derivation step.
//
// Source is not safe for concurrent use. Each simulation owns its own.
type Source struct {
	state int64
}

// NewSource returns a Source seeded with the given integer. Any seed is
// accepted: the value is folded into the generator's valid state range
// [1, 2^31-2] so the Lehmer recurrence never degenerates to zero.
func NewSource(seed int64) *Source {
	state := seed % (lcgModulus - 1)
	if state < 0 {
		state += lcgModulus - 1
	}
	// state is now in [0, 2^31-3]; shift to [1, 2^31-2].
	return &Source{state: state + 1}
}

// SeedFor derives the simulation seed from the input per the engine's
// seeding contract: character length of the category, lifespan, rounded
// transport distance, and character length of the energy source.
func SeedFor(input SimulationInput) int64 {
	return int64(len(input.ProductCategory))*1000 +
		int64(input.LifespanYears)*100 +
		int64(math.Round(input.TransportDistanceKm)) +
		int64(len(input.EnergySource))*10
}

// Float64 advances the generator and returns the next float in [0,1).
func (s *Source) Float64() float64 {
	s.state = s.state * lcgMultiplier % lcgModulus
	return float64(s.state) / lcgModulus
}

// Norm returns a Gaussian sample with the given mean and standard
// deviation, derived from two uniform draws via the Box-Muller transform.
// Only the cosine branch is used; the sine branch is never generated.
func (s *Source) Norm(mean, stddev float64) float64 {
	u1 := s.Float64()
	u2 := s.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12 // guard the log against a zero draw
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + stddev*z
}
