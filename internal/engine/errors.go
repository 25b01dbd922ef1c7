package engine

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Boundary validation errors. Lookup misses never error; unknown
// categories, countries, and energy sources fall back to defaults so the
// simulation stays total over string inputs.
var (
	// ErrInvalidLifespan indicates a lifespan below one year. The annual
	// breakdown and degradation curve divide by the lifespan, so zero or
	// negative values are rejected at the boundary.
	ErrInvalidLifespan = constError("lifespan must be at least one year")

	// ErrNegativeTransportDistance indicates a negative transport distance.
	ErrNegativeTransportDistance = constError("transport distance cannot be negative")

	// ErrMaterialOutOfRange indicates a material with toxicity or
	// recyclability outside [0,1].
	ErrMaterialOutOfRange = constError("material toxicity and recyclability must be within [0,1]")
)
