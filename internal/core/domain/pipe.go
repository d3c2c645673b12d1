package domain

import "fmt"

// PipeGeometry describes a straight pipe run. Immutable once constructed.
type PipeGeometry struct {
	// Diameter is the internal diameter D [m]. Must be positive.
	Diameter float64

	// Length is the run length L [m]. Must be positive.
	Length float64

	// Roughness is the absolute wall roughness eps [m]. Must be >= 0.
	Roughness float64
}

// Validate checks the geometry against the analysis preconditions.
// A zero diameter must be rejected here; downstream formulae divide by D.
func (p PipeGeometry) Validate() error {
	if p.Diameter <= 0 {
		return fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidInput, p.Diameter)
	}
	if p.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %g", ErrInvalidInput, p.Length)
	}
	if p.Roughness < 0 {
		return fmt.Errorf("%w: roughness must be non-negative, got %g", ErrInvalidInput, p.Roughness)
	}
	return nil
}

// RelativeRoughness returns eps/D, the quantity the turbulent
// correlations consume.
func (p PipeGeometry) RelativeRoughness() float64 {
	return p.Roughness / p.Diameter
}
