package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a non-physical or missing input, such as a
	// non-positive diameter, a missing viscosity, or a flow spec that
	// carries both a flow rate and a velocity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownFluid indicates the property store has no record of the
	// requested fluid name.
	ErrUnknownFluid = errors.New("unknown fluid")

	// ErrStateOutOfRange indicates the requested pressure/temperature state
	// lies outside the tabulated range of the property store.
	ErrStateOutOfRange = errors.New("fluid state out of range")

	// ErrNotConverged indicates the Colebrook iteration exhausted its cap
	// without meeting tolerance. Only returned in strict solver mode; the
	// default policy returns the best-effort value with a diagnostic flag.
	ErrNotConverged = errors.New("friction factor iteration did not converge")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
