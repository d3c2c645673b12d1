// Package domain defines the core business entities for pipeflow.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - FluidState: density and viscosity of the working fluid
//   - PipeGeometry: diameter, length and wall roughness of a pipe run
//   - FlowSpec: the caller's flow rate or velocity input
//   - FlowResult: the terminal output of one analysis
//   - FrictionFactor: a tagged Darcy friction factor with solver diagnostics
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Units
//
// All quantities are SI: metres, kilograms, seconds, pascals, kelvin.
package domain
