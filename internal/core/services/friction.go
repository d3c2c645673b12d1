package services

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/logger"
)

// ReynoldsLaminarLimit is the regime boundary: below it the exact
// laminar relation applies, at or above it the turbulent correlations.
const ReynoldsLaminarLimit = 2300.0

// Default Colebrook iteration parameters.
const (
	// DefaultSeed is the initial friction factor guess f0.
	DefaultSeed = 0.02

	// DefaultTolerance is the convergence tolerance on |f_new - f|.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations is the hard iteration cap. Worst-case solver
	// latency is bounded by it.
	DefaultMaxIterations = 50
)

// FrictionSolver resolves the Darcy friction factor for a flow regime.
// Each call is an independent decision procedure: laminar relation
// below the regime boundary, Swamee-Jain above it, and the iterative
// Colebrook-White solution when the explicit correlation degenerates.
//
// The zero value is not ready to use; construct with NewFrictionSolver.
type FrictionSolver struct {
	// Seed is the initial Colebrook guess f0.
	Seed float64

	// Tolerance is the Colebrook convergence tolerance.
	Tolerance float64

	// MaxIterations is the Colebrook iteration cap.
	MaxIterations int

	// Strict makes Colebrook return domain.ErrNotConverged when the cap
	// is exhausted, instead of the default best-effort value.
	Strict bool
}

// NewFrictionSolver creates a solver with the default iteration
// parameters.
func NewFrictionSolver() *FrictionSolver {
	return &FrictionSolver{
		Seed:          DefaultSeed,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Resolve selects the regime and computes the friction factor:
//
//  1. Re < 2300: the exact laminar relation, no iteration.
//  2. Otherwise: Swamee-Jain, accepted only when the value is a
//     physically plausible Darcy factor in (0, 1).
//  3. Fall through: the iterative Colebrook-White solution.
//
// Re must be positive; a zero or negative Reynolds number has no
// physical solution and is rejected rather than silently coerced.
func (s *FrictionSolver) Resolve(ctx context.Context, re, relRoughness float64) (domain.FrictionFactor, error) {
	if re <= 0 {
		return domain.FrictionFactor{}, fmt.Errorf("%w: Reynolds number must be positive, got %g", domain.ErrInvalidInput, re)
	}

	if re < ReynoldsLaminarLimit {
		return s.Laminar(re)
	}

	// The explicit correlation can degenerate for extreme roughness
	// ratios or Re at the edge of validity; the accept check is
	// explicit, never an exception-suppression fallback.
	if f, ok := s.SwameeJain(re, relRoughness); ok {
		return f, nil
	}

	logger.Debug("Swamee-Jain outside (0,1) at Re=%g eps/D=%g, falling back to Colebrook", re, relRoughness)
	return s.Colebrook(ctx, re, relRoughness)
}

// Laminar returns f = 64/Re, exact for Re < 2300.
func (s *FrictionSolver) Laminar(re float64) (domain.FrictionFactor, error) {
	if re <= 0 {
		return domain.FrictionFactor{}, fmt.Errorf("%w: Reynolds number must be positive, got %g", domain.ErrInvalidInput, re)
	}
	return domain.FrictionFactor{
		Value:     64.0 / re,
		Method:    domain.MethodLaminar,
		Converged: true,
	}, nil
}

// SwameeJain evaluates the explicit approximation
//
//	f = 0.25 / [log10(eps/D/3.7 + 5.74/Re^0.9)]^2
//
// and reports whether the value passes the plausibility accept check
// 0 < f < 1. A failing value must not be trusted; callers fall through
// to Colebrook.
func (s *FrictionSolver) SwameeJain(re, relRoughness float64) (domain.FrictionFactor, bool) {
	term := relRoughness/3.7 + 5.74/math.Pow(re, 0.9)
	if term <= 0 {
		return domain.FrictionFactor{}, false
	}
	lg := math.Log10(term)
	if lg == 0 {
		return domain.FrictionFactor{}, false
	}
	f := 0.25 / (lg * lg)
	if f <= 0 || f >= 1 || math.IsNaN(f) {
		return domain.FrictionFactor{}, false
	}
	return domain.FrictionFactor{
		Value:     f,
		Method:    domain.MethodSwameeJain,
		Converged: true,
	}, true
}

// Colebrook solves the implicit Colebrook-White equation
//
//	1/sqrt(f) = -2 log10(eps/D/3.7 + 2.51/(Re sqrt(f)))
//
// by damped fixed-point iteration. On cap exhaustion the last iterate
// is returned with Converged=false (best effort), unless Strict is set,
// in which case domain.ErrNotConverged is returned instead. The loop
// honours context cancellation between iterations.
func (s *FrictionSolver) Colebrook(ctx context.Context, re, relRoughness float64) (domain.FrictionFactor, error) {
	if re <= 0 {
		return domain.FrictionFactor{}, fmt.Errorf("%w: Reynolds number must be positive, got %g", domain.ErrInvalidInput, re)
	}

	f := s.Seed
	if f <= 0 {
		f = DefaultSeed
	}
	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	result := domain.FrictionFactor{Method: domain.MethodColebrook}

	for i := 0; i < maxIter; i++ {
		if err := ctx.Err(); err != nil {
			return domain.FrictionFactor{}, err
		}

		rhs := -2.0 * math.Log10(relRoughness/3.7+2.51/(re*math.Sqrt(f)))
		fNew := 1.0 / (rhs * rhs)
		result.Iterations = i + 1

		if math.Abs(fNew-f) < tol {
			result.Value = fNew
			result.Converged = true
			result.Residual = colebrookResidual(fNew, re, relRoughness)
			logger.Debug("Colebrook converged in %d iterations: f=%g", result.Iterations, fNew)
			return result, nil
		}

		// Damped update, prevents oscillation between iterates.
		f = 0.5 * (f + fNew)
	}

	result.Value = f
	result.Residual = colebrookResidual(f, re, relRoughness)
	logger.Warn("Colebrook hit iteration cap (%d) at Re=%g eps/D=%g, residual=%g", maxIter, re, relRoughness, result.Residual)

	if s.Strict {
		return domain.FrictionFactor{}, fmt.Errorf("%w: residual %g after %d iterations", domain.ErrNotConverged, result.Residual, maxIter)
	}
	return result, nil
}

// colebrookResidual returns |1/sqrt(f) - rhs| at f.
func colebrookResidual(f, re, relRoughness float64) float64 {
	lhs := 1.0 / math.Sqrt(f)
	rhs := -2.0 * math.Log10(relRoughness/3.7+2.51/(re*math.Sqrt(f)))
	return math.Abs(lhs - rhs)
}
