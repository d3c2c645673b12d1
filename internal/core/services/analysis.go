package services

import (
	"context"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pipeflow-cli/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService orchestrates one pipe-flow analysis: validation, flow
// kinematics, friction resolution, head losses and pressure drop.
type AnalysisService struct {
	solver *FrictionSolver
	losses *HeadLossModel
}

// NewAnalysisService creates an analysis service. Nil arguments fall
// back to default components.
func NewAnalysisService(solver *FrictionSolver, losses *HeadLossModel) *AnalysisService {
	if solver == nil {
		solver = NewFrictionSolver()
	}
	if losses == nil {
		losses = NewHeadLossModel()
	}
	return &AnalysisService{solver: solver, losses: losses}
}

// Analyze validates the input and sequences V, Re, f, head losses and
// pressure drop into a FlowResult. Pure: no state survives the call,
// identical inputs produce identical outputs.
func (s *AnalysisService) Analyze(ctx context.Context, in domain.AnalysisInput) (domain.FlowResult, error) {
	logger.Section("Pipe Flow Analysis")

	if err := in.Validate(); err != nil {
		return domain.FlowResult{}, err
	}

	velocity, err := s.resolveVelocity(in)
	if err != nil {
		return domain.FlowResult{}, err
	}
	logger.Debug("Mean velocity: %g m/s", velocity)

	re, err := ReynoldsNumber(in.Fluid, velocity, in.Pipe.Diameter)
	if err != nil {
		return domain.FlowResult{}, err
	}
	logger.Debug("Reynolds number: %g", re)

	friction, err := s.solver.Resolve(ctx, re, in.Pipe.RelativeRoughness())
	if err != nil {
		return domain.FlowResult{}, err
	}
	logger.Debug("Friction factor: %g (%s)", friction.Value, friction.Method)

	major := s.losses.Major(friction.Value, in.Pipe.Length, in.Pipe.Diameter, velocity)
	minor := s.losses.Minor(in.MinorLossCoefficient, velocity)
	total := major + minor

	return domain.FlowResult{
		Reynolds:     re,
		Friction:     friction,
		Velocity:     velocity,
		MajorHead:    major,
		MinorHead:    minor,
		TotalHead:    total,
		PressureDrop: s.losses.PressureDrop(in.Fluid.Density, total),
	}, nil
}

// resolveVelocity returns the mean velocity, deriving it from the flow
// rate when that is what the caller supplied.
func (s *AnalysisService) resolveVelocity(in domain.AnalysisInput) (float64, error) {
	if in.Flow.Velocity != nil {
		return *in.Flow.Velocity, nil
	}
	return VelocityFromFlowRate(*in.Flow.FlowRate, in.Pipe.Diameter)
}
