package services

import (
	"context"
	"math"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driving"
)

// Ensure MoodyService implements the interface.
var _ driving.MoodyService = (*MoodyService)(nil)

// MoodyService samples the friction factor across a logarithmic
// Reynolds sweep to draw Moody diagram background curves.
type MoodyService struct {
	solver *FrictionSolver
}

// NewMoodyService creates a Moody sweep service. A nil solver falls
// back to the default.
func NewMoodyService(solver *FrictionSolver) *MoodyService {
	if solver == nil {
		solver = NewFrictionSolver()
	}
	return &MoodyService{solver: solver}
}

// Curve evaluates the public friction resolver at Points logarithmically
// spaced Reynolds numbers between the sweep bounds, at fixed relative
// roughness.
func (s *MoodyService) Curve(ctx context.Context, sweep domain.MoodySweep) ([]domain.MoodyPoint, error) {
	sweep = sweep.Normalised()

	logMin := math.Log10(sweep.MinReynolds)
	logMax := math.Log10(sweep.MaxReynolds)
	step := (logMax - logMin) / float64(sweep.Points-1)

	points := make([]domain.MoodyPoint, 0, sweep.Points)
	for i := 0; i < sweep.Points; i++ {
		re := math.Pow(10, logMin+float64(i)*step)
		f, err := s.solver.Resolve(ctx, re, sweep.RelativeRoughness)
		if err != nil {
			return nil, err
		}
		points = append(points, domain.MoodyPoint{Reynolds: re, Friction: f.Value})
	}
	return points, nil
}
