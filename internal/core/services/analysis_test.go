package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

// waterInput is the reference end-to-end case: water at ambient
// conditions through a 50 mm pipe.
func waterInput() domain.AnalysisInput {
	return domain.AnalysisInput{
		Fluid: domain.FluidState{Density: 998, DynamicViscosity: 0.001},
		Pipe:  domain.PipeGeometry{Diameter: 0.05, Length: 10, Roughness: 1e-5},
		Flow:  domain.FlowRateSpec(0.01),
	}
}

func TestAnalysisService_Analyze_EndToEnd(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	res, err := svc.Analyze(context.Background(), waterInput())
	require.NoError(t, err)

	assert.InDelta(t, 5.093, res.Velocity, 1e-3)
	assert.InEpsilon(t, 2.541e5, res.Reynolds, 0.01)
	assert.Equal(t, domain.MethodSwameeJain, res.Friction.Method)
	assert.Greater(t, res.MajorHead, 0.0)
	assert.Zero(t, res.MinorHead)
	assert.Equal(t, res.MajorHead, res.TotalHead)

	// deltaP = rho * g * h_f with no minor losses.
	assert.InEpsilon(t, 998*StandardGravity*res.MajorHead, res.PressureDrop, 1e-12)
}

func TestAnalysisService_Analyze_ModeEquivalence(t *testing.T) {
	svc := NewAnalysisService(nil, nil)
	ctx := context.Background()

	byRate, err := svc.Analyze(ctx, waterInput())
	require.NoError(t, err)

	v, err := VelocityFromFlowRate(0.01, 0.05)
	require.NoError(t, err)

	byVelocity := waterInput()
	byVelocity.Flow = domain.VelocitySpec(v)

	res, err := svc.Analyze(ctx, byVelocity)
	require.NoError(t, err)

	// Identical remaining parameters produce bit-identical results.
	assert.Equal(t, byRate, res)
}

func TestAnalysisService_Analyze_Idempotent(t *testing.T) {
	svc := NewAnalysisService(nil, nil)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, waterInput())
	require.NoError(t, err)
	second, err := svc.Analyze(ctx, waterInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalysisService_Analyze_MinorLosses(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	in := waterInput()
	in.MinorLossCoefficient = 2.5

	res, err := svc.Analyze(context.Background(), in)
	require.NoError(t, err)

	assert.Greater(t, res.MinorHead, 0.0)
	assert.InEpsilon(t, res.MajorHead+res.MinorHead, res.TotalHead, 1e-12)
	assert.InEpsilon(t, 2.5*res.Velocity*res.Velocity/(2*StandardGravity), res.MinorHead, 1e-12)
}

func TestAnalysisService_Analyze_LaminarRegime(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	// Slow oil flow: high viscosity keeps Re well below 2300.
	in := domain.AnalysisInput{
		Fluid: domain.FluidState{Density: 900, DynamicViscosity: 0.05},
		Pipe:  domain.PipeGeometry{Diameter: 0.05, Length: 10, Roughness: 1e-5},
		Flow:  domain.VelocitySpec(0.5),
	}

	res, err := svc.Analyze(context.Background(), in)
	require.NoError(t, err)

	assert.Less(t, res.Reynolds, ReynoldsLaminarLimit)
	assert.Equal(t, domain.MethodLaminar, res.Friction.Method)
	assert.Equal(t, 64.0/res.Reynolds, res.Friction.Value)
}

func TestAnalysisService_Analyze_KinematicViscosityOnly(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	in := waterInput()
	in.Fluid = domain.FluidState{Density: 998, KinematicViscosity: 0.001 / 998}

	res, err := svc.Analyze(context.Background(), in)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.541e5, res.Reynolds, 0.01)
}

func TestAnalysisService_Analyze_InvalidInputs(t *testing.T) {
	svc := NewAnalysisService(nil, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.AnalysisInput)
	}{
		{"no flow spec", func(in *domain.AnalysisInput) { in.Flow = domain.FlowSpec{} }},
		{"both flow specs", func(in *domain.AnalysisInput) {
			q, v := 0.01, 1.0
			in.Flow = domain.FlowSpec{FlowRate: &q, Velocity: &v}
		}},
		{"zero density", func(in *domain.AnalysisInput) { in.Fluid.Density = 0 }},
		{"no viscosity", func(in *domain.AnalysisInput) {
			in.Fluid.DynamicViscosity = 0
			in.Fluid.KinematicViscosity = 0
		}},
		{"zero diameter", func(in *domain.AnalysisInput) { in.Pipe.Diameter = 0 }},
		{"zero length", func(in *domain.AnalysisInput) { in.Pipe.Length = 0 }},
		{"negative roughness", func(in *domain.AnalysisInput) { in.Pipe.Roughness = -1 }},
		{"negative K", func(in *domain.AnalysisInput) { in.MinorLossCoefficient = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := waterInput()
			tt.mutate(&in)
			_, err := svc.Analyze(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAnalysisService_Analyze_ZeroVelocityRejectedByResolver(t *testing.T) {
	svc := NewAnalysisService(nil, nil)

	// V = 0 yields Re = 0, which the resolver must reject rather than
	// silently return a value for.
	in := waterInput()
	in.Flow = domain.VelocitySpec(0)

	_, err := svc.Analyze(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalysisService_Analyze_CustomGravity(t *testing.T) {
	standard := NewAnalysisService(nil, nil)
	lunar := NewAnalysisService(nil, NewHeadLossModelWithGravity(1.62))
	ctx := context.Background()

	base, err := standard.Analyze(ctx, waterInput())
	require.NoError(t, err)
	moon, err := lunar.Analyze(ctx, waterInput())
	require.NoError(t, err)

	// Head scales inversely with g; pressure drop (rho*g*head) does not.
	assert.Greater(t, moon.MajorHead, base.MajorHead)
	assert.InEpsilon(t, base.PressureDrop, moon.PressureDrop, 1e-9)
}
