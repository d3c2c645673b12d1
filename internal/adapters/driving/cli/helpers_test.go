package cli

import (
	"context"
	"time"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/services"
)

// MockPropertyService implements driving.PropertyService for testing.
type MockPropertyService struct {
	LookupFunc     func(ctx context.Context, fluid string, pressure, temperature float64) (domain.FluidProperties, error)
	ListFluidsFunc func(ctx context.Context) ([]string, error)
}

func (m *MockPropertyService) Lookup(
	ctx context.Context, fluid string, pressure, temperature float64,
) (domain.FluidProperties, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, fluid, pressure, temperature)
	}
	// Water at ambient conditions.
	return domain.FluidProperties{Density: 998, DynamicViscosity: 0.001}, nil
}

func (m *MockPropertyService) ListFluids(ctx context.Context) ([]string, error) {
	if m.ListFluidsFunc != nil {
		return m.ListFluidsFunc(ctx)
	}
	return []string{"Air", "Water"}, nil
}

// MockHistoryService implements driving.HistoryService for testing.
type MockHistoryService struct {
	RecordFunc func(ctx context.Context, rec domain.AnalysisRecord) (domain.AnalysisRecord, error)
	GetFunc    func(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	ListFunc   func(ctx context.Context, limit int) ([]domain.AnalysisRecord, error)
	DeleteFunc func(ctx context.Context, id string) error
	ClearFunc  func(ctx context.Context) error
}

func (m *MockHistoryService) Record(
	ctx context.Context, rec domain.AnalysisRecord,
) (domain.AnalysisRecord, error) {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, rec)
	}
	rec.ID = "rec-test"
	rec.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return rec, nil
}

func (m *MockHistoryService) Get(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &domain.AnalysisRecord{
		ID:        id,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Fluid:     "Water",
		Input: domain.AnalysisInput{
			Pipe: domain.PipeGeometry{Diameter: 0.05, Length: 10, Roughness: 1e-5},
		},
	}, nil
}

func (m *MockHistoryService) List(
	ctx context.Context, limit int,
) ([]domain.AnalysisRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return []domain.AnalysisRecord{
		{
			ID:        "rec-1",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Fluid:     "Water",
			Result: domain.FlowResult{
				Reynolds: 2.5e5,
				Friction: domain.FrictionFactor{Value: 0.0185, Method: domain.MethodColebrook},
			},
		},
	}, nil
}

func (m *MockHistoryService) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockHistoryService) Clear(ctx context.Context) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx)
	}
	return nil
}

// setupTestServices wires real core services over mock stores into the
// package-level service variables and returns a cleanup that restores
// whatever was there before.
func setupTestServices() func() {
	oldAnalysis := analysisService
	oldProperty := propertyService
	oldMoody := moodyService
	oldHistory := historyService
	oldConfig := configStore

	SetServices(Services{
		Analysis:   services.NewAnalysisService(nil, nil),
		Properties: &MockPropertyService{},
		Moody:      services.NewMoodyService(nil),
		History:    &MockHistoryService{},
	})
	configStore = nil

	return func() {
		analysisService = oldAnalysis
		propertyService = oldProperty
		moodyService = oldMoody
		historyService = oldHistory
		configStore = oldConfig
	}
}
