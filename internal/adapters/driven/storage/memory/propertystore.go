// Package memory provides in-memory implementations of the driven
// storage ports for testing.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
)

// Ensure PropertyStore implements the interface.
var _ driven.FluidPropertyStore = (*PropertyStore)(nil)

// PropertyStore is an in-memory implementation of
// driven.FluidPropertyStore for testing. Properties are fixed per
// fluid, independent of the requested state.
type PropertyStore struct {
	mu     sync.RWMutex
	fluids map[string]domain.FluidProperties
}

// NewPropertyStore creates an empty in-memory property store.
func NewPropertyStore() *PropertyStore {
	return &PropertyStore{
		fluids: make(map[string]domain.FluidProperties),
	}
}

// Put registers a fluid with fixed properties.
func (s *PropertyStore) Put(name string, props domain.FluidProperties) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fluids[name] = props
}

// Lookup returns the registered properties for fluid, ignoring the
// requested state.
func (s *PropertyStore) Lookup(_ context.Context, fluid string, _, _ float64) (domain.FluidProperties, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	props, ok := s.fluids[fluid]
	if !ok {
		return domain.FluidProperties{}, fmt.Errorf("%w: %s", domain.ErrUnknownFluid, fluid)
	}
	return props, nil
}

// ListFluids returns the registered fluid names, sorted.
func (s *PropertyStore) ListFluids(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.fluids))
	for name := range s.fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Close is a no-op for the in-memory store.
func (s *PropertyStore) Close() error {
	return nil
}
