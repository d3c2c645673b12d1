package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
	"github.com/custodia-labs/pipeflow-cli/internal/core/ports/driven"
)

// referencePressure is the pressure [Pa] the property tables are
// tabulated at.
const referencePressure = 101325.0

// propertyStore implements driven.FluidPropertyStore.
type propertyStore struct {
	store *Store
}

var _ driven.FluidPropertyStore = (*propertyStore)(nil)

// tableRow is one tabulated property sample.
type tableRow struct {
	temperature      float64
	density          float64
	dynamicViscosity float64
}

// Lookup resolves properties by linear interpolation in temperature.
// For gases the density is scaled by the pressure ratio relative to the
// reference pressure (ideal-gas approximation); viscosity is treated as
// pressure-independent over the supported range.
func (p *propertyStore) Lookup(ctx context.Context, fluid string, pressure, temperature float64) (domain.FluidProperties, error) {
	if pressure <= 0 || temperature <= 0 {
		return domain.FluidProperties{}, fmt.Errorf("%w: P=%g Pa, T=%g K", domain.ErrStateOutOfRange, pressure, temperature)
	}

	kind, err := p.fluidKind(ctx, fluid)
	if err != nil {
		return domain.FluidProperties{}, err
	}

	rows, err := p.propertyTable(ctx, fluid)
	if err != nil {
		return domain.FluidProperties{}, err
	}
	if len(rows) == 0 {
		return domain.FluidProperties{}, fmt.Errorf("%w: %s has no tabulated states", domain.ErrUnknownFluid, fluid)
	}

	if temperature < rows[0].temperature || temperature > rows[len(rows)-1].temperature {
		return domain.FluidProperties{}, fmt.Errorf("%w: %s tabulated for %g-%g K, requested %g K",
			domain.ErrStateOutOfRange, fluid, rows[0].temperature, rows[len(rows)-1].temperature, temperature)
	}

	props := interpolate(rows, temperature)

	if kind == "gas" {
		props.Density *= pressure / referencePressure
	}
	return props, nil
}

// ListFluids returns the names of all known fluids, sorted.
func (p *propertyStore) ListFluids(ctx context.Context) ([]string, error) {
	rows, err := p.store.db.QueryContext(ctx, "SELECT name FROM fluids ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing fluids: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning fluid name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close closes the underlying store.
func (p *propertyStore) Close() error {
	return p.store.Close()
}

// fluidKind returns 'liquid' or 'gas' for a known fluid.
func (p *propertyStore) fluidKind(ctx context.Context, fluid string) (string, error) {
	var kind string
	err := p.store.db.QueryRowContext(ctx, "SELECT kind FROM fluids WHERE name = ?", fluid).Scan(&kind)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownFluid, fluid)
	}
	if err != nil {
		return "", fmt.Errorf("querying fluid %s: %w", fluid, err)
	}
	return kind, nil
}

// propertyTable loads the tabulated states of a fluid, ascending in
// temperature. The tables are small enough to read whole.
func (p *propertyStore) propertyTable(ctx context.Context, fluid string) ([]tableRow, error) {
	rows, err := p.store.db.QueryContext(ctx,
		"SELECT temperature, density, dynamic_viscosity FROM fluid_properties WHERE fluid = ? ORDER BY temperature",
		fluid,
	)
	if err != nil {
		return nil, fmt.Errorf("querying properties of %s: %w", fluid, err)
	}
	defer rows.Close()

	var table []tableRow
	for rows.Next() {
		var r tableRow
		if err := rows.Scan(&r.temperature, &r.density, &r.dynamicViscosity); err != nil {
			return nil, fmt.Errorf("scanning property row: %w", err)
		}
		table = append(table, r)
	}
	return table, rows.Err()
}

// interpolate returns properties at temperature by linear interpolation
// between the bracketing table rows. The caller guarantees temperature
// lies inside the table bounds.
func interpolate(table []tableRow, temperature float64) domain.FluidProperties {
	for i := 1; i < len(table); i++ {
		lo, hi := table[i-1], table[i]
		if temperature > hi.temperature {
			continue
		}
		if hi.temperature == lo.temperature {
			break
		}
		t := (temperature - lo.temperature) / (hi.temperature - lo.temperature)
		return domain.FluidProperties{
			Density:          lo.density + t*(hi.density-lo.density),
			DynamicViscosity: lo.dynamicViscosity + t*(hi.dynamicViscosity-lo.dynamicViscosity),
		}
	}
	last := table[len(table)-1]
	return domain.FluidProperties{Density: last.density, DynamicViscosity: last.dynamicViscosity}
}
