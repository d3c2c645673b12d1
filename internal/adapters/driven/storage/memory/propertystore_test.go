package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pipeflow-cli/internal/core/domain"
)

func TestPropertyStore_PutAndLookup(t *testing.T) {
	store := NewPropertyStore()
	store.Put("Water", domain.FluidProperties{Density: 998.2, DynamicViscosity: 0.001002})

	props, err := store.Lookup(context.Background(), "Water", 101325, 293.15)
	require.NoError(t, err)
	assert.Equal(t, 998.2, props.Density)
}

func TestPropertyStore_Lookup_Unknown(t *testing.T) {
	store := NewPropertyStore()

	_, err := store.Lookup(context.Background(), "Mercury", 101325, 300)
	assert.ErrorIs(t, err, domain.ErrUnknownFluid)
}

func TestPropertyStore_ListFluids_Sorted(t *testing.T) {
	store := NewPropertyStore()
	store.Put("Water", domain.FluidProperties{Density: 998})
	store.Put("Air", domain.FluidProperties{Density: 1.2})

	fluids, err := store.ListFluids(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Air", "Water"}, fluids)
}

func TestPropertyStore_Close(t *testing.T) {
	assert.NoError(t, NewPropertyStore().Close())
}
