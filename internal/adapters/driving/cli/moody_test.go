package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodyCmd_Use(t *testing.T) {
	assert.Equal(t, "moody", moodyCmd.Use)
}

func TestMoodyCmd_HasFlags(t *testing.T) {
	flag := moodyCmd.Flags().Lookup("rel-roughness")
	require.NotNil(t, flag)
	assert.Equal(t, "0.0001", flag.DefValue)

	flag = moodyCmd.Flags().Lookup("points")
	require.NotNil(t, flag)
	assert.Equal(t, "200", flag.DefValue)
}

func TestMoodyCmd_RendersCurve(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"moody", "--rel-roughness", "0.0002"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	// The caption names both log axes and the roughness.
	assert.Contains(t, buf.String(), "log10(f)")
	assert.Contains(t, buf.String(), "0.0002")
}

func TestMoodyCmd_WithOperatingPoint(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"moody", "--op-re", "2.5e5", "--op-f", "0.0185",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		moodyOpRe = 0
		moodyOpF = 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2.500e+05")
}

func TestMoodyCmd_ServiceNotConfigured(t *testing.T) {
	oldMoody := moodyService
	moodyService = nil
	defer func() {
		moodyService = oldMoody
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"moody"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
