package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Launch the interactive terminal UI", tuiCmd.Short)
}

func TestTUICmd_Long(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Moody diagram")
	assert.Contains(t, tuiCmd.Long, "Ctrl+R")
}

func TestTUICmd_RegisteredOnRoot(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "tui" {
			found = true
		}
	}
	assert.True(t, found)
}
