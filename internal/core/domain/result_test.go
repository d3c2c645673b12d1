package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrictionMethod_Description(t *testing.T) {
	assert.Contains(t, MethodLaminar.Description(), "64/Re")
	assert.Contains(t, MethodSwameeJain.Description(), "explicit")
	assert.Contains(t, MethodColebrook.Description(), "iterative")
	assert.Equal(t, "Unknown", FrictionMethod("bogus").Description())
}

func TestFrictionMethod_String(t *testing.T) {
	assert.Equal(t, "laminar", MethodLaminar.String())
	assert.Equal(t, "swamee-jain", MethodSwameeJain.String())
	assert.Equal(t, "colebrook", MethodColebrook.String())
}
