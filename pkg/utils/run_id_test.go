package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRunID_Format(t *testing.T) {
	id := GenerateRunID("scenarios/Balkans 1936.yaml")

	assert.Regexp(t, `^balkans-1936-[0-9a-f]{8}$`, id)
}

func TestGenerateRunID_EmptyScenarioFallsBack(t *testing.T) {
	id := GenerateRunID("")

	assert.Regexp(t, `^run-[0-9a-f]{8}$`, id)
}

func TestGenerateRunID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateRunID("default"), GenerateRunID("default"))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-3, 0, 10))
	assert.Equal(t, 10, Clamp(14, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
	assert.Equal(t, 0.0, ClampMin(-1.5, 0.0))
	assert.Equal(t, 2.5, ClampMin(2.5, 0.0))
}
