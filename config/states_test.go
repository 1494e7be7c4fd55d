package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy float64
	}{
		{DirectionUp, 0, -1},
		{DirectionDown, 0, 1},
		{DirectionLeft, -1, 0},
		{DirectionRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Vector()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestDefaultFacing(t *testing.T) {
	assert.Equal(t, DirectionRight, DefaultFacing(1))
	assert.Equal(t, DirectionLeft, DefaultFacing(2))
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "ArrowUp", KeyArrowUp.String())
	assert.Equal(t, "space", KeySpace.String())
	assert.Equal(t, "unknown", KeyCount.String())
}

func TestEveryKeyIsBound(t *testing.T) {
	bound := map[KeyID]bool{}
	for _, k := range Input.Bindings {
		bound[k] = true
	}
	for k := KeyID(0); k < KeyCount; k++ {
		assert.True(t, bound[k], "%s has no physical key", k)
	}
}

func TestPhaseNames(t *testing.T) {
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "game-over", PhaseGameOver.String())
}
