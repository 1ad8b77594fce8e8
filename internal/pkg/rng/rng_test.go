package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 50; i++ {
		x, err := a.Roll(6)
		require.NoError(t, err)
		y, err := b.Roll(6)
		require.NoError(t, err)
		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, 1)
		assert.LessOrEqual(t, x, 6)
	}

	xs, err := a.RollN(4, 100)
	require.NoError(t, err)
	ys, err := b.RollN(4, 100)
	require.NoError(t, err)
	assert.Equal(t, xs, ys)
}

func TestSeededRejectsBadSizes(t *testing.T) {
	r := NewSeeded(1)

	_, err := r.Roll(0)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = r.RollN(-1, 6)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, New(0))
	assert.IsType(t, &Seeded{}, New(7))
}
