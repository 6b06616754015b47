package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedIsDeterministic(t *testing.T) {
	a, b := Fixed(7), Fixed(7)
	for range 10 {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeeds(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	n := r.IntN(3)
	assert.GreaterOrEqual(t, n, 0)
	assert.Less(t, n, 3)
}
