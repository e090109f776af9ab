// SPDX-License-Identifier: MIT

package instance_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsacLucian/Bandwidth-Coloring-Problem/instance"
)

func TestCycle(t *testing.T) {
	g, err := instance.Cycle(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumEdges())
	for u := 0; u < 5; u++ {
		assert.Equal(t, 2, g.Degree(u))
		assert.Equal(t, 2, g.Weight(u, (u+1)%5))
	}

	_, err = instance.Cycle(2, 1)
	assert.True(t, errors.Is(err, instance.ErrTooFewVertices))
	_, err = instance.Cycle(4, 0)
	assert.True(t, errors.Is(err, instance.ErrInvalidWeight))
}

func TestComplete(t *testing.T) {
	g, err := instance.Complete(6, 3)
	require.NoError(t, err)
	assert.Equal(t, 15, g.NumEdges())
	assert.Equal(t, 3, g.MaxWeight())

	_, err = instance.Complete(0, 1)
	assert.True(t, errors.Is(err, instance.ErrTooFewVertices))
}

func TestRandomSparse(t *testing.T) {
	a, err := instance.RandomSparse(30, 0.3, 1, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := instance.RandomSparse(30, 0.3, 1, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, a.Matrix(), b.Matrix(), "same seed must give the same graph")
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1)
		assert.LessOrEqual(t, e.Weight, 4)
	}

	full, err := instance.RandomSparse(5, 1, 2, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, full.NumEdges())

	_, err = instance.RandomSparse(5, 1.5, 1, 1, nil)
	assert.True(t, errors.Is(err, instance.ErrInvalidProbability))
	_, err = instance.RandomSparse(5, 0.5, 1, 1, nil)
	assert.True(t, errors.Is(err, instance.ErrNeedRandSource))
	_, err = instance.RandomSparse(5, 0.5, 3, 2, rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, instance.ErrInvalidWeight))
}
