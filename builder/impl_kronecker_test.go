// SPDX-License-Identifier: MIT
// Package builder_test verifies the R-MAT samplers: exact sizes, endpoint
// ranges, determinism across seeds and worker counts, and validation order.

package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphsynth/builder"
	"github.com/katalvlaran/graphsynth/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outDegrees counts sources per vertex.
func outDegrees(es *core.EdgeSet) []int {
	out := make([]int, es.VertexCount())
	for _, e := range es.Edges() {
		out[e.From]++
	}
	return out
}

func TestKronecker_SizeAndRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		scale, ef int
	}{
		{1, 1}, {4, 3}, {8, 16}, {11, 16}, // the last one spans two chunks
	}
	for _, tc := range cases {
		es, err := builder.Build(builder.Kronecker(tc.scale, tc.ef), builder.WithSeed(11))
		require.NoError(t, err, "scale=%d ef=%d", tc.scale, tc.ef)

		n := 1 << tc.scale
		assert.Equal(t, n, es.VertexCount())
		require.Equal(t, n*tc.ef, es.Len())
		assert.True(t, es.Sealed())
		assert.True(t, es.Shuffled())
		for i, e := range es.Edges() {
			assert.True(t, e.From >= 0 && e.From < n, "edge %d source %d", i, e.From)
			assert.True(t, e.To >= 0 && e.To < n, "edge %d destination %d", i, e.To)
			assert.True(t, e.Weight >= 0 && e.Weight < 1, "edge %d weight %g", i, e.Weight)
		}
	}
}

func TestKronecker_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.Build(builder.Kronecker(11, 16), builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Build(builder.Kronecker(11, 16), builder.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must reproduce the edge set")

	c, err := builder.Build(builder.Kronecker(11, 16), builder.WithSeed(43))
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should differ")
}

func TestKronecker_WorkerCountIndependent(t *testing.T) {
	t.Parallel()

	ref, err := builder.Build(builder.Kronecker(12, 8), builder.WithSeed(5), builder.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 64} {
		got, err := builder.Build(builder.Kronecker(12, 8), builder.WithSeed(5), builder.WithWorkers(w))
		require.NoError(t, err)
		assert.True(t, ref.Equal(got), "workers=%d", w)
	}
}

func TestKronecker_ZeroSeedIsDefault(t *testing.T) {
	t.Parallel()

	a, err := builder.Build(builder.Kronecker(6, 4), builder.WithSeed(0))
	require.NoError(t, err)
	b, err := builder.Build(builder.Kronecker(6, 4), builder.WithSeed(1))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestKronecker_SkewTowardsVertexZero(t *testing.T) {
	t.Parallel()

	es, err := builder.Build(builder.Kronecker(10, 16), builder.WithSeed(3))
	require.NoError(t, err)

	deg := outDegrees(es)
	// P(row = 0) = 0.76^10 ≈ 0.064 versus 0.24^10 for the last row.
	assert.Greater(t, deg[0], 500)
	assert.Greater(t, deg[0], deg[len(deg)-1])
}

func TestKronecker_DegenerateInitiators(t *testing.T) {
	t.Parallel()

	// All mass on D: every bit is set, so every edge is (n-1, n-1).
	es, err := builder.Build(builder.Kronecker(5, 2),
		builder.WithInitiator(builder.Initiator{D: 1}), builder.WithSeed(9))
	require.NoError(t, err)
	for _, e := range es.Edges() {
		assert.Equal(t, core.Edge{From: 31, To: 31, Weight: e.Weight}, e)
	}

	// No mass in column 0: every column bit is set.
	es, err = builder.Build(builder.Kronecker(5, 2),
		builder.WithInitiator(builder.Initiator{B: 0.5, D: 0.5}), builder.WithSeed(9))
	require.NoError(t, err)
	for _, e := range es.Edges() {
		assert.Equal(t, 31, e.To)
	}
}

func TestKronecker_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		ctor     builder.Constructor
		opts     []builder.BuilderOption
		sentinel error
	}{
		{"scale zero", builder.Kronecker(0, 4), nil, builder.ErrTooFewVertices},
		{"scale too large", builder.Kronecker(builder.MaxKroneckerScale+1, 1), nil, builder.ErrScaleTooLarge},
		{"edge factor zero", builder.Kronecker(4, 0), nil, builder.ErrBadEdgeFactor},
		{"negative quadrant", builder.Kronecker(4, 1),
			[]builder.BuilderOption{builder.WithInitiator(builder.Initiator{A: 0.7, B: -0.1, C: 0.2, D: 0.2})},
			builder.ErrInvalidInitiator},
		{"sum not one", builder.Kronecker(4, 1),
			[]builder.BuilderOption{builder.WithInitiator(builder.Initiator{A: 0.5, B: 0.2, C: 0.2, D: 0.2})},
			builder.ErrInvalidInitiator},
		{"no bottom-right mass", builder.Kronecker(4, 1),
			[]builder.BuilderOption{builder.WithInitiator(builder.Initiator{A: 0.5, B: 0.25, C: 0.25})},
			builder.ErrInvalidInitiator},
		{"sizes before initiator", builder.Kronecker(0, 1),
			[]builder.BuilderOption{builder.WithInitiator(builder.Initiator{A: 2})},
			builder.ErrTooFewVertices},
		{"kroneckerN one vertex", builder.KroneckerN(1, 10), nil, builder.ErrTooFewVertices},
		{"kroneckerN no edges", builder.KroneckerN(10, 0), nil, builder.ErrBadEdgeFactor},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			es, err := builder.Build(tc.ctor, tc.opts...)
			assert.Nil(t, es)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.ErrorIs(t, err, builder.ErrConfiguration)
		})
	}
}

func TestKroneckerN_Range(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 10, 100, 1000} {
		es, err := builder.Build(builder.KroneckerN(n, 4*n), builder.WithSeed(21))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, es.VertexCount())
		require.Equal(t, 4*n, es.Len())
		for _, e := range es.Edges() {
			assert.Less(t, e.From, n)
			assert.Less(t, e.To, n)
		}
	}
}

func TestKroneckerN_PowerOfTwoMatchesKronecker(t *testing.T) {
	t.Parallel()

	a, err := builder.Build(builder.Kronecker(7, 5), builder.WithSeed(8))
	require.NoError(t, err)
	b, err := builder.Build(builder.KroneckerN(128, 640), builder.WithSeed(8))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestKroneckerN_ExhaustedRedraws(t *testing.T) {
	t.Parallel()

	// All mass on D always lands on (15,15), outside [0,10).
	_, err := builder.Build(builder.KroneckerN(10, 1), builder.WithInitiator(builder.Initiator{D: 1}))
	require.Error(t, err)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.NotErrorIs(t, err, builder.ErrConfiguration)
}

func TestKronecker_CustomWeights(t *testing.T) {
	t.Parallel()

	es, err := builder.Build(builder.Kronecker(4, 4),
		builder.WithWeightFn(builder.UniformWeightFn(10, 20)), builder.WithSeed(2))
	require.NoError(t, err)
	for _, e := range es.Edges() {
		assert.True(t, e.Weight >= 10 && e.Weight < 20, "weight %g", e.Weight)
	}

	es, err = builder.Build(builder.Kronecker(4, 4), builder.WithWeightFn(builder.ZeroWeightFn))
	require.NoError(t, err)
	for _, e := range es.Edges() {
		assert.Zero(t, e.Weight)
	}
}
