// SPDX-License-Identifier: MIT
// Package core_test verifies the EdgeSet lifecycle: append validation,
// sealing, the one-time shuffle, and read accessors.

package core_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/graphsynth/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSet appends pairs to a fresh set over n vertices and seals it.
func buildSet(t *testing.T, n int, pairs [][2]int) *core.EdgeSet {
	t.Helper()
	es, err := core.NewEdgeSet(n, len(pairs))
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, es.Append(p[0], p[1], 0))
	}
	es.Seal()

	return es
}

func TestNewEdgeSet_BadVertexCount(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -100} {
		_, err := core.NewEdgeSet(n, 4)
		assert.ErrorIs(t, err, core.ErrBadVertexCount, "n=%d", n)
	}
}

func TestAppend_RangeChecks(t *testing.T) {
	t.Parallel()

	es, err := core.NewEdgeSet(4, 0)
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to int
		wantErr  error
	}{
		{"ok", 0, 3, nil},
		{"self-loop ok", 2, 2, nil},
		{"negative source", -1, 0, core.ErrVertexOutOfRange},
		{"source == n", 4, 0, core.ErrVertexOutOfRange},
		{"negative destination", 0, -3, core.ErrVertexOutOfRange},
		{"destination == n", 1, 4, core.ErrVertexOutOfRange},
	}
	for _, tc := range tests {
		err := es.Append(tc.from, tc.to, 0.5)
		if tc.wantErr == nil {
			assert.NoError(t, err, tc.name)
			continue
		}
		assert.ErrorIs(t, err, tc.wantErr, tc.name)
	}
	assert.Equal(t, 2, es.Len(), "only valid edges are stored")
}

func TestAppend_KeepsParallelEdgesAndLoops(t *testing.T) {
	t.Parallel()

	es := buildSet(t, 3, [][2]int{{0, 1}, {0, 1}, {2, 2}, {0, 1}})
	assert.Equal(t, 4, es.Len())
	stats := es.Stats()
	assert.Equal(t, 1, stats.SelfLoops)
	assert.Equal(t, 3, stats.TouchedVertices)
	assert.Equal(t, 4, stats.EdgeCount)
	assert.Equal(t, 3, stats.VertexCount)
}

func TestSeal_RejectsAppend(t *testing.T) {
	t.Parallel()

	es := buildSet(t, 2, [][2]int{{0, 1}})
	assert.True(t, es.Sealed())
	assert.ErrorIs(t, es.Append(1, 0, 0), core.ErrSealed)
	es.Seal() // idempotent
	assert.Equal(t, 1, es.Len())
}

func TestShuffle_Lifecycle(t *testing.T) {
	t.Parallel()

	es, err := core.NewEdgeSet(8, 8)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		require.NoError(t, es.Append(i, (i+1)%8, 0))
	}

	rng := rand.New(rand.NewSource(7))
	assert.ErrorIs(t, es.Shuffle(rng), core.ErrNotSealed)
	es.Seal()
	assert.ErrorIs(t, es.Shuffle(nil), core.ErrNilRand)
	require.NoError(t, es.Shuffle(rng))
	assert.True(t, es.Shuffled())
	assert.True(t, es.Stats().Shuffled)
	assert.ErrorIs(t, es.Shuffle(rng), core.ErrAlreadyShuffled)
}

func TestShuffle_PreservesMembership(t *testing.T) {
	t.Parallel()

	pairs := make([][2]int, 0, 50)
	for i := 0; i < 50; i++ {
		pairs = append(pairs, [2]int{i % 7, (i * 3) % 7})
	}
	es := buildSet(t, 7, pairs)
	before := es.Edges()
	require.NoError(t, es.Shuffle(rand.New(rand.NewSource(99))))
	after := es.Edges()

	key := func(es []core.Edge) []int {
		out := make([]int, len(es))
		for i, e := range es {
			out[i] = e.From*7 + e.To
		}
		sort.Ints(out)
		return out
	}
	assert.Equal(t, key(before), key(after), "shuffle must not change membership")
}

func TestShuffle_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}}
	a := buildSet(t, 4, pairs)
	b := buildSet(t, 4, pairs)
	require.NoError(t, a.Shuffle(rand.New(rand.NewSource(5))))
	require.NoError(t, b.Shuffle(rand.New(rand.NewSource(5))))
	assert.True(t, a.Equal(b))
}

func TestEdges_ReturnsCopy(t *testing.T) {
	t.Parallel()

	es := buildSet(t, 2, [][2]int{{0, 1}})
	cp := es.Edges()
	cp[0].From = 1
	assert.Equal(t, 0, es.Edge(0).From, "mutating the copy must not leak into the set")
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := buildSet(t, 3, [][2]int{{0, 1}, {1, 2}})
	b := buildSet(t, 3, [][2]int{{0, 1}, {1, 2}})
	c := buildSet(t, 3, [][2]int{{1, 2}, {0, 1}})
	d := buildSet(t, 4, [][2]int{{0, 1}, {1, 2}})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c), "order matters")
	assert.False(t, a.Equal(d), "vertex count matters")
	assert.False(t, a.Equal(nil))
	var nilSet *core.EdgeSet
	assert.True(t, nilSet.Equal(nil))
}

func TestFromEdges(t *testing.T) {
	t.Parallel()

	edges := []core.Edge{{From: 0, To: 2, Weight: 0.5}, {From: 2, To: 2}}
	es, err := core.FromEdges(3, edges)
	require.NoError(t, err)
	assert.True(t, es.Sealed())
	assert.False(t, es.Shuffled())
	assert.Equal(t, edges, es.Edges())
	assert.ErrorIs(t, es.Append(0, 1, 0), core.ErrSealed)

	_, err = core.FromEdges(3, []core.Edge{{From: 0, To: 3}})
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = core.FromEdges(0, nil)
	assert.ErrorIs(t, err, core.ErrBadVertexCount)

	empty, err := core.FromEdges(2, nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
	assert.NotNil(t, empty.Edges())
}
