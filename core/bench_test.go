package core_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphsynth/core"
)

const benchEdges = 1 << 16

func BenchmarkAppendSeal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		es, _ := core.NewEdgeSet(1024, benchEdges)
		for j := 0; j < benchEdges; j++ {
			_ = es.Append(j&1023, (j*7)&1023, 0)
		}
		es.Seal()
	}
}

func BenchmarkShuffle(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		es, _ := core.NewEdgeSet(1024, benchEdges)
		for j := 0; j < benchEdges; j++ {
			_ = es.Append(j&1023, (j*7)&1023, 0)
		}
		es.Seal()
		b.StartTimer()
		_ = es.Shuffle(rng)
	}
}
