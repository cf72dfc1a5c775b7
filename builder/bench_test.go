package builder_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphsynth/builder"
)

func BenchmarkKronecker(b *testing.B) {
	for _, w := range []int{1, 4} {
		b.Run(fmt.Sprintf("scale16/workers%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := builder.Build(builder.Kronecker(16, 16), builder.WithSeed(1), builder.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPowerLawCluster(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := builder.Build(builder.PowerLawCluster(1<<16, 4), builder.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
