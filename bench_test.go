package submodular_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/submodular"
	"github.com/hupe1980/submodular/testutil"
)

func BenchmarkMarginalGainCandidates(b *testing.B) {
	rng := testutil.NewRNG(4711)

	for _, size := range []int{16, 128} {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("S=%d/workers=%d", size, workers), func(b *testing.B) {
				S, err := submodular.FromRows(rng.UniformVectors32(size, 64))
				if err != nil {
					b.Fatal(err)
				}
				candidates := rng.UniformVectors32(1024, 64)

				fn, err := submodular.New[float32](testutil.Sum[float32](), submodular.WithWorkerCount(workers))
				if err != nil {
					b.Fatal(err)
				}

				b.ReportAllocs()
				for b.Loop() {
					if _, err := fn.MarginalGainCandidates(S, candidates); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEvaluateBatch(b *testing.B) {
	rng := testutil.NewRNG(4711)
	multi := rng.Collections(512, 8, 32, 32)

	for _, workers := range []int{1, 2, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			fn, err := submodular.New[float64](testutil.Sum[float64](), submodular.WithWorkerCount(workers))
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := fn.EvaluateBatch(multi); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
