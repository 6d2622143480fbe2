// SPDX-License-Identifier: MIT

package multinomial_test

import (
	"fmt"
	"testing"

	"github.com/qcgm1978/tfjs-core/multinomial"
	"github.com/qcgm1978/tfjs-core/tensor"
)

func benchProbs(b *testing.B, rows, k int) *tensor.Tensor {
	b.Helper()
	data := make([]float64, rows*k)
	for i := range data {
		data[i] = float64(i%k + 1)
	}

	return mustTensor(b, data, rows, k)
}

func BenchmarkMultinomial(b *testing.B) {
	for _, bc := range []struct{ rows, k, n int }{
		{1, 10, 1000},
		{1, 50000, 1000}, // vocabulary-sized row
		{64, 1000, 100},
	} {
		probs := benchProbs(b, bc.rows, bc.k)
		b.Run(fmt.Sprintf("B%d_K%d_N%d", bc.rows, bc.k, bc.n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := multinomial.Multinomial(probs, bc.n, multinomial.WithSeed(seedDet)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMultinomial_Workers(b *testing.B) {
	probs := benchProbs(b, 128, 512)
	for _, w := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers%d", w), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := multinomial.Multinomial(probs, 256, multinomial.WithSeed(seedDet), multinomial.WithWorkers(w)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
