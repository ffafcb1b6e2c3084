package iir

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// benchFilter builds a stable filter of the given order with feedback
// energy spread across the taps.
func benchFilter[T core.Float](order int) (*Filter[T], error) {
	ff := make([]T, order+1)
	fb := make([]T, order+1)
	fb[0] = 1
	for i := range ff {
		ff[i] = T(1) / T(order+1)
	}
	for i := 1; i < len(fb); i++ {
		fb[i] = T(0.5) / T(order)
	}
	return New(ff, fb)
}

func BenchmarkProcessSample(b *testing.B) {
	for _, order := range []int{2, 4, 8, 32} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			f, err := benchFilter[float64](order)
			if err != nil {
				b.Fatal(err)
			}

			x := 1.0
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessSample32(b *testing.B) {
	for _, order := range []int{2, 4, 8, 32} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			f, err := benchFilter[float32](order)
			if err != nil {
				b.Fatal(err)
			}

			x := float32(1)
			for b.Loop() {
				x = f.ProcessSample(x)
			}

			_ = x
		})
	}
}

func BenchmarkProcessBlock(b *testing.B) {
	for _, order := range []int{2, 4, 8, 32} {
		b.Run(fmt.Sprintf("order=%d", order), func(b *testing.B) {
			f, err := benchFilter[float64](order)
			if err != nil {
				b.Fatal(err)
			}

			buf := make([]float64, 1024)
			for i := range buf {
				buf[i] = float64(i) * 0.001
			}

			b.SetBytes(1024 * 8)
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}
