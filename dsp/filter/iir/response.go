package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz) as the ratio of the feedforward and
// feedback polynomials evaluated on the unit circle.
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var num, den complex128
	for k, c := range f.ff {
		num += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	for k, c := range f.fb {
		den += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return num / den
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (f *Filter[T]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}

// ImpulseResponse computes n samples of the impulse response h[n] by
// feeding an impulse through the filter. The state is saved and restored,
// so the call does not disturb an ongoing stream.
func (f *Filter[T]) ImpulseResponse(n int) []T {
	if n <= 0 {
		return nil
	}
	savedIn, savedOut := f.State()
	f.Reset()
	ir := make([]T, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}
	f.restore(savedIn, savedOut)
	return ir
}
