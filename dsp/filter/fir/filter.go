package fir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter"
)

// Filter implements a direct-form FIR filter using a circular-buffer delay
// line, parameterized over the sample type.
type Filter[T core.Float] struct {
	coeffs []T
	delay  []T
	pos    int
}

// New creates a FIR filter from the given coefficient slice.
// The coefficients are copied. The filter order is len(coeffs)-1; the delay
// line retains that many past inputs. An empty coefficient slice is
// rejected with an error wrapping [filter.ErrInvalidConfiguration].
func New[T core.Float](coeffs []T) (*Filter[T], error) {
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("fir: coefficients must not be empty: %w", filter.ErrInvalidConfiguration)
	}

	c := make([]T, len(coeffs))
	copy(c, coeffs)
	return &Filter[T]{
		coeffs: c,
		delay:  make([]T, len(coeffs)-1),
	}, nil
}

// ProcessSample filters one input sample using direct convolution
// with a circular delay line.
//
//	y[n] = sum_{k=0}^{N-1} b[k] * x[n-k]
//
// Non-finite inputs propagate through the arithmetic; the hot path has no
// validity checks.
func (f *Filter[T]) ProcessSample(x T) T {
	y := f.coeffs[0] * x
	p := f.pos - 1
	for k := 1; k < len(f.coeffs); k++ {
		if p < 0 {
			p = len(f.delay) - 1
		}
		y += f.coeffs[k] * f.delay[p]
		p--
	}
	if len(f.delay) > 0 {
		f.delay[f.pos] = x
		f.pos++
		if f.pos >= len(f.delay) {
			f.pos = 0
		}
	}
	return y
}

// ProcessBlock filters a block of samples in-place. The outputs are
// identical to feeding the samples through ProcessSample one at a time.
func (f *Filter[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
// An empty src is a no-op.
func (f *Filter[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the delay line to zero. Coefficients are unchanged; the
// filter behaves as freshly constructed.
func (f *Filter[T]) Reset() {
	core.Zero(f.delay)
	f.pos = 0
}

// SetCoefficients replaces the coefficients and clears all state, so old
// history never mixes with the new response. The new length may differ from
// the old one. Validation matches New; on error the filter is unchanged.
func (f *Filter[T]) SetCoefficients(coeffs []T) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("fir: coefficients must not be empty: %w", filter.ErrInvalidConfiguration)
	}

	c := make([]T, len(coeffs))
	copy(c, coeffs)
	f.coeffs = c
	if len(f.delay) != len(coeffs)-1 {
		f.delay = make([]T, len(coeffs)-1)
	}
	f.Reset()
	return nil
}

// Order returns the filter order (len(coeffs) - 1).
func (f *Filter[T]) Order() int {
	return len(f.coeffs) - 1
}

// Len returns the number of coefficients (taps).
func (f *Filter[T]) Len() int {
	return len(f.coeffs)
}

// Coefficients returns a copy of the filter coefficients.
func (f *Filter[T]) Coefficients() []T {
	c := make([]T, len(f.coeffs))
	copy(c, f.coeffs)
	return c
}

// Delay returns a copy of the retained past inputs, most recent first.
func (f *Filter[T]) Delay() []T {
	out := make([]T, len(f.delay))
	p := f.pos - 1
	for i := range out {
		if p < 0 {
			p = len(f.delay) - 1
		}
		out[i] = f.delay[p]
		p--
	}
	return out
}

// GroupDelay returns the group delay in samples, (N-1)/2. The value is
// exact for linear-phase (symmetric) coefficients and informational
// otherwise.
func (f *Filter[T]) GroupDelay() float64 {
	return float64(len(f.coeffs)-1) / 2
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.coeffs {
		h += complex(float64(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians at the given frequency.
func (f *Filter[T]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}
