package biquad

import "github.com/cwbudde/algo-filter/dsp/core"

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients[T core.Float] struct {
	B0, B1, B2 T // feedforward (numerator)
	A1, A2     T // feedback (denominator)
}

// Section is a single biquad filter with coefficients and internal state.
// It implements Direct Form II Transposed processing.
type Section[T core.Float] struct {
	Coefficients[T]

	d0, d1 T
}

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection[T core.Float](c Coefficients[T]) *Section[T] {
	return &Section[T]{Coefficients: c}
}

// ProcessSample filters one input sample and returns the output.
func (s *Section[T]) ProcessSample(x T) T {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place using a 2x-unrolled
// scalar kernel that reduces loop overhead and improves ILP. Zero-alloc;
// the outputs match sample-by-sample processing exactly.
func (s *Section[T]) ProcessBlock(buf []T) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	i := 0

	n := len(buf)
	for ; i+1 < n; i += 2 {
		x0 := buf[i]
		y0 := b0*x0 + d0
		d0n := b1*x0 - a1*y0 + d1
		d1n := b2*x0 - a2*y0

		x1 := buf[i+1]
		y1 := b0*x1 + d0n
		d0 = b1*x1 - a1*y1 + d1n
		d1 = b2*x1 - a2*y1

		buf[i] = y0
		buf[i+1] = y1
	}

	if i < n {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// processBlockScalar is the plain per-sample kernel kept as the reference
// implementation for the unrolled ProcessBlock.
func (s *Section[T]) processBlockScalar(buf []T) {
	for i, x := range buf {
		y := s.B0*x + s.d0
		s.d0 = s.B1*x - s.A1*y + s.d1
		s.d1 = s.B2*x - s.A2*y
		buf[i] = y
	}
}

// ProcessBlockTo filters src into dst. dst must be at least as long as src.
// An empty src is a no-op. Zero-alloc.
func (s *Section[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		y := s.B0*x + s.d0
		s.d0 = s.B1*x - s.A1*y + s.d1
		s.d1 = s.B2*x - s.A2*y
		dst[i] = y
	}
}

// Reset clears the delay line to zero.
func (s *Section[T]) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section[T]) State() [2]T {
	return [2]T{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section[T]) SetState(state [2]T) {
	s.d0 = state[0]
	s.d1 = state[1]
}
