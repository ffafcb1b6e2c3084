package iir

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter"
)

// Filter implements a recursive (IIR) filter in direct form I with
// circular-buffer input and output histories, parameterized over the
// sample type.
//
// Coefficients are normalized by the leading feedback coefficient a[0] at
// construction, so the stored feedback sequence always starts with 1.
type Filter[T core.Float] struct {
	ff    []T // feedforward (b), normalized
	fb    []T // feedback (a), normalized, fb[0] == 1
	xHist []T // past inputs
	yHist []T // past outputs
	pos   int
}

// New creates an IIR filter from feedforward (b) and feedback (a)
// coefficient slices. Both are copied and divided by feedback[0]. The
// histories retain max(len(b), len(a))-1 past samples each.
//
// An empty slice on either side, or feedback[0] == 0, is rejected with an
// error wrapping [filter.ErrInvalidConfiguration]. Stability is not
// checked: a divergent coefficient set produces divergent output rather
// than an error.
func New[T core.Float](feedforward, feedback []T) (*Filter[T], error) {
	ff, fb, err := normalize(feedforward, feedback)
	if err != nil {
		return nil, err
	}

	n := max(len(ff), len(fb)) - 1
	return &Filter[T]{
		ff:    ff,
		fb:    fb,
		xHist: make([]T, n),
		yHist: make([]T, n),
	}, nil
}

func normalize[T core.Float](feedforward, feedback []T) (ff, fb []T, err error) {
	if len(feedforward) == 0 {
		return nil, nil, fmt.Errorf("iir: feedforward coefficients must not be empty: %w", filter.ErrInvalidConfiguration)
	}
	if len(feedback) == 0 {
		return nil, nil, fmt.Errorf("iir: feedback coefficients must not be empty: %w", filter.ErrInvalidConfiguration)
	}
	a0 := feedback[0]
	if a0 == 0 {
		return nil, nil, fmt.Errorf("iir: leading feedback coefficient must not be zero: %w", filter.ErrInvalidConfiguration)
	}

	ff = make([]T, len(feedforward))
	for i, c := range feedforward {
		ff[i] = c / a0
	}
	fb = make([]T, len(feedback))
	for i, c := range feedback {
		fb[i] = c / a0
	}
	return ff, fb, nil
}

// ProcessSample filters one input sample using the normalized difference
// equation in direct form I:
//
//	y[n] = sum_{k=0}^{M-1} b[k]*x[n-k] - sum_{k=1}^{K-1} a[k]*y[n-k]
//
// Non-finite values propagate through the arithmetic; the hot path has no
// validity checks.
func (f *Filter[T]) ProcessSample(x T) T {
	y := f.ff[0] * x
	p := f.pos - 1
	for k := 1; k < len(f.ff); k++ {
		if p < 0 {
			p = len(f.xHist) - 1
		}
		y += f.ff[k] * f.xHist[p]
		p--
	}
	p = f.pos - 1
	for k := 1; k < len(f.fb); k++ {
		if p < 0 {
			p = len(f.yHist) - 1
		}
		y -= f.fb[k] * f.yHist[p]
		p--
	}
	if len(f.xHist) > 0 {
		f.xHist[f.pos] = x
		f.yHist[f.pos] = y
		f.pos++
		if f.pos >= len(f.xHist) {
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

// Reset clears both histories to zero. Coefficients are unchanged; the
// filter behaves as freshly constructed.
func (f *Filter[T]) Reset() {
	core.Zero(f.xHist)
	core.Zero(f.yHist)
	f.pos = 0
}

// SetCoefficients replaces both coefficient sequences and clears all
// state, so old history never mixes with the new response. The lengths may
// differ from the old ones. Validation matches New; on error the filter is
// unchanged.
func (f *Filter[T]) SetCoefficients(feedforward, feedback []T) error {
	ff, fb, err := normalize(feedforward, feedback)
	if err != nil {
		return err
	}

	f.ff = ff
	f.fb = fb
	if n := max(len(ff), len(fb)) - 1; n != len(f.xHist) {
		f.xHist = make([]T, n)
		f.yHist = make([]T, n)
	}
	f.Reset()
	return nil
}

// Order returns the filter order, max(len(b), len(a)) - 1.
func (f *Filter[T]) Order() int {
	return len(f.xHist)
}

// Feedforward returns a copy of the normalized feedforward coefficients.
func (f *Filter[T]) Feedforward() []T {
	c := make([]T, len(f.ff))
	copy(c, f.ff)
	return c
}

// Feedback returns a copy of the normalized feedback coefficients.
// The first element is always 1.
func (f *Filter[T]) Feedback() []T {
	c := make([]T, len(f.fb))
	copy(c, f.fb)
	return c
}

// InputHistory returns a copy of the retained past inputs, most recent first.
func (f *Filter[T]) InputHistory() []T {
	return f.snapshot(f.xHist)
}

// OutputHistory returns a copy of the retained past outputs, most recent first.
func (f *Filter[T]) OutputHistory() []T {
	return f.snapshot(f.yHist)
}

func (f *Filter[T]) snapshot(ring []T) []T {
	out := make([]T, len(ring))
	p := f.pos - 1
	for i := range out {
		if p < 0 {
			p = len(ring) - 1
		}
		out[i] = ring[p]
		p--
	}
	return out
}

// State returns copies of the input and output histories, most recent
// first, for later restoration with SetState.
func (f *Filter[T]) State() (inputs, outputs []T) {
	return f.InputHistory(), f.OutputHistory()
}

// SetState restores histories captured by State. Both slices must hold
// exactly Order() samples, most recent first; otherwise an error wrapping
// [filter.ErrInvalidConfiguration] is returned and the filter is unchanged.
func (f *Filter[T]) SetState(inputs, outputs []T) error {
	if len(inputs) != len(f.xHist) || len(outputs) != len(f.yHist) {
		return fmt.Errorf("iir: state length must equal the filter order %d: %w", len(f.xHist), filter.ErrInvalidConfiguration)
	}
	f.restore(inputs, outputs)
	return nil
}

func (f *Filter[T]) restore(inputs, outputs []T) {
	f.pos = 0
	p := len(f.xHist) - 1
	for i := range inputs {
		f.xHist[p] = inputs[i]
		f.yHist[p] = outputs[i]
		p--
	}
}
