package biquad

import "github.com/cwbudde/algo-filter/dsp/core"

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters (Butterworth, Chebyshev, etc.)
// where each second-order section feeds into the next.
type Chain[T core.Float] struct {
	sections []Section[T]
	gain     T
}

// chainConfig holds options for NewChain.
type chainConfig[T core.Float] struct {
	gain T
}

// ChainOption configures a Chain.
type ChainOption[T core.Float] func(*chainConfig[T])

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain[T core.Float](g T) ChainOption[T] {
	return func(cfg *chainConfig[T]) { cfg.gain = g }
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain[T core.Float](coeffs []Coefficients[T], opts ...ChainOption[T]) *Chain[T] {
	cfg := chainConfig[T]{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain[T]{
		sections: make([]Section[T], len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Chain[T]) ProcessSample(x T) T {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain[T]) ProcessBlock(buf []T) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst through the full cascade. dst must
// be at least as long as src. An empty src is a no-op.
func (c *Chain[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	copy(dst, src)
	c.ProcessBlock(dst[:len(src)])
}

// Reset clears all section states.
func (c *Chain[T]) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain[T]) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain[T]) NumSections() int {
	return len(c.sections)
}

// Gain returns the current input gain applied before cascading.
func (c *Chain[T]) Gain() T { return c.gain }

// SetGain updates the input gain applied before cascading.
func (c *Chain[T]) SetGain(g T) { c.gain = g }

// UpdateCoefficients replaces the filter coefficients and gain.
// If the number of sections is unchanged the delay-line state of each section
// is preserved, avoiding the output discontinuity that would result from
// starting a fresh chain with zero state.
// If the section count changes the sections are replaced and state is reset.
func (c *Chain[T]) UpdateCoefficients(coeffs []Coefficients[T], gain T) {
	c.gain = gain

	if len(coeffs) == len(c.sections) {
		for i := range c.sections {
			c.sections[i].Coefficients = coeffs[i]
		}

		return
	}

	c.sections = make([]Section[T], len(coeffs))
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain[T]) Section(i int) *Section[T] {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain[T]) State() [][2]T {
	states := make([][2]T, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain[T]) SetState(states [][2]T) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
