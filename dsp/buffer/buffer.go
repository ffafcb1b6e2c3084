package buffer

import "github.com/cwbudde/algo-filter/dsp/core"

// Buffer wraps a sample slice with reuse-friendly semantics.
// DSP functions accept raw slices; use Samples() to bridge.
type Buffer[T core.Float] struct {
	samples []T
}

// New returns a zero-filled Buffer of the given length.
func New[T core.Float](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{samples: make([]T, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[T core.Float](s []T) *Buffer[T] {
	return &Buffer[T]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]T, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to 0.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer[T]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start >= end {
		return
	}
	core.Zero(b.samples[start:end])
}

// Copy returns a deep copy of the buffer.
func (b *Buffer[T]) Copy() *Buffer[T] {
	s := make([]T, len(b.samples))
	copy(s, b.samples)
	return &Buffer[T]{samples: s}
}
