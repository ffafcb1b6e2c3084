package delay

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/interp"
)

// Line is a circular delay line.
type Line[T core.Float] struct {
	buffer   []T
	writePos int
}

// New returns a delay line of fixed size.
func New[T core.Float](size int) (*Line[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("delay size must be > 0: %d", size)
	}
	return &Line[T]{buffer: make([]T, size)}, nil
}

// Len returns internal buffer size.
func (d *Line[T]) Len() int {
	return len(d.buffer)
}

// Write writes one sample.
func (d *Line[T]) Write(sample T) {
	d.buffer[d.writePos] = sample
	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads an integer delay in samples.
func (d *Line[T]) Read(delay int) T {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	readPos := (d.writePos - delay + size) % size
	return d.buffer[readPos]
}

// ReadFractional reads with cubic Hermite interpolation.
func (d *Line[T]) ReadFractional(delay float64) T {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	maxDelay := float64(size - 3)
	if delay > maxDelay {
		delay = maxDelay
	}

	p := int(math.Floor(delay))
	t := delay - float64(p)

	xm1 := d.Read(max(0, p-1))
	x0 := d.Read(p)
	x1 := d.Read(p + 1)
	x2 := d.Read(p + 2)
	return interp.Hermite4(T(t), xm1, x0, x1, x2)
}

// Reset clears line state.
func (d *Line[T]) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}
