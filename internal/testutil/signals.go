package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-filter/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine[T core.Float](freqHz, sampleRate, amplitude float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = T(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[T core.Float](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[T core.Float](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC[T core.Float](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones[T core.Float](n int) []T {
	return DC[T](1, n)
}
