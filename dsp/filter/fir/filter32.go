package fir

// Filter32 is the single-precision instantiation of [Filter].
type Filter32 = Filter[float32]

// New32 creates a single-precision FIR filter.
func New32(coeffs []float32) (*Filter32, error) {
	return New(coeffs)
}
