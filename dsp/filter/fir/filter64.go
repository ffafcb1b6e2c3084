package fir

// Filter64 is the double-precision instantiation of [Filter].
type Filter64 = Filter[float64]

// New64 creates a double-precision FIR filter.
func New64(coeffs []float64) (*Filter64, error) {
	return New(coeffs)
}
