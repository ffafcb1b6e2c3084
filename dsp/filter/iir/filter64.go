package iir

// Filter64 is the double-precision instantiation of [Filter].
type Filter64 = Filter[float64]

// New64 creates a double-precision IIR filter.
func New64(feedforward, feedback []float64) (*Filter64, error) {
	return New(feedforward, feedback)
}
