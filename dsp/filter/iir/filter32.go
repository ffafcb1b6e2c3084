package iir

// Filter32 is the single-precision instantiation of [Filter].
type Filter32 = Filter[float32]

// New32 creates a single-precision IIR filter.
func New32(feedforward, feedback []float32) (*Filter32, error) {
	return New(feedforward, feedback)
}
