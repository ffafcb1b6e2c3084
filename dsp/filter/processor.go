package filter

import "github.com/cwbudde/algo-filter/dsp/core"

// SampleProcessor is the single-sample streaming surface shared by the
// filter engines. ProcessSample consumes one input sample and returns one
// output sample; Reset clears all internal history so the processor behaves
// as if freshly constructed.
type SampleProcessor[T core.Float] interface {
	ProcessSample(x T) T
	Reset()
}

// BlockProcessor extends SampleProcessor with block operations.
// ProcessBlock filters buf in-place. ProcessBlockTo filters src into dst
// and requires len(dst) >= len(src). Block processing is defined to be
// sample-exact: a block call produces the same outputs as the equivalent
// sequence of ProcessSample calls.
type BlockProcessor[T core.Float] interface {
	SampleProcessor[T]
	ProcessBlock(buf []T)
	ProcessBlockTo(dst, src []T)
}
