// Package filter defines the processor interfaces and error values shared
// by the concrete filter engines in its subpackages.
//
// The fir and iir subpackages provide the streaming runtimes; biquad
// provides a cascadable second-order section runtime. All engines satisfy
// [BlockProcessor] for their sample type, so coefficient sources and
// processing graphs can be written once against the interfaces.
package filter
