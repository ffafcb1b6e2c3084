// Package iir provides a recursive (IIR) filter runtime in direct form I.
//
// A [Filter] combines a feedforward tap set with a feedback tap set over
// explicit input and output histories. Coefficients are normalized by the
// leading feedback coefficient at construction, so callers may pass
// unnormalized designs. The engine is generic over the sample type;
// [Filter32] and [Filter64] name the two supported instantiations.
//
// Stability is the coefficient designer's concern: the runtime applies
// whatever difference equation it is given, and an unstable design
// diverges numerically instead of returning an error.
//
// A Filter is not safe for concurrent use. Callers drive one instance from
// one goroutine at a time; distinct instances are fully independent.
//
// For cascades of second-order sections, which are better conditioned than
// a single high-order direct form, see the biquad package.
package iir
