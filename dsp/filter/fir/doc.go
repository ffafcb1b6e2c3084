// Package fir provides a direct-form FIR filter runtime.
//
// A [Filter] applies a set of pre-computed coefficients to an input stream
// using a circular-buffer delay line. The engine is generic over the sample
// type; [Filter32] and [Filter64] name the two supported instantiations.
// It is suitable for short filters (order < ~256); very long kernels are
// better served by FFT-based partitioned convolution.
//
// A Filter is not safe for concurrent use. Callers drive one instance from
// one goroutine at a time; distinct instances are fully independent.
//
// This package provides the processing runtime only. Coefficient design
// (windowed-sinc, Parks-McClellan, etc.) is a separate concern.
package fir
