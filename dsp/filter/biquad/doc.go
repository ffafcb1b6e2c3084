// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters (Butterworth, Chebyshev,
// etc.), which is numerically better conditioned than a single high-order
// direct form. All types are generic over the sample type.
//
// This package provides the processing runtime only. Coefficient design
// (Butterworth, Chebyshev, parametric EQ, etc.) is a separate concern.
package biquad
