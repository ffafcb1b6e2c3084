// Package interp provides interpolation primitives used by delay-based DSP blocks.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite (good default)
//
// [LagrangeInterpolator] wraps both behind an order parameter selected at
// construction time; [delay.Line] uses Hermite4 for its fractional reads.
package interp
