// Package response measures the frequency response of running filters.
//
// The filter packages can evaluate their transfer function analytically from
// the coefficients. This package takes the complementary empirical view: it
// drives an actual processor with known excitation signals and derives the
// response from the observed output. That makes it work for any
// implementation of the processor interfaces, including cascades and custom
// processors whose combined coefficients are not directly available, and it
// catches implementation bugs that a coefficient-level formula cannot see.
//
// Two measurement strategies are provided:
//
//   - Measure captures the impulse response and transforms it with an FFT,
//     yielding the full curve from DC to Nyquist in one pass
//   - GainAt probes a single frequency with a steady-state sine and a
//     Goertzel detector, which rejects noise and distortion products
//
// # Usage
//
// Measure a lowpass and read off the gain at the corner:
//
//	f, _ := fir.New([]float64{0.25, 0.5, 0.25})
//	an, _ := response.NewAnalyzer(4096, core.WithSampleRate(48000))
//	curve, _ := an.Measure(f)
//	db, _ := curve.MagnitudeDBAt(12000)
//
// Spot-check the same filter with a sine probe:
//
//	gain, _ := an.GainAt(f, 12000)
package response
