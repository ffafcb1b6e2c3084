// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and provides helpers
// for magnitude/power/phase extraction, phase unwrapping, group delay,
// interpolation, and fractional-octave smoothing. A single-bin Goertzel
// analyzer covers probe-tone detection without a full transform.
package spectrum
