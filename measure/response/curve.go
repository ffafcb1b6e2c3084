package response

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// Curve is a measured frequency response sampled on a uniform bin grid from
// DC to Nyquist inclusive.
type Curve struct {
	// SampleRate is the rate the measurement was taken at, in Hz.
	SampleRate float64
	// Frequencies holds the bin center frequencies in Hz, ascending.
	Frequencies []float64
	// Magnitude holds the linear gain per bin.
	Magnitude []float64
	// MagnitudeDB holds the gain per bin in dB (20*log10 convention).
	MagnitudeDB []float64
	// Phase holds the wrapped phase per bin in radians, in (-pi, pi].
	Phase []float64

	fftSize int
}

// Len returns the number of response points.
func (c *Curve) Len() int { return len(c.Frequencies) }

// MagnitudeAt returns the linear gain at freqHz, linearly interpolated
// between the surrounding bins. Frequencies outside the measured range
// clamp to the nearest endpoint.
func (c *Curve) MagnitudeAt(freqHz float64) (float64, error) {
	out, err := spectrum.InterpolateLinear(c.Frequencies, c.Magnitude, []float64{freqHz})
	if err != nil {
		return 0, fmt.Errorf("response: magnitude lookup failed: %w", err)
	}

	return out[0], nil
}

// MagnitudeDBAt returns the gain at freqHz in dB.
func (c *Curve) MagnitudeDBAt(freqHz float64) (float64, error) {
	mag, err := c.MagnitudeAt(freqHz)
	if err != nil {
		return 0, err
	}

	return core.LinearToDB(mag), nil
}

// UnwrappedPhase returns the phase with 2*pi discontinuities removed.
func (c *Curve) UnwrappedPhase() []float64 {
	return spectrum.UnwrapPhase(c.Phase)
}

// GroupDelay returns the group delay per bin in seconds, derived from the
// unwrapped phase by finite differences. Entries at bins where the
// magnitude is near zero are unreliable because the phase is undefined
// there.
func (c *Curve) GroupDelay() ([]float64, error) {
	gd, err := spectrum.GroupDelaySeconds(c.UnwrappedPhase(), c.fftSize, c.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("response: group delay failed: %w", err)
	}

	return gd, nil
}

// Smooth returns a copy of the curve with 1/fraction-octave magnitude
// smoothing applied. The DC bin is carried over unsmoothed because octave
// bands are undefined at 0 Hz. Phase is copied unchanged.
func (c *Curve) Smooth(fraction int) (*Curve, error) {
	if c.Len() < 2 {
		return nil, fmt.Errorf("response: smoothing requires at least 2 points: %d", c.Len())
	}

	smoothed, err := spectrum.SmoothFractionalOctave(c.Frequencies[1:], c.Magnitude[1:], fraction)
	if err != nil {
		return nil, fmt.Errorf("response: smoothing failed: %w", err)
	}

	mag := make([]float64, c.Len())
	mag[0] = c.Magnitude[0]
	copy(mag[1:], smoothed)

	magDB := make([]float64, len(mag))
	for i, m := range mag {
		magDB[i] = core.LinearToDB(m)
	}

	out := &Curve{
		SampleRate:  c.SampleRate,
		Frequencies: append([]float64(nil), c.Frequencies...),
		Magnitude:   mag,
		MagnitudeDB: magDB,
		Phase:       append([]float64(nil), c.Phase...),
		fftSize:     c.fftSize,
	}

	return out, nil
}
