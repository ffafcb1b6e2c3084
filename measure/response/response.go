package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/signal"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// Errors returned by response measurement functions.
var (
	ErrNilProcessor      = errors.New("response: processor must not be nil")
	ErrInvalidFFTSize    = errors.New("response: fft size must be a power of two >= 16")
	ErrInvalidFrequency  = errors.New("response: frequency must be between 0 and half the sample rate")
	ErrEmptyResponseData = errors.New("response: impulse response must not be empty")
)

// Analyzer measures the empirical frequency response of sample processors.
//
// Unlike the analytic Response methods on the filter types, which evaluate
// the transfer function from the coefficients, the analyzer treats the
// processor as a black box: it excites the processor with known signals and
// derives the response from what comes out. Both views agreeing is a strong
// correctness check; the analyzer additionally works for any processor,
// including cascades whose combined coefficients are not directly available.
type Analyzer struct {
	cfg     core.ProcessorConfig
	gen     *signal.Generator
	fftSize int
}

// NewAnalyzer creates an analyzer that measures responses on an fftSize-point
// grid. fftSize must be a power of two and at least 16.
func NewAnalyzer(fftSize int, opts ...core.ProcessorOption) (*Analyzer, error) {
	if fftSize < 16 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFFTSize, fftSize)
	}

	cfg := core.ApplyProcessorOptions(opts...)

	return &Analyzer{
		cfg:     cfg,
		gen:     signal.NewGenerator(opts...),
		fftSize: fftSize,
	}, nil
}

// FFTSize returns the configured transform size.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// SampleRate returns the configured sample rate.
func (a *Analyzer) SampleRate() float64 { return a.cfg.SampleRate }

// Measure excites proc with a unit impulse and transforms the measured
// impulse response into a frequency response curve from DC to Nyquist.
//
// The processor is reset before the excitation and left reset afterwards,
// so the measurement always reflects the zero-state response.
func (a *Analyzer) Measure(proc filter.SampleProcessor[float64]) (*Curve, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}

	excitation, err := a.gen.Impulse(a.fftSize)
	if err != nil {
		return nil, err
	}

	proc.Reset()
	ir := a.process(proc, excitation)
	proc.Reset()

	return a.transform(ir)
}

// MeasureImpulseResponse transforms an already captured impulse response
// into a curve. The response is truncated or zero-padded to the analyzer's
// FFT size.
func (a *Analyzer) MeasureImpulseResponse(ir []float64) (*Curve, error) {
	if len(ir) == 0 {
		return nil, ErrEmptyResponseData
	}

	padded := make([]float64, a.fftSize)
	copy(padded, ir)

	return a.transform(padded)
}

// GainAt measures the processor's gain at a single frequency with a sine
// probe, using a Goertzel detector on the steady-state portion of the
// output. freqHz must lie strictly between 0 and half the sample rate.
//
// The probe runs for two FFT-size windows; the first is discarded as
// settling time. The processor is reset before and after the measurement.
func (a *Analyzer) GainAt(proc filter.SampleProcessor[float64], freqHz float64) (float64, error) {
	if proc == nil {
		return 0, ErrNilProcessor
	}

	if freqHz <= 0 || freqHz >= a.cfg.SampleRate/2 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFrequency, freqHz)
	}

	// Snap the probe to the nearest bin frequency so an integer number of
	// cycles fits the analysis window and leakage stays negligible. The bin
	// stays below Nyquist because a zero-phase sine at Nyquist is silent.
	bin := math.Round(freqHz * float64(a.fftSize) / a.cfg.SampleRate)
	bin = core.Clamp(bin, 1, float64(a.fftSize/2-1))
	probeFreq := bin * a.cfg.SampleRate / float64(a.fftSize)

	probe, err := a.gen.Sine(probeFreq, 1.0, 2*a.fftSize)
	if err != nil {
		return 0, err
	}

	proc.Reset()
	out := a.process(proc, probe)
	proc.Reset()

	steady := out[a.fftSize:]
	reference := probe[a.fftSize:]

	outPower, err := spectrum.AnalyzeBlock(steady, probeFreq, a.cfg.SampleRate)
	if err != nil {
		return 0, err
	}

	inPower, err := spectrum.AnalyzeBlock(reference, probeFreq, a.cfg.SampleRate)
	if err != nil {
		return 0, err
	}

	if inPower <= 0 {
		return 0, fmt.Errorf("response: probe signal has no energy at %v Hz", probeFreq)
	}

	return math.Sqrt(outPower / inPower), nil
}

// GainDBAt measures the gain at freqHz and converts it to decibels.
func (a *Analyzer) GainDBAt(proc filter.SampleProcessor[float64], freqHz float64) (float64, error) {
	gain, err := a.GainAt(proc, freqHz)
	if err != nil {
		return 0, err
	}

	return core.LinearToDB(gain), nil
}

// process runs the excitation through the processor, preferring the block
// surface when the processor provides one.
func (a *Analyzer) process(proc filter.SampleProcessor[float64], excitation []float64) []float64 {
	out := make([]float64, len(excitation))

	if bp, ok := proc.(filter.BlockProcessor[float64]); ok {
		blockSize := a.cfg.BlockSize
		for start := 0; start < len(excitation); start += blockSize {
			end := min(start+blockSize, len(excitation))
			bp.ProcessBlockTo(out[start:end], excitation[start:end])
		}

		return out
	}

	for i, x := range excitation {
		out[i] = proc.ProcessSample(x)
	}

	return out
}

// transform turns a time-domain impulse response into a Curve.
func (a *Analyzer) transform(ir []float64) (*Curve, error) {
	plan, err := algofft.NewPlan64(a.fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, a.fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	bins := make([]complex128, a.fftSize)
	if err := plan.Forward(bins, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	// Keep the one-sided spectrum, DC through Nyquist inclusive.
	half := a.fftSize/2 + 1
	oneSided := bins[:half]

	freqs := make([]float64, half)
	for i := range freqs {
		freqs[i] = float64(i) * a.cfg.SampleRate / float64(a.fftSize)
	}

	mag := spectrum.Magnitude(oneSided)

	magDB := make([]float64, half)
	for i, m := range mag {
		magDB[i] = core.LinearToDB(m)
	}

	return &Curve{
		SampleRate:  a.cfg.SampleRate,
		Frequencies: freqs,
		Magnitude:   mag,
		MagnitudeDB: magDB,
		Phase:       spectrum.Phase(oneSided),
		fftSize:     a.fftSize,
	}, nil
}
