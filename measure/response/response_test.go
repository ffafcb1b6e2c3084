package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
)

// sampleOnly hides the block methods of a filter so the per-sample
// measurement path gets exercised.
type sampleOnly struct {
	f filter.SampleProcessor[float64]
}

func (s *sampleOnly) ProcessSample(x float64) float64 { return s.f.ProcessSample(x) }
func (s *sampleOnly) Reset()                          { s.f.Reset() }

func TestNewAnalyzerValidation(t *testing.T) {
	for _, size := range []int{0, -4, 8, 15, 17, 1000} {
		if _, err := NewAnalyzer(size); !errors.Is(err, ErrInvalidFFTSize) {
			t.Errorf("NewAnalyzer(%d) = %v, want ErrInvalidFFTSize", size, err)
		}
	}

	for _, size := range []int{16, 256, 4096} {
		an, err := NewAnalyzer(size)
		if err != nil {
			t.Fatalf("NewAnalyzer(%d): %v", size, err)
		}
		if an.FFTSize() != size {
			t.Errorf("FFTSize() = %d, want %d", an.FFTSize(), size)
		}
	}
}

func TestNewAnalyzerOptions(t *testing.T) {
	an, err := NewAnalyzer(1024, core.WithSampleRate(44100))
	if err != nil {
		t.Fatal(err)
	}
	if an.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %v, want 44100", an.SampleRate())
	}

	def, err := NewAnalyzer(1024)
	if err != nil {
		t.Fatal(err)
	}
	if def.SampleRate() != 48000 {
		t.Errorf("default SampleRate() = %v, want 48000", def.SampleRate())
	}
}

func TestMeasurePassthrough(t *testing.T) {
	f, err := fir.New([]float64{1.0})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	curve, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	if curve.Len() != 129 {
		t.Fatalf("Len() = %d, want 129", curve.Len())
	}
	if curve.Frequencies[0] != 0 {
		t.Errorf("Frequencies[0] = %v, want 0", curve.Frequencies[0])
	}
	if nyq := curve.Frequencies[curve.Len()-1]; nyq != 24000 {
		t.Errorf("last frequency = %v, want 24000", nyq)
	}

	for i, m := range curve.Magnitude {
		if math.Abs(m-1) > 1e-12 {
			t.Fatalf("Magnitude[%d] = %v, want 1", i, m)
		}
		if math.Abs(curve.MagnitudeDB[i]) > 1e-10 {
			t.Fatalf("MagnitudeDB[%d] = %v, want 0", i, curve.MagnitudeDB[i])
		}
	}
}

func TestMeasureMatchesAnalyticResponse(t *testing.T) {
	// The FFT of a fully captured FIR impulse response evaluates the same
	// transfer function as the coefficient formula, so the two must agree
	// to roundoff at every bin.
	f, err := fir.New([]float64{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	const sampleRate = 48000.0
	an, err := NewAnalyzer(512, core.WithSampleRate(sampleRate))
	if err != nil {
		t.Fatal(err)
	}

	curve, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	for i, freq := range curve.Frequencies {
		want := cmplx.Abs(f.Response(freq, sampleRate))
		if math.Abs(curve.Magnitude[i]-want) > 1e-10 {
			t.Fatalf("Magnitude[%d] (%.1f Hz) = %v, want %v", i, freq, curve.Magnitude[i], want)
		}
	}
}

func TestMeasureOnePole(t *testing.T) {
	// y[n] = 0.2*x[n] + 0.8*y[n-1] has DC gain 0.2/(1-0.8) = 1 and its
	// impulse response has fully decayed well inside a 4096-point window.
	f, err := iir.New([]float64{0.2}, []float64{1, -0.8})
	if err != nil {
		t.Fatal(err)
	}

	const sampleRate = 48000.0
	an, err := NewAnalyzer(4096, core.WithSampleRate(sampleRate))
	if err != nil {
		t.Fatal(err)
	}

	curve, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(curve.Magnitude[0]-1) > 1e-9 {
		t.Errorf("DC magnitude = %v, want 1", curve.Magnitude[0])
	}

	// Window truncation error is below 1e-12 here, so the measured curve
	// should track the analytic response closely across the band.
	for _, i := range []int{1, 64, 512, 1024, 2048} {
		freq := curve.Frequencies[i]
		want := cmplx.Abs(f.Response(freq, sampleRate))
		if math.Abs(curve.Magnitude[i]-want) > 1e-9 {
			t.Errorf("Magnitude at %.1f Hz = %v, want %v", freq, curve.Magnitude[i], want)
		}
	}
}

func TestMeasureSampleOnlyProcessor(t *testing.T) {
	full, err := fir.New([]float64{0.25, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}
	wrapped, err := fir.New([]float64{0.25, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	blockCurve, err := an.Measure(full)
	if err != nil {
		t.Fatal(err)
	}
	sampleCurve, err := an.Measure(&sampleOnly{f: wrapped})
	if err != nil {
		t.Fatal(err)
	}

	for i := range blockCurve.Magnitude {
		if blockCurve.Magnitude[i] != sampleCurve.Magnitude[i] {
			t.Fatalf("bin %d: block path %v != sample path %v",
				i, blockCurve.Magnitude[i], sampleCurve.Magnitude[i])
		}
	}
}

func TestMeasureResetsProcessor(t *testing.T) {
	f, err := fir.New([]float64{0.25, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	clean, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	// Dirty the filter state; the measurement must not see it.
	for range 100 {
		f.ProcessSample(0.7)
	}

	dirty, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	for i := range clean.Magnitude {
		if clean.Magnitude[i] != dirty.Magnitude[i] {
			t.Fatalf("bin %d: clean %v != after-dirty %v", i, clean.Magnitude[i], dirty.Magnitude[i])
		}
	}

	// The processor comes back zeroed.
	if got := f.ProcessSample(0); got != 0 {
		t.Errorf("ProcessSample(0) after Measure = %v, want 0", got)
	}
}

func TestMeasureNilProcessor(t *testing.T) {
	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := an.Measure(nil); !errors.Is(err, ErrNilProcessor) {
		t.Errorf("Measure(nil) = %v, want ErrNilProcessor", err)
	}
	if _, err := an.GainAt(nil, 1000); !errors.Is(err, ErrNilProcessor) {
		t.Errorf("GainAt(nil) = %v, want ErrNilProcessor", err)
	}
}

func TestMeasureImpulseResponse(t *testing.T) {
	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("passthrough", func(t *testing.T) {
		curve, err := an.MeasureImpulseResponse([]float64{1})
		if err != nil {
			t.Fatal(err)
		}
		for i, m := range curve.Magnitude {
			if math.Abs(m-1) > 1e-12 {
				t.Fatalf("Magnitude[%d] = %v, want 1", i, m)
			}
		}
	})

	t.Run("longer_than_window", func(t *testing.T) {
		ir := make([]float64, 300)
		ir[0] = 1
		curve, err := an.MeasureImpulseResponse(ir)
		if err != nil {
			t.Fatal(err)
		}
		if curve.Len() != 129 {
			t.Errorf("Len() = %d, want 129", curve.Len())
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := an.MeasureImpulseResponse(nil); !errors.Is(err, ErrEmptyResponseData) {
			t.Errorf("MeasureImpulseResponse(nil) = %v, want ErrEmptyResponseData", err)
		}
	})
}

func TestGainAt(t *testing.T) {
	// A two-tap average has |H| = cos(pi*f/sampleRate); at a quarter of the
	// sample rate that is sqrt(2)/2.
	f, err := fir.New([]float64{0.5, 0.5})
	if err != nil {
		t.Fatal(err)
	}

	const sampleRate = 48000.0
	an, err := NewAnalyzer(1024, core.WithSampleRate(sampleRate))
	if err != nil {
		t.Fatal(err)
	}

	gain, err := an.GainAt(f, sampleRate/4)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Sqrt2 / 2
	if math.Abs(gain-want) > 1e-6 {
		t.Errorf("GainAt(sr/4) = %v, want %v", gain, want)
	}

	db, err := an.GainDBAt(f, sampleRate/4)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(db-(-3.0103)) > 1e-3 {
		t.Errorf("GainDBAt(sr/4) = %v, want -3.0103", db)
	}
}

func TestGainAtMatchesCurve(t *testing.T) {
	f, err := fir.New([]float64{0.25, 0.25, 0.25, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(1024)
	if err != nil {
		t.Fatal(err)
	}

	curve, err := an.Measure(f)
	if err != nil {
		t.Fatal(err)
	}

	// Bin-aligned probe frequencies, away from the response nulls.
	for _, freq := range []float64{1500, 3000, 4500} {
		probe, err := an.GainAt(f, freq)
		if err != nil {
			t.Fatal(err)
		}
		swept, err := curve.MagnitudeAt(freq)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(probe-swept) > 1e-6 {
			t.Errorf("at %.0f Hz: probe %v, curve %v", freq, probe, swept)
		}
	}
}

func TestGainAtInvalidFrequency(t *testing.T) {
	f, err := fir.New([]float64{1})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(256)
	if err != nil {
		t.Fatal(err)
	}

	for _, freq := range []float64{0, -100, 24000, 48000} {
		if _, err := an.GainAt(f, freq); !errors.Is(err, ErrInvalidFrequency) {
			t.Errorf("GainAt(%v) = %v, want ErrInvalidFrequency", freq, err)
		}
	}
}

func TestGainAtUnityFilter(t *testing.T) {
	f, err := fir.New([]float64{1})
	if err != nil {
		t.Fatal(err)
	}

	an, err := NewAnalyzer(1024)
	if err != nil {
		t.Fatal(err)
	}

	for _, freq := range []float64{100, 1000, 10000, 20000} {
		gain, err := an.GainAt(f, freq)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(gain-1) > 1e-9 {
			t.Errorf("GainAt(%v) = %v, want 1", freq, gain)
		}
	}
}
