// Command filterinfo prints the frequency response of a digital filter
// given its coefficients.
//
// Usage:
//
//	filterinfo [flags]
//
// Coefficients are comma-separated lists. With only -b the filter runs as
// FIR; adding -a engages the IIR engine with a[0] normalization.
//
// Examples:
//
//	filterinfo -b 0.25,0.5,0.25
//	filterinfo -b 0.2 -a 1,-0.8 -rate 44100 -points 32
//	filterinfo -b 0.5,0.5 -ir 8
package main

import (
	"flag"
	"fmt"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/dsp/core"
	"github.com/cwbudde/algo-filter/dsp/filter"
	"github.com/cwbudde/algo-filter/dsp/filter/fir"
	"github.com/cwbudde/algo-filter/dsp/filter/iir"
	"github.com/cwbudde/algo-filter/dsp/spectrum"
)

// responder is the engine surface the printout needs; both filter types
// satisfy it.
type responder interface {
	filter.SampleProcessor[float64]
	Order() int
	Response(freqHz, sampleRate float64) complex128
}

func main() {
	bFlag := flag.String("b", "", "feedforward (numerator) coefficients, comma separated")
	aFlag := flag.String("a", "", "feedback (denominator) coefficients, comma separated; empty runs the FIR engine")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	points := flag.Int("points", 16, "number of response points from DC to Nyquist")
	irLen := flag.Int("ir", 0, "also print the first N impulse response samples")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints magnitude, phase and group delay for filter coefficients.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -b 0.25,0.5,0.25\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -b 0.2 -a 1,-0.8 -rate 44100 -points 32\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -b 0.5,0.5 -ir 8\n")
	}
	flag.Parse()

	if *bFlag == "" {
		fmt.Fprintf(os.Stderr, "error: -b is required\n")
		os.Exit(1)
	}
	if *points < 2 {
		fmt.Fprintf(os.Stderr, "error: -points must be at least 2\n")
		os.Exit(1)
	}
	if *rate <= 0 {
		fmt.Fprintf(os.Stderr, "error: -rate must be positive\n")
		os.Exit(1)
	}

	coeffsB, err := parseCoeffs(*bFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -b: %v\n", err)
		os.Exit(1)
	}
	coeffsA, err := parseCoeffs(*aFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid -a: %v\n", err)
		os.Exit(1)
	}

	var proc responder
	if len(coeffsA) > 0 {
		f, err := iir.New(coeffsB, coeffsA)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		proc = f
		fmt.Printf("IIR filter, order %d, %g Hz\n\n", f.Order(), *rate)
	} else {
		f, err := fir.New(coeffsB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		proc = f
		fmt.Printf("FIR filter, order %d, %g Hz\n\n", f.Order(), *rate)
	}

	if *irLen > 0 {
		printImpulseResponse(proc, *irLen)
	}

	printResponseTable(proc, *rate, *points)
}

// parseCoeffs splits a comma-separated list into floats, skipping empty
// entries so trailing commas are harmless.
func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad coefficient %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printImpulseResponse(proc responder, n int) {
	proc.Reset()
	fmt.Println("Impulse response:")
	for i := range n {
		x := 0.0
		if i == 0 {
			x = 1
		}
		fmt.Printf("  h[%2d] = %+.6f\n", i, proc.ProcessSample(x))
	}
	proc.Reset()
	fmt.Println()
}

func printResponseTable(proc responder, rate float64, points int) {
	freqs := make([]float64, points)
	mags := make([]float64, points)
	phases := make([]float64, points)
	for i := range freqs {
		freqs[i] = float64(i) * rate / 2 / float64(points-1)
		h := proc.Response(freqs[i], rate)
		mags[i] = cmplx.Abs(h)
		phases[i] = cmplx.Phase(h)
	}

	// The rows span DC to Nyquist in points-1 steps, which is the bin
	// spacing of a 2*(points-1) FFT.
	gd, err := spectrum.GroupDelayFromPhase(spectrum.UnwrapPhase(phases), 2*(points-1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tMagnitude\tMag [dB]\tPhase [rad]\tGD [samples]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------\t---------\t--------\t-----------\t------------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for i := range freqs {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.6f\t%+.2f\t%+.4f\t%.3f\n",
			freqs[i],
			mags[i],
			core.LinearToDB(mags[i]),
			phases[i],
			gd[i],
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
