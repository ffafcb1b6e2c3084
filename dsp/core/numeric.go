package core

import "math"

// Float constrains the sample types supported by the filter runtimes:
// any type whose underlying type is float32 or float64. All engines in
// this module are written once against this constraint and instantiated
// per concrete precision.
type Float interface {
	~float32 | ~float64
}

// Epsilon returns the default near-equality tolerance for the instantiated
// sample type: 1e-6 for 32-bit types, 1e-12 for 64-bit types.
//
// Precision-dependent defaults live only here; everything else in the
// module is precision-agnostic.
func Epsilon[T Float]() T {
	// The smallest float64 denormal is far below the float32 range, so the
	// conversion underflows to zero exactly when T is a 32-bit type.
	probe := math.SmallestNonzeroFloat64
	if T(probe) == 0 {
		return T(1e-6)
	}

	return T(1e-12)
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[T Float](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
// A non-positive eps falls back to [Epsilon] for the sample type.
func NearlyEqual[T Float](a, b, eps T) bool {
	if eps <= 0 {
		eps = Epsilon[T]()
	}

	diff := Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := max(Abs(a), Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops,
// particularly in feedback paths that decay toward zero.
func FlushDenormals[T Float](x T) T {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
