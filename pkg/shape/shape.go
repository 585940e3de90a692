package shape

import (
	"math"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// DefaultNumPoints is the sample count used when a caller does not specify one.
const DefaultNumPoints = 100

// sincEpsilon is the |x| threshold below which sinc(x) is defined as exactly 1,
// avoiding the 0/0 at the origin.
const sincEpsilon = 1e-10

// Generator produces a normalized 1-D sample sequence.
//
// Generate never returns nil and never produces NaN or Inf for parameters
// accepted by the generator's constructor. The result is memoized: repeated
// calls return the same slice without recomputation, so callers must not
// mutate it.
type Generator interface {
	Generate() []float64
}

// Normalize rescales raw into [-1, 1] with an affine transform: the minimum
// raw value maps to -1 and the maximum to +1. A constant input (max == min)
// is degenerate and normalizes to an all-zero slice of the same length.
func Normalize(raw []float64) []float64 {
	if len(raw) == 0 {
		return []float64{}
	}
	lo, hi := raw[0], raw[0]
	for _, v := range raw[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	out := make([]float64, len(raw))
	if lo == hi {
		return out
	}
	for i, v := range raw {
		out[i] = 2*(v-lo)/(hi-lo) - 1
	}
	return out
}

// linspace returns n evenly spaced samples from start to stop inclusive.
// n == 1 yields [start].
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint so accumulated rounding never overshoots stop.
	out[n-1] = stop
	return out
}

// sinc is sin(x)/x with the removable singularity at the origin filled in.
func sinc(x float64) float64 {
	if math.Abs(x) < sincEpsilon {
		return 1.0
	}
	return math.Sin(x) / x
}

// sech is the hyperbolic secant, 1/cosh(x).
func sech(x float64) float64 {
	return 1 / math.Cosh(x)
}

// validatePoints rejects non-positive sample counts.
func validatePoints(n int) error {
	if n < 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "num_points must be >= 1, got %d", n)
	}
	return nil
}

// validatePositive rejects parameters that must be strictly positive, such as
// decay time constants that appear in denominators.
func validatePositive(name string, v float64) error {
	if v <= 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "%s must be > 0, got %g", name, v)
	}
	return nil
}

// validateNonZero rejects parameters that appear in denominators but may be
// negative, such as a Gaussian sigma.
func validateNonZero(name string, v float64) error {
	if v == 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "%s must be non-zero", name)
	}
	return nil
}
