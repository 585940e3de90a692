package shape

import (
	"math"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// Default parameter values for the gradient family.
const (
	DefaultTrapezoidRise    = 0.2
	DefaultTrapezoidPlateau = 0.6
	DefaultTrapezoidFall    = 0.2
	DefaultRadialPhase      = 0.0
	DefaultRadialCycles     = 1.0
	DefaultSpiralTurns      = 3.0
	DefaultSpiralPhase      = 0.0
	DefaultEPILines         = 8.0
)

// Trapezoid is a gradient lobe with linear ramp-up, flat plateau and linear
// ramp-down. The three fractions are converted to integer sample counts; if
// they add up to more than numPoints the rise and plateau are shrunk
// proportionally and the fall takes the remainder.
type Trapezoid struct {
	numPoints       int
	riseFraction    float64
	plateauFraction float64
	fallFraction    float64
	samples         []float64
}

// NewTrapezoid creates a trapezoid lobe generator. Fractions must not be
// negative.
func NewTrapezoid(numPoints int, rise, plateau, fall float64) (*Trapezoid, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	for _, f := range []struct {
		name  string
		value float64
	}{{"rise_fraction", rise}, {"plateau_fraction", plateau}, {"fall_fraction", fall}} {
		if f.value < 0 {
			return nil, errors.New(errors.ErrCodeInvalidParameter, "%s must be >= 0, got %g", f.name, f.value)
		}
	}
	return &Trapezoid{numPoints: numPoints, riseFraction: rise, plateauFraction: plateau, fallFraction: fall}, nil
}

// Segments returns the rise, plateau and fall sample counts after the
// proportional rescale. Exposed for callers that lay the lobe out on a time
// axis.
func (s *Trapezoid) Segments() (rise, plateau, fall int) {
	rise = int(s.riseFraction * float64(s.numPoints))
	plateau = int(s.plateauFraction * float64(s.numPoints))
	fall = int(s.fallFraction * float64(s.numPoints))
	if total := rise + plateau + fall; total > s.numPoints {
		scale := float64(s.numPoints) / float64(total)
		rise = int(float64(rise) * scale)
		plateau = int(float64(plateau) * scale)
		fall = s.numPoints - rise - plateau
	}
	return rise, plateau, fall
}

// Generate implements [Generator].
func (s *Trapezoid) Generate() []float64 {
	if s.samples == nil {
		rise, plateau, fall := s.Segments()
		raw := make([]float64, s.numPoints)
		if rise > 0 {
			copy(raw[:rise], linspace(0, 1, rise))
		}
		for i := rise; i < rise+plateau; i++ {
			raw[i] = 1.0
		}
		if fall > 0 {
			copy(raw[rise+plateau:rise+plateau+fall], linspace(1, 0, fall))
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// RampUp is a linear ramp from 0 to 1.
type RampUp struct {
	numPoints int
	samples   []float64
}

// NewRampUp creates a rising-ramp generator.
func NewRampUp(numPoints int) (*RampUp, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &RampUp{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *RampUp) Generate() []float64 {
	if s.samples == nil {
		s.samples = Normalize(linspace(0, 1, s.numPoints))
	}
	return s.samples
}

// RampDown is a linear ramp from 1 to 0.
type RampDown struct {
	numPoints int
	samples   []float64
}

// NewRampDown creates a falling-ramp generator.
func NewRampDown(numPoints int) (*RampDown, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &RampDown{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *RampDown) Generate() []float64 {
	if s.samples == nil {
		s.samples = Normalize(linspace(1, 0, s.numPoints))
	}
	return s.samples
}

// Radial is one gradient axis of a radial acquisition: cos(t + phase) over
// the requested number of full cycles.
type Radial struct {
	numPoints int
	phase     float64
	cycles    float64
	samples   []float64
}

// NewRadial creates a radial readout generator.
func NewRadial(numPoints int, phase, cycles float64) (*Radial, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Radial{numPoints: numPoints, phase: phase, cycles: cycles}, nil
}

// Generate implements [Generator].
func (s *Radial) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(0, s.cycles*2*math.Pi, s.numPoints) {
			raw[i] = math.Cos(t + s.phase)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Spiral is one gradient axis of a spiral k-space trajectory: a cosine with
// linearly growing radius over the requested number of turns.
type Spiral struct {
	numPoints int
	turns     float64
	phase     float64
	samples   []float64
}

// NewSpiral creates a spiral trajectory generator.
func NewSpiral(numPoints int, turns, phase float64) (*Spiral, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Spiral{numPoints: numPoints, turns: turns, phase: phase}, nil
}

// Generate implements [Generator].
func (s *Spiral) Generate() []float64 {
	if s.samples == nil {
		ts := linspace(0, s.turns*2*math.Pi, s.numPoints)
		radii := linspace(0, 1, s.numPoints)
		raw := make([]float64, s.numPoints)
		for i := range raw {
			raw[i] = radii[i] * math.Cos(ts[i]+s.phase)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// EPI is an echo-planar readout train: an alternating sine enveloped by a
// per-line triangle, one oscillation per k-space line.
type EPI struct {
	numPoints int
	lines     float64
	samples   []float64
}

// NewEPI creates an EPI readout generator.
func NewEPI(numPoints int, lines float64) (*EPI, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &EPI{numPoints: numPoints, lines: lines}, nil
}

// Generate implements [Generator].
func (s *EPI) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(0, s.lines, s.numPoints) {
			frac := t - math.Floor(t)
			raw[i] = math.Sin(2*math.Pi*t) * (1 - math.Abs(2*frac-1))
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Bipolar is a bipolar gradient pair: +1 for the first half of the samples,
// -1 for the rest. The output is already exactly in [-1, 1], so this is the
// documented exception to the Normalize contract and the raw values are
// returned as-is.
type Bipolar struct {
	numPoints int
	samples   []float64
}

// NewBipolar creates a bipolar lobe generator.
func NewBipolar(numPoints int) (*Bipolar, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Bipolar{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Bipolar) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		half := s.numPoints / 2
		for i := range raw {
			if i < half {
				raw[i] = 1.0
			} else {
				raw[i] = -1.0
			}
		}
		s.samples = raw
	}
	return s.samples
}
