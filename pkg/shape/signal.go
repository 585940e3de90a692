package shape

import "math"

// Default parameter values for the signal family. Time constants are in
// milliseconds, frequencies in hertz, phases in radians.
const (
	DefaultFIDT2Star     = 50.0
	DefaultFIDFrequency  = 100.0
	DefaultFIDPhase      = 0.0
	DefaultEchoT2        = 80.0
	DefaultEchoT2Star    = 50.0
	DefaultEchoTime      = 50.0
	DefaultEchoFrequency = 100.0
	DefaultEchoPhase     = 0.0
	DefaultSTIRT1        = 1000.0
	DefaultSTIRTI        = 200.0
)

// FID is a free induction decay: an exponential T2* envelope carrying an
// off-resonance oscillation, sampled from t = 0 to 5*T2*.
//
// The oscillation is complex-valued in the underlying physics; the real part
// is taken as soon as the raw signal is composed and the real sequence is
// normalized, so the output is unambiguous and deterministic.
type FID struct {
	numPoints int
	t2Star    float64 // ms
	frequency float64 // Hz
	phase     float64 // rad
	samples   []float64
}

// NewFID creates a free-induction-decay generator. T2* must be positive.
func NewFID(numPoints int, t2Star, frequency, phase float64) (*FID, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validatePositive("t2_star", t2Star); err != nil {
		return nil, err
	}
	return &FID{numPoints: numPoints, t2Star: t2Star, frequency: frequency, phase: phase}, nil
}

// Generate implements [Generator].
func (s *FID) Generate() []float64 {
	if s.samples == nil {
		omega := 2 * math.Pi * s.frequency
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(0, 5*s.t2Star, s.numPoints) {
			tSec := t / 1000.0
			decay := math.Exp(-t / s.t2Star)
			// Re[exp(-i*(omega*t - phase))] = cos(omega*t - phase)
			raw[i] = decay * math.Cos(omega*tSec-s.phase)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Echo is a spin echo: a T2* envelope symmetric around the echo time TE,
// attenuated by the T2 decay accumulated at TE, sampled from 0 to 2*TE.
type Echo struct {
	numPoints int
	t2        float64 // ms
	t2Star    float64 // ms
	echoTime  float64 // ms
	frequency float64 // Hz
	phase     float64 // rad
	samples   []float64
}

// NewEcho creates a spin-echo generator. T2 and T2* must be positive.
func NewEcho(numPoints int, t2, t2Star, echoTime, frequency, phase float64) (*Echo, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validatePositive("t2", t2); err != nil {
		return nil, err
	}
	if err := validatePositive("t2_star", t2Star); err != nil {
		return nil, err
	}
	return &Echo{
		numPoints: numPoints,
		t2:        t2,
		t2Star:    t2Star,
		echoTime:  echoTime,
		frequency: frequency,
		phase:     phase,
	}, nil
}

// Generate implements [Generator].
func (s *Echo) Generate() []float64 {
	if s.samples == nil {
		omega := 2 * math.Pi * s.frequency
		teSec := s.echoTime / 1000.0
		t2Decay := math.Exp(-s.echoTime / s.t2)
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(0, 2*s.echoTime, s.numPoints) {
			tSec := t / 1000.0
			envelope := math.Exp(-math.Abs(t-s.echoTime) / s.t2Star)
			raw[i] = t2Decay * envelope * math.Cos(omega*(tSec-teSec)+s.phase)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// STIR is a short-TI inversion recovery signal: the longitudinal recovery
// factor at the inversion time TI scaling a T1 decay over a fixed 0..2000 ms
// window.
type STIR struct {
	numPoints int
	t1        float64 // ms
	ti        float64 // ms
	samples   []float64
}

// NewSTIR creates an inversion-recovery signal generator. T1 must be positive.
func NewSTIR(numPoints int, t1, ti float64) (*STIR, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validatePositive("t1", t1); err != nil {
		return nil, err
	}
	return &STIR{numPoints: numPoints, t1: t1, ti: ti}, nil
}

// Generate implements [Generator].
func (s *STIR) Generate() []float64 {
	if s.samples == nil {
		recovery := 1 - 2*math.Exp(-s.ti/s.t1)
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(0, 2000, s.numPoints) {
			raw[i] = recovery * math.Exp(-t/s.t1)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}
