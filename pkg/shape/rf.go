package shape

import (
	"math"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

// Default parameter values for the RF pulse family.
const (
	DefaultSincBandwidth        = 4.0
	DefaultGaussianSigma        = 0.5
	DefaultHammingSincBandwidth = 3.0
	DefaultChessSigma           = 0.6
	DefaultChessOmega           = 8.0
	DefaultAdiabaticBeta        = 5.0
	DefaultSLRMultiplier        = 0.1
	DefaultFermiTransition      = 0.2
	DefaultFermiPlateauWidth    = 0.8
	DefaultSPSPSpatialFreq      = 4.0
	DefaultSPSPSpectralFreq     = 12.0
	DefaultDantePulses          = 12
	DefaultDantePulseWidth      = 0.08
	DefaultDanteSpacing         = 0.32
	DefaultHSBeta               = 5.0
	DefaultHSMu                 = 4.9
	DefaultBIROrder             = 4.0
)

// Rectangular is a hard pulse: unit amplitude for |t| <= 0.8 over t in [-1, 1].
type Rectangular struct {
	numPoints int
	samples   []float64
}

// NewRectangular creates a hard-pulse generator with numPoints samples.
func NewRectangular(numPoints int) (*Rectangular, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Rectangular{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Rectangular) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-1, 1, s.numPoints) {
			if math.Abs(t) <= 0.8 {
				raw[i] = 1.0
			}
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Sinc is the classic band-limited excitation envelope sin(x)/x with
// x = bandwidth*pi*t over t in [-2, 2]. The central sample is exactly 1.
type Sinc struct {
	numPoints int
	bandwidth float64
	samples   []float64
}

// NewSinc creates a sinc pulse generator. Bandwidth controls the number of
// side lobes inside the window.
func NewSinc(numPoints int, bandwidth float64) (*Sinc, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Sinc{numPoints: numPoints, bandwidth: bandwidth}, nil
}

// Generate implements [Generator].
func (s *Sinc) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			raw[i] = sinc(s.bandwidth * math.Pi * t)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Gaussian is a Gaussian envelope exp(-0.5*(t/sigma)^2) over t in [-2, 2].
type Gaussian struct {
	numPoints int
	sigma     float64
	samples   []float64
}

// NewGaussian creates a Gaussian pulse generator. Sigma must be non-zero.
func NewGaussian(numPoints int, sigma float64) (*Gaussian, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validateNonZero("sigma", sigma); err != nil {
		return nil, err
	}
	return &Gaussian{numPoints: numPoints, sigma: sigma}, nil
}

// Generate implements [Generator].
func (s *Gaussian) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			raw[i] = math.Exp(-0.5 * (t / s.sigma) * (t / s.sigma))
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// HammingSinc is a sinc pulse apodized by a Hamming window, which suppresses
// the side-lobe ringing of the plain sinc.
type HammingSinc struct {
	numPoints int
	bandwidth float64
	samples   []float64
}

// NewHammingSinc creates a Hamming-windowed sinc pulse generator.
func NewHammingSinc(numPoints int, bandwidth float64) (*HammingSinc, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &HammingSinc{numPoints: numPoints, bandwidth: bandwidth}, nil
}

// Generate implements [Generator].
func (s *HammingSinc) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			window := 0.54 + 0.46*math.Cos(math.Pi*t/2)
			raw[i] = sinc(s.bandwidth*math.Pi*t) * window
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Chess is a CHESS (chemical shift selective) pulse: a Gaussian envelope with
// rectified cosine modulation.
type Chess struct {
	numPoints int
	sigma     float64
	omega     float64
	samples   []float64
}

// NewChess creates a CHESS pulse generator. Sigma must be non-zero; omega is
// the modulation frequency.
func NewChess(numPoints int, sigma, omega float64) (*Chess, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validateNonZero("sigma", sigma); err != nil {
		return nil, err
	}
	return &Chess{numPoints: numPoints, sigma: sigma, omega: omega}, nil
}

// Generate implements [Generator].
func (s *Chess) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			envelope := math.Exp(-0.5 * (t / s.sigma) * (t / s.sigma))
			raw[i] = envelope * math.Abs(math.Cos(s.omega*t))
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Adiabatic is the amplitude envelope of an adiabatic pulse, sech(beta*t)
// over t in [-2, 2].
type Adiabatic struct {
	numPoints int
	beta      float64
	samples   []float64
}

// NewAdiabatic creates an adiabatic envelope generator.
func NewAdiabatic(numPoints int, beta float64) (*Adiabatic, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Adiabatic{numPoints: numPoints, beta: beta}, nil
}

// Generate implements [Generator].
func (s *Adiabatic) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			raw[i] = sech(s.beta * t)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// SLR is a stylized Shinnar-Le Roux pulse profile: a half-ellipse with a
// superimposed ripple.
type SLR struct {
	numPoints int
	// multiplier is accepted as a parameter for catalog compatibility but the
	// ripple amplitude is fixed by the formula.
	multiplier float64
	samples    []float64
}

// NewSLR creates an SLR profile generator.
func NewSLR(numPoints int, multiplier float64) (*SLR, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &SLR{numPoints: numPoints, multiplier: multiplier}, nil
}

// Generate implements [Generator].
func (s *SLR) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-1, 1, s.numPoints) {
			x := math.Abs(t)
			if x <= 1 {
				raw[i] = math.Sqrt(1-x*x) * (1 + 0.5*math.Sin(5*math.Pi*x))
			}
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Verse is a VERSE (variable-rate selective excitation) envelope: a Gaussian
// with a rate modulation that follows the reparameterized time axis.
type Verse struct {
	numPoints int
	samples   []float64
}

// NewVerse creates a VERSE envelope generator.
func NewVerse(numPoints int) (*Verse, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Verse{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Verse) Generate() []float64 {
	if s.samples == nil {
		ts := linspace(-2, 2, s.numPoints)
		phases := linspace(0, 1, s.numPoints)
		raw := make([]float64, s.numPoints)
		for i := range raw {
			rate := 1 + 0.8*math.Sin(6*math.Pi*phases[i])
			raw[i] = math.Abs(math.Exp(-2*ts[i]*ts[i]) * rate)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Fermi is a Fermi pulse: a flat plateau with smooth sigmoid edges,
// 1/(1+exp((|t|-plateau)/transition)).
type Fermi struct {
	numPoints    int
	transition   float64
	plateauWidth float64
	samples      []float64
}

// NewFermi creates a Fermi pulse generator. Transition sets the edge
// steepness and must be non-zero.
func NewFermi(numPoints int, transition, plateauWidth float64) (*Fermi, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if err := validateNonZero("transition", transition); err != nil {
		return nil, err
	}
	return &Fermi{numPoints: numPoints, transition: transition, plateauWidth: plateauWidth}, nil
}

// Generate implements [Generator].
func (s *Fermi) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			raw[i] = 1 / (1 + math.Exp((math.Abs(t)-s.plateauWidth)/s.transition))
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// SPSP is a spatial-spectral pulse: a Gaussian envelope carrying the
// rectified product of a spatial and a spectral cosine.
type SPSP struct {
	numPoints    int
	spatialFreq  float64
	spectralFreq float64
	samples      []float64
}

// NewSPSP creates a spatial-spectral pulse generator.
func NewSPSP(numPoints int, spatialFreq, spectralFreq float64) (*SPSP, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &SPSP{numPoints: numPoints, spatialFreq: spatialFreq, spectralFreq: spectralFreq}, nil
}

// Generate implements [Generator].
func (s *SPSP) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			envelope := math.Exp(-t * t)
			spatial := math.Cos(s.spatialFreq * math.Pi * t)
			spectral := math.Cos(s.spectralFreq * math.Pi * t)
			raw[i] = envelope * math.Abs(spatial*spectral)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Composite is a three-segment composite pulse (half, full, half amplitude).
// Later segments win where the windows overlap.
type Composite struct {
	numPoints int
	samples   []float64
}

// NewComposite creates a composite pulse generator.
func NewComposite(numPoints int) (*Composite, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &Composite{numPoints: numPoints}, nil
}

// Generate implements [Generator].
func (s *Composite) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-2, 2, s.numPoints) {
			switch {
			case math.Abs(t-1.2) <= 0.3:
				raw[i] = 0.5
			case math.Abs(t) <= 0.4:
				raw[i] = 1.0
			case math.Abs(t+1.2) <= 0.3:
				raw[i] = 0.5
			}
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// Dante is a DANTE pulse train: numPulses narrow pulses spaced evenly from
// t = -1.8, with a deterministic sin(p) amplitude ripple over the pulse index.
type Dante struct {
	numPoints  int
	numPulses  int
	pulseWidth float64
	spacing    float64
	samples    []float64
}

// NewDante creates a DANTE train generator. The pulse count must not be
// negative; zero pulses yields an all-zero normalized sequence.
func NewDante(numPoints, numPulses int, pulseWidth, spacing float64) (*Dante, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	if numPulses < 0 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "num_pulses must be >= 0, got %d", numPulses)
	}
	return &Dante{numPoints: numPoints, numPulses: numPulses, pulseWidth: pulseWidth, spacing: spacing}, nil
}

// Generate implements [Generator].
func (s *Dante) Generate() []float64 {
	if s.samples == nil {
		ts := linspace(-2, 2, s.numPoints)
		raw := make([]float64, s.numPoints)
		for p := 0; p < s.numPulses; p++ {
			center := -1.8 + float64(p)*s.spacing
			amplitude := 0.25 * (1 + 0.5*math.Sin(float64(p)))
			for i, t := range ts {
				if math.Abs(t-center) <= s.pulseWidth {
					raw[i] = amplitude
				}
			}
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// HyperbolicSecant is the full adiabatic hyperbolic-secant pulse,
// sech(beta*t)*tanh(mu*t), antisymmetric around t = 0.
type HyperbolicSecant struct {
	numPoints int
	beta      float64
	mu        float64
	samples   []float64
}

// NewHyperbolicSecant creates a hyperbolic-secant pulse generator.
func NewHyperbolicSecant(numPoints int, beta, mu float64) (*HyperbolicSecant, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &HyperbolicSecant{numPoints: numPoints, beta: beta, mu: mu}, nil
}

// Generate implements [Generator].
func (s *HyperbolicSecant) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-1, 1, s.numPoints) {
			raw[i] = sech(s.beta*t) * math.Tanh(s.mu*t)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}

// BIR is a B1-insensitive rotation pulse envelope, tanh(n*t)/cosh(n*t).
type BIR struct {
	numPoints int
	order     float64
	samples   []float64
}

// NewBIR creates a BIR envelope generator.
func NewBIR(numPoints int, order float64) (*BIR, error) {
	if err := validatePoints(numPoints); err != nil {
		return nil, err
	}
	return &BIR{numPoints: numPoints, order: order}, nil
}

// Generate implements [Generator].
func (s *BIR) Generate() []float64 {
	if s.samples == nil {
		raw := make([]float64, s.numPoints)
		for i, t := range linspace(-1, 1, s.numPoints) {
			raw[i] = math.Tanh(s.order*t) / math.Cosh(s.order*t)
		}
		s.samples = Normalize(raw)
	}
	return s.samples
}
